package httpx

import (
	"fmt"
	"net/http"

	"github.com/ib-77/ropx/pkg/rop"
)

// ReasonView is the wire form of a reason.
type ReasonView struct {
	Message string         `json:"message"`
	Kind    string         `json:"kind"`
	Tags    map[string]any `json:"tags,omitempty"`
}

type SuccessBody struct {
	Value     any          `json:"value"`
	Successes []ReasonView `json:"successes,omitempty"`
}

type FailureBody struct {
	Namespace     string       `json:"namespace"`
	CorrelationID string       `json:"correlationId"`
	Errors        []ReasonView `json:"errors"`
}

// View projects a reason, keeping only the tags listed in IncludeTags.
// Values that are not JSON scalars are rendered as strings.
func (c Config) View(r rop.Reason) ReasonView {
	v := ReasonView{Message: r.Message(), Kind: r.Kind()}
	for key, val := range r.Tags() {
		if !c.includes(key) {
			continue
		}
		if v.Tags == nil {
			v.Tags = make(map[string]any)
		}
		v.Tags[key] = scalar(val)
	}
	return v
}

// StringTags is View's tag set with every value rendered as a string.
func (c Config) StringTags(r rop.Reason) map[string]string {
	out := make(map[string]string)
	for key := range r.Tags() {
		if c.includes(key) {
			out[key] = rop.GetString(r, key, "")
		}
	}
	return out
}

// Status returns the HTTP status of an outcome: 200 on success, otherwise
// the status tag of the first error when it holds a 4xx/5xx code, else
// DefaultFailureStatus.
func (c Config) Status(o rop.Outcome) int {
	if o.IsSuccess() {
		return http.StatusOK
	}
	c = c.Normalize()
	errs := o.Errors()
	st := rop.GetInt(errs[0], c.StatusTag, c.DefaultFailureStatus)
	if st < 400 || st > 599 {
		return c.DefaultFailureStatus
	}
	return st
}

func scalar(v any) any {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
