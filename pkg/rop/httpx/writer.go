package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ib-77/ropx/pkg/rop"
)

// CorrelationHeader carries the correlation id of a failure response.
const CorrelationHeader = "X-Correlation-Id"

// Writer turns outcomes into JSON HTTP responses according to Config.
type Writer struct {
	Config Config
	// NewCorrelationID generates the id of each failure response; uuid.NewString when nil.
	NewCorrelationID func() string
}

func NewWriter(cfg Config) Writer {
	return Writer{Config: cfg.Normalize()}
}

// Write serializes o. value is the payload of a succeeded outcome.
func (w Writer) Write(rw http.ResponseWriter, o rop.Outcome, value any) {
	cfg := w.Config.Normalize()
	status := cfg.Status(o)

	var body any
	if o.IsSuccess() {
		body = SuccessBody{Value: value, Successes: views(cfg, o.Successes())}
	} else {
		id := w.correlationID()
		rw.Header().Set(CorrelationHeader, id)
		body = FailureBody{
			Namespace:     cfg.Namespace,
			CorrelationID: id,
			Errors:        views(cfg, o.Errors()),
		}
	}

	b, err := json.Marshal(body)
	if err != nil {
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}

// WriteResult writes r with its own value as the payload.
func WriteResult[T any](rw http.ResponseWriter, cfg Config, r rop.Result[T]) {
	value, _ := r.Any()
	NewWriter(cfg).Write(rw, r, value)
}

func (w Writer) correlationID() string {
	if w.NewCorrelationID != nil {
		return w.NewCorrelationID()
	}
	return uuid.NewString()
}

func views[R rop.Reason](cfg Config, reasons []R) []ReasonView {
	if len(reasons) == 0 {
		return nil
	}
	out := make([]ReasonView, len(reasons))
	for i, r := range reasons {
		out[i] = cfg.View(r)
	}
	return out
}
