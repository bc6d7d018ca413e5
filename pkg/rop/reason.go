package rop

import (
	"maps"
	"sort"
	"strings"
)

// Tags is the metadata attached to a Reason. Values returned by Reason.Tags
// are copies; mutating them never affects the reason.
type Tags map[string]any

// Reason is an immutable message with tag metadata. Error and Success are
// the two variants a Result carries.
type Reason interface {
	Message() string
	Tags() Tags
	Tag(key string) (any, bool)
	HasTag(key string) bool
	Kind() string
}

// KindTag lets a domain variant declare its kind without implementing Kind itself.
const KindTag = "Kind"

// ReasonBase is embedded by concrete reason variants. It keeps the message
// and tags and implements the fluent builders. Every builder constructs the
// new value through rebuild, which is the variant's own constructor, so
// WithTag on a NotFoundError returns a NotFoundError.
//
// The zero value is not usable; build one with ErrorOf or SuccessOf.
type ReasonBase[R any] struct {
	message string
	tags    Tags
	kind    string
	rebuild func(message string, tags Tags) R
}

func newReasonBase[R any](kind, message string, tags Tags, rebuild func(string, Tags) R) ReasonBase[R] {
	if isBlank(message) {
		panic(&ArgumentError{Param: "message", Reason: "must not be blank"})
	}
	if rebuild == nil {
		panic(&ArgumentError{Param: "rebuild", Reason: "must not be nil"})
	}
	for k := range tags {
		if isBlank(k) {
			panic(&ArgumentError{Param: "key", Reason: "must not be blank"})
		}
	}
	return ReasonBase[R]{
		message: message,
		tags:    maps.Clone(tags),
		kind:    kind,
		rebuild: rebuild,
	}
}

func (b ReasonBase[R]) Message() string { return b.message }

func (b ReasonBase[R]) Tags() Tags {
	if b.tags == nil {
		return Tags{}
	}
	return maps.Clone(b.tags)
}

func (b ReasonBase[R]) Tag(key string) (any, bool) {
	v, ok := b.tags[key]
	return v, ok
}

func (b ReasonBase[R]) HasTag(key string) bool {
	_, ok := b.tags[key]
	return ok
}

// Kind returns the value of the Kind tag when it is a string, otherwise the
// kind of the base variant ("error", "success" or "exception").
func (b ReasonBase[R]) Kind() string {
	if k, ok := b.tags[KindTag].(string); ok && k != "" {
		return k
	}
	return b.kind
}

// String renders the message followed by the tags sorted by key.
func (b ReasonBase[R]) String() string {
	if len(b.tags) == 0 {
		return b.message
	}
	keys := make([]string, 0, len(b.tags))
	for k := range b.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(b.message)
	sb.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(toString(b.tags[k]))
	}
	sb.WriteString("]")
	return sb.String()
}

// WithMessage returns a copy of the variant with a new message and the same tags.
// It panics with *ArgumentError if message is blank.
func (b ReasonBase[R]) WithMessage(message string) R {
	r, err := b.TryWithMessage(message)
	if err != nil {
		panic(err)
	}
	return r
}

func (b ReasonBase[R]) TryWithMessage(message string) (R, error) {
	if isBlank(message) {
		var zero R
		return zero, &ArgumentError{Param: "message", Reason: "must not be blank"}
	}
	return b.rebuild(message, maps.Clone(b.tags)), nil
}

// WithTag returns a copy of the variant with one more tag. It panics with
// *ArgumentError on a blank key and with *DuplicateKeyError when the key is
// already present; an existing value is never overwritten.
func (b ReasonBase[R]) WithTag(key string, value any) R {
	r, err := b.TryWithTag(key, value)
	if err != nil {
		panic(err)
	}
	return r
}

func (b ReasonBase[R]) TryWithTag(key string, value any) (R, error) {
	var zero R
	if isBlank(key) {
		return zero, &ArgumentError{Param: "key", Reason: "must not be blank"}
	}
	if _, ok := b.tags[key]; ok {
		return zero, &DuplicateKeyError{Key: key}
	}
	tags := make(Tags, len(b.tags)+1)
	maps.Copy(tags, b.tags)
	tags[key] = value
	return b.rebuild(b.message, tags), nil
}

// WithTags adds all pairs at once. A nil or empty map returns the receiver
// itself. Any collision with an existing tag panics before anything is applied.
func (b ReasonBase[R]) WithTags(pairs Tags) R {
	r, err := b.TryWithTags(pairs)
	if err != nil {
		panic(err)
	}
	return r
}

func (b ReasonBase[R]) TryWithTags(pairs Tags) (R, error) {
	if len(pairs) == 0 {
		return b.rebuild(b.message, b.tags), nil
	}

	var zero R
	// sorted so the reported key does not depend on map iteration order
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if isBlank(k) {
			return zero, &ArgumentError{Param: "key", Reason: "must not be blank"}
		}
		if _, ok := b.tags[k]; ok {
			return zero, &DuplicateKeyError{Key: k}
		}
	}

	tags := make(Tags, len(b.tags)+len(pairs))
	maps.Copy(tags, b.tags)
	maps.Copy(tags, pairs)
	return b.rebuild(b.message, tags), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
