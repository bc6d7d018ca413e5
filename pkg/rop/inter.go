package rop

// Outcome is the value-independent view of a Result. It lets Merge and the
// transport adapters accept results of any value type.
type Outcome interface {
	// IsSuccess returns true if no error was recorded
	IsSuccess() bool
	// Successes returns the success reasons in the order they were added
	Successes() []Success
	// Errors returns the error reasons in the order they were added
	Errors() []Error
}

// ValueProvider exposes the value of a succeeded outcome without its type.
type ValueProvider interface {
	Outcome
	// Any returns the value boxed, and false on failure
	Any() (any, bool)
}

func (r Result[T]) Any() (any, bool) {
	if r.IsFailure() {
		return nil, false
	}
	return r.value, true
}

var (
	_ Outcome       = Result[int]{}
	_ ValueProvider = Result[Unit]{}
)
