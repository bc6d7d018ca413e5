package async

import "github.com/ib-77/ropx/pkg/rop"

const (
	KindCanceled = rop.KindCanceled
	CauseTag     = "Cause"
)

// CanceledError reports that a context ended before a result was available.
type CanceledError struct {
	rop.ErrorBase[CanceledError]
}

func NewCanceledError(cause error) CanceledError {
	tags := rop.Tags{rop.KindTag: KindCanceled}
	if cause != nil {
		tags[CauseTag] = cause.Error()
	}
	return newCanceledError("the operation was canceled", tags)
}

func newCanceledError(message string, tags rop.Tags) CanceledError {
	return CanceledError{ErrorBase: rop.ErrorOf(message, tags, newCanceledError)}
}

// IsCanceled reports whether r failed because a context ended.
func IsCanceled[T any](r rop.Result[T]) bool {
	return r.HasError(func(e rop.Error) bool {
		return e.Kind() == KindCanceled
	})
}

// faultOf converts an error returned by an asynchronous operation: context
// cancellation becomes a CanceledError, anything else the default conversion.
func faultOf(err error) rop.Error {
	if rop.IsCancellationError(err) {
		return NewCanceledError(err)
	}
	return nil
}
