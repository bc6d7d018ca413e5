package rop

const (
	KindError     = "error"
	KindSuccess   = "success"
	KindException = "exception"
	// KindCanceled is the kind of errors reporting that a context ended.
	KindCanceled = "canceled"
)

// Error is the Reason variant that marks a failed step. Every Error is also
// a Go error whose text is the reason message.
type Error interface {
	Reason
	error
	errorReason()
}

// Success is the Reason variant that records a passed checkpoint. It never
// changes the state of a Result.
type Success interface {
	Reason
	successReason()
}

// ErrorBase is embedded by Error variants:
//
//	type NotFoundError struct{ rop.ErrorBase[NotFoundError] }
//
//	func NewNotFoundError(entity string) NotFoundError {
//		return newNotFound("entity not found", rop.Tags{"Entity": entity})
//	}
//
//	func newNotFound(msg string, tags rop.Tags) NotFoundError {
//		return NotFoundError{rop.ErrorOf(msg, tags, newNotFound)}
//	}
type ErrorBase[R any] struct {
	ReasonBase[R]
}

// ErrorOf builds the embeddable base of an Error variant. rebuild must be the
// variant's own constructor; builders call it to produce siblings.
func ErrorOf[R any](message string, tags Tags, rebuild func(message string, tags Tags) R) ErrorBase[R] {
	return errorOf(KindError, message, tags, rebuild)
}

func errorOf[R any](kind, message string, tags Tags, rebuild func(string, Tags) R) ErrorBase[R] {
	return ErrorBase[R]{ReasonBase: newReasonBase(kind, message, tags, rebuild)}
}

func (b ErrorBase[R]) Error() string { return b.message }

func (ErrorBase[R]) errorReason() {}

// SuccessBase is embedded by Success variants; see ErrorBase.
type SuccessBase[R any] struct {
	ReasonBase[R]
}

func SuccessOf[R any](message string, tags Tags, rebuild func(message string, tags Tags) R) SuccessBase[R] {
	return SuccessBase[R]{ReasonBase: newReasonBase(KindSuccess, message, tags, rebuild)}
}

func (SuccessBase[R]) successReason() {}

// ErrorReason is the plain Error variant.
type ErrorReason struct {
	ErrorBase[ErrorReason]
}

// NewError panics with *ArgumentError if message is blank.
func NewError(message string) ErrorReason {
	return newErrorReason(message, nil)
}

func newErrorReason(message string, tags Tags) ErrorReason {
	return ErrorReason{ErrorBase: ErrorOf(message, tags, newErrorReason)}
}

// SuccessReason is the plain Success variant.
type SuccessReason struct {
	SuccessBase[SuccessReason]
}

func NewSuccess(message string) SuccessReason {
	return newSuccessReason(message, nil)
}

func newSuccessReason(message string, tags Tags) SuccessReason {
	return SuccessReason{SuccessBase: SuccessOf(message, tags, newSuccessReason)}
}

var (
	_ Error   = ErrorReason{}
	_ Error   = ExceptionError{}
	_ Success = SuccessReason{}
)
