package rop

import (
	"errors"
	"fmt"
)

const (
	ExceptionTypeTag  = "ExceptionType"
	StackTraceTag     = "StackTrace"
	InnerExceptionTag = "InnerException"

	// DefaultExceptionMessage replaces an empty fault message.
	DefaultExceptionMessage = "An exception was thrown"
)

// ExceptionError wraps a fault caught at a Try boundary or inside a
// combinator callback: a returned error or a recovered panic.
type ExceptionError struct {
	ErrorBase[ExceptionError]
	fault error
}

// NewExceptionError wraps err. The stack is recorded only when err exposes
// one through a StackTrace() string method.
func NewExceptionError(err error) ExceptionError {
	if err == nil {
		err = errors.New("")
	}
	stack := ""
	var st interface{ StackTrace() string }
	if errors.As(err, &st) {
		stack = st.StackTrace()
	}
	return newException(err, fmt.Sprintf("%T", err), stack)
}

// FromPanic wraps a recovered panic value together with the stack captured
// at recovery time.
func FromPanic(v any, stack []byte) ExceptionError {
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("%v", v)
	}
	return newException(err, fmt.Sprintf("%T", v), string(stack))
}

func newException(fault error, typeName, stack string) ExceptionError {
	msg := fault.Error()
	if isBlank(msg) {
		msg = DefaultExceptionMessage
	}

	tags := Tags{ExceptionTypeTag: typeName}
	if stack != "" {
		tags[StackTraceTag] = stack
	}
	if inner := errors.Unwrap(fault); inner != nil {
		tags[InnerExceptionTag] = inner.Error()
	}

	return exceptionBuilder(fault)(msg, tags)
}

func exceptionBuilder(fault error) func(string, Tags) ExceptionError {
	var build func(string, Tags) ExceptionError
	build = func(message string, tags Tags) ExceptionError {
		return ExceptionError{
			ErrorBase: errorOf(KindException, message, tags, build),
			fault:     fault,
		}
	}
	return build
}

// Fault returns the wrapped error.
func (e ExceptionError) Fault() error { return e.fault }

func (e ExceptionError) Unwrap() error { return e.fault }
