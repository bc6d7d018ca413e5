package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument marks a blank message, blank tag key or another misuse at build time.
	ErrArgument = errors.New("rop: invalid argument")
	// ErrDuplicateKey marks an attempt to add a tag key that is already present.
	ErrDuplicateKey = errors.New("rop: duplicate tag key")
	// ErrKeyNotFound is returned by RequireTag when the tag is absent.
	ErrKeyNotFound = errors.New("rop: tag not found")
	// ErrTypeConversion is returned by RequireTag when the tag value cannot be converted.
	ErrTypeConversion = errors.New("rop: tag type conversion failed")
	// ErrFailedResult is raised when the value of a failed Result is read through Value.
	ErrFailedResult = errors.New("rop: value of a failed result")
)

// ArgumentError reports a programmer error: a blank message or key, or an empty error list.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("rop: invalid argument %q: %s", e.Param, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrArgument }

// DuplicateKeyError reports a tag key collision in WithTag/WithTags.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("rop: tag with key %q already exists", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("rop: tag with key %q not found", e.Key)
}

func (e *KeyNotFoundError) Unwrap() error { return ErrKeyNotFound }

// TypeConversionError reports a tag value that could not be converted to the requested type.
type TypeConversionError struct {
	Key  string
	From string
	To   string
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("rop: tag %q of type %s cannot be converted to %s", e.Key, e.From, e.To)
}

func (e *TypeConversionError) Unwrap() error { return ErrTypeConversion }

// FailedResultError is the panic value of Result.Value on a failed result.
type FailedResultError struct {
	Errors []Error
}

func (e *FailedResultError) Error() string {
	if len(e.Errors) == 0 || IsNil(e.Errors[0]) {
		return ErrFailedResult.Error()
	}
	return fmt.Sprintf("%s: %s", ErrFailedResult.Error(), e.Errors[0].Message())
}

func (e *FailedResultError) Unwrap() error { return ErrFailedResult }
