package rop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notFoundError struct {
	ErrorBase[notFoundError]
}

func newNotFoundError(entity string) notFoundError {
	return newNotFound("entity not found", Tags{"Entity": entity, KindTag: "not_found"})
}

func newNotFound(message string, tags Tags) notFoundError {
	return notFoundError{ErrorOf(message, tags, newNotFound)}
}

func panicValue(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

func TestNewError_BlankMessagePanics(t *testing.T) {
	t.Parallel()

	for _, msg := range []string{"", "   ", "\t\n"} {
		v := panicValue(func() { NewError(msg) })
		err, ok := v.(error)
		if !ok || !errors.Is(err, ErrArgument) {
			t.Fatalf("NewError(%q): expected ArgumentError panic, got %v", msg, v)
		}
	}
}

func TestWithTag_KeepsVariant(t *testing.T) {
	t.Parallel()

	base := newNotFoundError("order")
	tagged := base.WithTag("Id", 42)

	// the static type is the variant itself
	var _ notFoundError = tagged

	assert.Equal(t, "entity not found", tagged.Message())
	assert.Equal(t, "not_found", tagged.Kind())
	assert.Equal(t, 42, GetInt(tagged, "Id", 0))
	assert.False(t, base.HasTag("Id"), "the receiver must not change")

	var asErr Error = tagged.WithMessage("order not found")
	var nf notFoundError
	require.True(t, errors.As(asErr, &nf))
	assert.Equal(t, "order", GetString(nf, "Entity", ""))
}

func TestWithTag_DuplicateKeyPanics(t *testing.T) {
	t.Parallel()

	v := panicValue(func() {
		NewError("m").WithTag("k", "v").WithTag("k", "v2")
	})

	var dup *DuplicateKeyError
	err, ok := v.(error)
	if !ok || !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateKeyError panic, got %v", v)
	}
	assert.Equal(t, "k", dup.Key)
	assert.Contains(t, dup.Error(), `"k"`)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestWithTag_BlankKeyPanics(t *testing.T) {
	t.Parallel()

	v := panicValue(func() { NewSuccess("ok").WithTag(" ", 1) })
	err, ok := v.(error)
	if !ok || !errors.Is(err, ErrArgument) {
		t.Fatalf("expected ArgumentError panic, got %v", v)
	}
}

func TestTryWithTag_ReturnsError(t *testing.T) {
	t.Parallel()

	e := NewError("m").WithTag("k", 1)

	_, err := e.TryWithTag("k", 2)
	require.ErrorIs(t, err, ErrDuplicateKey)

	next, err := e.TryWithTag("j", 2)
	require.NoError(t, err)
	assert.Equal(t, Tags{"k": 1, "j": 2}, next.Tags())

	_, err = e.TryWithMessage("")
	require.ErrorIs(t, err, ErrArgument)
}

func TestWithTags_IsAtomic(t *testing.T) {
	t.Parallel()

	e := NewError("m").WithTag("b", 1)

	_, err := e.TryWithTags(Tags{"a": 1, "b": 2, "c": 3})
	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "b", dup.Key)
	assert.Equal(t, Tags{"b": 1}, e.Tags())

	all := e.WithTags(Tags{"a": 1, "c": 3})
	assert.Equal(t, Tags{"a": 1, "b": 1, "c": 3}, all.Tags())
}

func TestWithTags_EmptyReturnsEqualReason(t *testing.T) {
	t.Parallel()

	e := NewError("m").WithTag("k", "v")
	assert.Equal(t, e.Tags(), e.WithTags(nil).Tags())
	assert.Equal(t, e.Message(), e.WithTags(Tags{}).Message())
}

func TestTags_ReturnsCopy(t *testing.T) {
	t.Parallel()

	e := NewError("m").WithTag("k", "v")
	tags := e.Tags()
	tags["k"] = "changed"
	tags["x"] = 1

	assert.Equal(t, Tags{"k": "v"}, e.Tags())
	assert.Empty(t, NewSuccess("s").Tags())
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindError, NewError("m").Kind())
	assert.Equal(t, KindSuccess, NewSuccess("m").Kind())
	assert.Equal(t, KindException, NewExceptionError(errors.New("x")).Kind())
	assert.Equal(t, "conflict", NewError("m").WithTag(KindTag, "conflict").Kind())
}

func TestString_SortsTags(t *testing.T) {
	t.Parallel()

	e := NewError("failed").WithTags(Tags{"b": 2, "a": "x"})
	assert.Equal(t, "failed [a=x, b=2]", e.String())
	assert.Equal(t, "failed", e.Error())
}

func TestExceptionError_Tags(t *testing.T) {
	t.Parallel()

	inner := errors.New("disk full")
	ex := NewExceptionError(fmt.Errorf("write failed: %w", inner))

	assert.Equal(t, "write failed: disk full", ex.Message())
	assert.Equal(t, "*fmt.wrapError", GetString(ex, ExceptionTypeTag, ""))
	assert.Equal(t, "disk full", GetString(ex, InnerExceptionTag, ""))
	assert.False(t, ex.HasTag(StackTraceTag))
	assert.ErrorIs(t, ex, inner)

	// builders keep the fault
	tagged := ex.WithTag("Op", "write")
	assert.Same(t, ex.Fault(), tagged.Fault())
	assert.ErrorIs(t, tagged, inner)
}

type stackError struct{ msg string }

func (e stackError) Error() string      { return e.msg }
func (e stackError) StackTrace() string { return "main.go:10" }

func TestExceptionError_StackOnlyWhenCarried(t *testing.T) {
	t.Parallel()

	ex := NewExceptionError(stackError{msg: "boom"})
	assert.Equal(t, "main.go:10", GetString(ex, StackTraceTag, ""))

	empty := NewExceptionError(errors.New(""))
	assert.Equal(t, DefaultExceptionMessage, empty.Message())
}
