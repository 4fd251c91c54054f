package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NotFound("wishlist not found")
	assert.Equal(t, "wishlist not found", err.Error())

	wrapped := Wrap(errors.New("connection refused"), ErrCodeUnavailable, "backend unreachable")
	assert.Equal(t, "backend unreachable: connection refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "something failed")

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsValidation(Validation("x")))
	assert.True(t, IsUnauthorized(Unauthorized("x")))
	assert.True(t, IsForbidden(Forbidden("x")))
	assert.True(t, IsUnavailable(Unavailable("x")))
	assert.True(t, IsInternal(Internal("x")))

	assert.False(t, IsNotFound(Internal("x")))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestGetCodeAndField(t *testing.T) {
	assert.Equal(t, ErrCodeValidation, GetCode(ValidationField("title", "required")))
	assert.Equal(t, "title", GetField(ValidationField("title", "required")))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Empty(t, GetField(errors.New("plain")))
}
