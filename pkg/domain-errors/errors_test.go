package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := New(CodeConflict, "user already exists")
	assert.True(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(err, CodeNotFound))

	wrapped := fmt.Errorf("registering: %w", err)
	assert.True(t, HasCode(wrapped, CodeConflict))

	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
	assert.False(t, HasCode(nil, CodeInternal))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeUnauthorized, CodeOf(New(CodeUnauthorized, "invalid credentials")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "invalid credentials", MessageOf(New(CodeUnauthorized, "invalid credentials")))
	assert.Equal(t, "internal error", MessageOf(errors.New("pq: connection reset")))
}

func TestWrapKeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("pq: connection reset")
	err := Wrap(CodeInternal, "could not create account", cause)

	assert.Equal(t, "could not create account", MessageOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest:   http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeForbidden:    http.StatusForbidden,
		CodeNotFound:     http.StatusNotFound,
		CodeConflict:     http.StatusConflict,
		CodeInternal:     http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, ToHTTPStatus(code), "code %s", code)
	}
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("mystery")))
}
