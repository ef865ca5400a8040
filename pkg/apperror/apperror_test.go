package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "application not found")))
	assert.Equal(t, Internal, KindOf(errors.New("plain error")))

	// Kind survives wrapping with fmt.Errorf
	wrapped := fmt.Errorf("while updating: %w", New(Conflict, "duplicate tracking id"))
	assert.Equal(t, Conflict, KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{New(NotFound, "missing"), http.StatusNotFound},
		{New(PreconditionFailed, "bad transition"), http.StatusBadRequest},
		{New(Conflict, "duplicate"), http.StatusBadRequest},
		{New(Validation, "malformed id"), http.StatusUnprocessableEntity},
		{New(Internal, "boom"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "for %v", tc.err)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Internal, cause, "failed to reach database")
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "failed to reach database")
	assert.Contains(t, err.Error(), "connection refused")
}
