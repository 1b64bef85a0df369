package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Validation("bad date"), http.StatusBadRequest},
		{"not found", NotFound("application not found"), http.StatusNotFound},
		{"conflict", Conflict("duplicate application", errors.New("23505")), http.StatusConflict},
		{"unavailable", Unavailable(errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"wrapped", fmt.Errorf("submit: %w", NotFound("x")), http.StatusNotFound},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestPublicMessage_NeverLeaksCause(t *testing.T) {
	cause := errors.New(`ERROR: duplicate key value violates unique constraint "applies_pkey"`)

	assert.Equal(t, "duplicate application", PublicMessage(Conflict("duplicate application", cause)))
	assert.Equal(t, "database unavailable", PublicMessage(Unavailable(cause)))
	assert.Equal(t, "internal error", PublicMessage(cause))
	assert.Equal(t, "applicationDate must be YYYY-MM-DD", PublicMessage(Validation("applicationDate must be YYYY-MM-DD")))
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("conn refused")
	err := Unavailable(cause)

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "conn refused")
}
