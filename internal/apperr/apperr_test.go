package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := map[error]int{
		ErrUnauthenticated:   http.StatusUnauthorized,
		ErrInvalidCredential: http.StatusForbidden,
		ErrForbidden:         http.StatusForbidden,
		ErrNotFound:          http.StatusNotFound,
		ErrConflict:          http.StatusConflict,
		ErrValidation:        http.StatusBadRequest,
		ErrUnavailable:       http.StatusServiceUnavailable,
	}
	for err, want := range cases {
		assert.Equal(t, want, Status(err), "%v", err)
		// Wrapping must not change the classification.
		assert.Equal(t, want, Status(fmt.Errorf("%w: detail", err)))
	}

	assert.Equal(t, http.StatusInternalServerError, Status(fmt.Errorf("unclassified")))
}
