package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrUsernameTaken, http.StatusConflict, "DUPLICATE_USERNAME"},
		{ErrNomeTaken, http.StatusConflict, "DUPLICATE_NAME"},
		{ErrMasterProtected, http.StatusForbidden, "MASTER_PROTECTED"},
		{gorm.ErrRecordNotFound, http.StatusNotFound, "NOT_FOUND"},
		// wrapped errors still map
		{fmt.Errorf("delete lancamento: %w", ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		// storage and database failures collapse to a generic 500
		{fmt.Errorf("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			he := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, he.StatusCode)
			assert.Equal(t, tt.code, he.Code)
		})
	}
}
