package errors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Domain errors. Messages are in Portuguese because the dashboard shows them
// to the user verbatim.
var (
	// ErrInvalidCredentials is returned on bad username or password. The same
	// error covers both so a login attempt cannot probe for usernames.
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")
	// ErrForbidden is returned on any role or ownership violation.
	ErrForbidden = errors.New("acesso negado")
	// ErrUsernameTaken is returned when registering a duplicate username.
	ErrUsernameTaken = errors.New("nome de usuário já existe")
	// ErrNomeTaken is returned on a reference-list name collision.
	ErrNomeTaken = errors.New("nome já existe")
	// ErrMasterProtected is returned when deleting the master account, which
	// would lock everyone out of user management.
	ErrMasterProtected = errors.New("conta master não pode ser removida")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// (database or filesystem failures included) collapses to a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USERNAME")
	case errors.Is(err, ErrNomeTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_NAME")
	case errors.Is(err, ErrMasterProtected):
		return NewHTTPError(http.StatusForbidden, err.Error(), "MASTER_PROTECTED")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, "registro não encontrado", "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "erro interno do servidor", "INTERNAL_ERROR")
	}
}
