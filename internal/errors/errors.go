package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNoAccount is returned when no admin exists for the given email.
	ErrNoAccount = errors.New("no account found with this email")
	// ErrIncorrectPassword is returned when the password does not match.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrAdminNotFound is returned when a profile edit cannot resolve the admin.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrInvalidSession is returned when a session token cannot be resolved.
	ErrInvalidSession = errors.New("invalid or expired session")
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

// MapErrorToHTTP maps domain errors to HTTP errors. The messages are the
// exact strings the dashboard shows to the admin.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNoAccount):
		return NewHTTPError(http.StatusUnauthorized, "No account found with this email.", "NO_ACCOUNT")
	case errors.Is(err, ErrIncorrectPassword):
		return NewHTTPError(http.StatusUnauthorized, "Incorrect password.", "INCORRECT_PASSWORD")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, "An account with this email already exists.", "EMAIL_TAKEN")
	case errors.Is(err, ErrAdminNotFound):
		return NewHTTPError(http.StatusNotFound, "Admin not found.", "ADMIN_NOT_FOUND")
	case errors.Is(err, ErrInvalidSession):
		return NewHTTPError(http.StatusUnauthorized, "Invalid or expired session.", "INVALID_SESSION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
