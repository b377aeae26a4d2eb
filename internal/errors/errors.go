package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors mark the "rejected" leg of the repository contract: the
// operation ran fine but a precondition did not hold. Anything that is not
// one of these (and not nil) is an infrastructure failure and maps to 500.
var (
	// ErrCategoryNotFound is returned when a quiz category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user whose username exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned when username+password do not match a row.
	ErrInvalidCredentials = errors.New("invalid username or old password")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors are
// collapsed into a generic 500 so storage details never leak to clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
