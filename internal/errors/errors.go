package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrQuestionNotFound is returned when a question is not found.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrInvalidVoteType is returned when the vote type is not up or down.
	ErrInvalidVoteType = errors.New("invalid vote type")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when login email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a bearer token does not resolve to a user.
	ErrInvalidToken = errors.New("invalid or missing token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// FieldErrors carries per-field validation messages, serialized as the 400
// response body.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	for field, msg := range f {
		return field + ": " + msg
	}
	return "validation failed"
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrQuestionNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "QUESTION_NOT_FOUND")
	case ErrInvalidVoteType:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_VOTE_TYPE")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case ErrInvalidToken:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
