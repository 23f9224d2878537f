package webcraft

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is matched by API errors with status 404
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized is matched by API errors with status 401 or 403.
	// This usually means the token is missing, expired or was revoked by the server.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse is matched when a success response could not be decoded
	// into the expected response type
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidRequest is matched when a request record failed validation.
	// No request is sent in that case.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrTransport is matched when the request did not produce a response at all
	// (connection refused, context canceled, ...)
	ErrTransport = errors.New("transport error")
	// ErrIncompatibleVersion is matched when the API version does not satisfy a constraint
	ErrIncompatibleVersion = errors.New("incompatible API version")
)

// APIError is returned for every failed call. Message is the best effort human readable
// message (usually taken from the server's error body), StatusCode is the HTTP status
// or 0 if the call never got a response.
type APIError struct {
	Message    string
	StatusCode int

	kind  error
	cause error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Unwrap returns the underlying cause (if any)
func (e *APIError) Unwrap() error {
	return e.cause
}

// Is makes `errors.Is` work with the sentinel errors of this package
func (e *APIError) Is(target error) bool {
	if e.kind != nil && target == e.kind {
		return true
	}
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// HasStatus returns true if the error carries a HTTP status code
func (e *APIError) HasStatus() bool {
	return e.StatusCode != 0
}

func newAPIError(message string, status int) *APIError {
	return &APIError{Message: message, StatusCode: status}
}

func malformed(status int, cause error) *APIError {
	return &APIError{
		Message:    "malformed response: " + cause.Error(),
		StatusCode: status,
		kind:       ErrMalformedResponse,
		cause:      cause,
	}
}

func invalidRequest(cause error) *APIError {
	return &APIError{
		Message: "invalid request: " + cause.Error(),
		kind:    ErrInvalidRequest,
		cause:   cause,
	}
}

func transportFailure(cause error) *APIError {
	return &APIError{
		Message: "request failed: " + cause.Error(),
		kind:    ErrTransport,
		cause:   cause,
	}
}
