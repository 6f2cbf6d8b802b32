package gateways

import (
	"errors"
	"fmt"
)

const msgGenericFailure = "Something went wrong. Please try again."

// ErrNotFound reports an absent resource (404). Callers decide whether that
// is an error at all: a delivery missing for an order just means no agent
// has been assigned yet.
var ErrNotFound = errors.New("not found")

// ValidationError is a client-detected input problem. It blocks submission
// and is never sent to the server.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// RequestError is a non-2xx response. Message carries the server-provided
// text when the payload had one, else a generic fallback.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

// AuthError is a 401. The client clears the relevant credentials and the
// user is sent back to the matching login surface.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
