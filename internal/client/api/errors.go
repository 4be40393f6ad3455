package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError is a payload-level failure: the server answered with a
// well-formed envelope carrying success=false. The message is the
// server-supplied, user-facing text and is surfaced verbatim.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// TransportError is an HTTP-layer failure: the request never completed or
// the response body was not a parsable envelope. Status is 0 when no
// response was received.
type TransportError struct {
	Path   string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport error on %s (status %d): %v", e.Path, e.Status, e.Err)
	}
	return fmt.Sprintf("transport error on %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
