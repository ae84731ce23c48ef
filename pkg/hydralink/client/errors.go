package client

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the client. All are terminal for the call
// that raised them; the client retries nothing.
var (
	// ErrMissingAddress is returned when neither a URL nor a resource
	// identity was supplied.
	ErrMissingAddress = errors.New("no URL provided")

	// ErrMissingDiscoveryMetadata is returned when a base URL carries no
	// usable apiDocumentation Link relation.
	ErrMissingDiscoveryMetadata = errors.New("API documentation not provided")

	// ErrMissingEntryPoint is returned when the documentation's
	// hypermedia set contains no entry-point control.
	ErrMissingEntryPoint = errors.New("API documentation has no entry point defined")

	// ErrNoHandlerRegistered is returned when a nil handler is passed to
	// Registry.Register.
	ErrNoHandlerRegistered = errors.New("no hypermedia processor registered")

	// ErrUnsupportedRepresentation is returned when no registered
	// handler matches the response content type.
	ErrUnsupportedRepresentation = errors.New("response format not supported")
)

// StatusError reports a non-200 upstream response. 4xx and 5xx surface
// identically; deciding whether to retry is the caller's business.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote server responded with status %d", e.StatusCode)
}
