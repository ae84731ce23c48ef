package client

import (
	"context"
	"net/http"
	"strings"

	"evalgo.org/hydralink/models"
)

// Handler separates one representation format into domain data and
// hypermedia controls.
type Handler interface {
	// SupportedMediaTypes lists the media types the handler accepts.
	SupportedMediaTypes() []string

	// Process consumes the response body and returns the separated
	// resource.
	Process(ctx context.Context, resp *http.Response, stripFromPayload bool) (*models.WebResource, error)
}

// Registry maps content types to hypermedia handlers. It is an explicit
// value held by each Client, not process-global state; registration
// order is the order handlers are tried.
type Registry struct {
	handlers []Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a handler to the registry. A nil handler is refused.
func (r *Registry) Register(h Handler) error {
	if h == nil {
		return ErrNoHandlerRegistered
	}
	r.handlers = append(r.handlers, h)
	return nil
}

// Select returns the first registered handler one of whose media types
// prefix-matches the response content type. The second return value is
// false when no handler matches; callers must treat that as a hard
// failure, never a silent fallback.
func (r *Registry) Select(contentType string) (Handler, bool) {
	for _, h := range r.handlers {
		for _, mt := range h.SupportedMediaTypes() {
			if strings.HasPrefix(contentType, mt) {
				return h, true
			}
		}
	}
	return nil, false
}

// SupportedMediaTypes aggregates the media types of all registered
// handlers, in registration order. The client advertises them in the
// Accept header.
func (r *Registry) SupportedMediaTypes() []string {
	var types []string
	for _, h := range r.handlers {
		types = append(types, h.SupportedMediaTypes()...)
	}
	return types
}
