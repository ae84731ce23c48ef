// Package jsonld provides the built-in hypermedia handler for JSON-LD
// representations. It decodes the response body and hands the document
// to the separation engine.
package jsonld

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/piprate/json-gold/ld"

	"evalgo.org/hydralink/internal/separation"
	"evalgo.org/hydralink/models"
)

// MediaTypes lists the media types this handler accepts, in preference
// order. Plain application/json is accepted because many Hydra APIs
// serve JSON-LD under it.
var MediaTypes = []string{"application/ld+json", "application/json"}

// Handler separates JSON-LD representations into domain data and
// hypermedia controls.
type Handler struct {
	engine *separation.Engine
}

// New returns a handler with default JSON-LD processing options.
func New() *Handler {
	return &Handler{engine: separation.New()}
}

// NewWithOptions returns a handler whose engine uses the given JSON-LD
// options, e.g. a caching document loader for remote contexts.
func NewWithOptions(opts *ld.JsonLdOptions) *Handler {
	return &Handler{engine: separation.NewWithOptions(opts)}
}

// SupportedMediaTypes returns the media types the handler accepts.
func (h *Handler) SupportedMediaTypes() []string {
	return MediaTypes
}

// Process decodes the response body and separates hypermedia from data.
func (h *Handler) Process(ctx context.Context, resp *http.Response, stripFromPayload bool) (*models.WebResource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON-LD body: %w", err)
	}
	payload, hypermedia, err := h.engine.Process(doc, stripFromPayload)
	if err != nil {
		return nil, err
	}
	return &models.WebResource{Data: payload, Hypermedia: hypermedia}, nil
}
