package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/hydralink/internal/jsonld"
	"evalgo.org/hydralink/models"
)

// stubHandler is a handler claiming the given media types.
type stubHandler struct {
	types []string
}

func (h *stubHandler) SupportedMediaTypes() []string {
	return h.types
}

func (h *stubHandler) Process(_ context.Context, _ *http.Response, _ bool) (*models.WebResource, error) {
	return &models.WebResource{}, nil
}

func TestRegistryRefusesNilHandler(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Register(nil), ErrNoHandlerRegistered)
}

func TestRegistrySelectMatchesPrefix(t *testing.T) {
	r := NewRegistry()
	h := jsonld.New()
	require.NoError(t, r.Register(h))

	// Parameters after the media type must not defeat the match.
	got, ok := r.Select("application/ld+json; charset=utf-8")
	require.True(t, ok)
	assert.Same(t, h, got)

	got, ok = r.Select("application/json")
	require.True(t, ok)
	assert.Same(t, h, got)
}

func TestRegistrySelectMissesUnknownType(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(jsonld.New()))

	_, ok := r.Select("text/csv")
	assert.False(t, ok)
}

func TestRegistrySelectHonorsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	first := &stubHandler{types: []string{"application/ld+json"}}
	second := &stubHandler{types: []string{"application/ld+json", "text/turtle"}}
	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	got, ok := r.Select("application/ld+json")
	require.True(t, ok)
	assert.Same(t, Handler(first), got)

	got, ok = r.Select("text/turtle")
	require.True(t, ok)
	assert.Same(t, Handler(second), got)
}

func TestRegistryAggregatesMediaTypes(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubHandler{types: []string{"application/ld+json"}}))
	require.NoError(t, r.Register(&stubHandler{types: []string{"text/turtle"}}))

	assert.Equal(t, []string{"application/ld+json", "text/turtle"}, r.SupportedMediaTypes())
}
