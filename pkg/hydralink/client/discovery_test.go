package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/hydralink/internal/hydratest"
	"evalgo.org/hydralink/models"
)

func TestDiscoverEntryPoint(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	doc, err := New().DiscoverEntryPoint(context.Background(), srv.URL()+"/")
	require.NoError(t, err)

	assert.Equal(t, srv.URL()+"/doc", doc.IRI)
	assert.Equal(t, models.KindAPIDocumentation, doc.Control.Kind)
	assert.Equal(t, srv.URL()+"/entry", doc.EntryPoint())
}

func TestDiscoverEntryPointResolvesRelativeLink(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	doc, err := New().DiscoverEntryPoint(context.Background(), srv.URL()+"/relative")
	require.NoError(t, err)
	assert.Equal(t, srv.URL()+"/doc", doc.IRI)
}

func TestDiscoverEntryPointRejectsEmptyURL(t *testing.T) {
	_, err := New().DiscoverEntryPoint(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestDiscoverEntryPointRequiresLinkHeader(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	_, err := New().DiscoverEntryPoint(context.Background(), srv.URL()+"/plain")
	assert.ErrorIs(t, err, ErrMissingDiscoveryMetadata)
}

func TestDiscoverEntryPointRequiresEntryPointControl(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	_, err := New().DiscoverEntryPoint(context.Background(), srv.URL()+"/bare")
	assert.ErrorIs(t, err, ErrMissingEntryPoint)
}

func TestDiscoverEntryPointSurfacesUpstreamStatus(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	_, err := New().DiscoverEntryPoint(context.Background(), srv.URL()+"/missing")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestGetEntryPointFetchesThroughClient(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	c := New()
	doc, err := c.DiscoverEntryPoint(context.Background(), srv.URL()+"/")
	require.NoError(t, err)

	entry, err := doc.GetEntryPoint(context.Background())
	require.NoError(t, err)

	// The entry point is domain data; its outgoing links live in the
	// payload, not the hypermedia set.
	data, ok := entry.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, srv.URL()+"/entry", data["@id"])
	assert.Empty(t, entry.Hypermedia)

	links, ok := data["http://example.org/vocab#events"].([]any)
	require.True(t, ok)
	require.Len(t, links, 1)
	assert.Equal(t, srv.CollectionIRI(), links[0].(map[string]any)["@id"])
}

func TestDocumentationLink(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		found  bool
	}{
		{
			name:   "single relation",
			header: `<http://example.org/doc>; rel="http://www.w3.org/ns/hydra/core#apiDocumentation"`,
			want:   "http://example.org/doc",
			found:  true,
		},
		{
			name: "among other relations",
			header: `<http://example.org/style>; rel="stylesheet", ` +
				`<http://example.org/doc>; rel="http://www.w3.org/ns/hydra/core#apiDocumentation"`,
			want:  "http://example.org/doc",
			found: true,
		},
		{
			name:   "unquoted relation",
			header: `<http://example.org/doc>; rel=http://www.w3.org/ns/hydra/core#apiDocumentation`,
			want:   "http://example.org/doc",
			found:  true,
		},
		{
			name:   "no matching relation",
			header: `<http://example.org/next>; rel="next"`,
		},
		{
			name:   "malformed entry",
			header: `http://example.org/doc; rel="http://www.w3.org/ns/hydra/core#apiDocumentation"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := documentationLink(tt.header)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAgainst(t *testing.T) {
	got, err := resolveAgainst("http://example.org/api", "/doc")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/doc", got)

	got, err = resolveAgainst("http://example.org/api", "http://other.example/doc")
	require.NoError(t, err)
	assert.Equal(t, "http://other.example/doc", got)
}
