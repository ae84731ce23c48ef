package jsonld

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/hydralink/models"
)

const collectionBody = `{
	"@id": "http://example.org/events",
	"@type": "http://www.w3.org/ns/hydra/core#Collection",
	"http://www.w3.org/ns/hydra/core#totalItems": 1,
	"http://www.w3.org/ns/hydra/core#member": [
		{"@id": "http://example.org/events/1"}
	]
}`

func response(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/ld+json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestHandlerProcessSeparatesControls(t *testing.T) {
	h := New()

	res, err := h.Process(context.Background(), response(collectionBody), false)
	require.NoError(t, err)
	// Collection plus the reference stub for its member.
	require.Len(t, res.Hypermedia, 2)

	coll := res.Hypermedia[0]
	assert.Equal(t, models.KindCollection, coll.Kind)
	assert.Equal(t, "http://example.org/events", coll.ID)
	assert.Equal(t, "http://example.org/events/1", res.Hypermedia[1].ID)

	// Without stripping the payload is the decoded document, untouched.
	doc, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "http://example.org/events", doc["@id"])
	assert.Contains(t, doc, "http://www.w3.org/ns/hydra/core#member")
}

func TestHandlerProcessStripsPayload(t *testing.T) {
	h := New()

	res, err := h.Process(context.Background(), response(collectionBody), true)
	require.NoError(t, err)
	require.Len(t, res.Hypermedia, 1)
	assert.Equal(t, models.KindCollection, res.Hypermedia[0].Kind)
	assert.Empty(t, res.Data)
}

func TestHandlerProcessRejectsMalformedBody(t *testing.T) {
	h := New()

	_, err := h.Process(context.Background(), response(`{"@id": broken`), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding JSON-LD body")
}

func TestHandlerProcessHonorsCanceledContext(t *testing.T) {
	h := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Process(ctx, response(collectionBody), false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandlerSupportedMediaTypes(t *testing.T) {
	assert.Equal(t, []string{"application/ld+json", "application/json"}, New().SupportedMediaTypes())
}
