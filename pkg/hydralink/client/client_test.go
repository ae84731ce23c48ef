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

// countingHook records how often it ran.
type countingHook struct {
	calls int
}

func (h *countingHook) EnrichHypermedia(resource *models.WebResource) *models.WebResource {
	h.calls++
	return resource
}

func TestFetchRejectsEmptyURL(t *testing.T) {
	_, err := New().Fetch(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestFetchSurfacesUpstreamStatus(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL()+"/missing")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchRejectsUnsupportedContentType(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL()+"/csv")
	assert.ErrorIs(t, err, ErrUnsupportedRepresentation)
}

func TestFetchSeparatesCollection(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	res, err := New().Fetch(context.Background(), srv.CollectionIRI())
	require.NoError(t, err)

	coll := res.Control(models.KindCollection)
	require.NotNil(t, coll)
	assert.Equal(t, srv.CollectionIRI(), coll.ID)
	assert.Equal(t, 1, coll.TotalItems())

	members := coll.Members()
	require.Len(t, members, 1)
	ref, ok := members[0].(models.Ref)
	require.True(t, ok)
	assert.Equal(t, srv.EventIRI(), ref.IRI)

	// Without stripping the payload is the document as served.
	doc, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, srv.URL()+"/graphs/events", doc["@id"])
}

func TestFetchStripsHypermediaWhenConfigured(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	c := New(WithStripHypermedia(true))
	res, err := c.Fetch(context.Background(), srv.CollectionIRI())
	require.NoError(t, err)

	coll := res.Control(models.KindCollection)
	require.NotNil(t, coll)

	// The payload retains the event's domain properties only.
	payload, ok := res.Data.([]any)
	require.True(t, ok)
	require.NotEmpty(t, payload)
	for _, item := range payload {
		m, isMap := item.(map[string]any)
		require.True(t, isMap)
		assertNoHydraKeys(t, m)
	}
}

func assertNoHydraKeys(t *testing.T, m map[string]any) {
	t.Helper()
	for key, val := range m {
		if key == "@type" {
			for _, typ := range val.([]any) {
				assert.False(t, models.InNamespace(typ.(string)))
			}
			continue
		}
		assert.False(t, models.InNamespace(key))
		if key == "@graph" {
			for _, nested := range val.([]any) {
				if nm, ok := nested.(map[string]any); ok {
					assertNoHydraKeys(t, nm)
				}
			}
		}
	}
}

func TestFetchResourceFollowsIdentity(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	c := New()
	res, err := c.FetchResource(context.Background(), &models.Node{ID: srv.CollectionIRI()})
	require.NoError(t, err)
	assert.NotNil(t, res.Control(models.KindCollection))
}

func TestFetchResourceRejectsMissingIdentity(t *testing.T) {
	c := New()

	_, err := c.FetchResource(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingAddress)

	_, err = c.FetchResource(context.Background(), &models.Node{})
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestFetchRunsEnrichmentHook(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	hook := &countingHook{}
	c := New(WithEnrichmentHook(hook))

	_, err := c.Fetch(context.Background(), srv.CollectionIRI())
	require.NoError(t, err)
	assert.Equal(t, 1, hook.calls)
}

func TestFetchHonorsCanceledContext(t *testing.T) {
	srv := hydratest.New()
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Fetch(ctx, srv.CollectionIRI())
	assert.ErrorIs(t, err, context.Canceled)
}
