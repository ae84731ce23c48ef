// Package client implements the hypermedia API client: fetching
// resources, dispatching to a hypermedia handler by content type, and
// discovering an API's entry point through Link header metadata.
package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"

	"evalgo.org/hydralink/internal/jsonld"
	"evalgo.org/hydralink/internal/version"
	"evalgo.org/hydralink/models"
)

// Identified is anything that exposes a resource identity. A fetched
// control or node can be passed straight back into FetchResource.
type Identified interface {
	IRI() string
}

// EnrichmentHook post-processes a resource after separation, before it
// is returned to the caller.
type EnrichmentHook interface {
	EnrichHypermedia(resource *models.WebResource) *models.WebResource
}

// identityHook is the default hook: it returns the resource unchanged.
type identityHook struct{}

func (identityHook) EnrichHypermedia(resource *models.WebResource) *models.WebResource {
	return resource
}

// Client fetches hypermedia resources. The zero value is not usable;
// construct with New.
type Client struct {
	httpClient *http.Client
	registry   *Registry
	hook       EnrichmentHook
	logger     hclog.Logger
	limiter    *rate.Limiter
	userAgent  string
	strip      bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithStripHypermedia makes every fetch remove hypermedia-vocabulary
// content from the returned payload instead of leaving the document
// untouched.
func WithStripHypermedia(strip bool) Option {
	return func(c *Client) { c.strip = strip }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log hclog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log.Named("hydralink")
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithEnrichmentHook installs a post-separation hook.
func WithEnrichmentHook(hook EnrichmentHook) Option {
	return func(c *Client) {
		if hook != nil {
			c.hook = hook
		}
	}
}

// WithRateLimit gates outgoing fetches at n requests per second. This
// is a courtesy throttle, not a retry or backoff policy.
func WithRateLimit(n float64) Option {
	return func(c *Client) {
		if n > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(n), 1)
		}
	}
}

// WithHandler registers an additional hypermedia handler. Handlers are
// tried in registration order, after the built-in JSON-LD handler.
func WithHandler(h Handler) Option {
	return func(c *Client) { _ = c.registry.Register(h) }
}

// New returns a client with the JSON-LD handler registered.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		registry:   NewRegistry(),
		hook:       identityHook{},
		logger:     hclog.NewNullLogger(),
		userAgent:  "hydralink/" + version.Version,
	}
	// Register never fails for a non-nil handler.
	_ = c.registry.Register(jsonld.New())
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry exposes the client's handler registry.
func (c *Client) Registry() *Registry {
	return c.registry
}

// Fetch retrieves the resource at url and separates its hypermedia
// controls from the domain payload.
func (c *Client) Fetch(ctx context.Context, url string) (*models.WebResource, error) {
	if url == "" {
		return nil, ErrMissingAddress
	}
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	handler, ok := c.registry.Select(resp.Header.Get("Content-Type"))
	if !ok {
		return nil, ErrUnsupportedRepresentation
	}
	resource, err := handler.Process(ctx, resp, c.strip)
	if err != nil {
		return nil, err
	}
	return c.hook.EnrichHypermedia(resource), nil
}

// FetchResource retrieves the resource identified by res.
func (c *Client) FetchResource(ctx context.Context, res Identified) (*models.WebResource, error) {
	if res == nil || res.IRI() == "" {
		return nil, ErrMissingAddress
	}
	return c.Fetch(ctx, res.IRI())
}

// get performs one GET through the limiter, tagged with a request id
// for log correlation.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	requestID := uuid.New().String()
	log := c.logger.With("request_id", requestID, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if accept := c.registry.SupportedMediaTypes(); len(accept) > 0 {
		req.Header.Set("Accept", strings.Join(accept, ", "))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.Debug("fetching resource")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("fetch failed", "error", err)
		return nil, err
	}
	log.Debug("resource fetched", "status", resp.StatusCode,
		"content_type", resp.Header.Get("Content-Type"))
	return resp, nil
}
