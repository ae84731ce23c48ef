package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"evalgo.org/hydralink/models"
)

// APIDocumentation is the hypermedia control discovered through the
// apiDocumentation link relation, bound to the client that produced it
// so navigation can continue from it.
type APIDocumentation struct {
	// Control is the documentation control itself.
	Control *models.Control

	// IRI is the resolved documentation URL.
	IRI string

	client *Client
}

// EntryPoint returns the IRI the documentation designates as the API's
// starting resource.
func (d *APIDocumentation) EntryPoint() string {
	return d.Control.FirstIRI(models.PropEntryPoint)
}

// GetEntryPoint fetches the entry-point resource through the client
// that discovered the documentation.
func (d *APIDocumentation) GetEntryPoint(ctx context.Context) (*models.WebResource, error) {
	return d.client.Fetch(ctx, d.EntryPoint())
}

// DiscoverEntryPoint locates an API's documentation from its base URL.
// The base response must carry a Link header with the hydra
// apiDocumentation relation; the referenced documentation must expose
// exactly the entry-point control described in its hypermedia set.
func (c *Client) DiscoverEntryPoint(ctx context.Context, baseURL string) (*APIDocumentation, error) {
	if baseURL == "" {
		return nil, ErrMissingAddress
	}
	resp, err := c.get(ctx, baseURL)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	link := resp.Header.Get("Link")
	if link == "" {
		return nil, ErrMissingDiscoveryMetadata
	}
	docURL, ok := documentationLink(link)
	if !ok {
		return nil, ErrMissingDiscoveryMetadata
	}
	docURL, err = resolveAgainst(baseURL, docURL)
	if err != nil {
		return nil, err
	}

	res, err := c.Fetch(ctx, docURL)
	if err != nil {
		return nil, err
	}
	for _, control := range res.Hypermedia {
		if len(control.Values(models.PropEntryPoint)) == 0 {
			continue
		}
		return &APIDocumentation{Control: control, IRI: docURL, client: c}, nil
	}
	return nil, ErrMissingEntryPoint
}

// documentationLink extracts the URL of the apiDocumentation relation
// from a Link header value of comma-separated `<url>; rel="relation"`
// entries.
func documentationLink(header string) (string, bool) {
	for _, entry := range strings.Split(header, ",") {
		entry = strings.TrimSpace(entry)
		if !strings.HasPrefix(entry, "<") {
			continue
		}
		end := strings.Index(entry, ">")
		if end < 0 {
			continue
		}
		target := entry[1:end]
		for _, param := range strings.Split(entry[end+1:], ";") {
			key, value, found := strings.Cut(strings.TrimSpace(param), "=")
			if !found || strings.TrimSpace(key) != "rel" {
				continue
			}
			if strings.Trim(strings.TrimSpace(value), `"`) == models.RelAPIDocumentation {
				return target, true
			}
		}
	}
	return "", false
}

// resolveAgainst resolves ref against the scheme and authority of base
// when ref is relative; absolute refs pass through.
func resolveAgainst(base, ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if refURL.IsAbs() {
		return ref, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
