// Package hydralink is a client for hypermedia-driven Web APIs.
//
// # Overview
//
// hydralink fetches resources whose representations are JSON-LD graphs
// annotated with the Hydra core vocabulary, and separates the hypermedia
// controls (collections, operations, entry points) from the application
// data. Callers receive the domain payload with the controls attached
// out-of-band, or with hypermedia content stripped from the payload
// entirely.
//
// # Architecture
//
//	┌───────────────────┐
//	│  Resource Client  │  fetch → status check → handler dispatch
//	│  (pkg/.../client) │
//	└─────────┬─────────┘
//	          │
//	┌─────────▼─────────┐       ┌────────────────────┐
//	│  Handler Registry │◄──────┤  JSON-LD Handler   │
//	│  (content types)  │       │  (internal/jsonld) │
//	└─────────┬─────────┘       └─────────┬──────────┘
//	          │                           │
//	┌─────────▼───────────────────────────▼──────────┐
//	│  Separation Engine (internal/separation)       │
//	│  classify / detach / reframe via json-gold     │
//	└────────────────────────────────────────────────┘
//
// Entry-point discovery sits above the client: the Link header of a
// base URL points at the API documentation, whose hypermedia set names
// the entry point to start navigating from.
//
// # Quick Start
//
//	c := client.New(client.WithStripHypermedia(true))
//	doc, err := c.DiscoverEntryPoint(ctx, "https://api.example.org")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	entry, err := doc.GetEntryPoint(ctx)
package hydralink
