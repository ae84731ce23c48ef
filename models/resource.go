package models

// WebResource is the output of hypermedia separation: the domain data
// payload with the discovered hypermedia controls attached out-of-band.
// Data is never mixed with the controls; in strip mode it no longer
// contains any hypermedia-vocabulary content at all.
type WebResource struct {
	// Data is the domain payload. Without stripping it is the original
	// document unchanged; with stripping it is the flattened graph minus
	// hypermedia nodes and properties.
	Data any `json:"data"`

	// Hypermedia lists the separated controls, top-level controls first,
	// with nested controls embedded inside their owners.
	Hypermedia []*Control `json:"hypermedia"`
}

// Control returns the first hypermedia control of the given kind, or
// nil when the resource carries none.
func (r *WebResource) Control(kind ControlKind) *Control {
	for _, c := range r.Hypermedia {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ControlByIRI returns the hypermedia control with the given identity.
func (r *WebResource) ControlByIRI(iri string) *Control {
	for _, c := range r.Hypermedia {
		if c.ID == iri {
			return c
		}
	}
	return nil
}
