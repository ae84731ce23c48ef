// Package models defines the in-memory shape of linked-data graph nodes
// and the hypermedia controls separated out of them.
//
// A Node is a fixed struct rather than an open property bag: identity,
// type set and a property map whose values are expanded JSON-LD values.
// Property values take one of three concrete forms:
//   - a literal scalar (string, float64, bool, ...)
//   - a Ref, an identity-only reference to another node
//   - a *Node, an embedded node
package models

import (
	"encoding/json"
	"sort"
)

// Node is one linked-data graph node. Identity is an absolute IRI or a
// run-local synthesized identifier for anonymous nodes.
type Node struct {
	ID         string
	Types      []string
	Properties map[string][]any
}

// Ref is an identity-only reference to another graph node.
type Ref struct {
	IRI string
}

// MarshalJSON renders a Ref in its JSON-LD wire form.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"@id": r.IRI})
}

// IRI returns the node identity. It satisfies the client's Identified
// interface so a Node can be passed straight back into a fetch.
func (n *Node) IRI() string {
	return n.ID
}

// HasType reports whether iri appears in the node's type set.
func (n *Node) HasType(iri string) bool {
	for _, t := range n.Types {
		if t == iri {
			return true
		}
	}
	return false
}

// Values returns the values of the given property, or nil.
func (n *Node) Values(prop string) []any {
	return n.Properties[prop]
}

// FirstIRI returns the IRI carried by the first value of the given
// property, whether that value is a reference, an embedded node or a
// string literal. Empty when the property is absent.
func (n *Node) FirstIRI(prop string) string {
	for _, v := range n.Properties[prop] {
		switch val := v.(type) {
		case Ref:
			return val.IRI
		case *Node:
			return val.ID
		case string:
			return val
		}
	}
	return ""
}

// IsStub reports whether the node exposes only its identity. Stubs are
// framing artifacts, not real resources.
func (n *Node) IsStub() bool {
	return len(n.Types) == 0 && len(n.Properties) == 0
}

// PropertyIRIs returns the node's property IRIs in sorted order.
func (n *Node) PropertyIRIs() []string {
	iris := make([]string, 0, len(n.Properties))
	for iri := range n.Properties {
		iris = append(iris, iri)
	}
	sort.Strings(iris)
	return iris
}

// MarshalJSON renders the node in its JSON-LD wire form, with keyword
// entries first and property IRIs sorted.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(n.Properties)+2)
	if n.ID != "" {
		out["@id"] = n.ID
	}
	if len(n.Types) > 0 {
		out["@type"] = n.Types
	}
	for iri, vals := range n.Properties {
		out[iri] = vals
	}
	return json.Marshal(out)
}

// NodeFromExpanded converts one expanded (or framed) JSON-LD node map
// into a Node. It tolerates both the strict expanded form, where every
// value is a list of value objects, and the framed form, where single
// values and plain literals may appear unwrapped.
func NodeFromExpanded(m map[string]any) *Node {
	n := &Node{
		ID:         stringValue(m["@id"]),
		Types:      stringList(m["@type"]),
		Properties: make(map[string][]any),
	}
	for key, raw := range m {
		switch key {
		case "@id", "@type", "@context", "@index":
			continue
		}
		vals := valueList(raw)
		converted := make([]any, 0, len(vals))
		for _, v := range vals {
			converted = append(converted, convertValue(v))
		}
		n.Properties[key] = converted
	}
	return n
}

// convertValue maps one expanded JSON-LD value onto its model form.
func convertValue(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if lit, ok := m["@value"]; ok {
		return lit
	}
	if list, ok := m["@list"]; ok {
		vals := valueList(list)
		converted := make([]any, 0, len(vals))
		for _, lv := range vals {
			converted = append(converted, convertValue(lv))
		}
		return converted
	}
	if id, ok := m["@id"]; ok && len(m) == 1 {
		return Ref{IRI: stringValue(id)}
	}
	return NodeFromExpanded(m)
}

// valueList normalizes a raw JSON-LD value position to a slice.
func valueList(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		return val
	default:
		return []any{val}
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return val
	}
	return nil
}
