// Package separation implements the hypermedia/data separation engine.
//
// The engine walks a normalized JSON-LD graph, classifies every node as
// either a hypermedia control (Hydra vocabulary) or application data,
// and returns the controls out-of-band. In strip mode it additionally
// removes hypermedia content from the payload: pure-hypermedia nodes
// are detached from the graph and hydra-vocabulary properties are
// deleted from domain nodes, their values moved onto the matching
// control entry.
//
// Graph normalization itself (expand, flatten, frame) is delegated to
// github.com/piprate/json-gold.
package separation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/piprate/json-gold/ld"

	"evalgo.org/hydralink/models"
)

// Engine separates hypermedia controls from domain data. An Engine is
// stateless across invocations; every Process call gets its own
// identity generator and control index, so concurrent callers can
// share one Engine.
type Engine struct {
	proc *ld.JsonLdProcessor
	opts *ld.JsonLdOptions
}

// New returns an engine with default JSON-LD processing options.
func New() *Engine {
	return NewWithOptions(ld.NewJsonLdOptions(""))
}

// NewWithOptions returns an engine using the given JSON-LD options,
// e.g. to install a custom document loader for remote contexts.
func NewWithOptions(opts *ld.JsonLdOptions) *Engine {
	return &Engine{proc: ld.NewJsonLdProcessor(), opts: opts}
}

// Process classifies the nodes of doc and returns the domain payload
// together with the discovered hypermedia controls.
//
// Without stripping the payload is doc itself, untouched: the walk runs
// over an expanded copy and classification is purely by node type, so
// reference stubs stay in the hypermedia sequence. With stripping the
// document is flattened first; the returned payload is the flattened
// graph minus hypermedia content, and the control sequence is reframed
// to rebuild nested shapes before identity-only stubs are dropped.
func (e *Engine) Process(doc any, stripFromPayload bool) (any, []*models.Control, error) {
	r := &run{
		strip: stripFromPayload,
		ids:   &identityGenerator{},
		index: newControlIndex(),
	}

	if !stripFromPayload {
		expanded, err := e.proc.Expand(doc, e.opts)
		if err != nil {
			return nil, nil, fmt.Errorf("expanding document: %w", err)
		}
		r.walkGraph(expanded)
		controls := make([]*models.Control, 0, len(r.index.order))
		for _, entry := range r.index.Nodes() {
			controls = append(controls, models.NewControl(models.NodeFromExpanded(entry.(map[string]any))))
		}
		return doc, controls, nil
	}

	flattened, err := e.proc.Flatten(doc, nil, e.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("flattening document: %w", err)
	}
	payload := r.walkGraph(asList(flattened))
	controls, err := e.reframe(r.index)
	if err != nil {
		return nil, nil, err
	}
	return payload, controls, nil
}

// run holds the state of one Process invocation.
type run struct {
	strip bool
	ids   *identityGenerator
	index *controlIndex
}

// walkGraph walks nodes at a graph position (the document root or a
// @graph block) and returns the list minus nodes detached into the
// hypermedia set.
func (r *run) walkGraph(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			out = append(out, item)
			continue
		}
		if r.walkNode(m) {
			out = append(out, item)
		}
	}
	return out
}

// walkNode classifies one node at a graph position and reports whether
// it stays in the payload.
func (r *run) walkNode(m map[string]any) bool {
	if _, ok := m["@value"]; ok {
		return true
	}
	if list, ok := m["@list"]; ok {
		m["@list"] = r.walkGraph(asList(list))
		return true
	}
	if graph, ok := m["@graph"]; ok {
		m["@graph"] = r.walkGraph(asList(graph))
		if isControlNode(m) {
			// The container itself carries no domain type: surface its
			// identity as a bare top-level control, after its contents.
			id := nodeID(m)
			if id == "" {
				id = r.ids.Next()
				m["@id"] = id
			}
			if !r.index.Has(id) {
				r.index.Upsert(id, map[string]any{"@id": id})
			}
		} else {
			r.walkDomainNode(m)
		}
		return true
	}
	if isControlNode(m) {
		id := nodeID(m)
		if id == "" {
			id = r.ids.Next()
			m["@id"] = id
		}
		entry := r.index.Upsert(id, m)
		r.walkControlValues(entry)
		return !r.strip
	}
	r.walkDomainNode(m)
	return true
}

// walkDomainNode handles a node classified as application data,
// including EntryPoint-typed nodes. Hydra-vocabulary properties are
// copied onto the node's control entry (and deleted from the node when
// stripping); other properties are searched for embedded hypermedia.
func (r *run) walkDomainNode(m map[string]any) {
	id := nodeID(m)
	merged := false
	if id != "" && !r.strip && r.index.Has(id) {
		// Identity first seen as a reference stub: merge the full node
		// into that entry instead of duplicating it.
		r.index.Upsert(id, m)
		merged = true
	}
	for _, key := range sortedKeys(m) {
		if strings.HasPrefix(key, "@") {
			continue
		}
		vals := asList(m[key])
		if models.InNamespace(key) {
			if !merged {
				if id == "" {
					id = r.ids.Next()
					m["@id"] = id
				}
				entry := r.index.Upsert(id, map[string]any{"@id": id})
				if _, ok := entry[key]; !ok {
					entry[key] = vals
				}
			}
			r.registerValues(vals)
			if r.strip {
				delete(m, key)
			}
			continue
		}
		m[key] = r.walkPropertyValues(vals)
	}
}

// walkControlValues registers nested nodes found inside a control's
// property values. Nothing is detached here: once a node is part of the
// hypermedia set its nested structure stays with it.
func (r *run) walkControlValues(m map[string]any) {
	for _, key := range sortedKeys(m) {
		if strings.HasPrefix(key, "@") {
			continue
		}
		r.registerValues(asList(m[key]))
	}
}

// registerValues indexes references and embedded nodes appearing in
// hypermedia property values, so a later occurrence of the same
// identity merges instead of duplicating.
func (r *run) registerValues(vals []any) {
	for _, v := range vals {
		vm, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if _, isLiteral := vm["@value"]; isLiteral {
			continue
		}
		if list, isList := vm["@list"]; isList {
			r.registerValues(asList(list))
			continue
		}
		if isReference(vm) {
			id := nodeID(vm)
			if !r.index.Has(id) {
				r.index.Upsert(id, map[string]any{"@id": id})
			}
			continue
		}
		if isControlNode(vm) {
			id := nodeID(vm)
			if id == "" {
				id = r.ids.Next()
				vm["@id"] = id
			}
			entry := r.index.Upsert(id, vm)
			r.walkControlValues(entry)
			continue
		}
		r.walkDomainNode(vm)
	}
}

// walkPropertyValues walks the values of a non-hydra domain property.
// Plain references and literals are left alone; embedded hypermedia
// nodes are extracted (and detached from the value list when
// stripping).
func (r *run) walkPropertyValues(vals []any) []any {
	out := make([]any, 0, len(vals))
	for _, v := range vals {
		vm, ok := v.(map[string]any)
		if !ok {
			out = append(out, v)
			continue
		}
		if _, isLiteral := vm["@value"]; isLiteral {
			out = append(out, v)
			continue
		}
		if list, isList := vm["@list"]; isList {
			vm["@list"] = r.walkPropertyValues(asList(list))
			out = append(out, v)
			continue
		}
		if isReference(vm) {
			out = append(out, v)
			continue
		}
		if isControlNode(vm) {
			id := nodeID(vm)
			if id == "" {
				id = r.ids.Next()
				vm["@id"] = id
			}
			entry := r.index.Upsert(id, vm)
			r.walkControlValues(entry)
			if !r.strip {
				out = append(out, v)
			}
			continue
		}
		r.walkDomainNode(vm)
		out = append(out, v)
	}
	return out
}

// reframe rebuilds nested control shapes from the flat control index
// via JSON-LD framing, then drops identity-only stubs and top-level
// duplicates of nodes that were embedded into another control.
func (e *Engine) reframe(ix *controlIndex) ([]*models.Control, error) {
	nodes := ix.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}
	framed, err := e.proc.Frame(map[string]any{"@graph": nodes}, map[string]any{}, e.opts)
	if err != nil {
		return nil, fmt.Errorf("reframing hypermedia: %w", err)
	}

	list := framedGraph(framed)
	embedded := make(map[string]bool)
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			collectEmbedded(m, embedded)
		}
	}

	type candidate struct {
		pos  int
		node map[string]any
	}
	kept := make([]candidate, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id := nodeID(m)
		if embedded[id] || isStubMap(m) {
			continue
		}
		pos := ix.Position(id)
		if pos < 0 {
			// Relabeled by the processor during framing; keep after the
			// nodes whose discovery position is known.
			pos = len(ix.order)
		}
		kept = append(kept, candidate{pos: pos, node: m})
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].pos < kept[j].pos })

	controls := make([]*models.Control, 0, len(kept))
	for _, c := range kept {
		controls = append(controls, models.NewControl(models.NodeFromExpanded(c.node)))
	}
	return controls, nil
}

// framedGraph extracts the top-level node list from a framing result,
// which is {"@graph": [...]} in JSON-LD 1.0 mode but may be a single
// node object when the graph is omitted.
func framedGraph(framed map[string]any) []any {
	if g, ok := framed["@graph"]; ok {
		return asList(g)
	}
	if len(framed) == 0 {
		return nil
	}
	return []any{framed}
}

// collectEmbedded records the identities of nodes embedded (with
// content, not as bare references) inside m's property values.
func collectEmbedded(m map[string]any, seen map[string]bool) {
	for key, raw := range m {
		if key == "@id" || key == "@type" || key == "@value" {
			continue
		}
		for _, v := range asList(raw) {
			vm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if id := nodeID(vm); id != "" && !isReference(vm) {
				seen[id] = true
			}
			collectEmbedded(vm, seen)
		}
	}
}

// isControlNode reports whether the node is a hypermedia control by its
// type set alone: untyped, or typed purely within the hydra namespace.
// EntryPoint takes precedence and is never a control, even when it is
// the node's only type.
func isControlNode(m map[string]any) bool {
	types := typesOf(m)
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if t == models.TypeEntryPoint {
			return false
		}
		if !models.InNamespace(t) {
			return false
		}
	}
	return true
}

// isReference reports whether the map is a pure reference: an identity
// and nothing else.
func isReference(m map[string]any) bool {
	_, ok := m["@id"]
	return ok && len(m) == 1
}

// isStubMap reports whether the framed node exposes only its identity.
func isStubMap(m map[string]any) bool {
	for key := range m {
		if key != "@id" {
			return false
		}
	}
	return true
}

func nodeID(m map[string]any) string {
	id, _ := m["@id"].(string)
	return id
}

func typesOf(m map[string]any) []string {
	switch t := m["@type"].(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func asList(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		return val
	default:
		return []any{val}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
