package separation

// controlIndex accumulates discovered hypermedia controls in document
// order while allowing lookup by identity, so a node discovered twice
// (stub first, full node later) merges into one entry instead of
// duplicating.
type controlIndex struct {
	order []string
	byID  map[string]map[string]any
}

func newControlIndex() *controlIndex {
	return &controlIndex{byID: make(map[string]map[string]any)}
}

// Upsert registers a control node under the given identity. When the
// identity is already indexed, node's content is merged into the
// existing entry and that entry is returned.
func (ix *controlIndex) Upsert(id string, node map[string]any) map[string]any {
	if existing, ok := ix.byID[id]; ok {
		mergeNode(existing, node)
		return existing
	}
	ix.byID[id] = node
	ix.order = append(ix.order, id)
	return node
}

// Has reports whether the identity is already indexed.
func (ix *controlIndex) Has(id string) bool {
	_, ok := ix.byID[id]
	return ok
}

// Nodes returns the indexed control nodes in discovery order.
func (ix *controlIndex) Nodes() []any {
	nodes := make([]any, 0, len(ix.order))
	for _, id := range ix.order {
		nodes = append(nodes, ix.byID[id])
	}
	return nodes
}

// Position returns the discovery position of an identity, or -1.
func (ix *controlIndex) Position(id string) int {
	for i, known := range ix.order {
		if known == id {
			return i
		}
	}
	return -1
}

// mergeNode folds src's entries into dst. The destination identity
// wins; types are unioned; properties missing from dst are copied and
// overlapping properties get src's values appended.
func mergeNode(dst, src map[string]any) {
	for key, val := range src {
		switch key {
		case "@id":
			continue
		case "@type":
			dst["@type"] = unionStrings(asList(dst["@type"]), asList(val))
		default:
			if _, ok := dst[key]; !ok {
				dst[key] = val
				continue
			}
			dst[key] = append(asList(dst[key]), asList(val)...)
		}
	}
}

func unionStrings(a, b []any) []any {
	seen := make(map[string]bool, len(a))
	out := make([]any, 0, len(a)+len(b))
	for _, lists := range [][]any{a, b} {
		for _, v := range lists {
			s, ok := v.(string)
			if !ok || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
