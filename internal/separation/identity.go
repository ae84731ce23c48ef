package separation

import "fmt"

// identityGenerator synthesizes run-local identifiers for anonymous
// nodes. One generator is created per Process invocation so identities
// never leak between unrelated runs.
type identityGenerator struct {
	next int
}

// Next returns a fresh blank-node label. The "hyper" infix keeps the
// labels disjoint from the "_:b" labels the JSON-LD processor assigns
// during flattening and reframing, so a node relabeled by the processor
// can never collide with one labeled by the walk.
func (g *identityGenerator) Next() string {
	id := fmt.Sprintf("_:hyper%d", g.next)
	g.next++
	return id
}
