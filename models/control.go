package models

import "encoding/json"

// ControlKind distinguishes the hypermedia control variants. Dispatch on
// the kind, not on raw type strings.
type ControlKind int

const (
	// KindResource is a generic hypermedia resource, including untyped
	// link nodes and domain nodes that surfaced in the hypermedia set
	// through an embedded control property.
	KindResource ControlKind = iota

	// KindCollection is a collection of member resources.
	KindCollection

	// KindOperation is an invocable operation.
	KindOperation

	// KindAPIDocumentation is an API documentation resource.
	KindAPIDocumentation
)

func (k ControlKind) String() string {
	switch k {
	case KindCollection:
		return "collection"
	case KindOperation:
		return "operation"
	case KindAPIDocumentation:
		return "api-documentation"
	default:
		return "resource"
	}
}

// Control is one hypermedia control: a graph node tagged with the
// variant it represents.
type Control struct {
	Kind ControlKind
	Node
}

// NewControl wraps a node as a control, deriving the kind from the
// node's type set.
func NewControl(n *Node) *Control {
	return &Control{Kind: kindOf(n), Node: *n}
}

func kindOf(n *Node) ControlKind {
	switch {
	case n.HasType(TypeCollection):
		return KindCollection
	case n.HasType(TypeOperation):
		return KindOperation
	case n.HasType(TypeAPIDocumentation):
		return KindAPIDocumentation
	default:
		return KindResource
	}
}

// TotalItems returns the collection's declared member count, or zero
// when the control carries none.
func (c *Control) TotalItems() int {
	for _, v := range c.Values(PropTotalItems) {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case json.Number:
			i, _ := n.Int64()
			return int(i)
		}
	}
	return 0
}

// Members returns the collection's member values. Members that were
// classified as domain data remain full nodes; stripped members are
// identity-only references.
func (c *Control) Members() []any {
	return c.Values(PropMember)
}

// Operations returns controls embedded under the hydra operation
// property.
func (c *Control) Operations() []*Control {
	var ops []*Control
	for _, v := range c.Values(PropOperation) {
		switch op := v.(type) {
		case *Node:
			ops = append(ops, NewControl(op))
		case Ref:
			ops = append(ops, NewControl(&Node{ID: op.IRI}))
		}
	}
	return ops
}

// MarshalJSON renders the control as its node form annotated with the
// variant kind.
func (c *Control) MarshalJSON() ([]byte, error) {
	node, err := c.Node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(node, &out); err != nil {
		return nil, err
	}
	out["kind"] = c.Kind.String()
	return json.Marshal(out)
}
