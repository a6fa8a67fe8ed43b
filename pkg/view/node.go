package view

import "github.com/vango-dev/kiln/pkg/attrs"

// Kind is the primitive/composite discriminator. It is fixed when a node is
// constructed.
type Kind uint8

const (
	KindPrimitive Kind = iota // renders itself
	KindComposite             // expands into children
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindComposite:
		return "Composite"
	default:
		return "Unknown"
	}
}

// Node is content that may appear at block level.
type Node interface {
	Kind() Kind
	Attributes() attrs.Set
	// WithAttributes returns a copy of the node with its attribute set
	// replaced.
	WithAttributes(attrs.Set) Node
}

// Primitive is a node that produces its own markup. Markup receives the
// node's final attribute set through the receiver.
type Primitive interface {
	Node
	Markup(ctx *Context) (string, error)
}

// Composite is a node that renders by flattening its children.
type Composite interface {
	Node
	Children() []Node
	// WithChildren rebuilds a composite of the same family.
	WithChildren(children []Node) Node
}

// Inline is a node that is safe in inline position. It is implemented by
// embedding InlineContent.
type Inline interface {
	Node
	inline()
}

// InlineContent marks a node type as Inline when embedded.
type InlineContent struct{}

func (InlineContent) inline() {}

// Parent is implemented by primitives that render nested content. Contents
// must return exactly the nodes the primitive passes to Context.Render or
// Context.Subviews so that registration and rendering agree on identities.
type Parent interface {
	Contents() []Node
}

// IsComposite reports whether n expands into children.
func IsComposite(n Node) bool {
	return n != nil && n.Kind() == KindComposite
}

// IsInline reports whether n may appear in inline position.
func IsInline(n Node) bool {
	_, ok := n.(Inline)
	return ok
}
