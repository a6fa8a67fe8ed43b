package view

import (
	"slices"

	"github.com/vango-dev/kiln/pkg/attrs"
)

// Fragment is a block composite with no element of its own.
type Fragment struct {
	children []Node
}

// Group composes nodes into a block composite. Nil children are dropped.
func Group(children ...Node) Node {
	return Fragment{children: compact(children)}
}

func (f Fragment) Kind() Kind { return KindComposite }

// Attributes is always empty; a fragment has no element to carry them.
func (f Fragment) Attributes() attrs.Set { return attrs.Set{} }

// WithAttributes merges set into every child.
func (f Fragment) WithAttributes(set attrs.Set) Node {
	return Group(distribute(f.children, set)...)
}

func (f Fragment) Children() []Node { return slices.Clone(f.children) }

func (f Fragment) WithChildren(children []Node) Node { return Group(children...) }

// InlineFragment is an inline composite.
type InlineFragment struct {
	InlineContent
	children []Inline
}

// InlineGroup composes inline nodes. Nil children are dropped.
func InlineGroup(children ...Inline) Inline {
	out := make([]Inline, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return InlineFragment{children: out}
}

// Empty returns a composite with no children. It renders as "".
func Empty() Inline { return InlineFragment{} }

func (f InlineFragment) Kind() Kind { return KindComposite }

func (f InlineFragment) Attributes() attrs.Set { return attrs.Set{} }

func (f InlineFragment) WithAttributes(set attrs.Set) Node {
	return inlineOrGroup(distribute(f.Children(), set))
}

func (f InlineFragment) Children() []Node { return toNodes(f.children) }

// WithChildren keeps the inline family when every child is inline and
// falls back to a block Group otherwise.
func (f InlineFragment) WithChildren(children []Node) Node {
	return inlineOrGroup(children)
}

func inlineOrGroup(children []Node) Node {
	inl := make([]Inline, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		in, ok := c.(Inline)
		if !ok {
			return Group(children...)
		}
		inl = append(inl, in)
	}
	return InlineFragment{children: inl}
}

func distribute(children []Node, set attrs.Set) []Node {
	out := make([]Node, len(children))
	for i, c := range children {
		out[i] = c.WithAttributes(c.Attributes().Merge(set))
	}
	return out
}

func compact(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func toNodes[T Node](items []T) []Node {
	out := make([]Node, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
