package view

import "github.com/vango-dev/kiln/pkg/attrs"

// Subview is one flattened child with its position and identity.
type Subview struct {
	Node Node
	Path Path
	ID   Identity
}

// Subviews is an ordered, already flattened child list. It is itself a
// composite node; flattening splices it in unchanged.
type Subviews []Subview

// Flatten expands n into its ordered leaves placed under at. A primitive
// yields itself at at/0; a composite yields the concatenation of its
// children's leaves, numbered in order. A Subviews value flattened under the
// same at is spliced in as-is; leaves whose paths lie elsewhere or would
// repeat an index already used are renumbered. Flatten(Group(n), at) equals
// Flatten(n, at).
func Flatten(n Node, at Path) Subviews {
	f := flattener{at: at}
	f.add(n)
	return f.out
}

type flattener struct {
	at   Path
	out  Subviews
	next int
}

func (f *flattener) add(n Node) {
	if n == nil {
		return
	}
	if sv, ok := n.(Subviews); ok {
		for _, s := range sv {
			if i, ok := f.childIndex(s.Path); ok && i >= f.next {
				f.out = append(f.out, s)
				f.next = i + 1
				continue
			}
			f.leaf(s.Node)
		}
		return
	}
	if n.Kind() == KindComposite {
		c, ok := n.(Composite)
		if !ok {
			return
		}
		for _, child := range c.Children() {
			f.add(child)
		}
		return
	}
	f.leaf(n)
}

func (f *flattener) leaf(n Node) {
	p := f.at.Child(f.next)
	f.next++
	f.out = append(f.out, Subview{Node: n, Path: p, ID: IdentityOf(n, p)})
}

// childIndex returns the last index of p when p is a direct child of f.at.
func (f *flattener) childIndex(p Path) (int, bool) {
	if len(p) != len(f.at)+1 {
		return 0, false
	}
	for i, v := range f.at {
		if p[i] != v {
			return 0, false
		}
	}
	return p[len(p)-1], true
}

// Nodes returns the flattened leaves of n without positions.
func Nodes(n Node) []Node {
	return Flatten(n, nil).Nodes()
}

// Nodes returns the leaf nodes in order.
func (s Subviews) Nodes() []Node {
	out := make([]Node, len(s))
	for i, sv := range s {
		out[i] = sv.Node
	}
	return out
}

// IDs returns the identities in order.
func (s Subviews) IDs() []Identity {
	out := make([]Identity, len(s))
	for i, sv := range s {
		out[i] = sv.ID
	}
	return out
}

func (s Subviews) Kind() Kind { return KindComposite }

func (s Subviews) Attributes() attrs.Set { return attrs.Set{} }

// WithAttributes merges set into every leaf, keeping positions. Identities
// are recomputed since set may carry an id.
func (s Subviews) WithAttributes(set attrs.Set) Node {
	out := make(Subviews, len(s))
	for i, sv := range s {
		n := sv.Node.WithAttributes(sv.Node.Attributes().Merge(set))
		out[i] = Subview{Node: n, Path: sv.Path, ID: IdentityOf(n, sv.Path)}
	}
	return out
}

func (s Subviews) Children() []Node { return s.Nodes() }

// WithChildren returns a plain Group: new children have no positions yet.
func (s Subviews) WithChildren(children []Node) Node {
	return Group(children...)
}
