package view

import (
	"strconv"
	"strings"
)

// Path is a structural position: the flattened child index at each level
// from the render root. The root itself is the empty path.
type Path []int

// Child returns the path of the i-th flattened child. The receiver is never
// aliased.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// Parent returns the enclosing path, or the root for the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[: len(p)-1 : len(p)-1]
}

// Depth returns the number of levels below the root.
func (p Path) Depth() int { return len(p) }

// String returns the path as "/0/2/1". The root is "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

// Identity keys side-table entries. It is valid for one render.
type Identity string

// IdentityOf returns the identity of n placed at path at: "#"+id when n
// carries an explicit id, otherwise the path.
func IdentityOf(n Node, at Path) Identity {
	if n != nil {
		if id := n.Attributes().ID(); id != "" {
			return Identity("#" + id)
		}
	}
	return Identity(at.String())
}

// IsExplicit reports whether the identity came from an id attribute.
func (id Identity) IsExplicit() bool {
	return strings.HasPrefix(string(id), "#")
}
