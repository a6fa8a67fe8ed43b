package layout

import (
	"github.com/vango-dev/kiln/pkg/attrs"
	"github.com/vango-dev/kiln/pkg/view"
)

// container holds what every layout node has: its content and its own
// attribute set.
type container struct {
	content view.Node
	set     attrs.Set
}

func newContainer(children []view.Node) container {
	return container{content: view.Group(children...)}
}

func (c container) Kind() view.Kind       { return view.KindPrimitive }
func (c container) Attributes() attrs.Set { return c.set }
func (c container) Contents() []view.Node { return []view.Node{c.content} }

func (c container) with(set attrs.Set) container {
	c.set = set
	return c
}
