package layout

import (
	"github.com/vango-dev/kiln/pkg/attrs"
	"github.com/vango-dev/kiln/pkg/view"
)

// Axis is the main axis of a stack.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

// StackNode is a flex container. Children are rendered directly, without
// a wrapper.
type StackNode struct {
	container
	axis    Axis
	spacing string
	align   string
}

// VStack stacks children vertically.
func VStack(children ...view.Node) StackNode {
	return StackNode{container: newContainer(children), axis: Vertical}
}

// HStack stacks children horizontally.
func HStack(children ...view.Node) StackNode {
	return StackNode{container: newContainer(children), axis: Horizontal}
}

// Spacing sets the gap between children.
func (s StackNode) Spacing(gap string) StackNode {
	s.spacing = gap
	return s
}

// Align sets the cross axis alignment (a CSS align-items value).
func (s StackNode) Align(align string) StackNode {
	s.align = align
	return s
}

// Axis returns the main axis.
func (s StackNode) Axis() Axis { return s.axis }

func (s StackNode) WithAttributes(set attrs.Set) view.Node {
	s.container = s.with(set)
	return s
}

func (s StackNode) Markup(ctx *view.Context) (string, error) {
	direction := "column"
	if s.axis == Horizontal {
		direction = "row"
	}
	own := attrs.Set{}.AddStyles(
		attrs.Decl("display", "flex"),
		attrs.Decl("flex-direction", direction),
		attrs.Decl("gap", s.spacing),
		attrs.Decl("align-items", s.align),
	)
	return view.Element("div", own.Merge(s.set), ctx.Render(s.content)), nil
}
