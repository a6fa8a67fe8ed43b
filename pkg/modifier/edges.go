package modifier

import "github.com/vango-dev/kiln/pkg/view"

// Edge selects sides of a box.
type Edge uint8

const (
	Top Edge = 1 << iota
	Right
	Bottom
	Left

	Horizontal = Left | Right
	Vertical   = Top | Bottom
	All        = Horizontal | Vertical
)

// Edges returns view.Edges with the selected sides set to amount.
func (e Edge) Edges(amount string) view.Edges {
	var out view.Edges
	if e&Top != 0 {
		out.Top = amount
	}
	if e&Right != 0 {
		out.Right = amount
	}
	if e&Bottom != 0 {
		out.Bottom = amount
	}
	if e&Left != 0 {
		out.Left = amount
	}
	return out
}

// Padding pads the selected edges.
func Padding(edges Edge, amount string) view.Modifier {
	return Style(edges.Edges(amount).Styles("padding")...)
}
