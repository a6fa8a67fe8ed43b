package view

import (
	"strings"

	"github.com/vango-dev/kiln/pkg/attrs"
)

// Edges holds one CSS length per edge. Empty means unset.
type Edges struct {
	Top, Right, Bottom, Left string
}

// AllEdges returns Edges with every side set to v.
func AllEdges(v string) Edges { return Edges{v, v, v, v} }

// Merge returns e with every set side of next applied.
func (e Edges) Merge(next Edges) Edges {
	return Edges{
		Top:    pick(e.Top, next.Top),
		Right:  pick(e.Right, next.Right),
		Bottom: pick(e.Bottom, next.Bottom),
		Left:   pick(e.Left, next.Left),
	}
}

// IsZero reports whether no side is set.
func (e Edges) IsZero() bool { return e == Edges{} }

// Styles returns one declaration per set side, using property as the
// prefix ("padding" gives padding-top ...). All four sides equal collapse
// into the shorthand.
func (e Edges) Styles(property string) []attrs.Style {
	if e.Top != "" && e == AllEdges(e.Top) {
		return []attrs.Style{attrs.Decl(property, e.Top)}
	}
	var out []attrs.Style
	for _, side := range []struct{ name, v string }{
		{"top", e.Top}, {"right", e.Right}, {"bottom", e.Bottom}, {"left", e.Left},
	} {
		if side.v != "" {
			out = append(out, attrs.Decl(property+"-"+side.name, side.v))
		}
	}
	return out
}

// Corners holds one CSS radius per corner. Empty means unset.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft string
}

// AllCorners returns Corners with every corner set to v.
func AllCorners(v string) Corners { return Corners{v, v, v, v} }

// Merge returns c with every set corner of next applied.
func (c Corners) Merge(next Corners) Corners {
	return Corners{
		TopLeft:     pick(c.TopLeft, next.TopLeft),
		TopRight:    pick(c.TopRight, next.TopRight),
		BottomRight: pick(c.BottomRight, next.BottomRight),
		BottomLeft:  pick(c.BottomLeft, next.BottomLeft),
	}
}

// IsZero reports whether no corner is set.
func (c Corners) IsZero() bool { return c == Corners{} }

// Styles returns border radius declarations for the set corners.
func (c Corners) Styles() []attrs.Style {
	if c.TopLeft != "" && c == AllCorners(c.TopLeft) {
		return []attrs.Style{attrs.Decl("border-radius", c.TopLeft)}
	}
	var out []attrs.Style
	for _, corner := range []struct{ name, v string }{
		{"top-left", c.TopLeft}, {"top-right", c.TopRight},
		{"bottom-right", c.BottomRight}, {"bottom-left", c.BottomLeft},
	} {
		if corner.v != "" {
			out = append(out, attrs.Decl("border-"+corner.name+"-radius", corner.v))
		}
	}
	return out
}

// ListRow is the metadata a list folds into the row wrapping a child.
type ListRow struct {
	Background   string
	Padding      Edges
	CornerRadius Corners
	Spacing      string // space below the row
}

// IsZero reports whether the record carries nothing.
func (r ListRow) IsZero() bool { return r == ListRow{} }

// Styles returns the row's inline style declarations.
func (r ListRow) Styles() []attrs.Style {
	var out []attrs.Style
	if r.Background != "" {
		out = append(out, attrs.Decl("background-color", r.Background))
	}
	out = append(out, r.Padding.Styles("padding")...)
	out = append(out, r.CornerRadius.Styles()...)
	if r.Spacing != "" {
		out = append(out, attrs.Decl("margin-bottom", r.Spacing))
	}
	return out
}

// DismissPolicy controls whether a presentation can be dismissed by the
// user (backdrop click, escape key).
type DismissPolicy uint8

const (
	DismissDefault DismissPolicy = iota
	DismissAllowed
	DismissDisabled
)

// Presentation is the metadata a modal folds into its dialog.
type Presentation struct {
	Dismiss    DismissPolicy
	Background string
}

// IsZero reports whether the record carries nothing.
func (p Presentation) IsZero() bool { return p == Presentation{} }

// Font is a web font discovered during a render.
type Font struct {
	Family string
	Href   string
}

// Assets lists the head resources discovered during a render, each in
// first-use order.
type Assets struct {
	Fonts       []Font
	Stylesheets []string
	Scripts     []string
	Languages   []string
}

// IsEmpty reports whether nothing was discovered.
func (a Assets) IsEmpty() bool {
	return len(a.Fonts) == 0 && len(a.Stylesheets) == 0 && len(a.Scripts) == 0 && len(a.Languages) == 0
}

func pick(old, next string) string {
	if strings.TrimSpace(next) != "" {
		return next
	}
	return old
}
