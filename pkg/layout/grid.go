package layout

import (
	"strconv"
	"strings"

	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/attrs"
	"github.com/vango-dev/kiln/pkg/view"
)

// GridNode is a CSS grid. Every flattened child is wrapped in a cell.
type GridNode struct {
	container
	columns int
	spacing string
}

// Grid creates a grid with the given number of equal columns.
func Grid(columns int, children ...view.Node) GridNode {
	return GridNode{container: newContainer(children), columns: columns}
}

// Spacing sets the gap between cells.
func (g GridNode) Spacing(gap string) GridNode {
	g.spacing = gap
	return g
}

func (g GridNode) WithAttributes(set attrs.Set) view.Node {
	g.container = g.with(set)
	return g
}

func (g GridNode) Markup(ctx *view.Context) (string, error) {
	if g.columns < 1 {
		return "", errors.New("K101").WithDetailf("grid with %d columns", g.columns)
	}
	own := attrs.Set{}.AddStyles(
		attrs.Decl("display", "grid"),
		attrs.Decl("grid-template-columns", "repeat("+strconv.Itoa(g.columns)+", minmax(0, 1fr))"),
		attrs.Decl("gap", g.spacing),
	)
	cell := attrs.Set{}.AddClasses("kiln-grid-cell")

	var b strings.Builder
	for _, sv := range ctx.Subviews(g.content) {
		b.WriteString(view.Element("div", cell, ctx.RenderSubview(sv)))
	}
	return view.Element("div", own.Merge(g.set), b.String()), nil
}
