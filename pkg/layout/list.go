package layout

import (
	"strings"

	"github.com/vango-dev/kiln/pkg/attrs"
	"github.com/vango-dev/kiln/pkg/view"
)

// ListNode renders one <li> per flattened child. The list row record
// registered for the child (background, padding, corner radius, spacing)
// becomes the inline style of its <li>.
type ListNode struct {
	container
	ordered bool
}

// List creates an unordered list.
func List(children ...view.Node) ListNode {
	return ListNode{container: newContainer(children)}
}

// OrderedList creates an ordered list.
func OrderedList(children ...view.Node) ListNode {
	return ListNode{container: newContainer(children), ordered: true}
}

// Ordered returns a copy rendered as <ol> when ordered is true.
func (l ListNode) Ordered(ordered bool) ListNode {
	l.ordered = ordered
	return l
}

func (l ListNode) WithAttributes(set attrs.Set) view.Node {
	l.container = l.with(set)
	return l
}

func (l ListNode) Markup(ctx *view.Context) (string, error) {
	tag := "ul"
	if l.ordered {
		tag = "ol"
	}

	var b strings.Builder
	for _, sv := range ctx.Subviews(l.content) {
		var row attrs.Set
		if rec, ok := ctx.Build().ListRow(sv.ID); ok {
			row = row.AddStyles(rec.Styles()...)
		}
		b.WriteString(view.Element("li", row, ctx.RenderSubview(sv)))
	}
	return view.Element(tag, l.set, b.String()), nil
}
