package view

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/kiln/pkg/attrs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// renderWith runs both phases the way the engine does and returns the
// markup with the finished context.
func renderWith(t *testing.T, opts Options, n Node) (string, *Context) {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	ctx := NewContext(opts)
	ctx.Begin()
	ctx.Register(n)
	out := ctx.Render(n)
	ctx.End()
	return out, ctx
}

func render(t *testing.T, n Node) string {
	t.Helper()
	out, _ := renderWith(t, Options{}, n)
	return out
}

func color(c string) Modifier {
	return func(p Proxy) Node { return p.Style(attrs.Decl("color", c)) }
}

func bold() Modifier {
	return func(p Proxy) Node { return p.Style(attrs.Decl("font-weight", "bold")) }
}

func rowBackground(c string) Modifier {
	return func(p Proxy) Node {
		return p.Register(func(b *BuildContext, id Identity) {
			b.RegisterListRow(id, ListRow{Background: c})
		})
	}
}

func rowPadding(v string) Modifier {
	return func(p Proxy) Node {
		return p.Register(func(b *BuildContext, id Identity) {
			b.RegisterListRow(id, ListRow{Padding: AllEdges(v)})
		})
	}
}

// testList is a minimal side-table consumer: one <li> per flattened child.
type testList struct {
	content Node
}

func (l testList) Kind() Kind                    { return KindPrimitive }
func (l testList) Attributes() attrs.Set         { return attrs.Set{} }
func (l testList) WithAttributes(attrs.Set) Node { return l }
func (l testList) Contents() []Node              { return []Node{l.content} }

func (l testList) Markup(ctx *Context) (string, error) {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, sv := range ctx.Subviews(l.content) {
		var set attrs.Set
		if row, ok := ctx.Build().ListRow(sv.ID); ok {
			set = set.AddStyles(row.Styles()...)
		}
		b.WriteString(Element("li", set, ctx.RenderSubview(sv)))
	}
	b.WriteString("</ul>")
	return b.String(), nil
}
