package document

import (
	"strconv"
	"strings"

	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/layout"
	"github.com/vango-dev/kiln/pkg/modifier"
	"github.com/vango-dev/kiln/pkg/view"
)

// Build compiles the document body into a view tree.
func Build(doc *Document) (view.Node, error) {
	if doc == nil || doc.Root == nil {
		return nil, errors.New("K143").WithDetail("document has no body")
	}
	b := &builder{file: doc.Path}
	return b.node(doc.Root)
}

type builder struct {
	file string
}

// structural lists the properties each element type consumes itself.
// Anything else must be a modifier property.
var structural = map[string][]string{
	"text":      {"content"},
	"raw":       {"content"},
	"group":     nil,
	"div":       {"tag"},
	"section":   {"tag"},
	"p":         {"content"},
	"span":      {"content"},
	"strong":    {"content"},
	"em":        {"content"},
	"code":      {"content"},
	"h1":        {"content"},
	"h2":        {"content"},
	"h3":        {"content"},
	"h4":        {"content"},
	"h5":        {"content"},
	"h6":        {"content"},
	"a":         {"content", "href"},
	"img":       {"src", "alt"},
	"br":        nil,
	"hr":        nil,
	"codeblock": {"content", "lang"},
	"include":   {"name"},
	"list":      {"ordered"},
	"stack":     {"axis", "spacing", "align"},
	"vstack":    {"spacing", "align"},
	"hstack":    {"spacing", "align"},
	"grid":      {"columns", "spacing"},
	"modal":     {"title"},
}

// leaves cannot have child elements.
var leaves = map[string]bool{
	"text": true, "raw": true, "img": true, "br": true, "hr": true,
	"codeblock": true, "include": true,
}

func (b *builder) node(e *Element) (view.Node, error) {
	own, ok := structural[e.Type]
	if !ok {
		return nil, b.errAt(errors.New("K141").WithDetailf("%q", e.Type), e)
	}
	if leaves[e.Type] && len(e.Children) > 0 {
		return nil, b.errAt(errors.New("K142").WithDetailf("%s cannot have children", e.Type), e)
	}
	mods, err := b.modifiers(e, own)
	if err != nil {
		return nil, err
	}

	n, err := b.construct(e)
	if err != nil {
		return nil, err
	}
	if in, ok := n.(view.Inline); ok {
		return view.ModifyInline(in, mods...), nil
	}
	return view.Modify(n, mods...), nil
}

func (b *builder) construct(e *Element) (view.Node, error) {
	content, _ := e.Prop("content")

	switch e.Type {
	case "text":
		return view.Text(content), nil
	case "raw":
		return view.Raw(content), nil
	case "br":
		return view.Br(), nil
	case "hr":
		return view.Hr(), nil
	case "img":
		src, _ := e.Prop("src")
		alt, _ := e.Prop("alt")
		return view.Img(src, alt), nil
	case "codeblock":
		lang, _ := e.Prop("lang")
		return view.CodeBlock(lang, content), nil
	case "include":
		name, ok := e.Prop("name")
		if !ok || name == "" {
			return nil, b.errAt(errors.New("K142").WithDetail("include needs a name"), e)
		}
		return view.Include(name), nil
	}

	if inlineOnly(e.Type) {
		children, err := b.inlines(e, content)
		if err != nil {
			return nil, err
		}
		switch e.Type {
		case "p":
			return view.P(children...), nil
		case "span":
			return view.Span(children...), nil
		case "strong":
			return view.Strong(children...), nil
		case "em":
			return view.Em(children...), nil
		case "code":
			return view.Code(children...), nil
		case "a":
			href, _ := e.Prop("href")
			return view.A(href, children...), nil
		default:
			return view.H(int(e.Type[1]-'0'), children...), nil
		}
	}

	children, err := b.children(e)
	if err != nil {
		return nil, err
	}
	switch e.Type {
	case "group":
		if ins, ok := allInline(children); ok {
			return view.InlineGroup(ins...), nil
		}
		return view.Group(children...), nil
	case "div", "section":
		tag := e.Type
		if t, ok := e.Prop("tag"); ok && t != "" {
			tag = t
		}
		return view.El(tag, children...), nil
	case "list":
		ordered, err := b.boolProp(e, "ordered")
		if err != nil {
			return nil, err
		}
		return layout.List(children...).Ordered(ordered), nil
	case "stack", "vstack", "hstack":
		return b.stack(e, children)
	case "grid":
		raw, ok := e.Prop("columns")
		if !ok {
			return nil, b.errAt(errors.New("K142").WithDetail("grid needs columns"), e)
		}
		columns, err := strconv.Atoi(raw)
		if err != nil {
			return nil, b.errAt(errors.New("K142").WithDetailf("columns %q is not a number", raw), e)
		}
		g := layout.Grid(columns, children...)
		if gap, ok := e.Prop("spacing"); ok {
			g = g.Spacing(gap)
		}
		return g, nil
	case "modal":
		m := layout.Modal(children...)
		if title, ok := e.Prop("title"); ok {
			m = m.Title(title)
		}
		return m, nil
	}
	return nil, b.errAt(errors.New("K141").WithDetailf("%q", e.Type), e)
}

func (b *builder) stack(e *Element, children []view.Node) (view.Node, error) {
	axis := e.Type
	if axis == "stack" {
		v, _ := e.Prop("axis")
		switch v {
		case "", "vertical":
			axis = "vstack"
		case "horizontal":
			axis = "hstack"
		default:
			return nil, b.errAt(errors.New("K142").WithDetailf("axis %q", v), e)
		}
	}
	s := layout.VStack(children...)
	if axis == "hstack" {
		s = layout.HStack(children...)
	}
	if gap, ok := e.Prop("spacing"); ok {
		s = s.Spacing(gap)
	}
	if align, ok := e.Prop("align"); ok {
		s = s.Align(align)
	}
	return s, nil
}

func (b *builder) children(e *Element) ([]view.Node, error) {
	out := make([]view.Node, 0, len(e.Children))
	for _, c := range e.Children {
		n, err := b.node(c)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// inlines builds the children of an inline-only parent. content, when
// set, becomes a leading text child.
func (b *builder) inlines(e *Element, content string) ([]view.Inline, error) {
	var out []view.Inline
	if content != "" {
		out = append(out, view.Text(content))
	}
	for _, c := range e.Children {
		n, err := b.node(c)
		if err != nil {
			return nil, err
		}
		in, ok := n.(view.Inline)
		if !ok {
			return nil, b.errAt(errors.New("K142").WithDetailf("%s cannot contain block element %s", e.Type, c.Type), c)
		}
		out = append(out, in)
	}
	return out, nil
}

func inlineOnly(typ string) bool {
	switch typ {
	case "p", "span", "strong", "em", "code", "a", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func allInline(nodes []view.Node) ([]view.Inline, bool) {
	out := make([]view.Inline, len(nodes))
	for i, n := range nodes {
		in, ok := n.(view.Inline)
		if !ok {
			return nil, false
		}
		out[i] = in
	}
	return out, true
}

// modifiers maps the element's modifier properties to modifiers, in
// source order.
func (b *builder) modifiers(e *Element, own []string) ([]view.Modifier, error) {
	var mods []view.Modifier
	for _, p := range e.Props {
		if contains(own, p.Name) || p.Name == "font_href" {
			continue
		}
		m, err := b.modifier(e, p)
		if err != nil {
			return nil, err
		}
		if m != nil {
			mods = append(mods, m)
		}
	}
	if _, ok := e.Prop("font"); !ok {
		if _, ok := e.Prop("font_href"); ok {
			return nil, b.errAt(errors.New("K142").WithDetail("font_href without font"), e)
		}
	}
	return mods, nil
}

func (b *builder) modifier(e *Element, p Prop) (view.Modifier, error) {
	switch {
	case strings.HasPrefix(p.Name, "data_"):
		return modifier.Data(dashed(p.Name[len("data_"):]), p.Value), nil
	case strings.HasPrefix(p.Name, "aria_"):
		return modifier.Aria(dashed(p.Name[len("aria_"):]), p.Value), nil
	case strings.HasPrefix(p.Name, "on_"):
		return modifier.On(p.Name[len("on_"):], strings.Fields(p.Value)...), nil
	}

	switch p.Name {
	case "class":
		return modifier.Class(p.Value), nil
	case "id":
		return modifier.ID(p.Value), nil
	case "style":
		return modifier.Attr("style", p.Value), nil
	case "color":
		return modifier.ForegroundStyle(p.Value), nil
	case "background":
		return modifier.Background(p.Value), nil
	case "weight":
		return modifier.FontWeight(p.Value), nil
	case "tooltip":
		return modifier.Tooltip(p.Value), nil
	case "radius":
		return modifier.CornerRadius(p.Value), nil
	case "width":
		return modifier.Frame(p.Value, ""), nil
	case "height":
		return modifier.Frame("", p.Value), nil
	case "font":
		href, _ := e.Prop("font_href")
		return modifier.Font(p.Value, href), nil
	case "bold", "italic", "hidden":
		on, err := b.boolValue(e, p)
		if err != nil || !on {
			return nil, err
		}
		switch p.Name {
		case "bold":
			return modifier.Bold(), nil
		case "italic":
			return modifier.Italic(), nil
		}
		return modifier.Hidden(), nil
	case "opacity":
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return nil, b.errAt(errors.New("K142").WithDetailf("opacity %q is not a number", p.Value), e)
		}
		return modifier.Opacity(v), nil
	case "padding":
		edges, amount, err := b.edges(e, p)
		if err != nil {
			return nil, err
		}
		return modifier.Padding(edges, amount), nil

	case "row_background":
		return modifier.ListRowBackground(p.Value), nil
	case "row_padding":
		edges, amount, err := b.edges(e, p)
		if err != nil {
			return nil, err
		}
		return modifier.ListRowPadding(edges, amount), nil
	case "row_radius":
		return modifier.ListRowCornerRadius(p.Value), nil
	case "row_spacing":
		return modifier.ListRowSpacing(p.Value), nil
	case "dismissible":
		allowed, err := b.boolValue(e, p)
		if err != nil {
			return nil, err
		}
		return modifier.PresentationDismissible(allowed), nil
	case "presentation_background":
		return modifier.PresentationBackground(p.Value), nil
	}
	return nil, b.errAt(errors.New("K142").WithDetailf("%s has no property %q", e.Type, p.Name), e)
}

var edgeNames = map[string]modifier.Edge{
	"top":        modifier.Top,
	"right":      modifier.Right,
	"bottom":     modifier.Bottom,
	"left":       modifier.Left,
	"horizontal": modifier.Horizontal,
	"vertical":   modifier.Vertical,
	"all":        modifier.All,
}

// edges reads "amount" or "edge amount" (e.g. "horizontal 1rem").
func (b *builder) edges(e *Element, p Prop) (modifier.Edge, string, error) {
	fields := strings.Fields(p.Value)
	switch len(fields) {
	case 1:
		return modifier.All, fields[0], nil
	case 2:
		if edge, ok := edgeNames[fields[0]]; ok {
			return edge, fields[1], nil
		}
	}
	return 0, "", b.errAt(errors.New("K142").WithDetailf("%s %q", p.Name, p.Value), e)
}

func (b *builder) boolProp(e *Element, name string) (bool, error) {
	v, ok := e.Prop(name)
	if !ok {
		return false, nil
	}
	return b.boolValue(e, Prop{Name: name, Value: v})
}

func (b *builder) boolValue(e *Element, p Prop) (bool, error) {
	v, err := strconv.ParseBool(p.Value)
	if err != nil {
		return false, b.errAt(errors.New("K142").WithDetailf("%s %q is not a boolean", p.Name, p.Value), e)
	}
	return v, nil
}

func (b *builder) errAt(err *errors.KilnError, e *Element) error {
	if e.Line > 0 && b.file != "" {
		return err.WithLocation(b.file, e.Line, 0)
	}
	return err
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func dashed(name string) string { return strings.ReplaceAll(name, "_", "-") }
