package view

import (
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/text/message"

	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/attrs"
)

// TextNode is escaped text. With attributes it renders inside a <span>.
type TextNode struct {
	InlineContent
	text string
	set  attrs.Set
}

// Text creates a text node.
func Text(s string) Inline { return TextNode{text: s} }

// Textf creates a text node from a format string.
func Textf(format string, args ...any) Inline {
	return TextNode{text: fmt.Sprintf(format, args...)}
}

func (t TextNode) Kind() Kind                        { return KindPrimitive }
func (t TextNode) Attributes() attrs.Set             { return t.set }
func (t TextNode) WithAttributes(set attrs.Set) Node { t.set = set; return t }

func (t TextNode) Markup(*Context) (string, error) {
	return spanIfStyled(t.set, attrs.EscapeText(t.text)), nil
}

// RawNode is markup inserted verbatim. It is the only way to bypass
// escaping.
type RawNode struct {
	InlineContent
	html string
	set  attrs.Set
}

// Raw creates a raw markup node.
func Raw(html string) Inline { return RawNode{html: html} }

func (r RawNode) Kind() Kind                        { return KindPrimitive }
func (r RawNode) Attributes() attrs.Set             { return r.set }
func (r RawNode) WithAttributes(set attrs.Set) Node { r.set = set; return r }
func (r RawNode) Markup(*Context) (string, error)   { return spanIfStyled(r.set, r.html), nil }

func spanIfStyled(set attrs.Set, inner string) string {
	if set.IsEmpty() {
		return inner
	}
	return Element("span", set, inner)
}

// printfNode formats with the render locale.
type printfNode struct {
	InlineContent
	format string
	args   []any
	set    attrs.Set
}

// Printf creates text formatted at render time with the context locale's
// number formatting ("1,234.5" in English, "1.234,5" in German).
func Printf(format string, args ...any) Inline {
	return printfNode{format: format, args: args}
}

func (p printfNode) Kind() Kind                        { return KindPrimitive }
func (p printfNode) Attributes() attrs.Set             { return p.set }
func (p printfNode) WithAttributes(set attrs.Set) Node { p.set = set; return p }

func (p printfNode) Markup(ctx *Context) (string, error) {
	s := message.NewPrinter(ctx.Locale()).Sprintf(p.format, p.args...)
	return spanIfStyled(p.set, attrs.EscapeText(s)), nil
}

// ElementNode is a block element with nested content.
type ElementNode struct {
	tag      string
	set      attrs.Set
	children []Node
}

// El creates a block element. Children of a void tag are dropped.
func El(tag string, children ...Node) Node {
	return newElement(tag, children)
}

func newElement(tag string, children []Node) ElementNode {
	if IsVoid(tag) {
		children = nil
	}
	return ElementNode{tag: tag, children: compact(children)}
}

// Tag returns the element name.
func (e ElementNode) Tag() string { return e.tag }

func (e ElementNode) Kind() Kind                        { return KindPrimitive }
func (e ElementNode) Attributes() attrs.Set             { return e.set }
func (e ElementNode) WithAttributes(set attrs.Set) Node { e.set = set; return e }
func (e ElementNode) Contents() []Node                  { return slices.Clone(e.children) }

func (e ElementNode) Markup(ctx *Context) (string, error) {
	if IsVoid(e.tag) {
		return Element(e.tag, e.set, ""), nil
	}
	return Element(e.tag, e.set, ctx.Render(e.children...)), nil
}

// InlineElementNode is an element that only holds inline content.
type InlineElementNode struct {
	ElementNode
	InlineContent
}

// InlineEl creates an inline element.
func InlineEl(tag string, children ...Inline) Inline {
	return InlineElementNode{ElementNode: newElement(tag, toNodes(children))}
}

func (e InlineElementNode) WithAttributes(set attrs.Set) Node {
	e.set = set
	return e
}

// Div creates a <div>.
func Div(children ...Node) Node { return El("div", children...) }

// Section creates a <section>.
func Section(children ...Node) Node { return El("section", children...) }

// P creates a paragraph. Paragraphs only hold inline content.
func P(children ...Inline) Node { return El("p", toNodes(children)...) }

// H creates a heading of the given level (1-6).
func H(level int, children ...Inline) Node {
	if level < 1 || level > 6 {
		return Broken(errors.New("K103").WithDetailf("level %d", level))
	}
	return El("h"+strconv.Itoa(level), toNodes(children)...)
}

// Span creates a <span>.
func Span(children ...Inline) Inline { return InlineEl("span", children...) }

// Strong creates a <strong>.
func Strong(children ...Inline) Inline { return InlineEl("strong", children...) }

// Em creates an <em>.
func Em(children ...Inline) Inline { return InlineEl("em", children...) }

// Code creates an inline <code>.
func Code(children ...Inline) Inline { return InlineEl("code", children...) }

// A creates a link.
func A(href string, children ...Inline) Inline {
	n := InlineEl("a", children...)
	return n.WithAttributes(attrs.New(attrs.Pair("href", href))).(Inline)
}

// Br creates a line break.
func Br() Inline { return InlineEl("br") }

// Hr creates a thematic break.
func Hr() Node { return El("hr") }

// ImageNode is an <img> whose source is resolved through the context.
type ImageNode struct {
	InlineContent
	src string
	alt string
	set attrs.Set
}

// Img creates an image. An image without a source cannot render.
func Img(src, alt string) Inline { return ImageNode{src: src, alt: alt} }

func (i ImageNode) Kind() Kind                        { return KindPrimitive }
func (i ImageNode) Attributes() attrs.Set             { return i.set }
func (i ImageNode) WithAttributes(set attrs.Set) Node { i.set = set; return i }

func (i ImageNode) Markup(ctx *Context) (string, error) {
	if i.src == "" {
		return "", errors.New("K101").WithDetail("img has no src")
	}
	url, ok := ctx.Assets().Asset(i.src)
	if !ok {
		return "", errors.New("K110").WithDetailf("%q", i.src)
	}
	set := attrs.New(attrs.Pair("src", url), attrs.Pair("alt", i.alt)).Merge(i.set)
	return Element("img", set, ""), nil
}

// IncludeNode inserts a named snippet from the context's Includer.
type IncludeNode struct {
	name string
	set  attrs.Set
}

// Include creates a node that inserts the named snippet verbatim. With
// attributes the snippet is wrapped in a <div>.
func Include(name string) Node { return IncludeNode{name: name} }

func (n IncludeNode) Kind() Kind                        { return KindPrimitive }
func (n IncludeNode) Attributes() attrs.Set             { return n.set }
func (n IncludeNode) WithAttributes(set attrs.Set) Node { n.set = set; return n }

func (n IncludeNode) Markup(ctx *Context) (string, error) {
	content, ok := ctx.Include(n.name)
	if !ok {
		return "", errors.New("K111").WithDetailf("%q", n.name)
	}
	if n.set.IsEmpty() {
		return content, nil
	}
	return Element("div", n.set, content), nil
}

// CodeBlockNode is a highlighted code listing.
type CodeBlockNode struct {
	lang   string
	source string
	set    attrs.Set
}

// CodeBlock creates <pre><code class="language-lang">. The language is
// recorded in the build context so the page can load a highlighter for it.
func CodeBlock(lang, source string) Node { return CodeBlockNode{lang: lang, source: source} }

func (n CodeBlockNode) Kind() Kind                        { return KindPrimitive }
func (n CodeBlockNode) Attributes() attrs.Set             { return n.set }
func (n CodeBlockNode) WithAttributes(set attrs.Set) Node { n.set = set; return n }

func (n CodeBlockNode) Markup(ctx *Context) (string, error) {
	var code attrs.Set
	if n.lang != "" {
		ctx.Build().UseLanguage(n.lang)
		code = code.AddClasses("language-" + n.lang)
	}
	return Element("pre", n.set, Element("code", code, attrs.EscapeText(n.source))), nil
}

type headKind uint8

const (
	headStylesheet headKind = iota
	headScript
)

// headNode records a document head resource and renders nothing.
type headNode struct {
	InlineContent
	kind headKind
	src  string
}

// Stylesheet records a stylesheet for the document head.
func Stylesheet(href string) Inline { return headNode{kind: headStylesheet, src: href} }

// Script records a script for the end of the document body.
func Script(src string) Inline { return headNode{kind: headScript, src: src} }

func (h headNode) Kind() Kind                    { return KindPrimitive }
func (h headNode) Attributes() attrs.Set         { return attrs.Set{} }
func (h headNode) WithAttributes(attrs.Set) Node { return h }

func (h headNode) Markup(ctx *Context) (string, error) {
	url, ok := ctx.Assets().Asset(h.src)
	if !ok {
		return "", errors.New("K110").WithDetailf("%q", h.src)
	}
	switch h.kind {
	case headStylesheet:
		ctx.Build().UseStylesheet(url)
	case headScript:
		ctx.Build().UseScript(url)
	}
	return "", nil
}

// MarkupFunc produces a collaborator primitive's markup from its final
// attribute set.
type MarkupFunc func(ctx *Context, set attrs.Set) (string, error)

// LeafNode adapts a MarkupFunc into a primitive.
type LeafNode struct {
	fn  MarkupFunc
	set attrs.Set
}

// Leaf creates a block primitive from fn.
func Leaf(fn MarkupFunc) Node { return LeafNode{fn: fn} }

func (l LeafNode) Kind() Kind                        { return KindPrimitive }
func (l LeafNode) Attributes() attrs.Set             { return l.set }
func (l LeafNode) WithAttributes(set attrs.Set) Node { l.set = set; return l }

func (l LeafNode) Markup(ctx *Context) (string, error) {
	if l.fn == nil {
		return "", errors.New("K101").WithDetail("leaf has no markup function")
	}
	return l.fn(ctx, l.set)
}

// InlineLeafNode is a LeafNode safe in inline position.
type InlineLeafNode struct {
	LeafNode
	InlineContent
}

// InlineLeaf creates an inline primitive from fn.
func InlineLeaf(fn MarkupFunc) Inline { return InlineLeafNode{LeafNode: LeafNode{fn: fn}} }

func (l InlineLeafNode) WithAttributes(set attrs.Set) Node {
	l.set = set
	return l
}

// BrokenNode is content that failed at construction. It renders as "" and
// reports its error.
type BrokenNode struct {
	InlineContent
	err error
}

// Broken creates a node that reports err when rendered.
func Broken(err error) Inline { return BrokenNode{err: err} }

func (b BrokenNode) Kind() Kind                      { return KindPrimitive }
func (b BrokenNode) Attributes() attrs.Set           { return attrs.Set{} }
func (b BrokenNode) WithAttributes(attrs.Set) Node   { return b }
func (b BrokenNode) Markup(*Context) (string, error) { return "", b.err }
