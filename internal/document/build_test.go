package document

import (
	"testing"

	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/view"
	"github.com/vango-dev/kiln/pkg/viewtest"
)

func build(t *testing.T, src string) (view.Node, error) {
	t.Helper()
	doc, err := Parse([]byte(src), "page.yaml", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Build(doc)
}

func TestBuildElements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bare string", "body: [hello]", "hello"},
		{"raw", "body: [raw: <b>x</b>]", "<b>x</b>"},
		{"text escapes", "body: [text: <b>x</b>]", "&lt;b&gt;x&lt;/b&gt;"},
		{"heading", "body: [h3: Title]", "<h3>Title</h3>"},
		{"section tag", "body:\n  - section: {tag: main, children: [p: hi]}", "<main><p>hi</p></main>"},
		{"img", "body: [img: {src: 'https://x.test/a.png', alt: A}]", `<img src="https://x.test/a.png" alt="A">`},
		{"hr", "body: [hr: ~]", "<hr>"},
		{"ordered list", "body:\n  - list: {ordered: true, children: [a, b]}", "<ol><li>a</li><li>b</li></ol>"},
		{"hstack", "body:\n  - stack: {axis: horizontal, align: center, children: [a]}",
			`<div style="display: flex; flex-direction: row; align-items: center">a</div>`},
		{"inline group", "body: [group: [a, b]]", "ab"},
		{"bold italic", "body: [span: {content: x, bold: true, italic: true}]",
			`<span style="font-weight: bold; font-style: italic">x</span>`},
		{"false flag", "body: [span: {content: x, bold: false}]", "<span>x</span>"},
		{"padding edges", "body: [div: {padding: horizontal 4px, children: [x]}]",
			`<div style="padding-right: 4px; padding-left: 4px">x</div>`},
		{"data aria events", "body: [div: {data_test_id: t, aria_label: L, on_click: 'open close', children: [x]}]",
			`<div data-test-id="t" aria-label="L" onclick="open; close">x</div>`},
		{"class id", "body: [p: {content: x, class: lead, id: intro}]", `<p id="intro" class="lead">x</p>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := build(t, tt.src)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			html, ctx := viewtest.RenderContext(t, viewtest.NewCtx().Build(), n)
			viewtest.ExpectNoFailures(t, ctx)
			if html != tt.want {
				t.Errorf("got  %s\nwant %s", html, tt.want)
			}
		})
	}
}

func TestBuildModal(t *testing.T) {
	n, err := build(t, `
body:
  - modal:
      title: Confirm
      children:
        - p: {content: "Sure?", dismissible: false, presentation_background: white}
`)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	html := viewtest.Render(t, n)
	viewtest.ExpectAttribute(t, html, "aria-label", "Confirm")
	viewtest.ExpectAttribute(t, html, "data-backdrop", "static")
	viewtest.ExpectContains(t, html, "background-color: white")
}

func TestBuildFont(t *testing.T) {
	n, err := build(t, "body: [p: {content: x, font: Inter, font_href: /fonts/inter.css}]")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, ctx := viewtest.RenderContext(t, viewtest.NewCtx().Build(), n)
	fonts := ctx.Build().Assets().Fonts
	if len(fonts) != 1 || fonts[0].Href != "/fonts/inter.css" {
		t.Errorf("fonts = %+v", fonts)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{"unknown type", "body: [blink: x]", "K141"},
		{"unknown property", "body: [p: {content: x, colour: red}]", "K142"},
		{"block in inline parent", "body:\n  - p:\n      - div: [x]", "K142"},
		{"leaf with children", "body:\n  - text:\n      - p: x", "K142"},
		{"bad boolean", "body: [span: {content: x, bold: yes please}]", "K142"},
		{"bad opacity", "body: [span: {content: x, opacity: half}]", "K142"},
		{"grid without columns", "body: [grid: [a]]", "K142"},
		{"grid bad columns", "body: [grid: {columns: two, children: [a]}]", "K142"},
		{"bad axis", "body: [stack: {axis: diagonal}]", "K142"},
		{"bad padding edge", "body: [div: {padding: inside 2px}]", "K142"},
		{"font href alone", "body: [p: {content: x, font_href: /f.css}]", "K142"},
		{"include without name", "body: [include: ~]", "K142"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(t, tt.src)
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}
