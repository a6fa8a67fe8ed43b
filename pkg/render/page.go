package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/vango-dev/kiln/pkg/attrs"
	"github.com/vango-dev/kiln/pkg/view"
)

// Page contains all data needed to render a complete HTML document.
type Page struct {
	// Body is the root node of the page content.
	Body view.Node

	// Title is the page title.
	Title string

	// Lang overrides the renderer locale for the html element.
	Lang string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (favicon, canonical, etc.).
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets. Stylesheets
	// discovered during the render follow them.
	StyleSheets []string

	// Styles contains inline CSS.
	Styles []string

	// Scripts contains script tags. Deferred and async scripts go in the
	// head, the others at the end of the body. Scripts discovered during
	// the render are added to the head, deferred.
	Scripts []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// RenderPage renders page.Body and writes a complete HTML document to w.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page Page) (Result, error) {
	res, err := r.Render(ctx, page.Body)
	if err != nil {
		return res, err
	}
	return res, r.writePage(w, page, res, nil)
}

// writePage writes the document around res. flush, when set, is called
// after the head and after the body.
func (r *Renderer) writePage(w io.Writer, page Page, res Result, flush func()) error {
	if _, err := w.Write([]byte("<!DOCTYPE html>\n")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", attrs.EscapeAttr(r.lang(page))); err != nil {
		return err
	}

	if err := r.renderHead(w, page, res.Assets); err != nil {
		return err
	}
	if flush != nil {
		flush()
	}

	if _, err := w.Write([]byte("<body>\n")); err != nil {
		return err
	}
	if _, err := io.WriteString(w, res.HTML); err != nil {
		return err
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	for _, script := range page.Scripts {
		if !script.Defer && !script.Async {
			if err := r.renderScriptTag(w, script); err != nil {
				return err
			}
		}
	}
	if _, err := w.Write([]byte("</body>\n</html>\n")); err != nil {
		return err
	}
	if flush != nil {
		flush()
	}
	return nil
}

func (r *Renderer) lang(page Page) string {
	if page.Lang != "" {
		return page.Lang
	}
	if r.config.Locale == language.Und {
		return language.English.String()
	}
	return r.config.Locale.String()
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page Page, found view.Assets) error {
	if _, err := w.Write([]byte("<head>\n")); err != nil {
		return err
	}

	if _, err := w.Write([]byte(`  <meta charset="utf-8">` + "\n")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", attrs.EscapeText(page.Title)); err != nil {
			return err
		}
	}

	for _, meta := range page.Meta {
		if err := r.renderMetaTag(w, meta); err != nil {
			return err
		}
	}
	if len(found.Languages) > 0 {
		meta := MetaTag{Name: "code-languages", Content: strings.Join(found.Languages, " ")}
		if err := r.renderMetaTag(w, meta); err != nil {
			return err
		}
	}

	for _, link := range page.Links {
		if err := r.renderLinkTag(w, link); err != nil {
			return err
		}
	}

	for _, href := range stylesheets(page, found) {
		if err := r.renderLinkTag(w, LinkTag{Rel: "stylesheet", Href: href}); err != nil {
			return err
		}
	}

	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	for _, script := range page.Scripts {
		if script.Defer || script.Async {
			if err := r.renderScriptTag(w, script); err != nil {
				return err
			}
		}
	}
	for _, src := range found.Scripts {
		if err := r.renderScriptTag(w, ScriptTag{Src: src, Defer: true}); err != nil {
			return err
		}
	}

	if _, err := w.Write([]byte("</head>\n")); err != nil {
		return err
	}
	return nil
}

// stylesheets lists the page stylesheets, then the font stylesheets and
// stylesheets discovered during the render, without duplicates.
func stylesheets(page Page, found view.Assets) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(href string) {
		if href != "" && !seen[href] {
			seen[href] = true
			out = append(out, href)
		}
	}
	for _, href := range page.StyleSheets {
		add(href)
	}
	for _, f := range found.Fonts {
		add(f.Href)
	}
	for _, href := range found.Stylesheets {
		add(href)
	}
	return out
}

// renderMetaTag renders a meta element.
func (r *Renderer) renderMetaTag(w io.Writer, meta MetaTag) error {
	if _, err := w.Write([]byte("  <meta")); err != nil {
		return err
	}
	for _, a := range []struct{ name, value string }{
		{"charset", meta.Charset},
		{"name", meta.Name},
		{"property", meta.Property},
		{"http-equiv", meta.HTTPEquiv},
		{"content", meta.Content},
	} {
		if err := writeAttr(w, a.name, a.value); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte(">\n")); err != nil {
		return err
	}
	return nil
}

// renderLinkTag renders a link element.
func (r *Renderer) renderLinkTag(w io.Writer, link LinkTag) error {
	if _, err := w.Write([]byte("  <link")); err != nil {
		return err
	}
	for _, a := range []struct{ name, value string }{
		{"rel", link.Rel},
		{"href", link.Href},
		{"type", link.Type},
		{"sizes", link.Sizes},
		{"crossorigin", link.CrossOrigin},
		{"media", link.Media},
	} {
		if err := writeAttr(w, a.name, a.value); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte(">\n")); err != nil {
		return err
	}
	return nil
}

// renderScriptTag renders a script element.
func (r *Renderer) renderScriptTag(w io.Writer, script ScriptTag) error {
	if _, err := w.Write([]byte("  <script")); err != nil {
		return err
	}
	if err := writeAttr(w, "src", script.Src); err != nil {
		return err
	}

	if script.Module {
		if _, err := w.Write([]byte(` type="module"`)); err != nil {
			return err
		}
	} else if err := writeAttr(w, "type", script.Type); err != nil {
		return err
	}

	if script.Defer {
		if _, err := w.Write([]byte(" defer")); err != nil {
			return err
		}
	}
	if script.Async {
		if _, err := w.Write([]byte(" async")); err != nil {
			return err
		}
	}

	if _, err := w.Write([]byte(">")); err != nil {
		return err
	}
	if script.Inline != "" {
		if _, err := w.Write([]byte(script.Inline)); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte("</script>\n")); err != nil {
		return err
	}
	return nil
}

// writeAttr writes name="value", skipping empty values.
func writeAttr(w io.Writer, name, value string) error {
	if value == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, ` %s="%s"`, name, attrs.EscapeAttr(value))
	return err
}
