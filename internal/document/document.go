package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/render"
	"github.com/vango-dev/kiln/pkg/view"
)

// Document is a parsed page.
type Document struct {
	// Path is the file the document was read from.
	Path string

	Title  string
	Locale string

	// Meta holds name/content pairs for the document head, in source order.
	Meta []Prop

	// StyleSheets are linked from the page head.
	StyleSheets []string

	// Root is the page body. Several top-level elements are wrapped in a
	// group.
	Root *Element
}

// Element is one node of the page tree.
type Element struct {
	// Type selects the view node (e.g. "p", "list").
	Type string

	// Label is an optional name used in diagnostics.
	Label string

	// Props holds the element properties in source order.
	Props []Prop

	Children []*Element

	// Line is the 1-based source line, 0 when unknown.
	Line int
}

// Prop is a property with its value rendered as a string.
type Prop struct {
	Name  string
	Value string
}

// Prop returns the value of the named property.
func (e *Element) Prop(name string) (string, bool) {
	for _, p := range e.Props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Vars are values HCL expressions can read as site.<name>.
type Vars map[string]string

// LoadFile reads a page document. The format follows the file extension:
// .hcl, .yaml or .yml.
func LoadFile(path string, vars Vars) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("K140").WithDetail(path).Wrap(err)
	}
	return Parse(data, path, vars)
}

// Parse parses a page document. filename selects the format and is used
// in diagnostics.
func Parse(data []byte, filename string, vars Vars) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		doc, err = parseHCL(data, filename, vars)
	case ".yaml", ".yml":
		doc, err = parseYAML(data, filename)
	default:
		return nil, errors.New("K144").WithDetail(filename)
	}
	if err != nil {
		return nil, err
	}
	doc.Path = filename
	return doc, nil
}

// IsDocument reports whether path has a page document extension.
func IsDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".yaml", ".yml":
		return true
	}
	return false
}

// rootOf wraps several top-level elements in a group.
func rootOf(elements []*Element) *Element {
	if len(elements) == 1 {
		return elements[0]
	}
	return &Element{Type: "group", Children: elements}
}

// Page returns render options for the document with body as its content.
func (d *Document) Page(body view.Node) render.Page {
	page := render.Page{
		Title:       d.Title,
		Lang:        d.Locale,
		Body:        body,
		StyleSheets: d.StyleSheets,
	}
	for _, m := range d.Meta {
		page.Meta = append(page.Meta, render.MetaTag{Name: m.Name, Content: m.Value})
	}
	return page
}
