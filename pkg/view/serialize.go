package view

import (
	"strings"

	"github.com/vango-dev/kiln/pkg/attrs"
)

// voidElements never have content or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether tag is a void element.
func IsVoid(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// Element serializes one element. inner is inserted verbatim and is ignored
// for void tags, which are never closed.
func Element(tag string, set attrs.Set, inner string) string {
	var b strings.Builder
	b.Grow(len(tag)*2 + len(inner) + 5)
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(set.Render())
	b.WriteByte('>')
	if IsVoid(tag) {
		return b.String()
	}
	b.WriteString(inner)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}
