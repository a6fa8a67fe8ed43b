package modifier

import (
	"strconv"

	"github.com/vango-dev/kiln/pkg/attrs"
	"github.com/vango-dev/kiln/pkg/view"
)

// Style adds inline style declarations.
func Style(decls ...attrs.Style) view.Modifier {
	return func(p view.Proxy) view.Node { return p.Style(decls...) }
}

// Class adds classes. Each argument may hold several space-separated names.
func Class(classes ...string) view.Modifier {
	return func(p view.Proxy) view.Node { return p.Class(classes...) }
}

// ID sets the element identifier. The id also becomes the node's identity.
func ID(id string) view.Modifier {
	return func(p view.Proxy) view.Node { return p.ID(id) }
}

// Attr sets a valued attribute.
func Attr(name, value string) view.Modifier {
	return func(p view.Proxy) view.Node { return p.Attr(attrs.Pair(name, value)) }
}

// BoolAttr sets a boolean attribute.
func BoolAttr(name string) view.Modifier {
	return func(p view.Proxy) view.Node { return p.Attr(attrs.Flag(name)) }
}

// Data sets a data-* attribute.
func Data(name, value string) view.Modifier {
	return func(p view.Proxy) view.Node { return p.Data(attrs.Pair(name, value)) }
}

// Aria sets an aria-* attribute.
func Aria(name, value string) view.Modifier {
	return func(p view.Proxy) view.Node { return p.Aria(attrs.Pair(name, value)) }
}

// On binds actions to an event. Actions are opaque strings.
func On(eventType string, actions ...string) view.Modifier {
	return func(p view.Proxy) view.Node { return p.On(eventType, actions...) }
}

// Tooltip sets the title attribute.
func Tooltip(text string) view.Modifier { return Attr("title", text) }

// Hidden hides the element.
func Hidden() view.Modifier { return BoolAttr("hidden") }

// ForegroundStyle sets the text color.
func ForegroundStyle(color string) view.Modifier { return Style(attrs.Decl("color", color)) }

// Background sets the background color.
func Background(color string) view.Modifier {
	return Style(attrs.Decl("background-color", color))
}

// FontWeight sets the font weight.
func FontWeight(weight string) view.Modifier { return Style(attrs.Decl("font-weight", weight)) }

// Bold is FontWeight("bold").
func Bold() view.Modifier { return FontWeight("bold") }

// Italic sets an italic font style.
func Italic() view.Modifier { return Style(attrs.Decl("font-style", "italic")) }

// Opacity sets the opacity, clamped to [0, 1].
func Opacity(v float64) view.Modifier {
	v = min(max(v, 0), 1)
	return Style(attrs.Decl("opacity", strconv.FormatFloat(v, 'f', -1, 64)))
}

// Frame sets the width and height. Empty values are left unset.
func Frame(width, height string) view.Modifier {
	return Style(attrs.Decl("width", width), attrs.Decl("height", height))
}

// CornerRadius rounds every corner.
func CornerRadius(radius string) view.Modifier {
	return Style(view.AllCorners(radius).Styles()...)
}

// Font sets the font family and records the font for the document head.
// href may be empty for system fonts.
func Font(family, href string) view.Modifier {
	return func(p view.Proxy) view.Node {
		return p.Style(attrs.Decl("font-family", family)).
			Register(func(b *view.BuildContext, _ view.Identity) {
				b.UseFont(view.Font{Family: family, Href: href})
			})
	}
}
