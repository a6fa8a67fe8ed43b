// This file re-exports view and layout constructors for the el package.
package el

import (
	"github.com/vango-dev/kiln/pkg/layout"
	"github.com/vango-dev/kiln/pkg/view"
)

var (
	Text        = view.Text
	Textf       = view.Textf
	Printf      = view.Printf
	Raw         = view.Raw
	Group       = view.Group
	InlineGroup = view.InlineGroup
	Empty       = view.Empty
	El          = view.El
	InlineEl    = view.InlineEl
	Div         = view.Div
	Section     = view.Section
	P           = view.P
	H           = view.H
	Span        = view.Span
	Strong      = view.Strong
	Em          = view.Em
	Code        = view.Code
	A           = view.A
	Img         = view.Img
	Br          = view.Br
	Hr          = view.Hr
	CodeBlock   = view.CodeBlock
	Include     = view.Include
	Stylesheet  = view.Stylesheet
	Script      = view.Script
	Leaf        = view.Leaf
	InlineLeaf  = view.InlineLeaf

	Modify       = view.Modify
	ModifyInline = view.ModifyInline

	List        = layout.List
	OrderedList = layout.OrderedList
	VStack      = layout.VStack
	HStack      = layout.HStack
	Grid        = layout.Grid
	Modal       = layout.Modal
)

func Header(children ...Node) Node  { return El("header", children...) }
func Footer(children ...Node) Node  { return El("footer", children...) }
func Main(children ...Node) Node    { return El("main", children...) }
func Nav(children ...Node) Node     { return El("nav", children...) }
func Article(children ...Node) Node { return El("article", children...) }
func Aside(children ...Node) Node   { return El("aside", children...) }

// Blockquote creates a <blockquote>.
func Blockquote(children ...Inline) Node {
	nodes := make([]Node, len(children))
	for i, c := range children {
		nodes[i] = c
	}
	return El("blockquote", nodes...)
}

func Small(children ...Inline) Inline { return InlineEl("small", children...) }
func Mark(children ...Inline) Inline  { return InlineEl("mark", children...) }
