package el

import (
	"github.com/vango-dev/kiln/pkg/attrs"
	"github.com/vango-dev/kiln/pkg/modifier"
	"github.com/vango-dev/kiln/pkg/view"
)

type (
	Node       = view.Node
	Inline     = view.Inline
	Modifier   = view.Modifier
	Proxy      = view.Proxy
	Context    = view.Context
	MarkupFunc = view.MarkupFunc
	Attribute  = attrs.Attribute
	Edge       = modifier.Edge
)

const (
	Top        = modifier.Top
	Right      = modifier.Right
	Bottom     = modifier.Bottom
	Left       = modifier.Left
	Horizontal = modifier.Horizontal
	Vertical   = modifier.Vertical
	All        = modifier.All
)
