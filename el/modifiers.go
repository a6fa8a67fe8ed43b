// This file re-exports the standard modifiers for the el package.
package el

import "github.com/vango-dev/kiln/pkg/modifier"

var (
	Style           = modifier.Style
	Class           = modifier.Class
	ID              = modifier.ID
	Attr            = modifier.Attr
	BoolAttr        = modifier.BoolAttr
	Data            = modifier.Data
	Aria            = modifier.Aria
	On              = modifier.On
	Tooltip         = modifier.Tooltip
	Hidden          = modifier.Hidden
	ForegroundStyle = modifier.ForegroundStyle
	Background      = modifier.Background
	FontWeight      = modifier.FontWeight
	Bold            = modifier.Bold
	Italic          = modifier.Italic
	Opacity         = modifier.Opacity
	Frame           = modifier.Frame
	CornerRadius    = modifier.CornerRadius
	Font            = modifier.Font
	Padding         = modifier.Padding

	ListRowBackground       = modifier.ListRowBackground
	ListRowPadding          = modifier.ListRowPadding
	ListRowCornerRadius     = modifier.ListRowCornerRadius
	ListRowSpacing          = modifier.ListRowSpacing
	PresentationDismissible = modifier.PresentationDismissible
	PresentationBackground  = modifier.PresentationBackground
)
