package modifier

import "github.com/vango-dev/kiln/pkg/view"

func registerRow(row view.ListRow) view.Modifier {
	return func(p view.Proxy) view.Node {
		return p.Register(func(b *view.BuildContext, id view.Identity) {
			b.RegisterListRow(id, row)
		})
	}
}

func registerPresentation(pr view.Presentation) view.Modifier {
	return func(p view.Proxy) view.Node {
		return p.Register(func(b *view.BuildContext, id view.Identity) {
			b.RegisterPresentation(id, pr)
		})
	}
}

// ListRowBackground sets the background of the list row holding the node.
func ListRowBackground(color string) view.Modifier {
	return registerRow(view.ListRow{Background: color})
}

// ListRowPadding pads the selected edges of the list row holding the node.
func ListRowPadding(edges Edge, amount string) view.Modifier {
	return registerRow(view.ListRow{Padding: edges.Edges(amount)})
}

// ListRowCornerRadius rounds the list row holding the node.
func ListRowCornerRadius(radius string) view.Modifier {
	return registerRow(view.ListRow{CornerRadius: view.AllCorners(radius)})
}

// ListRowSpacing sets the space below the list row holding the node.
func ListRowSpacing(amount string) view.Modifier {
	return registerRow(view.ListRow{Spacing: amount})
}

// PresentationDismissible controls whether the modal presenting the node
// can be dismissed by clicking the backdrop or pressing escape.
func PresentationDismissible(allowed bool) view.Modifier {
	policy := view.DismissDisabled
	if allowed {
		policy = view.DismissAllowed
	}
	return registerPresentation(view.Presentation{Dismiss: policy})
}

// PresentationBackground sets the dialog background of the modal
// presenting the node.
func PresentationBackground(color string) view.Modifier {
	return registerPresentation(view.Presentation{Background: color})
}
