package layout

import (
	"github.com/vango-dev/kiln/pkg/attrs"
	"github.com/vango-dev/kiln/pkg/view"
)

// ModalNode presents its content in a dialog. Presentation records
// registered on any flattened child configure the dialog; when several
// children carry one, later children win field by field.
type ModalNode struct {
	container
	title string
}

// Modal creates a modal dialog around children.
func Modal(children ...view.Node) ModalNode {
	return ModalNode{container: newContainer(children)}
}

// Title sets the accessible label of the dialog.
func (m ModalNode) Title(title string) ModalNode {
	m.title = title
	return m
}

func (m ModalNode) WithAttributes(set attrs.Set) view.Node {
	m.container = m.with(set)
	return m
}

func (m ModalNode) Markup(ctx *view.Context) (string, error) {
	children := ctx.Subviews(m.content)

	var pres view.Presentation
	for _, sv := range children {
		if rec, ok := ctx.Build().Presentation(sv.ID); ok {
			pres = mergePresentation(pres, rec)
		}
	}

	outer := attrs.Set{}.AddClasses("kiln-modal").AddCustom(
		attrs.Pair("role", "dialog"),
	).AddAria(attrs.Pair("modal", "true"))
	if m.title != "" {
		outer = outer.AddAria(attrs.Pair("label", m.title))
	}
	if pres.Dismiss == view.DismissDisabled {
		outer = outer.AddData(attrs.Pair("backdrop", "static"), attrs.Pair("keyboard", "false"))
	}

	dialog := attrs.Set{}.AddClasses("kiln-modal-dialog")
	if pres.Background != "" {
		dialog = dialog.AddStyles(attrs.Decl("background-color", pres.Background))
	}

	inner := ctx.Render(children)
	return view.Element("div", outer.Merge(m.set), view.Element("div", dialog, inner)), nil
}

func mergePresentation(old, next view.Presentation) view.Presentation {
	if next.Dismiss != view.DismissDefault {
		old.Dismiss = next.Dismiss
	}
	if next.Background != "" {
		old.Background = next.Background
	}
	return old
}
