// Package modifier provides the standard modifiers.
//
// Attribute modifiers add to the attribute set of the node they are applied
// to. Applied to a composite, they reach every flattened child:
//
//	view.Modify(view.Group(a, b, c), modifier.ForegroundStyle("red"))
//
// Side-table modifiers record metadata under the node's identity instead,
// for an enclosing container to read while it renders:
//
//	layout.List(
//	    view.Text("one"),
//	    view.Modify(view.Text("two"), modifier.ListRowBackground("blue")),
//	)
package modifier
