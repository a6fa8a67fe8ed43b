// Package view is kiln's composition and rendering core.
//
// Content is built from immutable Node values. A node is either primitive
// (it produces its own markup) or composite (it expands into an ordered list
// of children). Nodes that are safe inside running text also implement
// Inline, so inline-only containers such as P or Span reject block content
// at compile time.
//
// # Modifiers
//
// A Modifier transforms a node through a Proxy. Applying a modifier to a
// composite distributes it over every flattened child:
//
//	view.Modify(view.Group(a, b, c), modifier.ForegroundStyle("red"))
//
// yields three proxies, each carrying color: red.
//
// # Side tables
//
// Some modifiers describe their ancestor rather than their own element
// (a list row background styles the <li> a List emits around the child).
// Such modifiers record a Registration on the proxy. At render time the
// engine walks the tree once to replay every registration into the
// BuildContext keyed by the node's Identity, then renders. Containers look
// up each child's Identity and fold the record into the wrapper they emit.
//
// # Identity
//
// A node's identity is "#"+id when it carries an explicit id attribute, and
// otherwise its Path: the flattened child indices from the render root
// ("/0/2/1"). Proxies are transparent to position, so any chain of modifiers
// on one element yields one identity.
package view
