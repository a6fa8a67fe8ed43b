// Package attrs provides the attribute set carried by every kiln node.
//
// A Set is an ordered, mergeable bag of an optional element identifier,
// classes, inline style declarations, custom attributes, data-* attributes,
// aria-* attributes and inline event bindings. Sets are values: every
// method returns a new Set and never aliases the receiver's storage, so a
// Set can be shared between nodes without copying.
//
// # Merging
//
// Merge combines two sets:
//
//   - id: the rightmost non-empty id wins
//   - classes: appended, duplicates collapsed, first occurrence keeps its position
//   - styles: last write per property wins, the property keeps its first position
//   - data: appended, identical name+value pairs collapsed
//   - custom and aria: appended, identical pairs collapsed, a new value for an
//     existing name replaces the old value in place
//   - events: actions for the same event type are appended (deduplicated)
//
// Merging a set into itself yields the same set.
//
// # Serialization
//
// Render emits attributes in a fixed order so output is diffable:
//
//	id, class, style, custom (insertion order), data-*, aria-*, on<event>
//
// Every value passes through EscapeAttr. There is no opt-out.
package attrs
