// Package layout provides the container nodes: lists, stacks, grids and
// modals.
//
// Containers flatten their content and render each child at its own
// position, so side-table records written by modifiers on a child can be
// read back under the child's identity. List folds list row records into
// the <li> it emits for the child; Modal folds presentation records into
// its dialog.
package layout
