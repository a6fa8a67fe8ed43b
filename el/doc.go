// Package el is the page authoring DSL for kiln.
//
// It re-exports the element constructors from pkg/view, the containers from
// pkg/layout and the modifiers from pkg/modifier, so a page can be written
// against a single dot-imported package:
//
//	import . "github.com/vango-dev/kiln/el"
//
//	func Home() Node {
//	    return VStack(
//	        Modify(H(1, Text("Welcome")), Bold()),
//	        List(
//	            Text("one"),
//	            Modify(Text("two"), ListRowBackground("#eef")),
//	        ),
//	    ).Spacing("1rem")
//	}
package el
