// Package viewtest provides helpers for testing kiln nodes.
//
// Render runs a node through both render phases (registration, then
// markup) with a fresh context, exactly like the engine does:
//
//	func TestCard(t *testing.T) {
//	    html := viewtest.Render(t, Card("Title"))
//	    viewtest.ExpectElement(t, html, "article")
//	    viewtest.ExpectAttribute(t, html, "class", "card")
//	}
//
// # Context Builder
//
//	opts := viewtest.NewCtx().
//	    WithLocale(language.German).
//	    WithAsset("logo.png", "logo.3fa.png").
//	    Build()
//	html, ctx := viewtest.RenderContext(t, opts, page)
//
// # Golden Files
//
// Golden compares output against testdata/<name>.golden. Run the tests with
// -update to rewrite the files:
//
//	go test ./pkg/layout -update
package viewtest
