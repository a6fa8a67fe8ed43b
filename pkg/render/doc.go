// Package render runs top-level renders of view trees.
//
// A Renderer creates a fresh view.Context for every call, runs the
// registration walk over the whole tree and only then the markup walk, so
// side-table records written by modifiers are always in place before a
// container reads them. Renders are independent: concurrent calls never
// share a side table.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	result, err := renderer.Render(ctx, root)
//	fmt.Println(result.HTML)
//
// Nodes that fail are dropped from the output and reported in
// Result.Failures; the render itself still succeeds.
//
// # Full Page Rendering
//
// RenderPage wraps the body in a document and puts the resources
// discovered during the render (fonts, stylesheets, scripts) into the head:
//
//	page := render.Page{
//	    Title: "Home",
//	    Body:  root,
//	}
//	result, err := renderer.RenderPage(ctx, w, page)
//
// # Streaming
//
// StreamingRenderer flushes after the head and after the body:
//
//	sr := render.NewStreamingRenderer(w, config)
//	result, err := sr.RenderPage(ctx, page)
//
// # Observability
//
// Every render gets a ULID render ID that is attached to its log records
// and its OpenTelemetry span. Pass Metrics in the config to record
// Prometheus metrics.
package render
