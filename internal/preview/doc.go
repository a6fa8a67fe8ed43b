// Package preview serves a kiln project over HTTP while it is edited.
//
// Every request renders its page document from disk, so a page always
// reflects the latest saved source. The server consists of:
//
//   - Server: routes requests to page documents with chi
//   - Watcher: polls the pages, includes and manifest for changes
//   - ReloadHub: tells open browsers to reload over a WebSocket
//
// # Usage
//
//	srv, err := preview.New(preview.Options{Config: cfg, Logger: logger})
//	if err != nil {
//	    return err
//	}
//	return srv.Start(ctx)
//
// # Routes
//
//	GET /                 pages/index.{hcl,yaml,yml}
//	GET /{page}           pages/{page}.{hcl,yaml,yml}, nested paths allowed
//	GET /metrics          Prometheus metrics
//	GET /_kiln/reload     live reload WebSocket
//	GET /_kiln/reload.js  live reload client
//
// # Reload Protocol
//
// Messages are JSON-encoded:
//
//	{"type": "reload"}                    // full page reload
//	{"type": "css", "file": "site.css"}   // stylesheet-only reload
//	{"type": "error", "error": "..."}     // show the error overlay
package preview
