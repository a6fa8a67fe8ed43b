package publish

import (
	"context"
	"mime"
	"path"
	"path/filepath"
	"strings"
)

// Sink stores rendered output under a slash-separated key.
type Sink interface {
	// Put stores body under key. An empty contentType is derived from the
	// key's extension.
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// ContentType returns the MIME type for key, defaulting to HTML.
func ContentType(key string) string {
	if t := mime.TypeByExtension(path.Ext(key)); t != "" {
		return t
	}
	return "text/html; charset=utf-8"
}

// KeyFor returns the output key for a page document given its path
// relative to the pages directory ("blog/first.hcl" becomes
// "blog/first.html").
func KeyFor(rel string) string {
	rel = filepath.ToSlash(rel)
	return strings.TrimPrefix(strings.TrimSuffix(rel, path.Ext(rel)), "/") + ".html"
}

// cleanKey normalizes key and reports false when it is empty or escapes
// the sink root.
func cleanKey(key string) (string, bool) {
	key = path.Clean("/" + strings.ReplaceAll(key, `\`, "/"))
	key = strings.TrimPrefix(key, "/")
	if key == "" || key == "." {
		return "", false
	}
	return key, true
}
