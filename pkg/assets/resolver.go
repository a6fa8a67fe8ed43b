package assets

import (
	"strings"
)

// Resolver maps source asset paths to public URLs.
type Resolver interface {
	// Asset returns the URL for source. ok is false when the asset is
	// unknown; url is then the best-effort unresolved path.
	Asset(source string) (url string, ok bool)
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver returns a Resolver backed by a manifest. Every URL is prefixed
// with prefix (e.g. "/assets/"). Sources that are absolute URLs are returned
// unchanged and always resolve.
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) (string, bool) {
	if isExternal(source) {
		return source, true
	}
	resolved, ok := r.manifest.Lookup(source)
	if !ok {
		return join(r.prefix, source), false
	}
	return join(r.prefix, resolved), true
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver returns a Resolver that resolves every non-empty
// source to prefix+source. It is used when no manifest is configured.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) (string, bool) {
	if source == "" {
		return "", false
	}
	if isExternal(source) {
		return source, true
	}
	return join(p.prefix, source), true
}

func isExternal(source string) bool {
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://") ||
		strings.HasPrefix(source, "//") ||
		strings.HasPrefix(source, "data:")
}

func join(prefix, path string) string {
	if prefix == "" {
		return path
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
}
