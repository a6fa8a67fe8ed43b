// Package assets resolves asset references made while rendering.
//
// A site build may fingerprint its static files and write a manifest mapping
// source names to the fingerprinted names:
//
//	{
//	  "site.css": "site.3f9a1c.css",
//	  "fonts/inter.woff2": "fonts/inter.8812de.woff2"
//	}
//
// Nodes never read files themselves. They ask the rendering context's
// Resolver for the public URL of an asset and its Includer for the text of an
// inline snippet, and report a missing-resource warning when either comes
// back empty.
package assets

import (
	"encoding/json"
	"maps"
	"os"
	"sync"
)

// Manifest maps source asset paths to fingerprinted paths. It is safe for
// concurrent use.
type Manifest struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// Load reads a JSON manifest file ({"source": "fingerprinted"}).
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &Manifest{entries: entries}, nil
}

// Lookup returns the fingerprinted path for source.
func (m *Manifest) Lookup(source string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved, ok := m.entries[source]
	return resolved, ok
}

// Resolve returns the fingerprinted path, or source unchanged when it has no
// entry.
func (m *Manifest) Resolve(source string) string {
	if resolved, ok := m.Lookup(source); ok {
		return resolved
	}
	return source
}

// Has reports whether the manifest has an entry for source.
func (m *Manifest) Has(source string) bool {
	_, ok := m.Lookup(source)
	return ok
}

// Set adds or replaces an entry.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[source] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// All returns a copy of the entries.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return maps.Clone(m.entries)
}
