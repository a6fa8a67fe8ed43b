package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Includer returns the text of named inline snippets (HTML partials, SVG
// icons) so that nodes can embed them without touching the filesystem.
type Includer interface {
	Include(name string) (string, bool)
}

// Snippets is an in-memory Includer. It is safe for concurrent use.
type Snippets struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewSnippets creates an empty snippet set.
func NewSnippets() *Snippets {
	return &Snippets{items: make(map[string]string)}
}

// LoadSnippets reads every regular file under dir. Names are slash-separated
// paths relative to dir ("icons/star.svg").
func LoadSnippets(dir string) (*Snippets, error) {
	s := NewSnippets()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		s.Set(filepath.ToSlash(rel), string(data))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Set adds or replaces a snippet.
func (s *Snippets) Set(name, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[name] = content
}

// Include implements Includer.
func (s *Snippets) Include(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.items[name]
	return content, ok
}

// Len returns the number of snippets.
func (s *Snippets) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
