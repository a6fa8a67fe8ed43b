package preview

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/document"
)

// ChangeType classifies a changed file.
type ChangeType int

const (
	ChangePage ChangeType = iota
	ChangeStyle
	ChangeConfig
	ChangeAsset
)

func (t ChangeType) String() string {
	switch t {
	case ChangePage:
		return "page"
	case ChangeStyle:
		return "style"
	case ChangeConfig:
		return "config"
	default:
		return "asset"
	}
}

// Change is a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files and directories to watch.
	Paths []string

	// Ignore holds base-name glob patterns to skip.
	Ignore []string

	// Interval is the polling interval.
	Interval time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	".kiln-*",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls files for modification.
type Watcher struct {
	config WatcherConfig

	mu         sync.Mutex
	timestamps map[string]time.Time
}

// NewWatcher creates a watcher and records the current state of its paths.
func NewWatcher(cfg WatcherConfig) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = 500 * time.Millisecond
	}
	if len(cfg.Ignore) == 0 {
		cfg.Ignore = DefaultIgnore
	}
	w := &Watcher{config: cfg, timestamps: make(map[string]time.Time)}
	w.timestamps = w.scan()
	return w
}

// WatchPaths returns the paths of cfg's project that affect rendered
// pages: the config file, the pages and includes directories and the
// asset manifest.
func WatchPaths(cfg *config.Config) []string {
	paths := []string{cfg.Path(), cfg.PagesPath()}
	if cfg.Site.Includes != "" {
		paths = append(paths, cfg.IncludesPath())
	}
	if m := cfg.ManifestPath(); m != "" {
		paths = append(paths, m)
	}

	unique := paths[:0]
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return unique
}

// Run polls until ctx is done, calling onChange with each batch of
// changes.
func (w *Watcher) Run(ctx context.Context, onChange func([]Change)) error {
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if changes := w.Poll(); len(changes) > 0 {
				onChange(changes)
			}
		}
	}
}

// Poll rescans the watched paths and returns files that were added,
// modified or removed since the previous scan.
func (w *Watcher) Poll() []Change {
	current := w.scan()

	w.mu.Lock()
	defer w.mu.Unlock()

	var changes []Change
	for p, mod := range current {
		if last, ok := w.timestamps[p]; !ok || !mod.Equal(last) {
			changes = append(changes, Change{Path: p, Type: classifyChange(p)})
		}
	}
	for p := range w.timestamps {
		if _, ok := current[p]; !ok {
			changes = append(changes, Change{Path: p, Type: classifyChange(p)})
		}
	}
	w.timestamps = current
	return changes
}

func (w *Watcher) scan() map[string]time.Time {
	out := make(map[string]time.Time)
	for _, root := range w.config.Paths {
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if w.shouldIgnore(p) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			out[p] = info.ModTime()
			return nil
		})
	}
	return out
}

func (w *Watcher) shouldIgnore(p string) bool {
	name := filepath.Base(p)
	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if name == pattern {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func classifyChange(p string) ChangeType {
	switch {
	case filepath.Base(p) == config.ConfigFileName:
		return ChangeConfig
	case document.IsDocument(p):
		return ChangePage
	case strings.EqualFold(filepath.Ext(p), ".css"):
		return ChangeStyle
	default:
		return ChangeAsset
	}
}
