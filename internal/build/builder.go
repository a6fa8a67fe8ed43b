package build

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/document"
	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/internal/publish"
	"github.com/vango-dev/kiln/pkg/assets"
	"github.com/vango-dev/kiln/pkg/render"
	"github.com/vango-dev/kiln/pkg/view"
)

// Options configures the builder.
type Options struct {
	// Fragment renders page bodies without the document wrapper.
	Fragment bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics records render metrics when set.
	Metrics *render.Metrics

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// PageOption adjusts a page before it is written.
type PageOption func(*render.Page)

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Pages lists the rendered pages in build order.
	Pages []PageResult
}

// Partial returns the number of pages that dropped nodes.
func (r *Result) Partial() int {
	n := 0
	for _, p := range r.Pages {
		if p.Failures > 0 {
			n++
		}
	}
	return n
}

// PageResult describes one rendered page.
type PageResult struct {
	Source   string
	Key      string
	Bytes    int
	Failures int
	RenderID ulid.ULID
}

// Builder renders page documents with the project's settings.
type Builder struct {
	config   *config.Config
	options  Options
	renderer *render.Renderer
}

// New creates a builder. The asset manifest and include snippets named in
// the configuration are loaded here.
func New(cfg *config.Config, options Options) (*Builder, error) {
	if !options.Fragment && cfg.Build.Fragment {
		options.Fragment = true
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	resolver := assets.NewPassthroughResolver(cfg.Site.AssetPrefix)
	if path := cfg.ManifestPath(); path != "" {
		m, err := assets.Load(path)
		if err != nil {
			return nil, errors.New("K122").WithDetailf("site.manifest %q", cfg.Site.Manifest).Wrap(err)
		}
		resolver = assets.NewResolver(m, cfg.Site.AssetPrefix)
	}

	var includes assets.Includer
	if cfg.Site.Includes != "" {
		s, err := assets.LoadSnippets(cfg.IncludesPath())
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			options.Logger.Warn("includes directory not found",
				"dir", cfg.IncludesPath())
			includes = assets.NewSnippets()
		case err != nil:
			return nil, errors.New("K122").WithDetailf("site.includes %q", cfg.Site.Includes).Wrap(err)
		default:
			includes = s
		}
	}

	return &Builder{
		config:  cfg,
		options: options,
		renderer: render.NewRenderer(render.RendererConfig{
			Locale:   cfg.Locale(),
			Assets:   resolver,
			Includes: includes,
			Site:     cfg.SiteValues(),
			Logger:   options.Logger,
			Metrics:  options.Metrics,
		}),
	}, nil
}

// Renderer returns the configured renderer.
func (b *Builder) Renderer() *render.Renderer { return b.renderer }

// Vars returns the site values HCL pages can read.
func (b *Builder) Vars() document.Vars {
	return document.Vars{
		"name":    b.config.Site.Name,
		"title":   b.config.Site.Title,
		"baseURL": b.config.Site.BaseURL,
		"locale":  b.config.Site.Locale,
	}
}

// Pages returns the page documents under the pages directory, relative to
// it and sorted. A missing pages directory has no pages.
func (b *Builder) Pages() ([]string, error) {
	root := b.config.PagesPath()
	var pages []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && stderrors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || !document.IsDocument(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		pages = append(pages, rel)
		return nil
	})
	if err != nil {
		return nil, errors.New("K140").WithDetail(root).Wrap(err)
	}
	slices.Sort(pages)
	return pages, nil
}

// Load parses a page document and builds its body.
func (b *Builder) Load(path string) (*document.Document, view.Node, error) {
	doc, err := document.LoadFile(path, b.Vars())
	if err != nil {
		return nil, nil, err
	}
	body, err := document.Build(doc)
	if err != nil {
		return nil, nil, err
	}
	return doc, body, nil
}

// RenderFile renders the page document at path to w. Complete pages
// carry the site stylesheets and default title; fragments are the body
// markup alone.
func (b *Builder) RenderFile(ctx context.Context, w io.Writer, path string, opts ...PageOption) (render.Result, error) {
	doc, body, err := b.Load(path)
	if err != nil {
		return render.Result{}, err
	}
	if b.options.Fragment {
		return b.renderer.RenderToWriter(ctx, w, body)
	}

	page := doc.Page(body)
	if page.Title == "" {
		page.Title = b.config.Site.Title
	}
	page.StyleSheets = append(slices.Clone(b.config.Site.StyleSheets), page.StyleSheets...)
	for _, opt := range opts {
		opt(&page)
	}
	return b.renderer.Streaming(w).RenderPage(ctx, page)
}

// Build renders every page into sink.
func (b *Builder) Build(ctx context.Context, sink publish.Sink) (*Result, error) {
	start := time.Now()
	pages, err := b.Pages()
	if err != nil {
		return nil, err
	}

	result := &Result{}
	root := b.config.PagesPath()
	for _, rel := range pages {
		b.progress("Rendering " + rel)

		var buf bytes.Buffer
		res, err := b.RenderFile(ctx, &buf, filepath.Join(root, rel))
		if err != nil {
			return nil, err
		}
		key := publish.KeyFor(rel)
		if err := sink.Put(ctx, key, buf.Bytes(), ""); err != nil {
			return nil, err
		}

		if len(res.Failures) > 0 {
			b.options.Logger.Warn("page rendered with failures",
				"page", rel,
				"render_id", res.RenderID.String(),
				"failures", len(res.Failures))
		}
		result.Pages = append(result.Pages, PageResult{
			Source:   rel,
			Key:      key,
			Bytes:    buf.Len(),
			Failures: len(res.Failures),
			RenderID: res.RenderID,
		})
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// exists reports whether path is a regular file.
func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Find returns the page document for name ("about" or "blog/first"),
// trying each supported extension in turn. Names outside the pages
// directory are never found.
func (b *Builder) Find(name string) (string, bool) {
	root := b.config.PagesPath()
	base := filepath.Join(root, filepath.FromSlash(name))
	if rel, err := filepath.Rel(root, base); err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	for _, ext := range []string{".hcl", ".yaml", ".yml"} {
		if exists(base + ext) {
			return base + ext, true
		}
	}
	return "", false
}
