package viewtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/vango-dev/kiln/pkg/assets"
	"github.com/vango-dev/kiln/pkg/view"
)

// CtxBuilder builds rendering context options for tests.
type CtxBuilder struct {
	opts     view.Options
	manifest *assets.Manifest
	snippets *assets.Snippets
	prefix   string
}

// NewCtx starts a builder with a discarding logger.
func NewCtx() *CtxBuilder {
	return &CtxBuilder{
		opts: view.Options{
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			Site:   map[string]any{},
		},
	}
}

// WithLocale sets the page language.
func (b *CtxBuilder) WithLocale(tag language.Tag) *CtxBuilder {
	b.opts.Locale = tag
	return b
}

// WithAsset adds a manifest entry. Once any asset is added, unknown assets
// fail to resolve.
func (b *CtxBuilder) WithAsset(source, fingerprinted string) *CtxBuilder {
	if b.manifest == nil {
		b.manifest = assets.NewManifest()
	}
	b.manifest.Set(source, fingerprinted)
	return b
}

// WithAssetPrefix sets the URL prefix for resolved assets.
func (b *CtxBuilder) WithAssetPrefix(prefix string) *CtxBuilder {
	b.prefix = prefix
	return b
}

// WithInclude adds a snippet.
func (b *CtxBuilder) WithInclude(name, content string) *CtxBuilder {
	if b.snippets == nil {
		b.snippets = assets.NewSnippets()
	}
	b.snippets.Set(name, content)
	return b
}

// WithSite sets a site configuration value.
func (b *CtxBuilder) WithSite(key string, value any) *CtxBuilder {
	b.opts.Site[key] = value
	return b
}

// WithLogger replaces the discarding logger.
func (b *CtxBuilder) WithLogger(logger *slog.Logger) *CtxBuilder {
	b.opts.Logger = logger
	return b
}

// Build returns the options.
func (b *CtxBuilder) Build() view.Options {
	opts := b.opts
	if b.manifest != nil {
		opts.Assets = assets.NewResolver(b.manifest, b.prefix)
	} else {
		opts.Assets = assets.NewPassthroughResolver(b.prefix)
	}
	if b.snippets != nil {
		opts.Includes = b.snippets
	}
	return opts
}

// RenderContext renders node with opts and returns the markup and the
// finished context, for assertions on failures and discovered assets.
func RenderContext(t testing.TB, opts view.Options, node view.Node) (string, *view.Context) {
	t.Helper()
	ctx := view.NewContext(opts)
	ctx.Begin()
	ctx.Register(node)
	html := ctx.Render(node)
	ctx.End()
	return html, ctx
}

// Render renders node with default options.
func Render(t testing.TB, node view.Node) string {
	t.Helper()
	html, _ := RenderContext(t, NewCtx().Build(), node)
	return html
}

// ExpectContains asserts that html contains expected.
func ExpectContains(t testing.TB, html, expected string) {
	t.Helper()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that html does not contain unexpected.
func ExpectNotContains(t testing.TB, html, unexpected string) {
	t.Helper()
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output not to contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that html opens a tag.
func ExpectElement(t testing.TB, html, tag string) {
	t.Helper()
	if !strings.Contains(html, "<"+tag+">") && !strings.Contains(html, "<"+tag+" ") {
		t.Errorf("expected <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that html contains name="value".
func ExpectAttribute(t testing.TB, html, name, value string) {
	t.Helper()
	want := name + `="` + value + `"`
	if !strings.Contains(html, want) {
		t.Errorf("expected attribute %s, got:\n%s", want, truncate(html, 500))
	}
}

// ExpectCount asserts that substr occurs exactly n times.
func ExpectCount(t testing.TB, html, substr string, n int) {
	t.Helper()
	if got := strings.Count(html, substr); got != n {
		t.Errorf("expected %d occurrences of %q, got %d in:\n%s", n, substr, got, truncate(html, 500))
	}
}

// ExpectNoFailures asserts that no node was dropped.
func ExpectNoFailures(t testing.TB, ctx *view.Context) {
	t.Helper()
	for _, f := range ctx.Failures() {
		t.Errorf("node %s dropped: %v", f.ID, f.Err)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
