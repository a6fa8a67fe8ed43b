package build

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/internal/publish"
	"github.com/vango-dev/kiln/pkg/render"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// newProject lays out a small site and returns its loaded configuration.
func newProject(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.New()
	cfg.Site.Name = "Field Notes"
	cfg.Site.Title = "Field Notes"
	cfg.Site.AssetPrefix = "/assets/"
	cfg.Site.Manifest = "manifest.json"
	cfg.Site.Includes = "includes"
	cfg.Site.StyleSheets = []string{"/css/site.css"}
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	writeFile(t, filepath.Join(dir, "manifest.json"), `{"logo.png": "logo.3f2a.png"}`)
	writeFile(t, filepath.Join(dir, "includes", "footer.html"), `<footer>bye</footer>`)
	writeFile(t, filepath.Join(dir, "pages", "index.yaml"), `
body:
  - h1: Home
  - img: {src: logo.png, alt: Logo}
  - include: {name: footer.html}
`)
	writeFile(t, filepath.Join(dir, "pages", "blog", "first.hcl"), `
title = "First"
element "p" {
  content = site.name
}
`)
	writeFile(t, filepath.Join(dir, "pages", "notes.txt"), "not a page")

	loaded, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	return loaded
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestPages(t *testing.T) {
	cfg := newProject(t)
	b, err := New(cfg, Options{Logger: quiet()})
	if err != nil {
		t.Fatal(err)
	}
	pages, err := b.Pages()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join("blog", "first.hcl"), "index.yaml"}
	if diff := cmp.Diff(want, pages); diff != "" {
		t.Errorf("pages (-want +got):\n%s", diff)
	}
}

func TestPagesWithoutDirectory(t *testing.T) {
	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(t.TempDir(), config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	b, err := New(cfg, Options{Logger: quiet()})
	if err != nil {
		t.Fatal(err)
	}
	pages, err := b.Pages()
	if err != nil || len(pages) != 0 {
		t.Errorf("got %v, %v; want no pages", pages, err)
	}
}

func TestRenderFile(t *testing.T) {
	cfg := newProject(t)
	b, err := New(cfg, Options{Logger: quiet()})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	res, err := b.RenderFile(context.Background(), &buf, filepath.Join(cfg.PagesPath(), "index.yaml"),
		func(p *render.Page) { p.Meta = append(p.Meta, render.MetaTag{Name: "robots", Content: "noindex"}) })
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	if len(res.Failures) != 0 {
		t.Errorf("failures: %+v", res.Failures)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Field Notes</title>",
		`href="/css/site.css"`,
		`name="robots"`,
		`<img src="/assets/logo.3f2a.png" alt="Logo">`,
		"<footer>bye</footer>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in:\n%s", want, html)
		}
	}
}

func TestRenderFileFragment(t *testing.T) {
	cfg := newProject(t)
	b, err := New(cfg, Options{Logger: quiet(), Fragment: true})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := b.RenderFile(context.Background(), &buf, filepath.Join(cfg.PagesPath(), "blog", "first.hcl")); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "<p>Field Notes</p>" {
		t.Errorf("got %q", got)
	}
}

func TestBuild(t *testing.T) {
	cfg := newProject(t)
	var steps []string
	b, err := New(cfg, Options{
		Logger:     quiet(),
		OnProgress: func(step string) { steps = append(steps, step) },
	})
	if err != nil {
		t.Fatal(err)
	}
	sink, err := publish.NewDirSink(cfg.OutputPath())
	if err != nil {
		t.Fatal(err)
	}

	result, err := b.Build(context.Background(), sink)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.Pages) != 2 || len(steps) != 2 {
		t.Fatalf("pages=%d steps=%d, want 2", len(result.Pages), len(steps))
	}
	if result.Partial() != 0 {
		t.Errorf("partial pages: %d", result.Partial())
	}

	for _, key := range []string{"index.html", "blog/first.html"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputPath(), filepath.FromSlash(key)))
		if err != nil {
			t.Errorf("%s: %v", key, err)
			continue
		}
		if !bytes.HasPrefix(data, []byte("<!DOCTYPE html>")) {
			t.Errorf("%s is not a full page", key)
		}
	}
}

func TestBuildStopsOnDocumentError(t *testing.T) {
	cfg := newProject(t)
	writeFile(t, filepath.Join(cfg.PagesPath(), "broken.yaml"), "body: [blink: x]")
	b, err := New(cfg, Options{Logger: quiet()})
	if err != nil {
		t.Fatal(err)
	}
	sink, err := publish.NewDirSink(cfg.OutputPath())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(context.Background(), sink); errors.CodeOf(err) != "K141" {
		t.Errorf("got %v, want K141", err)
	}
}

func TestNewWithMissingManifest(t *testing.T) {
	cfg := newProject(t)
	cfg.Site.Manifest = "missing.json"
	if _, err := New(cfg, Options{}); errors.CodeOf(err) != "K122" {
		t.Errorf("got %v, want K122", err)
	}
}

func TestNewWithoutIncludesDirectory(t *testing.T) {
	cfg := newProject(t)
	if err := os.RemoveAll(cfg.IncludesPath()); err != nil {
		t.Fatal(err)
	}

	b, err := New(cfg, Options{Logger: quiet()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	res, err := b.RenderFile(context.Background(), &buf, filepath.Join(cfg.PagesPath(), "index.yaml"))
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	var codes []string
	for _, f := range res.Failures {
		codes = append(codes, f.Code)
	}
	if diff := cmp.Diff([]string{"K111"}, codes); diff != "" {
		t.Errorf("failure codes mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "<h1>Home</h1>") {
		t.Errorf("page missing heading:\n%s", buf.String())
	}
}

func TestFind(t *testing.T) {
	cfg := newProject(t)
	b, err := New(cfg, Options{Logger: quiet()})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"index", "index.yaml", true},
		{"blog/first", filepath.Join("blog", "first.hcl"), true},
		{"missing", "", false},
		{"../kiln", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := b.Find(tt.name)
		if ok != tt.ok {
			t.Errorf("Find(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && got != filepath.Join(cfg.PagesPath(), tt.want) {
			t.Errorf("Find(%q) = %q", tt.name, got)
		}
	}
}
