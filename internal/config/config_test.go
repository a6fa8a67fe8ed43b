package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/vango-dev/kiln/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview.Host = %q, want %q", cfg.Preview.Host, DefaultHost)
	}
	if cfg.Build.Output != DefaultOutput {
		t.Errorf("Build.Output = %q, want %q", cfg.Build.Output, DefaultOutput)
	}
	if !cfg.Preview.LiveReload {
		t.Error("Preview.LiveReload should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if errors.CodeOf(err) != "K120" {
		t.Errorf("missing config: err = %v, want K120", err)
	}

	writeConfig(t, tmpDir, `{
  "site": {"name": "Notes", "locale": "pt-BR", "assetPrefix": "/a/"},
  "build": {"output": "public"},
  "preview": {"port": 8080, "liveReload": false},
  "publish": {"bucket": "b"}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Site.Name != "Notes" {
		t.Errorf("Site.Name = %q", cfg.Site.Name)
	}
	if cfg.Locale() != language.BrazilianPortuguese {
		t.Errorf("Locale() = %v, want pt-BR", cfg.Locale())
	}
	if cfg.Preview.Port != 8080 {
		t.Errorf("Preview.Port = %d, want 8080", cfg.Preview.Port)
	}
	if cfg.Preview.LiveReload {
		t.Error("Preview.LiveReload should be false")
	}
	if cfg.Build.Pages != DefaultPages {
		t.Errorf("Build.Pages = %q, want default %q", cfg.Build.Pages, DefaultPages)
	}
	if cfg.Publish.CacheControl != DefaultCacheControl {
		t.Errorf("Publish.CacheControl = %q", cfg.Publish.CacheControl)
	}
	if cfg.PollInterval() != 500*time.Millisecond {
		t.Errorf("PollInterval() = %v", cfg.PollInterval())
	}
	if got, want := cfg.OutputPath(), filepath.Join(tmpDir, "public"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
	if cfg.ManifestPath() != "" {
		t.Errorf("ManifestPath() = %q, want empty", cfg.ManifestPath())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"syntax", "{\n  \"site\": {\n    \"name\": ,\n}", "K121"},
		{"type", `{"preview": {"port": "x"}}`, "K121"},
		{"locale", `{"site": {"locale": "not a tag!"}}`, "K122"},
		{"port", `{"preview": {"port": 70000}}`, "K122"},
		{"interval", `{"preview": {"pollInterval": "soon"}}`, "K122"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, err := Load(dir)
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestLoadSyntaxErrorLocation(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "{\n  \"site\": {\n    \"name\": ,\n}")
	_, err := Load(dir)
	kerr, ok := err.(*errors.KilnError)
	if !ok {
		t.Fatalf("err = %T, want *errors.KilnError", err)
	}
	if kerr.Location == nil || kerr.Location.Line != 3 {
		t.Errorf("Location = %+v, want line 3", kerr.Location)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Site.Name = "Saved"
	cfg.Publish.Bucket = "bucket"

	if err := cfg.Save(); errors.CodeOf(err) != "K123" {
		t.Errorf("Save without path: err = %v, want K123", err)
	}
	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Site.Name != "Saved" || loaded.Publish.Bucket != "bucket" {
		t.Errorf("loaded %+v", loaded)
	}
	if loaded.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", loaded.Path())
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "pages", "blog")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, want)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOrDefault(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dir() == "" || cfg.Preview.Port != DefaultPort {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestPreviewAddress(t *testing.T) {
	cfg := New()
	cfg.Preview.Host = "0.0.0.0"
	cfg.Preview.Port = 9000
	if got := cfg.PreviewURL(); got != "http://0.0.0.0:9000" {
		t.Errorf("PreviewURL() = %q", got)
	}
}
