package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/vango-dev/kiln/internal/errors"
)

// Config contains template variables.
type Config struct {
	// SiteName is the name of the site.
	SiteName string

	// Description is a short site description.
	Description string
}

// Template is a set of starter files.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files maps relative paths to file contents.
	Files map[string]string
}

var templates = map[string]*Template{
	"hcl":  hclTemplate(),
	"yaml": yamlTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("K180").
			WithDetailf("template %q not found", name).
			WithSuggestion("Available templates: hcl, yaml")
	}
	return tmpl, nil
}

// List returns the template names in order.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Paths returns the template's file paths in order.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Create writes the template files under dir. Existing files are
// overwritten.
func (t *Template) Create(dir string, cfg Config) error {
	for _, relPath := range t.Paths() {
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return errors.New("K181").WithDetail(fullPath).Wrap(err)
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return errors.New("K181").WithDetail(fullPath).Wrap(err)
		}
	}
	return nil
}

var commonFiles = map[string]string{
	"includes/footer.html": `<footer class="site-footer">{{.SiteName}}</footer>
`,
	"css/site.css": `body {
  font-family: system-ui, sans-serif;
  margin: 0 auto;
  max-width: 48rem;
  padding: 2rem 1rem;
}

.site-footer {
  color: #666;
  margin-top: 3rem;
}
`,
}

func withCommon(files map[string]string) map[string]string {
	out := make(map[string]string, len(files)+len(commonFiles))
	for k, v := range commonFiles {
		out[k] = v
	}
	for k, v := range files {
		out[k] = v
	}
	return out
}

func hclTemplate() *Template {
	return &Template{
		Name:        "hcl",
		Description: "A home page written in HCL",
		Files: withCommon(map[string]string{
			"pages/index.hcl": `title = "{{.SiteName}}"

meta {
  description = "{{.Description}}"
}

element "vstack" "page" {
  spacing = "1.5rem"

  element "h1" {
    content = site.name
  }

  element "p" {
    content = "Edit pages/index.hcl and save; the preview reloads."
  }

  element "list" {
    element "group" {
      row_spacing = "0.25rem"

      element "text" { content = "Write pages in HCL or YAML" }
      element "text" { content = "Run kiln serve to preview" }
      element "text" { content = "Run kiln build to publish" }
    }
  }

  element "include" {
    name = "footer.html"
  }
}
`,
		}),
	}
}

func yamlTemplate() *Template {
	return &Template{
		Name:        "yaml",
		Description: "A home page written in YAML",
		Files: withCommon(map[string]string{
			"pages/index.yaml": `title: "{{.SiteName}}"
meta:
  description: "{{.Description}}"
body:
  - vstack:
      label: page
      spacing: 1.5rem
      children:
        - h1: "{{.SiteName}}"
        - p: Edit pages/index.yaml and save; the preview reloads.
        - list:
            - group:
                row_spacing: 0.25rem
                children:
                  - Write pages in HCL or YAML
                  - Run kiln serve to preview
                  - Run kiln build to publish
        - include: {name: footer.html}
`,
		}),
	}
}
