// Package templates provides starter files for new kiln projects.
//
// # Available Templates
//
//   - hcl: a home page written in HCL (default)
//   - yaml: the same home page written in YAML
//
// # Usage
//
//	tmpl, err := templates.Get("hcl")
//	if err != nil {
//	    return err
//	}
//	err = tmpl.Create(projectDir, templates.Config{SiteName: "Field Notes"})
//
// # Template Variables
//
//	{{.SiteName}}     - Name of the site
//	{{.Description}}  - Site description
package templates
