package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/internal/templates"
)

func initCmd(_ *cli) *cobra.Command {
	var (
		template string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a new kiln project",
		Long: `Create kiln.json and a starter page in dir (default ".").

Templates:
  hcl   Pages written in HCL (default)
  yaml  Pages written in YAML

Examples:
  kiln init
  kiln init notes --name "Field Notes"
  kiln init --template yaml`,
		Args: maxArgs(1, "kiln init [dir]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, template, name)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "hcl", fmt.Sprintf("Starter template %v", templates.List()))
	cmd.Flags().StringVar(&name, "name", "", "Site name (default: directory name)")
	return cmd
}

func runInit(cmd *cobra.Command, dir, template, name string) error {
	tmpl, err := templates.Get(template)
	if err != nil {
		return err
	}
	if config.Exists(dir) {
		return errors.New("K182").WithDetail(filepath.Join(dir, config.ConfigFileName))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.New("K181").WithDetail(dir).Wrap(err)
	}

	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return errors.New("K180").Wrap(err)
		}
		name = filepath.Base(abs)
	}

	cfg := config.New()
	cfg.Site.Name = name
	cfg.Site.Title = name
	cfg.Site.StyleSheets = []string{"/css/site.css"}
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}

	if err := tmpl.Create(dir, templates.Config{
		SiteName:    name,
		Description: "A site built with kiln.",
	}); err != nil {
		return err
	}

	out := cmd.ErrOrStderr()
	success(out, "Created %s from the %s template", dir, tmpl.Name)
	for _, p := range tmpl.Paths() {
		info(out, "%s", p)
	}
	fmt.Fprintln(out)
	info(out, "Next: cd %s && kiln serve", dir)
	return nil
}
