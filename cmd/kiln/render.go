package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/kiln/internal/build"
	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/internal/publish"
)

func renderCmd(c *cli) *cobra.Command {
	var (
		output   string
		fragment bool
		upload   bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render one page document",
		Long: `Render a single HCL or YAML page document to HTML.

The page is written to stdout unless --output is given. Settings come
from the kiln.json of the project containing the file, or the defaults
when there is none.

Examples:
  kiln render pages/index.hcl
  kiln render pages/about.yaml -o about.html
  kiln render pages/card.hcl --fragment
  kiln render pages/index.hcl --publish`,
		Args: exactArgs(1, "kiln render <file>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], output, fragment, upload)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the page to a file instead of stdout")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Render the body only")
	cmd.Flags().BoolVar(&upload, "publish", false, "Upload the page to the configured bucket")
	return cmd
}

func (c *cli) runRender(cmd *cobra.Command, file, output string, fragment, upload bool) error {
	if output != "" && upload {
		return errors.New("K180").WithDetail("--output and --publish cannot be combined")
	}

	cfg, err := config.LoadOrDefault(filepath.Dir(file))
	if err != nil {
		return err
	}
	b, err := build.New(cfg, build.Options{
		Fragment: fragment || cfg.Build.Fragment,
		Logger:   c.logger,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var buf bytes.Buffer
	res, err := b.RenderFile(ctx, &buf, file)
	if err != nil {
		return err
	}
	for _, f := range res.Failures {
		warn(cmd.ErrOrStderr(), "%s dropped at %v: %v", f.Code, f.Path, f.Err)
	}

	switch {
	case upload:
		sink, err := publish.NewS3SinkFromConfig(ctx, cfg.Publish)
		if err != nil {
			return err
		}
		key := publish.KeyFor(pageKey(cfg, file))
		if err := sink.Put(ctx, key, buf.Bytes(), ""); err != nil {
			return err
		}
		success(cmd.ErrOrStderr(), "Published s3://%s/%s%s", cfg.Publish.Bucket, cfg.Publish.Prefix, key)
	case output != "":
		if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
			return errors.New("K181").WithDetail(output).Wrap(err)
		}
		success(cmd.ErrOrStderr(), "Wrote %s", output)
	default:
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return errors.New("K181").Wrap(err)
		}
	}
	return nil
}

// pageKey returns file relative to the pages directory, or its base name
// when it lives elsewhere.
func pageKey(cfg *config.Config, file string) string {
	abs, err := filepath.Abs(file)
	if err != nil {
		return filepath.Base(file)
	}
	rel, err := filepath.Rel(cfg.PagesPath(), abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(file)
	}
	return filepath.ToSlash(rel)
}
