package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/kiln/internal/build"
	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/publish"
)

func buildCmd(c *cli) *cobra.Command {
	var (
		output string
		upload bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page in the project",
		Long: `Render every page document under the pages directory.

Pages are written to the output directory, keeping their relative
paths with an .html extension. With --publish they are uploaded to
the bucket configured in kiln.json instead.

Examples:
  kiln build
  kiln build --output=public
  kiln build --publish`,
		Args: maxArgs(0, "kiln build"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runBuild(cmd, output, upload)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from kiln.json)")
	cmd.Flags().BoolVar(&upload, "publish", false, "Upload pages to the configured bucket")
	return cmd
}

func (c *cli) runBuild(cmd *cobra.Command, output string, upload bool) error {
	root, err := config.FindProjectRoot(".")
	if err != nil {
		return err
	}
	project, err := config.Load(root)
	if err != nil {
		return err
	}
	if output != "" {
		project.Build.Output = output
	}

	ctx := cmd.Context()
	out := cmd.ErrOrStderr()

	var (
		sink   publish.Sink
		target string
	)
	if upload {
		s3, err := publish.NewS3SinkFromConfig(ctx, project.Publish)
		if err != nil {
			return err
		}
		sink = s3
		target = fmt.Sprintf("s3://%s/%s", project.Publish.Bucket, project.Publish.Prefix)
	} else {
		dir, err := publish.NewDirSink(project.OutputPath())
		if err != nil {
			return err
		}
		sink = dir
		target = dir.Dir()
	}

	fmt.Fprintln(out, "  Building pages...")
	fmt.Fprintln(out)

	b, err := build.New(project, build.Options{
		Fragment: project.Build.Fragment,
		Logger:   c.logger,
		OnProgress: func(step string) {
			info(out, "%s", step)
		},
	})
	if err != nil {
		return err
	}

	result, err := b.Build(ctx, sink)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	success(out, "Built %d page(s) into %s in %s", len(result.Pages), target, result.Duration.Round(time.Millisecond))
	if n := result.Partial(); n > 0 {
		warn(out, "%d page(s) rendered with dropped nodes; run with --verbose for details", n)
	}
	return nil
}
