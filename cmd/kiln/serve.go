package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/preview"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview pages with live reload",
		Long: `Serve the project's pages over HTTP, rendering each request.

Pages reload in the browser when a document changes. Stylesheet changes
are swapped in place without a full reload. Render metrics are served
at /metrics.

Examples:
  kiln serve
  kiln serve site --port 8080
  kiln serve --no-reload`,
		Args: maxArgs(1, "kiln serve [dir]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runServe(cmd, dir, port, host, noReload)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from kiln.json)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (default from kiln.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")
	return cmd
}

func (c *cli) runServe(cmd *cobra.Command, dir string, port int, host string, noReload bool) error {
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	if noReload {
		cfg.Preview.LiveReload = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.ErrOrStderr()
	srv, err := preview.New(preview.Options{
		Config: cfg,
		Logger: c.logger,
		OnReady: func(addr string) {
			fmt.Fprint(out, banner)
			fmt.Fprintln(out)
			success(out, "Preview ready at http://%s", addr)
			info(out, "Pages: %s", cfg.PagesPath())
			if cfg.Preview.LiveReload {
				info(out, "Live reload on (every %s)", cfg.PollInterval())
			}
			fmt.Fprintln(out)
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx)
}
