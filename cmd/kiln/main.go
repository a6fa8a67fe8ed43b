package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/kiln/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦╔═╦╦  ╔╗╔
  ╠╩╗║║  ║║║
  ╩ ╩╩╩═╝╝╚╝
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds state shared by the subcommands.
type cli struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "kiln",
		Short: "Render page documents into HTML",
		Long: `Kiln renders pages described in HCL or YAML into HTML.

Pages are trees of elements, layout containers and modifiers. Kiln
renders them into static HTML, previews them with live reload and
publishes them to a directory or an S3 bucket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.logger = newLogger(cmd.ErrOrStderr(), c.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		renderCmd(c),
		buildCmd(c),
		serveCmd(c),
		initCmd(c),
		versionCmd(),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// exactArgs is cobra.ExactArgs reporting a coded error.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New("K180").WithDetailf("expected %d argument(s): %s", n, usage)
		}
		return nil
	}
}

// maxArgs is cobra.MaximumNArgs reporting a coded error.
func maxArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return errors.New("K180").WithDetailf("at most %d argument(s): %s", n, usage)
		}
		return nil
	}
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
