package render

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/assets"
	"github.com/vango-dev/kiln/pkg/view"
)

const defaultTracerName = "kiln"

// RendererConfig configures the renderer. Every field is optional.
type RendererConfig struct {
	// Locale is the page language. Defaults to English.
	Locale language.Tag

	// Assets resolves asset paths. Defaults to a passthrough resolver.
	Assets assets.Resolver

	// Includes provides snippets for view.Include.
	Includes assets.Includer

	// Site holds site configuration values readable by nodes.
	Site map[string]any

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics records render metrics when set.
	Metrics *Metrics

	// TracerName names the OpenTelemetry tracer (default: "kiln").
	TracerName string
}

// Result is the outcome of one render.
type Result struct {
	// HTML is the rendered markup.
	HTML string

	// Assets lists the resources discovered during the render.
	Assets view.Assets

	// RenderID identifies the render in logs and traces.
	RenderID ulid.ULID

	// Failures lists the nodes dropped from HTML.
	Failures []view.Failure

	// SideTableEntries is the number of side-table values written.
	SideTableEntries int

	Duration time.Duration
}

// Status summarizes the result for metrics: "ok", or "partial" when nodes
// were dropped.
func (r Result) Status() string {
	if len(r.Failures) > 0 {
		return "partial"
	}
	return "ok"
}

// Renderer renders view trees. It is safe for concurrent use.
type Renderer struct {
	config RendererConfig
	tracer trace.Tracer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}
	return &Renderer{
		config: config,
		tracer: otel.Tracer(config.TracerName),
	}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig { return r.config }

// Render runs one top-level render of root. The error is non-nil only when
// the render could not run at all: a nil root or a cancelled ctx. Failing
// nodes are reported in Result.Failures.
func (r *Renderer) Render(ctx context.Context, root view.Node) (Result, error) {
	res := Result{RenderID: ulid.Make()}

	ctx, span := r.tracer.Start(ctx, "kiln.render",
		trace.WithAttributes(attribute.String("kiln.render_id", res.RenderID.String())))
	defer span.End()

	if err := r.check(ctx, root); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.config.Metrics.observeError()
		return res, err
	}

	logger := r.config.Logger.With("render_id", res.RenderID.String())
	logger.Debug("render started")
	start := time.Now()

	vctx := view.NewContext(view.Options{
		Locale:   r.config.Locale,
		Assets:   r.config.Assets,
		Includes: r.config.Includes,
		Site:     r.config.Site,
		Logger:   logger,
	})
	vctx.Begin()
	vctx.Register(root)
	res.HTML = vctx.Render(root)
	vctx.End()

	res.Duration = time.Since(start)
	res.Assets = vctx.Build().Assets()
	res.Failures = vctx.Failures()
	res.SideTableEntries = vctx.Build().Entries()

	span.SetAttributes(
		attribute.Int("kiln.output_bytes", len(res.HTML)),
		attribute.Int("kiln.failures", len(res.Failures)),
		attribute.Int("kiln.side_table_entries", res.SideTableEntries),
	)
	if len(res.Failures) > 0 {
		span.SetStatus(codes.Error, "nodes dropped")
	} else {
		span.SetStatus(codes.Ok, "")
	}
	r.config.Metrics.observe(res)

	logger.Debug("render finished",
		"duration", res.Duration,
		"bytes", len(res.HTML),
		"failures", len(res.Failures),
	)
	return res, nil
}

func (r *Renderer) check(ctx context.Context, root view.Node) error {
	if root == nil {
		return errors.New("K006").WithDetail("render root")
	}
	return ctx.Err()
}

// RenderToWriter renders root and writes the markup to w.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, root view.Node) (Result, error) {
	res, err := r.Render(ctx, root)
	if err != nil {
		return res, err
	}
	if _, err := io.WriteString(w, res.HTML); err != nil {
		return res, err
	}
	return res, nil
}
