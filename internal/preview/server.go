package preview

import (
	"context"
	stderrors "errors"
	"fmt"
	"html"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/kiln/internal/build"
	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/render"
)

// Options configures the preview server.
type Options struct {
	// Config is the loaded project configuration.
	Config *config.Config

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the render and request metrics served at
	// /metrics. Defaults to a fresh registry with the Go and process
	// collectors.
	Registry *prometheus.Registry

	// OnReady is called with the listening address once the server
	// accepts connections.
	OnReady func(addr string)
}

// Server is the preview HTTP server.
type Server struct {
	config   *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *render.Metrics
	hub      *ReloadHub
	router   chi.Router
	onReady  func(string)

	mu      sync.RWMutex
	builder *build.Builder
}

// New creates a server for the project in opts.Config.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
		opts.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		config:   opts.Config,
		logger:   opts.Logger,
		registry: opts.Registry,
		metrics:  render.NewMetrics(render.WithRegistry(opts.Registry)),
		hub:      NewReloadHub(opts.Logger),
		onReady:  opts.OnReady,
	}
	if err := s.reloadBuilder(); err != nil {
		return nil, err
	}
	s.router = s.routes(newHTTPMetrics(opts.Registry))
	return s, nil
}

func (s *Server) routes(m *httpMetrics) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(instrument(m, otel.Tracer("kiln"), s.logger))

	r.Get("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP)
	r.Get("/_kiln/reload", s.hub.ServeHTTP)
	r.Get("/_kiln/reload.js", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		fmt.Fprint(w, ReloadScript)
	})
	r.Get("/", s.servePage)
	r.Get("/{page}", s.servePage)
	r.Get("/*", s.servePage)
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Hub returns the live reload hub.
func (s *Server) Hub() *ReloadHub { return s.hub }

// reloadBuilder rebuilds the page builder so that changed includes and
// manifests take effect.
func (s *Server) reloadBuilder() error {
	b, err := build.New(s.config, build.Options{Logger: s.logger, Metrics: s.metrics})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.builder = b
	s.mu.Unlock()
	return nil
}

func (s *Server) currentBuilder() *build.Builder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.builder
}

// pageName maps a request path to a page name: "/" is "index", and a
// trailing ".html" or "/" is dropped.
func pageName(r *http.Request) string {
	name := chi.URLParam(r, "page")
	if name == "" {
		name = chi.URLParam(r, "*")
	}
	name = strings.TrimSuffix(strings.TrimSuffix(name, "/"), ".html")
	if name == "" {
		return "index"
	}
	return name
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	b := s.currentBuilder()
	name := pageName(r)
	path, ok := b.Find(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	out := &responseWriter{ResponseWriter: w}
	res, err := b.RenderFile(r.Context(), out, path, s.withReloadScript)
	if err != nil {
		if !out.wrote {
			s.serveError(w, name, err)
			return
		}
		s.logger.Error("preview render failed", "page", name, "error", err)
		return
	}
	if len(res.Failures) > 0 {
		s.logger.Warn("page rendered with failures",
			"page", name,
			"render_id", res.RenderID.String(),
			"failures", len(res.Failures))
	}
}

// responseWriter records whether the body was started.
type responseWriter struct {
	http.ResponseWriter
	wrote bool
}

func (w *responseWriter) Write(p []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(p)
}

func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Server) withReloadScript(p *render.Page) {
	if s.config.Preview.LiveReload {
		p.Scripts = append(p.Scripts, render.ScriptTag{Src: "/_kiln/reload.js"})
	}
}

// serveError writes a plain error page that keeps the reload client, so
// the page recovers once the document is fixed.
func (s *Server) serveError(w http.ResponseWriter, name string, err error) {
	s.logger.Warn("page failed to load", "page", name, "code", errors.CodeOf(err), "error", err)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusInternalServerError)

	fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><title>%s</title></head>\n<body>\n", html.EscapeString(name))
	fmt.Fprintf(w, "<pre id=\"kiln-error\">%s</pre>\n", html.EscapeString(describe(err)))
	if s.config.Preview.LiveReload {
		fmt.Fprint(w, "<script src=\"/_kiln/reload.js\"></script>\n")
	}
	fmt.Fprint(w, "</body>\n</html>\n")
}

// describe renders err as plain text with its location and hint.
func describe(err error) string {
	var ke *errors.KilnError
	if !stderrors.As(err, &ke) {
		return err.Error()
	}
	var b strings.Builder
	if ke.Location != nil {
		b.WriteString(ke.Location.String())
		b.WriteString("\n")
	}
	b.WriteString(ke.Error())
	if ke.Suggestion != "" {
		b.WriteString("\n\nHint: ")
		b.WriteString(ke.Suggestion)
	}
	return b.String()
}

// handleChanges reacts to a batch of file changes.
func (s *Server) handleChanges(changes []Change) {
	reload := false
	for _, c := range changes {
		s.logger.Info("file changed", "path", c.Path, "type", c.Type.String())
		switch c.Type {
		case ChangeConfig:
			s.logger.Warn("kiln.json changed; restart the preview to apply it")
		case ChangeAsset:
			if err := s.reloadBuilder(); err != nil {
				s.logger.Error("reloading site assets failed", "error", err)
				s.hub.NotifyError(describe(err))
				return
			}
			reload = true
		case ChangeStyle:
			s.hub.NotifyCSS(filepath.Base(c.Path))
		default:
			reload = true
		}
	}
	if reload {
		s.hub.NotifyReload()
	}
}

// Start serves until ctx is done, then shuts down gracefully. With live
// reload enabled the project files are polled for changes.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.PreviewAddress())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.config.Preview.LiveReload {
		w := NewWatcher(WatcherConfig{
			Paths:    WatchPaths(s.config),
			Interval: s.config.PollInterval(),
		})
		go w.Run(ctx, s.handleChanges)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.logger.Info("preview server started", "addr", ln.Addr().String())
	if s.onReady != nil {
		s.onReady(ln.Addr().String())
	}

	select {
	case err := <-errCh:
		s.hub.Close()
		return err
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
