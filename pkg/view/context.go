package view

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"golang.org/x/text/language"

	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/assets"
)

// Options are the rendering context values primitives may read.
type Options struct {
	// Locale is the page language. Defaults to English.
	Locale language.Tag

	// Assets resolves asset references. Defaults to a passthrough resolver.
	Assets assets.Resolver

	// Includes supplies inline snippets for Include nodes.
	Includes assets.Includer

	// Site holds site-wide configuration values.
	Site map[string]any

	// Logger receives node failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Failure records a node whose markup was dropped.
type Failure struct {
	ID   Identity
	Path Path
	Code string
	Err  error
}

// Context is the state of one render: the rendering context values, the
// BuildContext and the current position in the tree. A Context is used by
// one render at a time.
type Context struct {
	opts     Options
	logger   *slog.Logger
	build    *BuildContext
	active   bool
	path     Path
	current  Identity
	failures []Failure
}

// NewContext creates an inactive context.
func NewContext(opts Options) *Context {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Assets == nil {
		opts.Assets = assets.NewPassthroughResolver("")
	}
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	return &Context{
		opts:   opts,
		logger: opts.Logger,
		build:  NewBuildContext(opts.Logger),
	}
}

// Locale returns the page language.
func (c *Context) Locale() language.Tag { return c.opts.Locale }

// Assets returns the asset resolver.
func (c *Context) Assets() assets.Resolver { return c.opts.Assets }

// Include returns the named snippet.
func (c *Context) Include(name string) (string, bool) {
	if c.opts.Includes == nil {
		return "", false
	}
	return c.opts.Includes.Include(name)
}

// Site returns a site configuration value.
func (c *Context) Site(key string) (any, bool) {
	v, ok := c.opts.Site[key]
	return v, ok
}

// SiteValues returns a copy of the site configuration.
func (c *Context) SiteValues() map[string]any { return maps.Clone(c.opts.Site) }

// Logger returns the context logger. It is never nil.
func (c *Context) Logger() *slog.Logger {
	if c == nil || c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// Build returns the side table.
func (c *Context) Build() *BuildContext { return c.build }

// Begin starts a render: the side table is cleared, failures are reset and
// the position returns to the root.
func (c *Context) Begin() {
	c.build.Begin()
	c.failures = nil
	c.path = nil
	c.current = ""
	c.active = true
}

// End finishes the render and seals the side table.
func (c *Context) End() {
	c.build.End()
	c.active = false
}

// Active reports whether the context is between Begin and End.
func (c *Context) Active() bool { return c != nil && c.active }

// Path returns the position of the node being rendered.
func (c *Context) Path() Path { return c.path }

// Identity returns the identity of the node being rendered.
func (c *Context) Identity() Identity { return c.current }

// Failures returns the nodes dropped so far in this render.
func (c *Context) Failures() []Failure {
	out := make([]Failure, len(c.failures))
	copy(out, c.failures)
	return out
}

// Register runs the registration phase for root: every proxy's
// registrations are replayed with its identity, in the order Render visits
// nodes.
func (c *Context) Register(root Node) {
	c.mustBeActive()
	c.register(Flatten(root, c.path))
}

func (c *Context) register(list Subviews) {
	for _, sv := range list {
		if p, ok := asProxy(sv.Node); ok {
			for _, reg := range p.regs {
				c.replay(reg, sv)
			}
		}
		if par, ok := sv.Node.(Parent); ok {
			c.register(Flatten(Group(par.Contents()...), sv.Path))
		}
	}
}

func (c *Context) replay(reg Registration, sv Subview) {
	defer func() {
		if r := recover(); r != nil {
			c.fail(sv, errors.New("K003").WithDetailf("registration: %v", r))
		}
	}()
	reg(c.build, sv.ID)
}

func asProxy(n Node) (Proxy, bool) {
	switch p := n.(type) {
	case Proxy:
		return p, true
	case inlineProxy:
		return p.Proxy, true
	}
	return Proxy{}, false
}

// Render renders nodes as the content of the current node: they are
// flattened under the current path and each leaf's markup is concatenated
// with no separator.
func (c *Context) Render(nodes ...Node) string {
	c.mustBeActive()
	var b strings.Builder
	for _, sv := range Flatten(Group(nodes...), c.path) {
		b.WriteString(c.RenderSubview(sv))
	}
	return b.String()
}

// Subviews flattens n under the current path, for containers that wrap
// each child.
func (c *Context) Subviews(n Node) Subviews {
	return Flatten(n, c.path)
}

// RenderSubview renders one flattened child at its own position. A child
// whose markup fails or panics renders as "" and is recorded as a failure.
func (c *Context) RenderSubview(sv Subview) string {
	c.mustBeActive()
	if sv.Node == nil {
		return ""
	}
	if IsComposite(sv.Node) {
		saved := c.path
		c.path = sv.Path.Parent()
		defer func() { c.path = saved }()
		return c.Render(sv.Node)
	}

	savedPath, savedID := c.path, c.current
	c.path, c.current = sv.Path, sv.ID
	defer func() { c.path, c.current = savedPath, savedID }()

	return c.markup(sv)
}

func (c *Context) markup(sv Subview) (out string) {
	prim, ok := sv.Node.(Primitive)
	if !ok {
		c.fail(sv, errors.New("K002").WithDetailf("%T", sv.Node))
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			c.fail(sv, errors.New("K003").WithDetailf("%v", r))
			out = ""
		}
	}()
	s, err := prim.Markup(c)
	if err != nil {
		c.fail(sv, err)
		return ""
	}
	return s
}

func (c *Context) fail(sv Subview, err error) {
	code := errors.CodeOf(err)
	if code == "" {
		code = "K004"
	}
	c.failures = append(c.failures, Failure{ID: sv.ID, Path: sv.Path, Code: code, Err: err})

	level := slog.LevelError
	if tmpl, ok := errors.GetTemplate(code); ok && tmpl.Category == errors.CategoryContent {
		level = slog.LevelWarn
	}
	c.Logger().Log(context.Background(), level, "node dropped",
		"code", code,
		"identity", string(sv.ID),
		"node", fmt.Sprintf("%T", sv.Node),
		"error", err,
	)
}

func (c *Context) mustBeActive() {
	if !c.Active() {
		panic(errors.New("K001"))
	}
}
