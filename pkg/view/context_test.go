package view

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"golang.org/x/text/language"

	kerrors "github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/assets"
	"github.com/vango-dev/kiln/pkg/attrs"
)

func TestRenderWithoutActiveContextPanics(t *testing.T) {
	tests := []struct {
		name string
		ctx  *Context
	}{
		{"nil context", nil},
		{"before Begin", NewContext(Options{Logger: discardLogger()})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || kerrors.CodeOf(err) != "K001" {
					t.Errorf("recover() = %v, want K001", r)
				}
			}()
			tt.ctx.Render(Text("x"))
		})
	}
}

func TestFailureIsolation(t *testing.T) {
	failing := Leaf(func(*Context, attrs.Set) (string, error) {
		return "", errors.New("boom")
	})
	panicking := InlineLeaf(func(*Context, attrs.Set) (string, error) {
		panic("kaboom")
	})
	tree := Div(Text("a"), failing, Span(Text("b"), panicking), Text("c"))

	out, ctx := renderWith(t, Options{}, tree)

	if out != "<div>a<span>b</span>c</div>" {
		t.Errorf("got %q", out)
	}
	failures := ctx.Failures()
	if len(failures) != 2 {
		t.Fatalf("failures = %+v, want 2", failures)
	}
	if failures[0].Code != "K004" || failures[0].ID != "/0/1" {
		t.Errorf("failure 0 = %+v", failures[0])
	}
	if failures[1].Code != "K003" || failures[1].ID != "/0/2/1" {
		t.Errorf("failure 1 = %+v", failures[1])
	}
}

func TestFailureLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := assets.NewManifest()

	_, ctx := renderWith(t, Options{
		Logger: logger,
		Assets: assets.NewResolver(m, "/assets"),
	}, Group(Img("missing.png", ""), Broken(kerrors.New("K005"))))

	if len(ctx.Failures()) != 2 {
		t.Fatalf("failures = %+v", ctx.Failures())
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("log lines = %q", lines)
	}
	if !strings.Contains(lines[0], "level=WARN") || !strings.Contains(lines[0], "code=K110") {
		t.Errorf("missing asset logged as %q", lines[0])
	}
	if !strings.Contains(lines[1], "level=ERROR") || !strings.Contains(lines[1], "identity=/1") {
		t.Errorf("render error logged as %q", lines[1])
	}
}

func TestPathsDuringRender(t *testing.T) {
	var seen []string
	probe := func(name string) Node {
		return Leaf(func(ctx *Context, _ attrs.Set) (string, error) {
			seen = append(seen, fmt.Sprintf("%s=%s", name, ctx.Identity()))
			return "", nil
		})
	}

	render(t, Group(probe("a"), Div(probe("b"), Group(probe("c"))), Section(probe("d"))))

	want := "a=/0 b=/1/0 c=/1/1 d=/2/0"
	if got := strings.Join(seen, " "); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestListWithPerRowBackground(t *testing.T) {
	list := testList{content: Group(
		Text("one"),
		Modify(Text("two"), rowBackground("blue")),
		Text("three"),
	)}

	got := render(t, list)

	want := `<ul><li>one</li><li style="background-color: blue">two</li><li>three</li></ul>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n := strings.Count(got, "<li"); n != 3 {
		t.Errorf("%d <li> wrappers, want 3", n)
	}
}

func TestRowModifierOnCompositeRegistersEachChild(t *testing.T) {
	list := testList{content: Modify(Group(Text("a"), Text("b")), rowBackground("red"))}

	got := render(t, list)

	want := `<ul><li style="background-color: red">a</li><li style="background-color: red">b</li></ul>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildContextResetBetweenRenders(t *testing.T) {
	ctx := NewContext(Options{Logger: discardLogger()})

	first := testList{content: Group(Modify(Text("a"), rowBackground("blue")))}
	ctx.Begin()
	ctx.Register(first)
	_ = ctx.Render(first)
	ctx.End()

	second := testList{content: Group(Text("a"))}
	ctx.Begin()
	ctx.Register(second)
	got := ctx.Render(second)
	ctx.End()

	if got != "<ul><li>a</li></ul>" {
		t.Errorf("stale side table leaked into the second render: %q", got)
	}
}

func TestConcurrentRendersAreIsolated(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 16)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := fmt.Sprintf("c%d", i)
			list := testList{content: Group(Text("x"), Modify(Text("y"), rowBackground(c)))}
			ctx := NewContext(Options{Logger: discardLogger()})
			ctx.Begin()
			ctx.Register(list)
			results[i] = ctx.Render(list)
			ctx.End()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		want := fmt.Sprintf(`<ul><li>x</li><li style="background-color: c%d">y</li></ul>`, i)
		if got != want {
			t.Errorf("render %d = %q, want %q", i, got, want)
		}
	}
}

func TestContextValues(t *testing.T) {
	ctx := NewContext(Options{
		Locale: language.German,
		Site:   map[string]any{"name": "Kiln"},
	})
	if ctx.Locale() != language.German {
		t.Errorf("Locale = %v", ctx.Locale())
	}
	if v, ok := ctx.Site("name"); !ok || v != "Kiln" {
		t.Errorf("Site(name) = %v, %v", v, ok)
	}
	if ctx.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if _, ok := ctx.Include("x"); ok {
		t.Error("Include without an Includer should miss")
	}

	def := NewContext(Options{})
	if def.Locale() != language.English {
		t.Errorf("default Locale = %v", def.Locale())
	}
	if url, ok := def.Assets().Asset("a.css"); !ok || url != "a.css" {
		t.Errorf("default resolver = %q, %v", url, ok)
	}
}
