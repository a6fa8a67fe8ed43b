package layout

import (
	"testing"

	"github.com/vango-dev/kiln/pkg/modifier"
	"github.com/vango-dev/kiln/pkg/view"
	"github.com/vango-dev/kiln/pkg/viewtest"
)

func TestListRowBackgroundOnSecondItem(t *testing.T) {
	list := List(
		view.Text("one"),
		view.Modify(view.Text("two"), modifier.ListRowBackground("blue")),
		view.Text("three"),
	)
	html, ctx := viewtest.RenderContext(t, viewtest.NewCtx().Build(), list)

	viewtest.ExpectNoFailures(t, ctx)
	viewtest.ExpectCount(t, html, "<li", 3)
	viewtest.ExpectCount(t, html, "background-color", 1)
	want := `<ul><li>one</li><li style="background-color: blue">two</li><li>three</li></ul>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestListRowModifierOnGroupReachesEveryRow(t *testing.T) {
	list := List(
		view.Modify(view.Group(view.Text("a"), view.Text("b")), modifier.ListRowBackground("red")),
		view.Text("c"),
	)
	html := viewtest.Render(t, list)
	viewtest.ExpectCount(t, html, `<li style="background-color: red">`, 2)
	viewtest.ExpectContains(t, html, "<li>c</li>")
}

func TestNestedListsKeepSeparateRows(t *testing.T) {
	inner := List(view.Text("x"), view.Modify(view.Text("y"), modifier.ListRowSpacing("2px")))
	outer := VStack(
		List(view.Modify(view.Text("a"), modifier.ListRowBackground("green")), inner),
	)
	html := viewtest.Render(t, outer)
	want := `<div style="display: flex; flex-direction: column">` +
		`<ul><li style="background-color: green">a</li>` +
		`<li><ul><li>x</li><li style="margin-bottom: 2px">y</li></ul></li></ul></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestEmptyContainers(t *testing.T) {
	tests := []struct {
		name string
		node view.Node
		want string
	}{
		{"list", List(), "<ul></ul>"},
		{"ordered", OrderedList(view.Empty()), "<ol></ol>"},
		{"stack", HStack(), `<div style="display: flex; flex-direction: row"></div>`},
		{"grid", Grid(1), `<div style="display: grid; grid-template-columns: repeat(1, minmax(0, 1fr))"></div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := viewtest.Render(t, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContainerAttributes(t *testing.T) {
	n := view.Modify(HStack(view.Text("a")).Align("center"), modifier.Class("toolbar"), modifier.Style())
	html := viewtest.Render(t, n)
	want := `<div class="toolbar" style="display: flex; flex-direction: row; align-items: center">a</div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestGridWithoutColumnsIsDropped(t *testing.T) {
	html, ctx := viewtest.RenderContext(t, viewtest.NewCtx().Build(),
		view.Group(view.Div(view.Text("before")), Grid(0, view.Text("x"))))

	if html != "<div>before</div>" {
		t.Errorf("got %q", html)
	}
	failures := ctx.Failures()
	if len(failures) != 1 || failures[0].Code != "K101" {
		t.Errorf("failures = %+v, want one K101", failures)
	}
}

func TestModalDismissPolicy(t *testing.T) {
	tests := []struct {
		name    string
		mods    []view.Modifier
		static  bool
		bgStyle bool
	}{
		{"default", nil, false, false},
		{"allowed", []view.Modifier{modifier.PresentationDismissible(true)}, false, false},
		{"disabled", []view.Modifier{modifier.PresentationDismissible(false)}, true, false},
		{"background", []view.Modifier{modifier.PresentationBackground("#222")}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := viewtest.Render(t, Modal(view.Modify(view.P(view.Text("hi")), tt.mods...)))
			if tt.static {
				viewtest.ExpectAttribute(t, html, "data-backdrop", "static")
				viewtest.ExpectAttribute(t, html, "data-keyboard", "false")
			} else {
				viewtest.ExpectNotContains(t, html, "data-backdrop")
			}
			if tt.bgStyle {
				viewtest.ExpectAttribute(t, html, "style", "background-color: #222")
			} else {
				viewtest.ExpectNotContains(t, html, "style=")
			}
			viewtest.ExpectContains(t, html, "<p>hi</p>")
		})
	}
}

func TestModalRecordsAreScopedToItsContent(t *testing.T) {
	page := view.Group(
		Modal(view.Modify(view.Div(), modifier.PresentationDismissible(false))),
		Modal(view.Div()),
	)
	html := viewtest.Render(t, page)
	viewtest.ExpectCount(t, html, `data-backdrop="static"`, 1)
}

func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		node view.Node
	}{
		{
			"list_rows",
			List(
				view.Modify(view.Text("a"), modifier.ListRowBackground("#fff"), modifier.ListRowPadding(modifier.All, "8px")),
				view.Group(view.Text("b"), view.Modify(view.Text("c"), modifier.ListRowCornerRadius("4px"), modifier.ListRowSpacing("2px"))),
			).Ordered(true),
		},
		{
			"stack_grid",
			VStack(
				view.H(1, view.Text("Title")),
				Grid(2, view.Text("x"), view.Text("y"), view.Text("z")).Spacing("4px"),
			).Spacing("1rem"),
		},
		{
			"modal",
			Modal(view.Modify(view.P(view.Text("Sure?")),
				modifier.PresentationDismissible(false),
				modifier.PresentationBackground("white"),
			)).Title("Confirm"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, ctx := viewtest.RenderContext(t, viewtest.NewCtx().Build(), tt.node)
			viewtest.ExpectNoFailures(t, ctx)
			viewtest.Golden(t, tt.name, html)
		})
	}
}
