package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func activeBuild() *BuildContext {
	b := NewBuildContext(discardLogger())
	b.Begin()
	return b
}

func TestSideTableRegistrationMerges(t *testing.T) {
	b := activeBuild()

	b.RegisterListRow("x", ListRow{Background: "blue"})
	b.RegisterListRow("x", ListRow{Padding: AllEdges("8px")})

	got, ok := b.ListRow("x")
	if !ok {
		t.Fatal("ListRow(x) missing")
	}
	want := ListRow{Background: "blue", Padding: AllEdges("8px")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListRow mismatch (-want +got):\n%s", diff)
	}
}

func TestSideTablePerEdgeMerge(t *testing.T) {
	b := activeBuild()

	b.RegisterListRow("x", ListRow{Padding: Edges{Top: "4px", Left: "2px"}})
	b.RegisterListRow("x", ListRow{Padding: Edges{Top: "6px", Bottom: "1px"}})
	b.RegisterListRow("x", ListRow{CornerRadius: Corners{TopLeft: "3px"}})
	b.RegisterListRow("x", ListRow{CornerRadius: Corners{BottomRight: "5px"}})

	got, _ := b.ListRow("x")
	want := ListRow{
		Padding:      Edges{Top: "6px", Bottom: "1px", Left: "2px"},
		CornerRadius: Corners{TopLeft: "3px", BottomRight: "5px"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListRow mismatch (-want +got):\n%s", diff)
	}
}

func TestSideTableMiss(t *testing.T) {
	b := activeBuild()
	if row, ok := b.ListRow("nobody"); ok || !row.IsZero() {
		t.Errorf("ListRow(miss) = %+v, %v", row, ok)
	}
	if p, ok := b.Presentation("nobody"); ok || !p.IsZero() {
		t.Errorf("Presentation(miss) = %+v, %v", p, ok)
	}
}

func TestPresentationRecord(t *testing.T) {
	b := activeBuild()

	b.RegisterPresentation("m", Presentation{Dismiss: DismissDisabled})
	b.RegisterPresentation("m", Presentation{Background: "#fff"})

	got, ok := b.Presentation("m")
	if !ok || got.Dismiss != DismissDisabled || got.Background != "#fff" {
		t.Errorf("Presentation = %+v, %v", got, ok)
	}
	if b.Entries() != 2 {
		t.Errorf("Entries() = %d, want 2", b.Entries())
	}
}

func TestBuildContextLifecycle(t *testing.T) {
	b := NewBuildContext(discardLogger())

	b.RegisterListRow("x", ListRow{Background: "red"})
	if _, ok := b.ListRow("x"); ok {
		t.Error("registration before Begin was accepted")
	}

	b.Begin()
	b.RegisterListRow("x", ListRow{Background: "red"})
	b.UseFont(Font{Family: "Inter"})
	b.End()

	if !b.Sealed() || b.Active() {
		t.Error("End did not seal")
	}
	b.RegisterListRow("y", ListRow{Background: "red"})
	if _, ok := b.ListRow("y"); ok {
		t.Error("registration after End was accepted")
	}
	if _, ok := b.ListRow("x"); !ok {
		t.Error("lookup after End lost data")
	}

	b.Begin()
	if _, ok := b.ListRow("x"); ok {
		t.Error("Begin did not clear the side table")
	}
	if !b.Assets().IsEmpty() {
		t.Error("Begin did not clear discovered assets")
	}
}

func TestAssetDiscoveryFirstUseOrder(t *testing.T) {
	b := activeBuild()

	b.UseStylesheet("/b.css")
	b.UseStylesheet("/a.css")
	b.UseStylesheet("/b.css")
	b.UseScript("/app.js")
	b.UseFont(Font{Family: "Inter", Href: "/inter.css"})
	b.UseFont(Font{Family: "Inter", Href: "/other.css"})
	b.UseLanguage("go")
	b.UseLanguage("")
	b.UseLanguage("hcl")
	b.UseLanguage("go")

	want := Assets{
		Fonts:       []Font{{Family: "Inter", Href: "/inter.css"}},
		Stylesheets: []string{"/b.css", "/a.css"},
		Scripts:     []string{"/app.js"},
		Languages:   []string{"go", "hcl"},
	}
	if diff := cmp.Diff(want, b.Assets()); diff != "" {
		t.Errorf("Assets mismatch (-want +got):\n%s", diff)
	}
}

func TestTable(t *testing.T) {
	sum := NewTable(func(old, next int) int { return old + next })
	sum.Register("b", 1)
	sum.Register("a", 2)
	sum.Register("b", 3)

	if v, _ := sum.Lookup("b"); v != 4 {
		t.Errorf("Lookup(b) = %d, want 4", v)
	}
	if diff := cmp.Diff([]Identity{"b", "a"}, sum.Identities()); diff != "" {
		t.Errorf("Identities mismatch (-want +got):\n%s", diff)
	}

	last := NewTable[string](nil)
	last.Register("x", "1")
	last.Register("x", "2")
	if v, _ := last.Lookup("x"); v != "2" {
		t.Errorf("nil merge should replace, got %q", v)
	}

	sum.Reset()
	if sum.Len() != 0 || len(sum.Identities()) != 0 {
		t.Error("Reset left entries behind")
	}
}

func TestRecordStyles(t *testing.T) {
	row := ListRow{
		Background:   "blue",
		Padding:      Edges{Top: "1px", Bottom: "2px"},
		CornerRadius: AllCorners("4px"),
		Spacing:      "6px",
	}
	var got []string
	for _, s := range row.Styles() {
		got = append(got, s.Property+": "+s.Value)
	}
	want := []string{
		"background-color: blue",
		"padding-top: 1px",
		"padding-bottom: 2px",
		"border-radius: 4px",
		"margin-bottom: 6px",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Styles mismatch (-want +got):\n%s", diff)
	}
}
