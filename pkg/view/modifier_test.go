package view

import (
	"testing"

	"github.com/vango-dev/kiln/pkg/attrs"
)

func TestModifierDistributesOverComposite(t *testing.T) {
	group := Group(Text("a"), Text("b"), Text("c"))

	got := Apply(group, color("red"))

	if !IsComposite(got) {
		t.Fatalf("Apply(composite) = %T, want composite", got)
	}
	children := Nodes(got)
	if len(children) != 3 {
		t.Fatalf("len(children) = %d, want 3", len(children))
	}
	for i, child := range children {
		if v, ok := child.Attributes().Style("color"); !ok || v != "red" {
			t.Errorf("child %d color = %q, %v", i, v, ok)
		}
	}
	want := `<span style="color: red">a</span><span style="color: red">b</span><span style="color: red">c</span>`
	if out := render(t, got); out != want {
		t.Errorf("render:\n got %q\nwant %q", out, want)
	}
}

func TestModifierKeepsFamily(t *testing.T) {
	if _, ok := Apply(InlineGroup(Text("a"), Text("b")), color("red")).(Inline); !ok {
		t.Error("inline group lost its inline family")
	}
	if _, ok := Apply(Group(Text("a")), color("red")).(Fragment); !ok {
		t.Error("block group changed family")
	}
	if _, ok := ApplyInline(Text("a"), color("red")).(Inline); !ok {
		t.Error("ApplyInline returned non-inline")
	}
}

func TestNestedModifierChainKeepsBothStyles(t *testing.T) {
	tests := []struct {
		name string
		mods []Modifier
		want string
	}{
		{"bold then red", []Modifier{bold(), color("red")}, `<span style="font-weight: bold; color: red">x</span>`},
		{"red then bold", []Modifier{color("red"), bold()}, `<span style="color: red; font-weight: bold">x</span>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Modify(Text("x"), tt.mods...)
			if _, ok := asProxy(n); !ok {
				t.Fatalf("Modify returned %T, want a single proxy", n)
			}
			if got := render(t, n); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModifierChainCollapsesIntoOneElement(t *testing.T) {
	n := Modify(Div(Text("a")), color("red"), bold(), func(p Proxy) Node { return p.Class("card") })

	got := render(t, n)
	want := `<div class="card" style="color: red; font-weight: bold">a</div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestModifierChainSharesIdentity(t *testing.T) {
	item := Modify(Text("two"), rowBackground("blue"), color("red"), rowPadding("8px"))
	list := testList{content: Group(Text("one"), item)}

	_, ctx := renderWith(t, Options{}, list)

	row, ok := ctx.Build().ListRow("/0/1")
	if !ok {
		t.Fatal("no row registered for /0/1")
	}
	if row.Background != "blue" || row.Padding != AllEdges("8px") {
		t.Errorf("row = %+v, want background and padding", row)
	}
}

func TestExplicitIDIsIdentity(t *testing.T) {
	item := Modify(Text("two"), rowBackground("blue"), func(p Proxy) Node { return p.ID("second") })
	list := testList{content: Group(Text("one"), item)}

	out, ctx := renderWith(t, Options{}, list)

	if _, ok := ctx.Build().ListRow("#second"); !ok {
		t.Error("no row registered for #second")
	}
	want := `<ul><li>one</li><li style="background-color: blue"><span id="second">two</span></li></ul>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestModifierReplacingContent(t *testing.T) {
	wrapInDiv := func(p Proxy) Node { return Div(p) }

	got := render(t, Modify(Text("a"), color("red"), wrapInDiv))
	want := `<div><span style="color: red">a</span></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Content that does not embed the proxy replaces it with everything
	// the proxy carried.
	replaced := Modify(Text("a"), color("red"), rowBackground("blue"), func(Proxy) Node { return Text("b") })
	if got := render(t, replaced); got != "b" {
		t.Errorf("replaced content = %q, want %q", got, "b")
	}
	if _, ok := asProxy(replaced); ok {
		t.Errorf("replaced content is still a proxy: %T", replaced)
	}

	if out := Apply(Text("a"), func(Proxy) Node { return nil }); render(t, out) != "" {
		t.Error("nil modifier result should render empty")
	}
}

func TestApplyInlineDropsBlockResult(t *testing.T) {
	wrapInDiv := func(p Proxy) Node { return Div(p) }

	got := ModifyInline(Text("a"), color("red"), wrapInDiv)
	if out := render(t, got); out != `<span style="color: red">a</span>` {
		t.Errorf("got %q", out)
	}

	group := ApplyInline(InlineGroup(Text("a"), Text("b")), wrapInDiv)
	if out := render(t, group); out != "ab" {
		t.Errorf("group got %q", out)
	}
}

func TestApplyEmptyComposite(t *testing.T) {
	calls := 0
	m := func(p Proxy) Node { calls++; return p }

	got := Apply(Group(), m)
	if !IsComposite(got) || len(Nodes(got)) != 0 {
		t.Errorf("Apply(empty) = %v", got)
	}
	if calls != 0 {
		t.Errorf("modifier called %d times on empty composite", calls)
	}
	if render(t, got) != "" {
		t.Error("empty composite should render empty")
	}
}

func TestProxyValueSemantics(t *testing.T) {
	base := wrap(Text("a")).Style(attrs.Decl("color", "red"))
	withBg := base.Register(func(*BuildContext, Identity) {})
	_ = base.Class("x")

	if base.Attributes().HasClass("x") {
		t.Error("Class mutated the receiver")
	}
	if len(base.Registrations()) != 0 || len(withBg.Registrations()) != 1 {
		t.Errorf("registrations: base %d, withBg %d", len(base.Registrations()), len(withBg.Registrations()))
	}
}

func TestFragmentWithAttributesDistributes(t *testing.T) {
	g := Group(Text("a"), Text("b")).WithAttributes(attrs.Set{}.AddClasses("c"))
	if got := render(t, g); got != `<span class="c">a</span><span class="c">b</span>` {
		t.Errorf("got %q", got)
	}
}
