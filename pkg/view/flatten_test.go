package view

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/kiln/pkg/attrs"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{nil, "/"},
		{Path{0}, "/0"},
		{Path{0, 2, 1}, "/0/2/1"},
	}
	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("Path%v.String() = %q, want %q", []int(tt.path), got, tt.want)
		}
	}
}

func TestPathChildDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	a := base.Child(1)
	b := base.Child(2)
	if a.String() != "/0/1" || b.String() != "/0/2" {
		t.Errorf("got %s and %s", a, b)
	}
	if got := b.Parent().String(); got != "/0" {
		t.Errorf("Parent() = %s", got)
	}
}

func TestFlattenPrimitive(t *testing.T) {
	n := Text("a")
	got := Flatten(n, Path{3})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "/3/0" {
		t.Errorf("ID = %q, want /3/0", got[0].ID)
	}
	if !reflect.DeepEqual(got[0].Node, n) {
		t.Errorf("Node = %v", got[0].Node)
	}
}

func TestFlattenNestedGroups(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")
	got := Flatten(Group(a, Group(b, Group()), nil, InlineGroup(c)), nil)

	if diff := cmp.Diff([]Identity{"/0", "/1", "/2"}, got.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
	if !reflect.DeepEqual(got.Nodes(), []Node{a, b, c}) {
		t.Errorf("Nodes() = %v", got.Nodes())
	}
}

func TestFlattenIdempotentUnderRewrap(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")
	nodes := map[string]Node{
		"primitive":   a,
		"group":       Group(a, b, c),
		"nested":      Group(a, Group(b, c)),
		"inline":      InlineGroup(a, b),
		"empty":       Group(),
		"subviews":    Flatten(Group(a, b), Path{9}),
		"with id":     Group(a.WithAttributes(attrs.Set{}.WithID("first")), b),
		"double wrap": Group(Group(a)),
	}

	for name, n := range nodes {
		t.Run(name, func(t *testing.T) {
			want := Flatten(n, Path{1})
			got := Flatten(Group(n), Path{1})
			if diff := cmp.Diff(want.IDs(), got.IDs()); diff != "" {
				t.Errorf("IDs mismatch (-want +got):\n%s", diff)
			}
			if !reflect.DeepEqual(want.Nodes(), got.Nodes()) {
				t.Errorf("Nodes differ: %v vs %v", want.Nodes(), got.Nodes())
			}
		})
	}
}

func TestFlattenSplicesSubviewsAsIs(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")
	ready := Flatten(Group(a, b), Path{5})

	got := Flatten(Group(ready, c), Path{5})
	want := []Identity{"/5/0", "/5/1", "/5/2"}
	if diff := cmp.Diff(want, got.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
	if !reflect.DeepEqual(got.Nodes(), []Node{a, b, c}) {
		t.Errorf("Nodes() = %v", got.Nodes())
	}
}

func TestFlattenSplicedSubviewsKeepIdentitiesUnique(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")
	tests := []struct {
		name string
		node Node
		want []Identity
	}{
		{
			name: "fresh leaf before spliced leaf",
			node: Group(a, Flatten(b, nil)),
			want: []Identity{"/0", "/1"},
		},
		{
			name: "spliced leaves from another position",
			node: Group(Flatten(Group(a, b), Path{5}), c),
			want: []Identity{"/0", "/1", "/2"},
		},
		{
			name: "same subviews spliced twice",
			node: Group(Flatten(Group(a, b), nil), Flatten(Group(a, b), nil)),
			want: []Identity{"/0", "/1", "/2", "/3"},
		},
		{
			name: "spliced leaves after a gap",
			node: Group(Subviews{{Node: a, Path: Path{3}, ID: "/3"}}, b),
			want: []Identity{"/3", "/4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.node, nil)
			if diff := cmp.Diff(tt.want, got.IDs()); diff != "" {
				t.Errorf("IDs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenExplicitIdentity(t *testing.T) {
	n := Text("a").WithAttributes(attrs.Set{}.WithID("intro"))
	got := Flatten(Group(Text("x"), n), nil)
	if got[1].ID != "#intro" {
		t.Errorf("ID = %q, want #intro", got[1].ID)
	}
	if !got[1].ID.IsExplicit() || got[0].ID.IsExplicit() {
		t.Error("IsExplicit mismatch")
	}
	if got[1].Path.String() != "/1" {
		t.Errorf("Path = %s, want /1", got[1].Path)
	}
}

func TestFlattenEmpty(t *testing.T) {
	for name, n := range map[string]Node{
		"group":  Group(),
		"inline": InlineGroup(),
		"empty":  Empty(),
		"nil":    nil,
	} {
		if got := Flatten(n, nil); len(got) != 0 {
			t.Errorf("%s: Flatten = %v, want empty", name, got)
		}
	}
}

func TestEmptyCompositeRendersEmptyString(t *testing.T) {
	for name, n := range map[string]Node{
		"group":        Group(),
		"empty":        Empty(),
		"nested empty": Group(Group(), Empty()),
	} {
		if got := render(t, n); got != "" {
			t.Errorf("%s rendered %q, want empty", name, got)
		}
	}
}

func TestCompositeRendersChildrenWithoutSeparator(t *testing.T) {
	got := render(t, Group(Text("a"), Group(Text("b"), Text("c"))))
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}
