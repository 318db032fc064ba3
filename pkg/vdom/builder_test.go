package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/editorui/internal/errors"
)

// shape reduces a tree to comparable strings: tags for elements, quoted
// text for text nodes, and bracketed groups for fragments.
func shape(nodes []*VNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			out = append(out, `"`+n.NodeValue()+`"`)
		case KindFragment:
			inner := shape(n.Children)
			s := "["
			for i, x := range inner {
				if i > 0 {
					s += " "
				}
				s += x
			}
			out = append(out, s+"]")
		default:
			out = append(out, n.TypeName())
		}
	}
	return out
}

func TestHFlattensOneLevel(t *testing.T) {
	node := H("div", Props{}, "a", []any{"b", "c"})

	want := []string{`"a"`, `"b"`, `"c"`}
	if diff := cmp.Diff(want, shape(node.Children)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestHPreservesOrder(t *testing.T) {
	span := H("span", nil)
	node := H("div", nil,
		"first",
		[]*VNode{H("b", nil), H("i", nil)},
		span,
		[]string{"x", "y"},
		"last",
	)

	want := []string{`"first"`, "b", "i", "span", `"x"`, `"y"`, `"last"`}
	if diff := cmp.Diff(want, shape(node.Children)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if node.Children[3] != span {
		t.Error("node children should pass through by identity")
	}
}

func TestHDoesNotFlattenNestedSequences(t *testing.T) {
	node := H("ul", nil, []any{"a", []any{"b", []string{"c"}}, "d"})

	want := []string{`"a"`, `["b" ["c"]]`, `"d"`}
	if diff := cmp.Diff(want, shape(node.Children)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if node.Children[1].Kind != KindFragment {
		t.Errorf("nested sequence Kind = %v, want KindFragment", node.Children[1].Kind)
	}
}

func TestHNoDeduplication(t *testing.T) {
	shared := H("hr", nil)
	node := H("div", nil, shared, shared, "x", "x")

	if len(node.Children) != 4 {
		t.Fatalf("Children len = %d, want 4", len(node.Children))
	}
	if node.Children[0] != node.Children[1] {
		t.Error("repeated child should appear twice by identity")
	}
}

func TestHSkipsNil(t *testing.T) {
	var missing *VNode
	node := H("div", nil, nil, missing, []*VNode{nil, H("p", nil)})

	if diff := cmp.Diff([]string{"p"}, shape(node.Children)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestHDefaultsProps(t *testing.T) {
	node := H("div", nil)
	if node.Props == nil {
		t.Fatal("Props should default to an empty map")
	}
	if len(node.Props) != 0 {
		t.Errorf("Props len = %d, want 0", len(node.Props))
	}
}

func TestHCopiesProps(t *testing.T) {
	props := Props{"class": "a"}
	node := H("div", props)
	props["class"] = "b"

	if node.Props["class"] != "a" {
		t.Errorf("class = %v, want a (caller map must not be retained)", node.Props["class"])
	}
}

func TestHComponentChild(t *testing.T) {
	comp := Named("Badge", func(Props) *VNode { return H("span", nil, "new") })
	node := H("div", nil, comp)

	if len(node.Children) != 1 {
		t.Fatalf("Children len = %d, want 1", len(node.Children))
	}
	child := node.Children[0]
	if child.Kind != KindComponent || child.Comp != comp {
		t.Errorf("child = %+v, want component reference", child)
	}
	if got := TextContent(child.Expand()); got != "new" {
		t.Errorf("expanded text = %q, want new", got)
	}
}

func TestHPanicsOnInvalidType(t *testing.T) {
	tests := []struct {
		name string
		typ  any
	}{
		{"int", 42},
		{"empty tag", ""},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			H(tt.typ, nil)
		})
	}
}

func TestHTypedNilComponent(t *testing.T) {
	tests := []struct {
		name string
		typ  Component
	}{
		{"named pointer", (*NamedComponent)(nil)},
		{"func", ComponentFunc(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.HasCode(err, "E002") {
					t.Errorf("recovered %v, want E002 error", r)
				}
			}()
			H(tt.typ, nil)
		})
	}
}

func TestHDropsTypedNilComponentChild(t *testing.T) {
	node := H("div", nil, (*NamedComponent)(nil), "x")

	want := []string{`"x"`}
	if diff := cmp.Diff(want, shape(node.Children)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestIsNilComponent(t *testing.T) {
	tests := []struct {
		name string
		c    Component
		want bool
	}{
		{"nil", nil, true},
		{"typed nil pointer", (*NamedComponent)(nil), true},
		{"nil func", ComponentFunc(nil), true},
		{"named", Named("Cell", func(Props) *VNode { return nil }), false},
		{"func", ComponentFunc(func(Props) *VNode { return nil }), false},
	}

	for _, tt := range tests {
		if got := IsNilComponent(tt.c); got != tt.want {
			t.Errorf("%s: IsNilComponent = %v, want %v", tt.name, got, tt.want)
		}
	}
	if got := ComponentName((*NamedComponent)(nil)); got != "" {
		t.Errorf("ComponentName(typed nil) = %q, want empty", got)
	}
}

func TestHIsPure(t *testing.T) {
	a := H("div", Props{"id": "x"}, "t")
	b := H("div", Props{"id": "x"}, "t")

	if a == b {
		t.Error("H should allocate a fresh node on every call")
	}
	if !Equal(a, b) {
		t.Error("H should be deterministic")
	}
}

func TestFragment(t *testing.T) {
	node := Fragment(Div(), "text", []*VNode{Span(), P()})

	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	want := []string{"div", `"text"`, "span", "p"}
	if diff := cmp.Diff(want, shape(node.Children)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)
	if node.NodeValue() != "Count: 42" {
		t.Errorf("NodeValue() = %q, want 'Count: 42'", node.NodeValue())
	}
}
