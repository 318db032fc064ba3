package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateTextNode(t *testing.T) {
	node := CreateTextNode("hello")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Tag != TextNodeTag {
		t.Errorf("Tag = %q, want %q", node.Tag, TextNodeTag)
	}
	if node.NodeValue() != "hello" {
		t.Errorf("NodeValue() = %q, want hello", node.NodeValue())
	}
	if node.Children == nil || len(node.Children) != 0 {
		t.Errorf("Children = %v, want empty non-nil slice", node.Children)
	}
}

func TestTextNodesInterchangeable(t *testing.T) {
	a := CreateTextNode("same")
	b := CreateTextNode("same")

	if a == b {
		t.Fatal("text nodes should be fresh allocations")
	}
	if !Equal(a, b) {
		t.Error("text nodes with equal nodeValue should be structurally equal")
	}
	if Equal(a, CreateTextNode("other")) {
		t.Error("text nodes with different nodeValue should differ")
	}
}

func TestNodeValueOnElement(t *testing.T) {
	if got := Div().NodeValue(); got != "" {
		t.Errorf("NodeValue() on element = %q, want empty", got)
	}
	var nilNode *VNode
	if got := nilNode.NodeValue(); got != "" {
		t.Errorf("NodeValue() on nil = %q, want empty", got)
	}
}

func TestExpand(t *testing.T) {
	greeting := Named("Greeting", func(props Props) *VNode {
		name, _ := props["name"].(string)
		children, _ := props["children"].([]*VNode)
		return H("p", nil, "Hello, "+name, children)
	})

	node := H(greeting, Props{"name": "Ada"}, "!")
	if node.Kind != KindComponent {
		t.Fatalf("Kind = %v, want KindComponent", node.Kind)
	}
	if node.TypeName() != "Greeting" {
		t.Errorf("TypeName() = %q, want Greeting", node.TypeName())
	}

	out := node.Expand()
	if out.Tag != "p" {
		t.Fatalf("expanded Tag = %q, want p", out.Tag)
	}
	if got := TextContent(out); got != "Hello, Ada!" {
		t.Errorf("TextContent = %q, want %q", got, "Hello, Ada!")
	}

	// Expand does not mutate the reference node's props
	if _, ok := node.Props["children"]; ok {
		t.Error("Expand should not write children into the node props")
	}
}

func TestExpandNonComponent(t *testing.T) {
	div := Div()
	if div.Expand() != div {
		t.Error("Expand on an element should return the node itself")
	}
}

func TestEqual(t *testing.T) {
	comp := ComponentFunc(func(Props) *VNode { return nil })
	other := ComponentFunc(func(Props) *VNode { return Div() })

	tests := []struct {
		name string
		a, b *VNode
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", Div(), nil, false},
		{"same element", Div(Class("a"), "x"), Div(Class("a"), "x"), true},
		{"different class", Div(Class("a")), Div(Class("b")), false},
		{"different children", Div("x"), Div("y"), false},
		{"same component", H(comp, nil), H(comp, nil), true},
		{"different component", H(comp, nil), H(other, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComponentName(t *testing.T) {
	if got := ComponentName(Named("Heading", nil)); got != "Heading" {
		t.Errorf("ComponentName(Named) = %q, want Heading", got)
	}
	if got := ComponentName(nil); got != "" {
		t.Errorf("ComponentName(nil) = %q, want empty", got)
	}
	if got := ComponentName(ComponentFunc(nil)); got != "ComponentFunc" {
		t.Errorf("ComponentName(ComponentFunc) = %q, want ComponentFunc", got)
	}
}
