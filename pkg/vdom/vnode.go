package vdom

import "reflect"

// TextNodeTag is the tag carried by every text node.
const TextNodeTag = "TEXT_NODE"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Opaque nested sequence
	KindComponent              // Component reference
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Tag name, TextNodeTag for text nodes
	Comp     Component // For KindComponent
	Props    Props     // Attributes and handlers
	Children []*VNode  // Normalized children, never raw strings
}

// Props holds attributes and event handlers.
type Props map[string]any

// Clone returns a shallow copy of the props. A nil receiver yields an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// NodeValue returns the text of a text node, or "" for any other kind.
func (v *VNode) NodeValue() string {
	if v == nil || v.Kind != KindText {
		return ""
	}
	s, _ := v.Props["nodeValue"].(string)
	return s
}

// IsText reports whether the node is a text leaf.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}

// Expand resolves a component reference one level by invoking its Render
// with the node's props. Children given at construction are passed in
// props["children"]. Any other kind is returned unchanged.
func (v *VNode) Expand() *VNode {
	if v == nil || v.Kind != KindComponent || IsNilComponent(v.Comp) {
		return v
	}
	props := v.Props.Clone()
	if len(v.Children) > 0 {
		props["children"] = v.Children
	}
	return v.Comp.Render(props)
}

// TypeName returns the tag name, or the component's name for component nodes.
func (v *VNode) TypeName() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindComponent {
		return ComponentName(v.Comp)
	}
	return v.Tag
}

// Equal reports whether two trees are structurally equal. Component
// references compare by identity, props by deep equality.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || len(a.Children) != len(b.Children) {
		return false
	}
	if a.Kind == KindComponent && !sameComponent(a.Comp, b.Comp) {
		return false
	}
	if len(a.Props) != len(b.Props) {
		return false
	}
	for k, av := range a.Props {
		bv, ok := b.Props[k]
		if !ok || !propEqual(av, bv) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func propEqual(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Func || rb.Kind() == reflect.Func {
		return ra.Kind() == rb.Kind() && ra.Pointer() == rb.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

func sameComponent(a, b Component) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Func, reflect.Ptr:
		return ra.Pointer() == rb.Pointer()
	}
	if ra.Type().Comparable() {
		return a == b
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that renders to a subtree given props.
type Component interface {
	Render(props Props) *VNode
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(props Props) *VNode

// Render implements Component.
func (f ComponentFunc) Render(props Props) *VNode {
	return f(props)
}

// NamedComponent is a component with a stable display name.
type NamedComponent struct {
	Name   string
	render func(Props) *VNode
}

// Render implements Component.
func (n *NamedComponent) Render(props Props) *VNode {
	return n.render(props)
}

// Named creates a component with a display name, used in error messages
// and debug output.
func Named(name string, render func(Props) *VNode) *NamedComponent {
	return &NamedComponent{Name: name, render: render}
}

// IsNilComponent reports whether c is nil or wraps a nil pointer or func.
func IsNilComponent(c Component) bool {
	if c == nil {
		return true
	}
	switch v := reflect.ValueOf(c); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// ComponentName returns a display name for the component.
func ComponentName(c Component) string {
	if IsNilComponent(c) {
		return ""
	}
	if n, ok := c.(*NamedComponent); ok {
		return n.Name
	}
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
