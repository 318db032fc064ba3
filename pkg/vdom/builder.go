package vdom

import (
	"fmt"

	"github.com/vango-dev/editorui/internal/errors"
)

// Builder is the tree construction primitive. It is a type so that
// front ends such as the markup binder can be bound to an alternate
// implementation.
type Builder func(typ any, props Props, children ...any) *VNode

// CreateTextNode wraps text in a childless text node.
func CreateTextNode(text string) *VNode {
	return &VNode{
		Kind:     KindText,
		Tag:      TextNodeTag,
		Props:    Props{"nodeValue": text},
		Children: []*VNode{},
	}
}

// H builds a node of the given type. typ is a tag name (string) or a
// Component. Children are flattened by exactly one level: a sequence
// child is spliced in place, strings become text nodes, and a sequence
// nested inside a spliced sequence is kept whole as a fragment node.
//
// H panics if typ is neither a string nor a Component.
func H(typ any, props Props, children ...any) *VNode {
	node := &VNode{
		Props:    props.Clone(),
		Children: make([]*VNode, 0, len(children)),
	}

	switch t := typ.(type) {
	case string:
		if t == "" {
			panic(errors.New("E002").WithDetail("tag name must not be empty"))
		}
		node.Kind = KindElement
		node.Tag = t
	case Component:
		if IsNilComponent(t) {
			panic(errors.New("E002").WithDetail("component reference is nil"))
		}
		node.Kind = KindComponent
		node.Comp = t
		node.Tag = ComponentName(t)
	default:
		panic(errors.New("E002").
			WithDetail(fmt.Sprintf("cannot build a node from %T", typ)).
			WithSuggestion("Pass a tag name string or a vdom.Component"))
	}

	for _, child := range children {
		node.Children = appendFlat(node.Children, child)
	}
	return node
}

// appendFlat splices one level of sequence into out.
func appendFlat(out []*VNode, child any) []*VNode {
	switch v := child.(type) {
	case []*VNode:
		for _, c := range v {
			out = appendLeaf(out, c)
		}
	case []string:
		for _, s := range v {
			out = append(out, CreateTextNode(s))
		}
	case []any:
		for _, c := range v {
			out = appendLeaf(out, c)
		}
	default:
		out = appendLeaf(out, child)
	}
	return out
}

// appendLeaf normalizes a single child without flattening.
func appendLeaf(out []*VNode, child any) []*VNode {
	switch v := child.(type) {
	case nil:
		return out
	case *VNode:
		if v == nil {
			return out
		}
		return append(out, v)
	case string:
		return append(out, CreateTextNode(v))
	case Component:
		if IsNilComponent(v) {
			return out
		}
		return append(out, &VNode{
			Kind:     KindComponent,
			Tag:      ComponentName(v),
			Comp:     v,
			Props:    Props{},
			Children: []*VNode{},
		})
	case []*VNode, []string, []any:
		return append(out, boxed(v))
	case fmt.Stringer:
		return append(out, CreateTextNode(v.String()))
	default:
		return append(out, CreateTextNode(fmt.Sprint(v)))
	}
}

// boxed keeps a nested sequence together as one fragment node. Its own
// elements are normalized as leaves; anything deeper is boxed again.
func boxed(seq any) *VNode {
	frag := &VNode{Kind: KindFragment, Props: Props{}, Children: []*VNode{}}
	switch v := seq.(type) {
	case []*VNode:
		for _, c := range v {
			frag.Children = appendLeaf(frag.Children, c)
		}
	case []string:
		for _, s := range v {
			frag.Children = append(frag.Children, CreateTextNode(s))
		}
	case []any:
		for _, c := range v {
			frag.Children = appendLeaf(frag.Children, c)
		}
	}
	return frag
}

// Fragment groups children without a wrapper element, normalizing them
// with the same rules as H.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment, Props: Props{}, Children: make([]*VNode, 0, len(children))}
	for _, child := range children {
		node.Children = appendFlat(node.Children, child)
	}
	return node
}

// Text creates a text node. Alias of CreateTextNode.
func Text(content string) *VNode {
	return CreateTextNode(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return CreateTextNode(fmt.Sprintf(format, args...))
}
