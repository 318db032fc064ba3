// Package vdom provides the virtual node model used to describe editor UI.
//
// A virtual tree is an in-memory description of a UI region (the toolbar,
// a popup layer) that is independent of any live host surface. Trees are
// built fresh on every composition pass and handed to a renderer, which is
// responsible for reconciling them with the host.
//
// # Core Types
//
// VNode is the canonical node. Its Kind says whether it is a primitive
// element (Tag holds the tag name), a text leaf, a component reference
// (Comp is rendered lazily through Expand) or a fragment grouping an opaque
// nested sequence. Props holds attributes and handlers.
//
// # Building Trees
//
// H is the tree builder. It normalizes children by exactly one level:
//
//	H("div", nil, "a", []any{"b", "c"})
//	// children: Text("a"), Text("b"), Text("c")
//
// The element helpers are shorthands over the same normalizer:
//
//	Div(Class("te-toolbar"),
//	    Button(Class("tui-bold"), Title("Bold")),
//	)
package vdom
