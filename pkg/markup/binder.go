package markup

import (
	"strconv"
	"strings"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/vdom"
)

// HolePlaceholder marks an embedded value in Sprint sources.
const HolePlaceholder = "${}"

// Binder turns templates into trees through a fixed builder.
type Binder struct {
	build vdom.Builder
}

// Default is bound to vdom.H.
var Default = Bind(vdom.H)

// Bind returns a Binder that builds every node through build.
func Bind(build vdom.Builder) *Binder {
	if build == nil {
		build = vdom.H
	}
	return &Binder{build: build}
}

// HTML parses the template and returns the tree it denotes. It panics on
// malformed markup.
func (b *Binder) HTML(fragments []string, values ...any) *vdom.VNode {
	node, err := b.Parse(fragments, values...)
	if err != nil {
		panic(err)
	}
	return node
}

// Sprint is HTML with the holes written inline as "${}".
func (b *Binder) Sprint(src string, values ...any) *vdom.VNode {
	return b.HTML(strings.Split(src, HolePlaceholder), values...)
}

// Parse parses the template. A single root is returned as is, several
// roots are wrapped in a fragment, and an empty template yields nil.
func (b *Binder) Parse(fragments []string, values ...any) (node *vdom.VNode, err error) {
	if len(fragments) != len(values)+1 {
		return nil, errors.New("E006").
			WithDetail("got " + strconv.Itoa(len(fragments)) + " fragments for " + strconv.Itoa(len(values)) + " values")
	}

	p := &parser{fragments: fragments, values: values, build: b.build}

	// The builder may panic on an invalid hole type; report it as a
	// markup error at the position where the element was opened.
	defer func() {
		if r := recover(); r != nil {
			ue, ok := r.(*errors.UIError)
			if !ok {
				panic(r)
			}
			node, err = nil, ue
		}
	}()

	roots, _, err := p.parseChildren(nil)
	if err != nil {
		return nil, err
	}

	switch len(roots) {
	case 0:
		return nil, nil
	case 1:
		switch v := roots[0].(type) {
		case *vdom.VNode:
			return v, nil
		case string:
			return vdom.CreateTextNode(v), nil
		}
	}
	return vdom.Fragment(roots...), nil
}
