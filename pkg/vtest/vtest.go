package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/editorui/pkg/render"
	"github.com/vango-dev/editorui/pkg/vdom"
)

const displayNone = "display: none"

// RenderToString renders node to HTML, failing the test on error.
//
// Example:
//
//	html := vtest.RenderToString(t, toolbar.Render(groups, toolbar.RenderOptions{}))
func RenderToString(tb testing.TB, node *vdom.VNode) string {
	tb.Helper()
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		tb.Fatalf("render failed: %v", err)
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(tb testing.TB, node *vdom.VNode, expected string) {
	tb.Helper()
	html := RenderToString(tb, node)
	if !strings.Contains(html, expected) {
		tb.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(tb testing.TB, node *vdom.VNode, unexpected string) {
	tb.Helper()
	html := RenderToString(tb, node)
	if strings.Contains(html, unexpected) {
		tb.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, node, "button")
func ExpectElement(tb testing.TB, node *vdom.VNode, tag string) {
	tb.Helper()
	html := RenderToString(tb, node)
	if !strings.Contains(html, "<"+tag) {
		tb.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, node, "class", "te-popup-add-table")
func ExpectAttribute(tb testing.TB, node *vdom.VNode, attr, value string) {
	tb.Helper()
	html := RenderToString(tb, node)
	needle := attr + `="` + escape(value) + `"`
	if !strings.Contains(html, needle) {
		tb.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// FindItem returns the toolbar button whose data-name is name, or nil.
func FindItem(node *vdom.VNode, name string) *vdom.VNode {
	return vdom.Find(node, func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Props["data-name"] == name
	})
}

// ExpectHidden asserts that the named toolbar button is styled display: none.
func ExpectHidden(tb testing.TB, node *vdom.VNode, name string) {
	tb.Helper()
	btn := mustFindItem(tb, node, name)
	if btn != nil && btn.Props["style"] != displayNone {
		tb.Errorf("item %q: style = %v, want %q", name, btn.Props["style"], displayNone)
	}
}

// ExpectVisible asserts that the named toolbar button is not hidden.
func ExpectVisible(tb testing.TB, node *vdom.VNode, name string) {
	tb.Helper()
	btn := mustFindItem(tb, node, name)
	if btn != nil && btn.Props["style"] == displayNone {
		tb.Errorf("item %q is hidden", name)
	}
}

// ExpectActive asserts the active class of the named toolbar button.
func ExpectActive(tb testing.TB, node *vdom.VNode, name string, active bool) {
	tb.Helper()
	btn := mustFindItem(tb, node, name)
	if btn == nil {
		return
	}
	class, _ := btn.Props["class"].(string)
	if got := hasClass(class, "active"); got != active {
		tb.Errorf("item %q: active = %v, want %v (class %q)", name, got, active, class)
	}
}

func mustFindItem(tb testing.TB, node *vdom.VNode, name string) *vdom.VNode {
	tb.Helper()
	btn := FindItem(node, name)
	if btn == nil {
		tb.Errorf("no toolbar item %q in tree", name)
	}
	return btn
}

func hasClass(class, want string) bool {
	for _, c := range strings.Fields(class) {
		if c == want {
			return true
		}
	}
	return false
}

// escape applies the renderer's attribute escaping for the characters
// tests commonly use.
func escape(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	).Replace(s)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
