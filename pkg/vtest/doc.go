// Package vtest provides render assertions for virtual node trees.
//
// Every assertion renders the node with the default renderer and checks
// the HTML, so a test reads the way the output looks:
//
//	func TestLinkLayer(t *testing.T) {
//	    d, _ := layer.NewFactory().Create("link", layer.Payload{})
//	    node := d.Render(vdom.Props{"url": "https://example.com"})
//	    vtest.ExpectElement(t, node, "input")
//	    vtest.ExpectAttribute(t, node, "value", "https://example.com")
//	}
//
// Toolbar trees have item-level helpers that locate a button by its
// data-name attribute:
//
//	vtest.ExpectHidden(t, toolbar.Render(groups, toolbar.RenderOptions{}), "scrollSync")
package vtest
