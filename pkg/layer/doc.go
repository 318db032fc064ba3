// Package layer turns a popup trigger into a layer descriptor: the render
// function of the popup body plus its class name, header text, anchor and
// position.
//
// The set of layer kinds is closed:
//
//	f := layer.NewFactory()
//	d, ok := f.Create("link", layer.Payload{Pos: layer.Pos{X: 10, Y: 40}})
//	if !ok {
//	    return // no layer for this trigger
//	}
//	tree := d.Render(vdom.Props{"url": "https://"})
//
// A custom layer needs a caller body; its Options are copied into the
// descriptor, extension fields included.
package layer
