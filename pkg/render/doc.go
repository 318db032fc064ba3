// Package render serializes virtual trees to HTML for previews and the
// command line.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(tree)
//
// Attributes are written in sorted order; className becomes class, boolean
// attributes are written bare, and function or component props are
// skipped. Component nodes are expanded one level at a time, up to
// RendererConfig.MaxDepth. Fragments render their children inline. All
// text is escaped.
//
// RenderPage wraps a tree in a complete document; StreamingRenderer does
// the same with flushes after the head and the body.
package render
