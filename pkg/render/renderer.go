package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/vdom"
)

// DefaultMaxDepth bounds nested component expansion.
const DefaultMaxDepth = 64

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Meant for the CLI and debugging.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// MaxDepth limits how many components may be expanded inside each
	// other. Defaults to DefaultMaxDepth.
	MaxDepth int
}

// Renderer serializes virtual trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to a string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0, 0)
}

// renderNode dispatches rendering based on node kind. comps counts the
// components expanded on the way down.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth, comps int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth, comps)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderFragment(w, node, depth, comps)
	case vdom.KindComponent:
		return r.renderComponent(w, node, depth, comps)
	default:
		return errors.New("E008").WithDetail(fmt.Sprintf("kind %d", node.Kind))
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth, comps int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	block := r.config.Pretty && len(node.Children) > 0 && !inlineTags[tag] && !textOnly(node)
	if block {
		w.Write([]byte{'\n'})
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1, comps); err != nil {
			return err
		}
	}
	if block {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, escapeText(node.NodeValue()))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *vdom.VNode, depth, comps int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth, comps); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent expands the component one level and renders the result.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, depth, comps int) error {
	if comps >= r.config.MaxDepth {
		return errors.New("E007").WithDetail(fmt.Sprintf("%s at depth %d", node.TypeName(), comps))
	}
	return r.renderNode(w, node.Expand(), depth, comps+1)
}

// renderAttributes renders all attributes for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]
		if isHandler(value) {
			continue
		}
		name, ok := attrName(key)
		if !ok {
			continue
		}

		if b, ok := value.(bool); ok {
			if booleanAttrs[name] {
				if b {
					if _, err := fmt.Fprintf(w, " %s", name); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue == "" && name != "value" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(strValue)); err != nil {
			return err
		}
	}
	return nil
}

// isHandler reports whether the value is a function or a component, which
// have no attribute form.
func isHandler(value any) bool {
	if value == nil {
		return false
	}
	if _, ok := value.(vdom.Component); ok {
		return true
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}

// textOnly reports whether every child is a text node.
func textOnly(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if !c.IsText() {
			return false
		}
	}
	return true
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
