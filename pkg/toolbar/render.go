package toolbar

import (
	"github.com/vango-dev/editorui/pkg/markup"
	"github.com/vango-dev/editorui/pkg/vdom"
)

// RenderOptions tunes the toolbar tree.
type RenderOptions struct {
	// ClassName is added to the toolbar root next to "te-toolbar-section".
	ClassName string

	// Markup renders the buttons. Default: markup.Default.
	Markup *markup.Binder
}

const (
	displayNone   = "display: none"
	displayInline = "display: inline-block"
)

// Render builds the toolbar tree. Hidden groups and items stay in the tree
// with display: none so a later retoggle only changes their style.
func Render(groups []Group, opts RenderOptions) *vdom.VNode {
	html := opts.Markup
	if html == nil {
		html = markup.Default
	}

	children := make([]*vdom.VNode, 0, len(groups)*2)
	for i, g := range groups {
		children = append(children,
			renderGroup(html, g, i),
			vdom.When(i < len(groups)-1, func() *vdom.VNode {
				return html.Sprint(`<div class="te-toolbar-divider" style=${}></div>`, display(g.Hidden))
			}),
		)
	}

	return vdom.Div(
		vdom.Class("te-toolbar-section", opts.ClassName),
		children,
	)
}

func renderGroup(html *markup.Binder, g Group, index int) *vdom.VNode {
	buttons := vdom.Range(g.Items, func(it Item, _ int) *vdom.VNode {
		return renderButton(html, it)
	})
	return html.Sprint(
		`<div class="te-toolbar-group" data-group=${} style=${}>${}</div>`,
		index, display(g.Hidden), buttons,
	)
}

func renderButton(html *markup.Binder, it Item) *vdom.VNode {
	class := it.ClassName
	if it.Active {
		class += " active"
	}
	tooltip := it.Tooltip
	if it.Active && it.ActiveTooltip != "" {
		tooltip = it.ActiveTooltip
	}
	attrs := vdom.Props{
		"class":     class,
		"title":     tooltip,
		"data-name": it.Name,
		"style":     display(it.Hidden),
	}
	if it.Command != "" {
		attrs["data-command"] = it.Command
	}
	if it.Toggle {
		attrs["data-toggle"] = true
	}
	return html.Sprint(`<button type="button" ...${}></button>`, attrs)
}

func display(hidden bool) string {
	if hidden {
		return displayNone
	}
	return displayInline
}
