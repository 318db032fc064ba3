package layer

import (
	"strconv"

	"github.com/vango-dev/editorui/pkg/i18n"
	"github.com/vango-dev/editorui/pkg/markup"
	"github.com/vango-dev/editorui/pkg/vdom"
)

// Default table selection area. The grid never grows past twice the
// default in either direction.
const (
	TableAreaCols = 10
	TableAreaRows = 8

	MaxTableCols = 2 * TableAreaCols
	MaxTableRows = 2 * TableAreaRows
)

type bodies struct {
	heading vdom.Component
	link    vdom.Component
	image   vdom.Component
	table   vdom.Component
	custom  vdom.Component
}

func newBodies(tr i18n.Translator, html *markup.Binder) bodies {
	return bodies{
		heading: vdom.Named("HeadingLayerBody", func(props vdom.Props) *vdom.VNode {
			return headingBody(tr, html, props)
		}),
		link: vdom.Named("LinkLayerBody", func(props vdom.Props) *vdom.VNode {
			return linkBody(tr, html, props)
		}),
		image: vdom.Named("ImageLayerBody", func(props vdom.Props) *vdom.VNode {
			return imageBody(tr, html, props)
		}),
		table: vdom.Named("TableLayerBody", func(props vdom.Props) *vdom.VNode {
			return tableBody(html, props)
		}),
		custom: vdom.Named("CustomLayer", func(props vdom.Props) *vdom.VNode {
			return customBody(html, props)
		}),
	}
}

// headingBody lists heading levels 1-6 and a paragraph entry. props["level"]
// marks the current block.
func headingBody(tr i18n.Translator, html *markup.Binder, props vdom.Props) *vdom.VNode {
	current := propInt(props, "level", 0)

	items := vdom.Repeat(6, func(i int) *vdom.VNode {
		level := i + 1
		return html.Sprint(
			`<li class=${} data-type="Heading" data-level=${}><${}>${} ${}<//></li>`,
			activeClass(level == current), level, "h"+strconv.Itoa(level), tr.Get("Heading"), level,
		)
	})
	paragraph := html.Sprint(
		`<li class=${} data-type="Paragraph"><div>${}</div></li>`,
		activeClass(current == 0 && propBool(props, "paragraph")), tr.Get("Paragraph"),
	)

	return html.Sprint(`<ul>${}${}</ul>`, items, paragraph)
}

// linkBody is the URL/text form. props["url"] and props["text"] prefill it.
func linkBody(tr i18n.Translator, html *markup.Binder, props vdom.Props) *vdom.VNode {
	return html.Sprint(`
		<div>
			<label for="toastuiLinkUrlInput">${}</label>
			<input id="toastuiLinkUrlInput" type="text" value=${} />
			<label for="toastuiLinkTextInput">${}</label>
			<input id="toastuiLinkTextInput" type="text" value=${} />
			${}
		</div>`,
		tr.Get("URL"), propString(props, "url", ""),
		tr.Get("Link text"), propString(props, "text", ""),
		buttons(tr, html),
	)
}

// imageBody has a file tab and a URL tab. props["activeTab"] picks one.
func imageBody(tr i18n.Translator, html *markup.Binder, props vdom.Props) *vdom.VNode {
	tab := propString(props, "activeTab", "file")
	fileTab := tab != "url"

	return html.Sprint(`
		<div>
			<div class="te-tab">
				<button type="button" class=${} aria-label=${}>${}</button>
				<button type="button" class=${} aria-label=${}>${}</button>
			</div>
			<div style=${}>
				<span class="te-file-name">${}</span>
				<button type="button" class="te-file-select-button">${}</button>
				<input id="toastuiImageFileInput" type="file" accept="image/*" />
			</div>
			<div style=${}>
				<label for="toastuiImageUrlInput">${}</label>
				<input id="toastuiImageUrlInput" type="text" value=${} />
			</div>
			<label for="toastuiAltTextInput">${}</label>
			<input id="toastuiAltTextInput" type="text" value=${} />
			${}
		</div>`,
		activeClass(fileTab), "File", tr.Get("File"),
		activeClass(!fileTab), "URL", tr.Get("URL"),
		shown(fileTab),
		propString(props, "fileName", tr.Get("No file")), tr.Get("Choose a file"),
		shown(!fileTab),
		tr.Get("Image URL"), propString(props, "url", ""),
		tr.Get("Description"), propString(props, "altText", ""),
		buttons(tr, html),
	)
}

// tableBody is the row/column picker. props["rows"] and props["cols"] are
// the current selection; the grid grows past the default area to fit it,
// up to MaxTableRows by MaxTableCols.
func tableBody(html *markup.Binder, props vdom.Props) *vdom.VNode {
	rows := clamp(propInt(props, "rows", 0), 0, MaxTableRows-1)
	cols := clamp(propInt(props, "cols", 0), 0, MaxTableCols-1)
	areaRows := max(TableAreaRows, rows+1)
	areaCols := max(TableAreaCols, cols+1)

	grid := vdom.Repeat(areaRows, func(r int) *vdom.VNode {
		cells := vdom.Repeat(areaCols, func(c int) *vdom.VNode {
			class := "te-table-cell"
			if r < rows && c < cols {
				class += " selected"
			}
			return html.Sprint(`<td class=${} data-row=${} data-col=${}></td>`, class, r, c)
		})
		return html.Sprint(`<tr>${}</tr>`, cells)
	})

	return html.Sprint(`
		<div class="te-table-selection">
			<table><tbody>${}</tbody></table>
			<p class="te-description">${}</p>
		</div>`,
		grid, vdom.Textf("%d x %d", cols, rows),
	)
}

// customBody wraps the caller body taken from props["layerBody"].
func customBody(html *markup.Binder, props vdom.Props) *vdom.VNode {
	body, _ := props["layerBody"].(vdom.Component)
	if body == nil {
		return html.Sprint(`<div class="te-custom-layer"></div>`)
	}
	rest := props.Clone()
	delete(rest, "layerBody")
	return html.Sprint(`<div class="te-custom-layer"><${} ...${} /></div>`, body, rest)
}

func buttons(tr i18n.Translator, html *markup.Binder) *vdom.VNode {
	return html.Sprint(`
		<div class="te-button-container">
			<button type="button" class="te-close-button">${}</button>
			<button type="button" class="te-ok-button">${}</button>
		</div>`,
		tr.Get("Cancel"), tr.Get("OK"),
	)
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}

func shown(visible bool) string {
	if visible {
		return "display: block"
	}
	return "display: none"
}

func propString(props vdom.Props, key, def string) string {
	if s, ok := props[key].(string); ok && s != "" {
		return s
	}
	return def
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func propInt(props vdom.Props, key string, def int) int {
	switch v := props[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func propBool(props vdom.Props, key string) bool {
	b, _ := props[key].(bool)
	return b
}
