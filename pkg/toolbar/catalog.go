package toolbar

import "github.com/vango-dev/editorui/pkg/i18n"

// buildCatalog creates the default entries in catalog order. Every entry
// but the scroll-sync toggle gets IconClass appended here, once.
func buildCatalog(tr i18n.Translator) (map[string]Item, []string) {
	entries := []Item{
		{Name: "heading", ClassName: "tui-heading", Tooltip: tr.Get("Headings"), State: "heading"},
		{Name: "bold", ClassName: "tui-bold", Command: "bold", Tooltip: tr.Get("Bold"), State: "strong"},
		{Name: "italic", ClassName: "tui-italic", Command: "italic", Tooltip: tr.Get("Italic"), State: "emph"},
		{Name: "strike", ClassName: "tui-strike", Command: "strike", Tooltip: tr.Get("Strike"), State: "strike"},
		{Name: "hr", ClassName: "tui-hrline", Command: "hr", Tooltip: tr.Get("Line"), State: "thematicBreak"},
		{Name: "quote", ClassName: "tui-quote", Command: "blockQuote", Tooltip: tr.Get("Blockquote"), State: "blockQuote"},
		{Name: "ul", ClassName: "tui-ul", Command: "bulletList", Tooltip: tr.Get("Unordered list"), State: "bulletList"},
		{Name: "ol", ClassName: "tui-ol", Command: "orderedList", Tooltip: tr.Get("Ordered list"), State: "orderedList"},
		{Name: "task", ClassName: "tui-task", Command: "taskList", Tooltip: tr.Get("Task"), State: "taskList"},
		{Name: "table", ClassName: "tui-table", Tooltip: tr.Get("Insert table"), State: "table"},
		{Name: "image", ClassName: "tui-image", Tooltip: tr.Get("Insert image")},
		{Name: "link", ClassName: "tui-link", Tooltip: tr.Get("Insert link")},
		{Name: "code", ClassName: "tui-code", Command: "code", Tooltip: tr.Get("Code"), State: "code"},
		{Name: "codeblock", ClassName: "tui-codeblock", Command: "codeBlock", Tooltip: tr.Get("Insert CodeBlock"), State: "codeBlock"},
		{Name: "indent", ClassName: "tui-indent", Command: "indent", Tooltip: tr.Get("Indent")},
		{Name: "outdent", ClassName: "tui-outdent", Command: "outdent", Tooltip: tr.Get("Outdent")},
		{
			Name:          ScrollSyncName,
			ClassName:     "tui-scrollsync",
			Tooltip:       tr.Get("Auto scroll disabled"),
			ActiveTooltip: tr.Get("Auto scroll enabled"),
			Active:        true,
			Toggle:        true,
			Command:       "toggleScrollSync",
		},
		{Name: "more", ClassName: "tui-more", Tooltip: tr.Get("More")},
	}

	items := make(map[string]Item, len(entries))
	names := make([]string, 0, len(entries))
	for _, it := range entries {
		if !it.IsScrollSync() {
			it.ClassName += " " + IconClass
		}
		items[it.Name] = it
		names = append(names, it.Name)
	}
	return items, names
}
