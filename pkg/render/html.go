package render

import "strings"

// Text needs only markup characters escaped. Attribute values are always
// written double-quoted, so the quote is escaped there as well.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// attrName maps a prop key to its attribute name. It reports false for
// props that exist only on the tree: keys, children and text content.
func attrName(key string) (string, bool) {
	switch key {
	case "className":
		return "class", true
	case "htmlFor":
		return "for", true
	case "key", "children", "nodeValue":
		return "", false
	}
	if strings.HasPrefix(key, "_") {
		return "", false
	}
	return key, true
}

// Attributes written bare when true and omitted when false. Any other
// boolean prop, such as data-toggle, is written as "true" or "false".
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

// Tags kept on one line in pretty output.
var inlineTags = map[string]bool{
	"a":      true,
	"b":      true,
	"button": true,
	"code":   true,
	"em":     true,
	"i":      true,
	"label":  true,
	"small":  true,
	"span":   true,
	"strong": true,
}
