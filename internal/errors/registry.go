package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://github.com/vango-dev/editorui/blob/main/docs/errors.md#"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup and Build Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryMarkup,
		Message:  "Malformed markup",
		Detail:   "The template could not be parsed into a tree.",
		DocURL:   docBase + "e001",
	},
	"E002": {
		Category: CategoryBuild,
		Message:  "Invalid node type",
		Detail:   "A node type must be a tag name or a component reference.",
		DocURL:   docBase + "e002",
	},
	"E003": {
		Category: CategoryMarkup,
		Message:  "Invalid spread value",
		Detail:   "Spread props must be a vdom.Props or map[string]any.",
		DocURL:   docBase + "e003",
	},
	"E004": {
		Category: CategoryMarkup,
		Message:  "Unclosed element",
		Detail:   "The template ended before an element was closed.",
		DocURL:   docBase + "e004",
	},
	"E005": {
		Category: CategoryMarkup,
		Message:  "Mismatched closing tag",
		Detail:   "A closing tag does not match the element it closes.",
		DocURL:   docBase + "e005",
	},
	"E006": {
		Category: CategoryMarkup,
		Message:  "Template arity mismatch",
		Detail:   "A template needs exactly one more fragment than embedded values.",
		DocURL:   docBase + "e006",
	},
	"E007": {
		Category: CategoryBuild,
		Message:  "Component nesting too deep",
		Detail:   "Rendering expanded more nested components than the renderer allows.",
		DocURL:   docBase + "e007",
	},
	"E008": {
		Category: CategoryBuild,
		Message:  "Unknown node kind",
		Detail:   "The renderer met a node whose kind it cannot serialize.",
		DocURL:   docBase + "e008",
	},

	// ============================================
	// Toolbar Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryToolbar,
		Message:  "Invalid toolbar item",
		Detail:   "A toolbar item must be an identifier, an item object or a list of those.",
		DocURL:   docBase + "e020",
	},
	"E021": {
		Category: CategoryToolbar,
		Message:  "Unknown layer kind",
		Detail:   "No popup layer is registered for this trigger.",
		DocURL:   docBase + "e021",
	},

	// ============================================
	// Protocol Errors (E060-E069)
	// ============================================

	"E060": {
		Category: CategoryProtocol,
		Message:  "WebSocket upgrade failed",
		Detail:   "The preview connection could not be upgraded to a WebSocket.",
		DocURL:   docBase + "e060",
	},
	"E061": {
		Category: CategoryProtocol,
		Message:  "Invalid message format",
		Detail:   "The received preview message could not be decoded.",
		DocURL:   docBase + "e061",
	},
	"E062": {
		Category: CategoryProtocol,
		Message:  "Unknown message type",
		Detail:   "The preview message type is not recognized by the server.",
		DocURL:   docBase + "e062",
	},
	"E063": {
		Category: CategoryProtocol,
		Message:  "Invalid request parameter",
		Detail:   "A preview request parameter could not be parsed.",
		DocURL:   docBase + "e063",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Config read failed",
		Detail:   "The configuration file could not be read or parsed.",
		DocURL:   docBase + "e120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Config not found",
		Detail:   "No editorui.json or editorui.yaml was found in this directory or its parents.",
		DocURL:   docBase + "e121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is outside its allowed range.",
		DocURL:   docBase + "e122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Remote config fetch failed",
		Detail:   "The configuration object could not be fetched from object storage.",
		DocURL:   docBase + "e123",
	},
	"E124": {
		Category: CategoryConfig,
		Message:  "Translation file invalid",
		Detail:   "The translation catalog could not be read or parsed.",
		DocURL:   docBase + "e124",
	},

	// ============================================
	// CLI Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Invalid argument",
		Detail:   "A command line argument is not valid for this command.",
		DocURL:   docBase + "e140",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The preview server stopped with an error.",
		DocURL:   docBase + "e141",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
