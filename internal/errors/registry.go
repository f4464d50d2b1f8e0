package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Toast provider missing",
		Detail:   "toast.Use was called with a context that carries no provider. Attach one with toast.NewContext before rendering components that raise toasts.",
		DocURL:   "https://vango.dev/docs/ui/errors/E001",
	},
	"E002": {
		Category: CategoryComponent,
		Message:  "Invalid component option",
		Detail:   "A component was configured with a value outside its accepted set.",
		DocURL:   "https://vango.dev/docs/ui/errors/E002",
	},
	"E009": {
		Category: CategoryRuntime,
		Message:  "Handler not found",
		Detail:   "An event referenced a hydration ID or event type that has no registered handler in the current render.",
		DocURL:   "https://vango.dev/docs/ui/errors/E009",
	},
	"E010": {
		Category: CategoryRuntime,
		Message:  "Unknown component",
		Detail:   "No component preview is registered under the requested name.",
		DocURL:   "https://vango.dev/docs/ui/errors/E010",
	},
	"E011": {
		Category: CategoryRuntime,
		Message:  "Session closed",
		Detail:   "The live session has been closed and no longer accepts work.",
		DocURL:   "https://vango.dev/docs/ui/errors/E011",
	},
	"E012": {
		Category: CategoryRuntime,
		Message:  "Handler panicked",
		Detail:   "An event handler or dispatched function panicked. The panic was recovered and logged; the session keeps running.",
		DocURL:   "https://vango.dev/docs/ui/errors/E012",
	},

	// ============================================
	// Protocol Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryProtocol,
		Message:  "Invalid protocol message",
		Detail:   "The browser sent a message that could not be decoded or has an unknown type.",
		DocURL:   "https://vango.dev/docs/ui/errors/E020",
	},

	// ============================================
	// Configuration Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "The configuration file exists but could not be read.",
		DocURL:   "https://vango.dev/docs/ui/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid JSON in configuration",
		Detail:   "vangoui.json contains a syntax error or a value of the wrong type.",
		DocURL:   "https://vango.dev/docs/ui/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Configuration value out of range",
		Detail:   "A configuration value is not one of the accepted values.",
		DocURL:   "https://vango.dev/docs/ui/errors/E122",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No vangoui.json was found in the current directory or any parent directory.",
		DocURL:   "https://vango.dev/docs/ui/errors/E141",
	},

	// ============================================
	// CLI Errors (E150-E169)
	// ============================================

	"E150": {
		Category: CategoryCLI,
		Message:  "Export failed",
		Detail:   "The component catalog could not be written to the output directory.",
		DocURL:   "https://vango.dev/docs/ui/errors/E150",
	},
	"E151": {
		Category: CategoryCLI,
		Message:  "Publish failed",
		Detail:   "Uploading the exported catalog to object storage failed.",
		DocURL:   "https://vango.dev/docs/ui/errors/E151",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a custom error template to the registry.
// This can be used by applications to register their own error codes.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
