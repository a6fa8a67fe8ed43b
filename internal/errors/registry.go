package errors

import "sort"

// ErrorTemplate defines a registered error code.
type ErrorTemplate struct {
	Category Category
	Message  string
	Hint     string
	DocURL   string
}

const docBase = "https://kiln.vango.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Render (K001-K099)
	"K001": {
		Category: CategoryRender,
		Message:  "Render called without an active context",
		Hint:     "Render through render.Renderer, or call Context.Begin before rendering.",
		DocURL:   docBase + "K001",
	},
	"K002": {
		Category: CategoryRender,
		Message:  "Node does not produce markup",
		Hint:     "Primitive nodes must implement view.Primitive.",
		DocURL:   docBase + "K002",
	},
	"K003": {
		Category: CategoryRender,
		Message:  "Node markup panicked",
		DocURL:   docBase + "K003",
	},
	"K004": {
		Category: CategoryRender,
		Message:  "Node markup failed",
		DocURL:   docBase + "K004",
	},
	"K005": {
		Category: CategoryRender,
		Message:  "Registration after the render was sealed",
		Hint:     "Side-table entries can only be written between Begin and End.",
		DocURL:   docBase + "K005",
	},
	"K006": {
		Category: CategoryRender,
		Message:  "Nil node",
		DocURL:   docBase + "K006",
	},

	// Content (K100-K119)
	"K101": {
		Category: CategoryContent,
		Message:  "Element has no content",
		Hint:     "Give the element a source or inline content.",
		DocURL:   docBase + "K101",
	},
	"K102": {
		Category: CategoryContent,
		Message:  "Modifier broke the inline contract",
		Hint:     "Inline content can only be modified into inline content.",
		DocURL:   docBase + "K102",
	},
	"K103": {
		Category: CategoryContent,
		Message:  "Invalid heading level",
		Hint:     "Heading levels run from 1 to 6.",
		DocURL:   docBase + "K103",
	},
	"K110": {
		Category: CategoryContent,
		Message:  "Asset not found",
		Hint:     "Check the asset manifest and the assetPrefix setting.",
		DocURL:   docBase + "K110",
	},
	"K111": {
		Category: CategoryContent,
		Message:  "Include not found",
		DocURL:   docBase + "K111",
	},

	// Config (K120-K139)
	"K120": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Hint:     "Run \"kiln init\" to create kiln.json.",
		DocURL:   docBase + "K120",
	},
	"K121": {
		Category: CategoryConfig,
		Message:  "Config file is not valid JSON",
		DocURL:   docBase + "K121",
	},
	"K122": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		DocURL:   docBase + "K122",
	},
	"K123": {
		Category: CategoryConfig,
		Message:  "Config file could not be written",
		DocURL:   docBase + "K123",
	},

	// Document (K140-K159)
	"K140": {
		Category: CategoryDocument,
		Message:  "Document could not be read",
		DocURL:   docBase + "K140",
	},
	"K141": {
		Category: CategoryDocument,
		Message:  "Unknown element type",
		DocURL:   docBase + "K141",
	},
	"K142": {
		Category: CategoryDocument,
		Message:  "Invalid element property",
		DocURL:   docBase + "K142",
	},
	"K143": {
		Category: CategoryDocument,
		Message:  "Document syntax error",
		DocURL:   docBase + "K143",
	},
	"K144": {
		Category: CategoryDocument,
		Message:  "Unsupported document format",
		Hint:     "Page documents must end in .hcl, .yaml or .yml.",
		DocURL:   docBase + "K144",
	},

	// Publish (K160-K179)
	"K160": {
		Category: CategoryPublish,
		Message:  "Write to output directory failed",
		DocURL:   docBase + "K160",
	},
	"K161": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Hint:     "Check the bucket name, region and credentials.",
		DocURL:   docBase + "K161",
	},
	"K162": {
		Category: CategoryPublish,
		Message:  "Publish target not configured",
		Hint:     "Set publish.bucket in kiln.json.",
		DocURL:   docBase + "K162",
	},

	// CLI (K180-K199)
	"K180": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Hint:     "Run \"kiln help\" for usage.",
		DocURL:   docBase + "K180",
	},
	"K181": {
		Category: CategoryCLI,
		Message:  "Output could not be written",
		DocURL:   docBase + "K181",
	},
	"K182": {
		Category: CategoryCLI,
		Message:  "Project already initialized",
		Hint:     "Remove kiln.json or pick another directory.",
		DocURL:   docBase + "K182",
	},
}

// GetAllCodes returns every registered code in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
