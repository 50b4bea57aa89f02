package report

import (
	"strings"

	"golinreg/internal/errors"
	"golinreg/ports"
)

// Supported report formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Formats lists every format New accepts
var Formats = []string{FormatText, FormatMarkdown, FormatHTML, FormatJSON}

// New returns the renderer for format ("md" is accepted for markdown)
func New(format string) (ports.ReportRendererPort, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return NewTextRenderer(), nil
	case FormatMarkdown, "md":
		return NewMarkdownRenderer(), nil
	case FormatHTML:
		return NewHTMLRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, errors.UnsupportedFormat(format)
	}
}

// ContentType returns the HTTP media type of a format
func ContentType(format string) string {
	switch format {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
