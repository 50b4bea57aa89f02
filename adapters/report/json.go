package report

import (
	"encoding/json"
	"io"

	"golinreg/internal/errors"
	"golinreg/ports"
)

// JSONRenderer writes the report envelope as indented JSON
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON report renderer
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Format implements ports.ReportRendererPort
func (r *JSONRenderer) Format() string { return FormatJSON }

// Render implements ports.ReportRendererPort
func (r *JSONRenderer) Render(w io.Writer, rep ports.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return errors.RenderFailed(FormatJSON, err)
	}
	return nil
}
