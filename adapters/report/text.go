package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"golinreg/internal/errors"
	"golinreg/ports"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#8b949e")
	colorBorder = lipgloss.Color("#30363d")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	metaStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	noteStyle    = lipgloss.NewStyle().PaddingLeft(2)
	headerCell   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	bodyCell     = lipgloss.NewStyle().Padding(0, 1)
)

// TextRenderer writes the report as terminal tables
type TextRenderer struct{}

// NewTextRenderer creates a terminal report renderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Format implements ports.ReportRendererPort
func (r *TextRenderer) Format() string { return FormatText }

// Render implements ports.ReportRendererPort
func (r *TextRenderer) Render(w io.Writer, rep ports.Report) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Linear regression: "+rep.Result.DependentLabel+" on "+rep.Result.IndependentLabel) + "\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("analysis %s  fingerprint %s", rep.AnalysisID, rep.Fingerprint.Short())) + "\n")

	for _, s := range buildSections(rep) {
		b.WriteString(headingStyle.Render(s.Title) + "\n")
		if len(s.Rows) > 0 {
			b.WriteString(renderTable(s) + "\n")
		}
		if s.Title == "Scatter diagram" && rep.Plot != nil && rep.Plot.Text != "" {
			b.WriteString(rep.Plot.Text)
		}
		for _, note := range s.Notes {
			b.WriteString(noteStyle.Render(note) + "\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.RenderFailed(FormatText, err)
	}
	return nil
}

func renderTable(s section) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(s.Headers...).
		Rows(s.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		}).
		String()
}
