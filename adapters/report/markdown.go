package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golinreg/internal/errors"
	"golinreg/ports"
)

// MarkdownRenderer writes the report as GitHub-flavoured markdown
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a markdown report renderer
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Format implements ports.ReportRendererPort
func (r *MarkdownRenderer) Format() string { return FormatMarkdown }

// Render implements ports.ReportRendererPort
func (r *MarkdownRenderer) Render(w io.Writer, rep ports.Report) error {
	if _, err := w.Write(markdownBytes(rep)); err != nil {
		return errors.RenderFailed(FormatMarkdown, err)
	}
	return nil
}

func markdownBytes(rep ports.Report) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Linear regression: %s on %s\n\n", rep.Result.DependentLabel, rep.Result.IndependentLabel)
	fmt.Fprintf(&b, "Analysis `%s` · fingerprint `%s`\n\n", rep.AnalysisID, rep.Fingerprint.Short())

	for _, s := range buildSections(rep) {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		if len(s.Rows) > 0 {
			writeMarkdownTable(&b, s)
			b.WriteString("\n")
		}
		if s.Title == "Scatter diagram" && rep.Plot != nil && rep.Plot.Text != "" {
			fmt.Fprintf(&b, "```\n%s```\n\n", rep.Plot.Text)
		}
		for _, note := range s.Notes {
			fmt.Fprintf(&b, "%s\n\n", escapeMarkdown(note))
		}
	}
	return b.Bytes()
}

func writeMarkdownTable(b *bytes.Buffer, s section) {
	b.WriteString("| " + strings.Join(escapeAll(s.Headers), " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(s.Headers)) + "\n")
	for _, row := range s.Rows {
		b.WriteString("| " + strings.Join(escapeAll(row), " | ") + " |\n")
	}
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func escapeAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = escapeMarkdown(c)
	}
	return out
}
