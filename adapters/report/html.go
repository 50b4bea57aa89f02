package report

import (
	"bytes"
	"io"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"golinreg/internal/errors"
	"golinreg/ports"
)

const reportCSS = `body{font-family:sans-serif;max-width:60em;margin:2em auto;color:#1f2328}
table{border-collapse:collapse;margin:.5em 0}
th,td{border:1px solid #d0d7de;padding:.25em .75em;text-align:left}
pre{background:#f6f8fa;padding:1em}`

// HTMLRenderer converts the markdown report into a standalone HTML page.
// Raw HTML in labels or the title is never passed through.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTML report renderer
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Format implements ports.ReportRendererPort
func (r *HTMLRenderer) Format() string { return FormatHTML }

// Render implements ports.ReportRendererPort
func (r *HTMLRenderer) Render(w io.Writer, rep ports.Report) error {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(markdownBytes(rep))

	// Smartypants copies the title verbatim, so it is escaped up front
	var title bytes.Buffer
	html.EscapeHTML(&title, []byte(rep.Title))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage | html.SkipHTML,
		Title: title.String(),
		Head:  []byte("<style>" + reportCSS + "</style>\n"),
	})

	if _, err := w.Write(markdown.Render(doc, renderer)); err != nil {
		return errors.RenderFailed(FormatHTML, err)
	}
	return nil
}
