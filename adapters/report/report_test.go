package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golinreg/adapters/stats/engine"
	"golinreg/domain/core"
	"golinreg/domain/regression"
	apperrors "golinreg/internal/errors"
	"golinreg/internal/profiling"
	"golinreg/internal/testkit"
	"golinreg/ports"
)

func textbookReport(t *testing.T) ports.Report {
	t.Helper()
	pair := testkit.TextbookPair()
	result, err := engine.Analyze(pair, 0.05)
	require.NoError(t, err)
	profiles, err := profiling.NewDistributionAnalyzer().ProfilePair(pair.IndependentLabel, pair.X, pair.DependentLabel, pair.Y)
	require.NoError(t, err)
	return ports.Report{
		AnalysisID:  core.NewAnalysisID(),
		Fingerprint: pair.Fingerprint(),
		Title:       regression.DefaultTitle(pair.IndependentLabel, pair.DependentLabel),
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Result:      result,
		Profiles:    profiles[:],
		Plot:        &ports.PlotOutcome{Kind: "png", Path: "out/diagrama_dispersion.png"},
	}
}

func TestNew(t *testing.T) {
	for _, format := range Formats {
		r, err := New(format)
		require.NoError(t, err)
		assert.Equal(t, format, r.Format())
	}

	r, err := New("MD")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, r.Format())

	r, err = New("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, r.Format())

	_, err = New("pdf")
	assert.Equal(t, apperrors.CodeUnsupportedFormat, apperrors.GetCode(err))
}

func TestBuildSections_Order(t *testing.T) {
	var titles []string
	for _, s := range buildSections(textbookReport(t)) {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Variables",
		"Descriptive statistics",
		"Scatter diagram",
		"Correlation",
		"Sums of squares",
		"Least-squares estimators",
		"Coefficient of determination",
		"Adjusted coefficient of determination",
		"Hypothesis test for β (H₀: β = 0)",
		"Hypothesis test for ρ (H₀: ρ = 0)",
	}, titles)
}

func TestBuildSections_OmitsOptionalParts(t *testing.T) {
	rep := textbookReport(t)
	rep.Profiles = nil
	rep.Plot = nil
	sections := buildSections(rep)
	assert.Len(t, sections, 8)
	assert.Equal(t, "Correlation", sections[1].Title)
}

func TestTextRenderer(t *testing.T) {
	rep := textbookReport(t)
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "Linear regression: sales on advertising")
	assert.Contains(t, out, rep.Fingerprint.Short())
	assert.Contains(t, out, "0.9015")
	assert.Contains(t, out, "ŷ = 3.5802 + 0.4775x")
	assert.Contains(t, out, "81.26%")
	assert.Contains(t, out, "Critical value t(0.05/2, 10)")
	assert.Contains(t, out, "2.2281")
	assert.Contains(t, out, "out/diagrama_dispersion.png")
	assert.Contains(t, out, "strong positive")
}

func TestTextRenderer_EmbedsASCIIPlot(t *testing.T) {
	rep := textbookReport(t)
	rep.Plot = &ports.PlotOutcome{Kind: "ascii", Text: "<<plot>>\n", Error: "no fonts"}
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, rep))
	assert.Contains(t, buf.String(), "<<plot>>")
	assert.Contains(t, buf.String(), "PNG unavailable: no fonts")
}

func TestTextRenderer_SkippedTests(t *testing.T) {
	pair := regression.NewSamplePair([]float64{1, 2}, []float64{3, 5}, "x", "y")
	result, err := engine.Analyze(pair, 0.05)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, ports.Report{Result: result}))
	assert.Contains(t, buf.String(), "Skipped: "+result.BetaTest.SkipReason)
	assert.Contains(t, buf.String(), "Not defined with fewer than three observations.")
}

func TestMarkdownRenderer(t *testing.T) {
	rep := textbookReport(t)
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownRenderer().Render(&buf, rep))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Linear regression: sales on advertising"))
	assert.Contains(t, out, "## Correlation")
	assert.Contains(t, out, "| r | 0.9015 | strong positive |")
	assert.Contains(t, out, "| --- | --- | --- |")
}

func TestMarkdownRenderer_UsesZLabelForLargeSamples(t *testing.T) {
	result, err := engine.Analyze(testkit.TemperaturePair(), 0.05)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownRenderer().Render(&buf, ports.Report{Result: result}))
	assert.Contains(t, buf.String(), "Critical value z(0.05/2)")
	assert.Contains(t, buf.String(), "1.9600")
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `a\|b \*c\* d\_e`, escapeMarkdown("a|b *c* d_e"))
}

func TestHTMLRenderer(t *testing.T) {
	rep := textbookReport(t)
	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer().Render(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "<title>"+rep.Title+"</title>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<style>")
}

func TestHTMLRenderer_DropsMarkupFromLabels(t *testing.T) {
	const script = "<script>alert(1)</script>"
	pair := testkit.TextbookPair()
	pair.IndependentLabel = script
	result, err := engine.Analyze(pair, 0.05)
	require.NoError(t, err)

	rep := ports.Report{
		AnalysisID:  core.NewAnalysisID(),
		Fingerprint: pair.Fingerprint(),
		Title:       regression.DefaultTitle(script, pair.DependentLabel),
		Result:      result,
	}

	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer().Render(&buf, rep))
	out := buf.String()

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<title>Scatter diagram of &lt;script&gt;alert(1)&lt;/script&gt; vs sales</title>")
	assert.Contains(t, out, "<table>")
}

func TestJSONRenderer(t *testing.T) {
	rep := textbookReport(t)
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(&buf, rep))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.AnalysisID.String(), decoded["analysis_id"])
	assert.Equal(t, rep.Fingerprint.String(), decoded["fingerprint"])

	result := decoded["result"].(map[string]interface{})
	assert.InDelta(t, 12, result["n"], 0)
	assert.Contains(t, result, "beta_test")
	assert.Contains(t, result, "rho_test")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderers_WriteFailure(t *testing.T) {
	rep := textbookReport(t)
	for _, format := range Formats {
		r, err := New(format)
		require.NoError(t, err)
		err = r.Render(failingWriter{}, rep)
		assert.Equal(t, apperrors.CodeRenderFailed, apperrors.GetCode(err), format)
	}
}
