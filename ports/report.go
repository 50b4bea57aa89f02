package ports

import (
	"context"
	"io"
	"time"

	"golinreg/domain/core"
	"golinreg/domain/regression"
	"golinreg/internal/profiling"
)

// Report bundles everything a renderer needs for one analysis
type Report struct {
	AnalysisID  core.AnalysisID           `json:"analysis_id"`
	Fingerprint core.SampleFingerprint    `json:"fingerprint"`
	Title       string                    `json:"title"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Result      regression.AnalysisResult `json:"result"`
	Profiles    []profiling.SampleProfile `json:"profiles,omitempty"`
	Plot        *PlotOutcome              `json:"plot,omitempty"`
}

// ReportRendererPort writes a report in one output format
type ReportRendererPort interface {
	Format() string
	Render(w io.Writer, report Report) error
}

// PlotRequest describes one scatter diagram
type PlotRequest struct {
	Pair     regression.SamplePair
	Result   regression.AnalysisResult
	Title    string
	WidthCm  float64
	HeightCm float64
}

// PlotOutcome records how a scatter diagram was produced
type PlotOutcome struct {
	Kind  string `json:"kind"` // "png" or "ascii"
	Path  string `json:"path,omitempty"`
	Text  string `json:"-"`
	Error string `json:"error,omitempty"` // why the PNG renderer was bypassed
}

// PlotRendererPort draws a scatter diagram with its fitted line
type PlotRendererPort interface {
	RenderPlot(ctx context.Context, req PlotRequest, w io.Writer) (*PlotOutcome, error)
}
