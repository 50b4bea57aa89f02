package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"golinreg/domain/core"
	"golinreg/domain/regression"
	"golinreg/internal"
	"golinreg/internal/errors"
	"golinreg/internal/profiling"
	"golinreg/ports"
)

// AnalysisService runs one regression analysis and assembles its report
type AnalysisService struct {
	analyzer     ports.AnalyzerPort
	plotter      ports.PlotRendererPort
	profiler     *profiling.DistributionAnalyzer
	defaultAlpha float64
	logger       *internal.Logger
	now          func() time.Time
}

// AnalysisRequest defines the inputs for one analysis
type AnalysisRequest struct {
	Pair  regression.SamplePair
	Alpha *float64 // nil selects the service default
	Title string   // empty selects the default scatter diagram title
}

// PlotOptions controls where and how large the scatter diagram is drawn
type PlotOptions struct {
	Path     string
	WidthCm  float64
	HeightCm float64
}

// NewAnalysisService creates an analysis service. plotter may be nil when no
// diagrams are wanted.
func NewAnalysisService(analyzer ports.AnalyzerPort, plotter ports.PlotRendererPort, defaultAlpha float64) *AnalysisService {
	if defaultAlpha == 0 {
		defaultAlpha = regression.DefaultAlpha
	}
	return &AnalysisService{
		analyzer:     analyzer,
		plotter:      plotter,
		profiler:     profiling.NewDistributionAnalyzer(),
		defaultAlpha: defaultAlpha,
		logger:       internal.NewComponentLogger("AnalysisService"),
		now:          time.Now,
	}
}

// Analyze runs the pipeline on the request's pair and returns the report without a plot
func (s *AnalysisService) Analyze(ctx context.Context, req AnalysisRequest) (*ports.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	startTime := time.Now()

	alpha := s.defaultAlpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}

	analysisID := core.NewAnalysisID()
	fingerprint := req.Pair.Fingerprint()
	s.logger.Info("Analysis %s started (n=%d, alpha=%g, fingerprint %s)",
		analysisID, req.Pair.Len(), alpha, fingerprint.Short())

	result, err := s.analyzer.Analyze(req.Pair, alpha)
	if err != nil {
		s.logger.Warn("Analysis %s failed [%s]: %v", analysisID, errors.GetCode(err), err)
		return nil, err
	}

	profiles, err := s.profiler.ProfilePair(result.IndependentLabel, req.Pair.X, result.DependentLabel, req.Pair.Y)
	if err != nil {
		return nil, errors.Wrap(err, "failed to profile samples")
	}

	title := req.Title
	if title == "" {
		title = regression.DefaultTitle(result.IndependentLabel, result.DependentLabel)
	}

	s.logger.Info("Analysis %s completed in %v (r=%.4f, %s)",
		analysisID, time.Since(startTime), result.Correlation.R, result.Correlation.Band)

	return &ports.Report{
		AnalysisID:  analysisID,
		Fingerprint: fingerprint,
		Title:       title,
		GeneratedAt: s.now().UTC(),
		Result:      result,
		Profiles:    profiles[:],
	}, nil
}

// RenderPlot draws the report's scatter diagram into w
func (s *AnalysisService) RenderPlot(ctx context.Context, rep *ports.Report, pair regression.SamplePair, opts PlotOptions, w io.Writer) (*ports.PlotOutcome, error) {
	if s.plotter == nil {
		return nil, errors.InternalError("no plot renderer configured")
	}
	return s.plotter.RenderPlot(ctx, ports.PlotRequest{
		Pair:     pair,
		Result:   rep.Result,
		Title:    rep.Title,
		WidthCm:  opts.WidthCm,
		HeightCm: opts.HeightCm,
	}, w)
}

// SavePlot draws the scatter diagram and, when a PNG came out, writes it to
// opts.Path. The outcome is attached to the report either way.
func (s *AnalysisService) SavePlot(ctx context.Context, rep *ports.Report, pair regression.SamplePair, opts PlotOptions) error {
	var buf bytes.Buffer
	outcome, err := s.RenderPlot(ctx, rep, pair, opts, &buf)
	if err != nil {
		return err
	}

	if outcome.Kind == "png" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return errors.RenderFailed("png", err)
		}
		if err := os.WriteFile(opts.Path, buf.Bytes(), 0o644); err != nil {
			return errors.RenderFailed("png", err)
		}
		outcome.Path = opts.Path
		s.logger.Info("Scatter diagram for %s saved to %s", rep.AnalysisID, opts.Path)
	} else {
		s.logger.Warn("Scatter diagram for %s drawn as %s: %s", rep.AnalysisID, outcome.Kind, outcome.Error)
	}

	rep.Plot = outcome
	return nil
}
