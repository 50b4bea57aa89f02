package scatter

import (
	"context"
	"image/color"
	"io"
	"log"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golinreg/domain/regression"
	"golinreg/internal/errors"
	"golinreg/ports"
)

const (
	defaultWidthCm  = 25
	defaultHeightCm = 12.5
	equationPrec    = 3
)

var (
	pointColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// PNGRenderer draws the scatter diagram with gonum/plot
type PNGRenderer struct{}

// NewPNGRenderer creates a PNG scatter renderer
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{}
}

// RenderPlot writes a PNG image of the points and the fitted line to w
func (r *PNGRenderer) RenderPlot(ctx context.Context, req ports.PlotRequest, w io.Writer) (*ports.PlotOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Pair.Len() == 0 {
		return nil, errors.RenderFailed("png", errors.InvalidInput("no points to plot"))
	}

	p := plot.New()
	p.Title.Text = titleOf(req)
	p.X.Label.Text = req.Result.IndependentLabel
	p.Y.Label.Text = req.Result.DependentLabel
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, req.Pair.Len())
	for i := range req.Pair.X {
		points[i].X = req.Pair.X[i]
		points[i].Y = req.Pair.Y[i]
	}
	s, err := plotter.NewScatter(points)
	if err != nil {
		return nil, errors.RenderFailed("png", err)
	}
	s.GlyphStyle.Color = pointColor
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	p.Legend.Add("Data", s)

	minX, maxX := bounds(req.Pair.X)
	reg := req.Result.Regression
	line, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: reg.Predict(minX)},
		{X: maxX, Y: reg.Predict(maxX)},
	})
	if err != nil {
		return nil, errors.RenderFailed("png", err)
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(reg.Equation(equationPrec), line)
	p.Legend.Top = true

	width, height := req.WidthCm, req.HeightCm
	if width <= 0 || height <= 0 {
		width, height = defaultWidthCm, defaultHeightCm
	}
	wt, err := p.WriterTo(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, "png")
	if err != nil {
		return nil, errors.RenderFailed("png", err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return nil, errors.RenderFailed("png", err)
	}

	log.Printf("[PlotRenderer] PNG scatter rendered (%d points, %d bytes)", len(points), n)
	return &ports.PlotOutcome{Kind: "png"}, nil
}

func titleOf(req ports.PlotRequest) string {
	if req.Title != "" {
		return req.Title
	}
	return regression.DefaultTitle(req.Result.IndependentLabel, req.Result.DependentLabel)
}

func bounds(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
