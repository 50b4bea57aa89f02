package scatter

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"golinreg/internal/errors"
	"golinreg/ports"
)

const (
	pointMark   = '*'
	lineMark    = '.'
	overlapMark = '#'
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	asciiTitleStyle = lipgloss.NewStyle().Bold(true)
)

// ASCIIRenderer draws the scatter diagram as text for terminals
type ASCIIRenderer struct {
	width  int
	height int
}

// NewASCIIRenderer creates a text renderer with a plot area of width columns and height rows
func NewASCIIRenderer(width, height int) *ASCIIRenderer {
	return &ASCIIRenderer{width: max(width, 10), height: max(height, 5)}
}

// RenderPlot writes the framed text plot to w and returns it in the outcome
func (r *ASCIIRenderer) RenderPlot(ctx context.Context, req ports.PlotRequest, w io.Writer) (*ports.PlotOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Pair.Len() == 0 {
		return nil, errors.RenderFailed("ascii", errors.InvalidInput("no points to plot"))
	}

	text := r.Draw(req)
	if _, err := io.WriteString(w, text); err != nil {
		return nil, errors.RenderFailed("ascii", err)
	}
	return &ports.PlotOutcome{Kind: "ascii", Text: text}, nil
}

// Draw lays out points and the fitted line on a character grid
func (r *ASCIIRenderer) Draw(req ports.PlotRequest) string {
	reg := req.Result.Regression
	minX, maxX := bounds(req.Pair.X)
	minY, maxY := bounds(req.Pair.Y)
	for _, x := range []float64{minX, maxX} {
		minY = math.Min(minY, reg.Predict(x))
		maxY = math.Max(maxY, reg.Predict(x))
	}

	grid := make([][]rune, r.height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", r.width))
	}

	for col := 0; col < r.width; col++ {
		x := minX + (maxX-minX)*float64(col)/float64(r.width-1)
		row := scale(reg.Predict(x), minY, maxY, r.height)
		grid[r.height-1-row][col] = lineMark
	}
	for i := range req.Pair.X {
		col := scale(req.Pair.X[i], minX, maxX, r.width)
		row := r.height - 1 - scale(req.Pair.Y[i], minY, maxY, r.height)
		if grid[row][col] == lineMark || grid[row][col] == overlapMark {
			grid[row][col] = overlapMark
		} else {
			grid[row][col] = pointMark
		}
	}

	lines := make([]string, r.height)
	for i, row := range grid {
		lines[i] = string(row)
	}

	var b strings.Builder
	b.WriteString(asciiTitleStyle.Render(titleOf(req)))
	b.WriteString("\n")
	b.WriteString(frameStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %.4g .. %.4g   %s: %.4g .. %.4g\n",
		req.Result.IndependentLabel, minX, maxX, req.Result.DependentLabel, minY, maxY)
	fmt.Fprintf(&b, "%c data  %c %s  %c both\n", pointMark, lineMark, reg.Equation(equationPrec), overlapMark)
	return b.String()
}

// scale maps v from [lo, hi] onto 0..cells-1; a degenerate range maps to the middle
func scale(v, lo, hi float64, cells int) int {
	if hi <= lo {
		return cells / 2
	}
	idx := int(math.Round((v - lo) / (hi - lo) * float64(cells-1)))
	return min(max(idx, 0), cells-1)
}
