package scatter

import (
	"bytes"
	"context"
	"io"
	"log"

	"golinreg/internal/errors"
	"golinreg/ports"
)

// FallbackRenderer tries the primary renderer and draws with the fallback when it fails.
// Nothing reaches w unless the primary renderer succeeds.
type FallbackRenderer struct {
	primary  ports.PlotRendererPort
	fallback ports.PlotRendererPort
}

// NewFallbackRenderer chains two plot renderers
func NewFallbackRenderer(primary, fallback ports.PlotRendererPort) *FallbackRenderer {
	return &FallbackRenderer{primary: primary, fallback: fallback}
}

// RenderPlot implements ports.PlotRendererPort
func (r *FallbackRenderer) RenderPlot(ctx context.Context, req ports.PlotRequest, w io.Writer) (*ports.PlotOutcome, error) {
	var buf bytes.Buffer
	outcome, err := r.primary.RenderPlot(ctx, req, &buf)
	if err == nil {
		if _, err = buf.WriteTo(w); err == nil {
			return outcome, nil
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	log.Printf("[PlotRenderer] Primary renderer failed, falling back: %v", err)
	var text bytes.Buffer
	outcome, fallbackErr := r.fallback.RenderPlot(ctx, req, &text)
	if fallbackErr != nil {
		return nil, errors.RenderFailed("fallback", fallbackErr)
	}
	outcome.Error = err.Error()
	return outcome, nil
}
