package api

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"golinreg/adapters/report"
	"golinreg/app"
	"golinreg/domain/core"
	"golinreg/domain/regression"
	"golinreg/internal/errors"
	"golinreg/ports"
)

// AnalyzeRequest is the JSON body shared by the analyze endpoints
type AnalyzeRequest struct {
	X                []float64 `json:"x" binding:"required"`
	Y                []float64 `json:"y" binding:"required"`
	IndependentLabel string    `json:"independent_label"`
	DependentLabel   string    `json:"dependent_label"`
	Alpha            *float64  `json:"alpha"` // omitted selects REGRESSION_ALPHA
	Title            string    `json:"title"`
}

// PairsRequest is the JSON body of the pairwise batch endpoint
type PairsRequest struct {
	Independent string               `json:"independent" binding:"required"`
	Columns     map[string][]float64 `json:"columns" binding:"required"`
	Alpha       *float64             `json:"alpha"`
}

func (r AnalyzeRequest) pair() regression.SamplePair {
	return regression.NewSamplePair(r.X, r.Y, r.IndependentLabel, r.DependentLabel)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze returns the report envelope as JSON
func (s *Server) handleAnalyze(c *gin.Context) {
	_, rep, ok := s.analyze(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rep)
}

// handleReport renders the report in the format named by ?format=
func (s *Server) handleReport(c *gin.Context) {
	format := c.DefaultQuery("format", report.FormatMarkdown)
	renderer, err := report.New(format)
	if err != nil {
		s.respondError(c, err)
		return
	}

	_, rep, ok := s.analyze(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, *rep); err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, report.ContentType(renderer.Format()), buf.Bytes())
}

// handlePlot returns the scatter diagram, or its text rendition when PNG output failed
func (s *Server) handlePlot(c *gin.Context) {
	req, rep, ok := s.analyze(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	outcome, err := s.analysis.RenderPlot(c.Request.Context(), rep, req.pair(), app.PlotOptions{
		WidthCm:  s.config.Plot.WidthCm,
		HeightCm: s.config.Plot.HeightCm,
	}, &buf)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Header("X-Analysis-ID", rep.AnalysisID.String())
	if outcome.Kind != "png" {
		c.Header("X-Plot-Fallback", outcome.Error)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(outcome.Text))
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// handlePairs analyzes one column against every other column in the body
func (s *Server) handlePairs(c *gin.Context) {
	var req PairsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errors.Newf(errors.CodeInvalidInput, err, "malformed request body"))
		return
	}

	values, found := req.Columns[req.Independent]
	if !found {
		s.respondError(c, errors.ColumnNotFound(req.Independent))
		return
	}

	var candidates []ports.Column
	for name, col := range req.Columns {
		candidates = append(candidates, ports.Column{Name: name, Values: col})
	}

	alpha := s.config.Analysis.Alpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	summary, err := s.pairwise.Run(c.Request.Context(), ports.Column{Name: req.Independent, Values: values}, candidates, alpha)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// analyze binds the request body and runs the analysis, answering the
// request itself on failure
func (s *Server) analyze(c *gin.Context) (AnalyzeRequest, *ports.Report, bool) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errors.Newf(errors.CodeInvalidInput, err, "malformed request body"))
		return req, nil, false
	}

	rep, err := s.analysis.Analyze(c.Request.Context(), app.AnalysisRequest{
		Pair:  req.pair(),
		Alpha: req.Alpha,
		Title: strings.TrimSpace(req.Title),
	})
	if err != nil {
		s.respondError(c, err)
		return req, nil, false
	}
	return req, rep, true
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}

// StatusFor maps an error to an HTTP status. Domain sentinels decide first,
// then the application error code.
func StatusFor(err error) int {
	switch {
	case core.IsInvalidInput(err):
		return http.StatusBadRequest
	case core.IsNumericError(err):
		return http.StatusUnprocessableEntity
	}

	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeColumnNotFound, errors.CodeUnsupportedFormat:
		return http.StatusBadRequest
	case errors.CodeUndefinedCorrelation, errors.CodeCorrelationOutOfRange:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
