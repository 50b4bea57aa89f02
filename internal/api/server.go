package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"golinreg/app"
	"golinreg/internal"
	"golinreg/internal/config"
)

// Server exposes the analysis services over HTTP
type Server struct {
	router   *gin.Engine
	analysis *app.AnalysisService
	pairwise *app.PairwiseService
	config   *config.Config
	logger   *internal.Logger
}

// NewServer wires routes and middleware around the given services
func NewServer(cfg *config.Config, analysis *app.AnalysisService, pairwise *app.PairwiseService) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:   gin.New(),
		analysis: analysis,
		pairwise: pairwise,
		config:   cfg,
		logger:   internal.NewComponentLogger("API"),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	})
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	v1.POST("/analyze", s.handleAnalyze)
	v1.POST("/analyze/report", s.handleReport)
	v1.POST("/analyze/plot", s.handlePlot)
	v1.POST("/pairs", s.handlePairs)
}

// Handler returns the router for use with net/http servers and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("Listening on http://%s", addr)
	return s.router.Run(addr)
}
