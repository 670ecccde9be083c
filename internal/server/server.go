package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jimezsa/jobportal/internal/config"
	"github.com/jimezsa/jobportal/internal/scraper"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// Server serves the job portal API.
type Server struct {
	config config.Config
	jobs   scraper.Scraper
	gaps   scraper.SkillGapSource
	recs   scraper.RecommendationSource
	logger zerolog.Logger
	router *gin.Engine
}

// NewServer creates a server and sets up routing.
func NewServer(cfg config.Config, jobs scraper.Scraper, gaps scraper.SkillGapSource, recs scraper.RecommendationSource, logger zerolog.Logger) *Server {
	server := &Server{
		config: cfg,
		jobs:   jobs,
		gaps:   gaps,
		recs:   recs,
		logger: logger,
	}
	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(server.logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	router.GET("/health", server.health)

	api := router.Group("/api")
	api.GET("/jobs", server.listJobs)
	api.GET("/jobs/search", server.searchJobs)
	api.GET("/skills/:uid", server.getSkillGap)
	api.GET("/recommendations/:uid", server.getRecommendations)

	server.router = router
}

// Handler exposes the router, mainly for tests.
func (server *Server) Handler() http.Handler {
	return server.router
}

// Start serves on address until ctx is cancelled, then shuts down gracefully.
func (server *Server) Start(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           server.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		server.logger.Info().Str("addr", address).Msg("job portal server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		server.logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (server *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
