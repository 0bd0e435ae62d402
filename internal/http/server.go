// Package http provides the HTTP server, router and shared middleware.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authtokenHTTP "github.com/allisson/authtokens/internal/authtoken/http"
	"github.com/allisson/authtokens/internal/config"
	"github.com/allisson/authtokens/internal/database"
	"github.com/allisson/authtokens/internal/metrics"
)

const readinessTimeout = 2 * time.Second

// Server is the token API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
	// memoryStore reports the database as ready without a connection.
	memoryStore bool
}

// NewServer creates the API server. db may be nil for the in-memory store.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes. Metrics middleware is installed only when
// metricsProvider is not nil.
func (s *Server) SetupRouter(
	cfg *config.Config,
	tokenHandler *authtokenHTTP.TokenHandler,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())
	s.memoryStore = cfg.DBDriver == database.DriverMemory

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := newCORSMiddleware(cfg, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			metricsProvider.MeterProvider(),
			cfg.MetricsNamespace,
			"/health",
			"/ready",
		))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	tokens := router.Group("/v1/tokens")
	{
		tokens.POST("", tokenHandler.GenerateHandler)
		tokens.POST("/validate", tokenHandler.ValidateHandler)
		tokens.POST("/invalidate", tokenHandler.InvalidateHandler)
		tokens.DELETE("/expired", tokenHandler.CleanupExpiredHandler)
		tokens.GET("/policy", tokenHandler.PolicyHandler)
	}

	s.router = router
}

// GetHandler returns the router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured, call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the token store can serve requests.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.memoryStore {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "components": gin.H{"database": "memory"}})
		return
	}

	if s.db == nil {
		s.notReady(c, errors.New("database not configured"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.notReady(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": gin.H{"database": "ok"}})
}

func (s *Server) notReady(c *gin.Context, err error) {
	s.logger.Warn("readiness check failed", slog.Any("error", err))
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": gin.H{"database": "error"}})
}
