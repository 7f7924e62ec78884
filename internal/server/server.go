package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "phishsim-server/internal/api"
	"phishsim-server/internal/bootstrap"
	"phishsim-server/internal/config"
	"phishsim-server/internal/metrics"
	"phishsim-server/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	if s.config.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	s.router = gin.New()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	corsConfig.AllowOrigins = []string{s.config.Server.WebAppURI}

	// Allow localhost in non-production
	if !s.config.Server.IsProduction() {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, "http://localhost:3000", "http://localhost:5173")
	}

	// Apply middleware
	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))
	s.router.Use(metrics.Middleware())

	// Register routes
	rootRouter := s.router.Group("/")
	api := apisetup.New(rootRouter, s.deps.Handlers, s.deps.Middleware)
	api.RegisterRoutes()
}

// Start begins listening for HTTP requests
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run the server in a goroutine so that it doesn't block
	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received, then gracefully shuts down
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	// SIGKILL can't be caught
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	s.logger.Info(ctx, "Shutting down server...")

	// In-flight requests get 5 seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.deps.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}

// Router exposes the configured engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
