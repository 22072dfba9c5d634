package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellness-bot/config"
	"wellness-bot/web/handlers"
	"wellness-bot/web/middleware"
)

type Server struct {
	router  *gin.Engine
	logger  *zap.Logger
	config  *config.Config
	limiter *middleware.ClientRateLimiter
}

func NewServer(kbHandler *handlers.KBHandler, logger *zap.Logger, cfg *config.Config) *Server {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	limiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerMinute: cfg.RateLimitPerMinute,
		BurstSize:         cfg.RateLimitBurstSize,
	}, logger)

	server := &Server{
		router:  router,
		logger:  logger,
		config:  cfg,
		limiter: limiter,
	}

	server.setupRoutes(kbHandler)
	return server
}

func (s *Server) setupRoutes(kbHandler *handlers.KBHandler) {
	s.router.GET("/healthz", kbHandler.Health)

	kbGroup := s.router.Group("/kb")
	kbGroup.POST("/respond", s.limiter.Middleware(), kbHandler.Respond)
	kbGroup.GET("/search", kbHandler.Search)
	kbGroup.POST("/reload", kbHandler.Reload)
	kbGroup.GET("/stats", kbHandler.Stats)
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	s.limiter.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownGraceSeconds)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request with latency and status.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
