package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/opservo/fieldops/internal/api/handlers"
	"github.com/opservo/fieldops/internal/api/middleware"
	"github.com/opservo/fieldops/internal/config"
	"github.com/opservo/fieldops/internal/db"
	"github.com/opservo/fieldops/internal/domaincheck"
	"github.com/opservo/fieldops/internal/metrics"
	"github.com/opservo/fieldops/internal/overview"
	"github.com/opservo/fieldops/pkg/identity"
)

type Server struct {
	Config   *config.Config
	Router   *gin.Engine
	Overview *overview.Service
}

func NewServer(cfg *config.Config, repo *db.Repository, collector *metrics.Collector, logger *zap.Logger) *Server {
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	var idp *identity.Client
	if cfg.Auth.IdentityURL != "" {
		idp = identity.NewClient(cfg.Auth)
	}

	var store overview.Store
	if repo != nil {
		store = repo
	}
	svc := overview.NewService(store, logger, collector, cfg.Overview.FetchTimeout, cfg.Overview.FanoutLimit)

	server := &Server{
		Config:   cfg,
		Router:   router,
		Overview: svc,
	}

	handler := handlers.NewHandler(repo, svc, domaincheck.NewChecker(), collector, logger)

	// Health and metrics
	router.GET("/health", handler.Health)
	router.GET("/ready", handler.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes (protected)
	api := router.Group("/api/v1")
	api.Use(middleware.AuthRequired(idp, cfg.Auth.JWTSecret))
	api.Use(middleware.Identity())
	api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	api.Use(middleware.RenderPass())
	api.Use(endPass(svc))

	{
		api.GET("/settings/overview", handler.GetSettingsOverview)
		api.GET("/settings/email-domain/check", handler.CheckSendingDomain)
	}

	return server
}

// endPass tears the render-pass memoization down once the response is
// written, so nothing leaks across requests.
func endPass(svc *overview.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if passID := c.GetString("pass_id"); passID != "" {
			svc.EndPass(passID)
		}
	}
}
