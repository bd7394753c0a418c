package router

import (
	"github.com/gin-gonic/gin"
	"github.com/vozip/billing/internal/infrastructure/logger"
	"github.com/vozip/billing/internal/interfaces/http/handler"
	"github.com/vozip/billing/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Config wires the handlers into the HTTP engine
type Config struct {
	Logger           *zap.Logger
	Env              string
	TrustedProxies   []string
	ArrearsHandler   *handler.ArrearsHandler
	DashboardHandler *handler.DashboardHandler
	HealthHandler    *handler.HealthHandler
}

// New builds a fully wired gin engine
func New(cfg Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.TrustedProxies)
	}

	middleware.SetupValidator()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))

	engine.GET("/health", cfg.HealthHandler.Health)

	api := engine.Group("/api/v1")
	{
		api.GET("/arrears", cfg.ArrearsHandler.Report)
		api.GET("/dashboard/summary", cfg.DashboardHandler.Summary)
	}

	return engine
}
