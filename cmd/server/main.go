package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appbilling "github.com/vozip/billing/internal/application/billing"
	"github.com/vozip/billing/internal/domain/billing"
	"github.com/vozip/billing/internal/infrastructure/config"
	"github.com/vozip/billing/internal/infrastructure/logger"
	"github.com/vozip/billing/internal/infrastructure/persistence"
	"github.com/vozip/billing/internal/interfaces/http/handler"
	"github.com/vozip/billing/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting billing service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)

	calculator := billing.NewCalculator(cfg.Arrears.Epoch())
	arrearsService := appbilling.NewArrearsService(customerRepo, paymentRepo, calculator, cfg.Arrears.DefaultMinMonths, log)
	dashboardService := appbilling.NewDashboardService(customerRepo, paymentRepo, log)

	engine := router.New(router.Config{
		Logger:           log,
		Env:              cfg.App.Env,
		TrustedProxies:   cfg.HTTP.TrustedProxies,
		ArrearsHandler:   handler.NewArrearsHandler(arrearsService),
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		HealthHandler:    handler.NewHealthHandler(db),
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()
	log.Info("Server listening", zap.String("addr", server.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
