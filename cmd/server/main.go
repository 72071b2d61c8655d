package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/config"
	"github.com/ricewise/ricewise/internal/repository/mongodb"
	"github.com/ricewise/ricewise/internal/repository/sheets"
	"github.com/ricewise/ricewise/internal/scheduler"
	"github.com/ricewise/ricewise/internal/server/handlers"
	"github.com/ricewise/ricewise/internal/server/router"
	analyticssvc "github.com/ricewise/ricewise/internal/service/analytics"
	inventorysvc "github.com/ricewise/ricewise/internal/service/inventory"
	salessvc "github.com/ricewise/ricewise/internal/service/sales"
	"github.com/ricewise/ricewise/pkg/clients/webhook"
	"github.com/ricewise/ricewise/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var exporter salessvc.Exporter
	if cfg.Sheets.Enabled() {
		sheetExporter, err := sheets.NewExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		exporter = sheetExporter
		baseLogger.Info("sheet export enabled")
	} else {
		baseLogger.Info("sheet export disabled")
	}

	analyticsSvc := analyticssvc.NewService(mongoRepo, baseLogger.Named("svc.analytics"))
	salesSvc := salessvc.NewService(mongoRepo, exporter, baseLogger.Named("svc.sales"))
	inventorySvc := inventorysvc.NewService(mongoRepo, baseLogger.Named("svc.inventory"))

	salesHandler := handlers.NewSalesHandler(salesSvc, baseLogger.Named("handlers.sales"))
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc, baseLogger.Named("handlers.analytics"))
	inventoryHandler := handlers.NewInventoryHandler(inventorySvc, baseLogger.Named("handlers.inventory"))
	engine := router.New(salesHandler, analyticsHandler, inventoryHandler, baseLogger.Named("router"))

	if cfg.Reporting.WebhookURL != "" {
		webhookClient := webhook.NewClient(cfg.Reporting.WebhookURL)
		sched := scheduler.NewScheduler(cfg.Reporting, analyticsSvc, mongoRepo, webhookClient, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Info("report webhook not configured, scheduler disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
