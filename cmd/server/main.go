// Package main is the entry point for the fundplan asset allocation service.
// The service builds personalized mutual fund allocation plans for Indian
// investors and serves them over a REST API with an embedded dashboard.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/fundplan/internal/config"
	"github.com/aristath/fundplan/internal/events"
	"github.com/aristath/fundplan/internal/modules/allocation"
	"github.com/aristath/fundplan/internal/modules/catalog"
	"github.com/aristath/fundplan/internal/modules/planning"
	"github.com/aristath/fundplan/internal/modules/rebalancing"
	"github.com/aristath/fundplan/internal/modules/tools"
	"github.com/aristath/fundplan/internal/scheduler"
	"github.com/aristath/fundplan/internal/server"
	"github.com/aristath/fundplan/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger with config level
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.PrettyLogs,
	})

	log.Info().Str("version", cfg.Version).Msg("Starting fundplan")

	// Event bus connects the modules to the live event stream
	bus := events.NewBus(log)

	// Fund catalog backs the recommendation lists on every plan
	catalogSvc, err := catalog.NewService(log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load fund catalog")
	}

	// Allocation engine and the planning layer on top of it
	engine := allocation.NewEngine(catalogSvc, log)
	store := planning.NewStore(cfg.PlanTTL, bus, log)
	planningSvc := planning.NewService(engine, store, bus, log)

	// Portfolio drift analysis
	rebalancingSvc := rebalancing.NewService(bus, log)

	// Companion tool launcher
	registry, err := tools.LoadRegistry(cfg.ToolsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load tool registry")
	}
	toolsSvc := tools.NewService(registry, nil, bus, log)

	// Background cleanup of expired plans
	sched := scheduler.New(log)
	if err := sched.AddJob(cfg.CleanupSchedule, planning.NewCleanupJob(store, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cleanup job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Log:                log,
		Config:             cfg,
		Bus:                bus,
		PlanningService:    planningSvc,
		RebalancingService: rebalancingSvc,
		CatalogService:     catalogSvc,
		ToolsService:       toolsSvc,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
