package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/simaogato/investment-tracker/internal/adapter/httpapi"
	"github.com/simaogato/investment-tracker/internal/adapter/repository/sqlite"
	"github.com/simaogato/investment-tracker/internal/clients/prices"
	"github.com/simaogato/investment-tracker/internal/config"
	"github.com/simaogato/investment-tracker/internal/domain"
	"github.com/simaogato/investment-tracker/internal/scheduler"
	"github.com/simaogato/investment-tracker/internal/usecase/history"
	"github.com/simaogato/investment-tracker/internal/usecase/investment"
	"github.com/simaogato/investment-tracker/internal/usecase/portfolio"
	"github.com/simaogato/investment-tracker/internal/usecase/refresh"
	"github.com/simaogato/investment-tracker/internal/usecase/seeder"
	"github.com/simaogato/investment-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLog := logger.New(logger.Config{Level: "error"})
		errLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting investment tracker")

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create data directory")
	}

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	investmentRepo := sqlite.NewInvestmentRepository(db, log)
	historyRepo := sqlite.NewHistoryRepository(db, log)
	settingsRepo := sqlite.NewSettingsRepository(db, log)

	var priceOpts []prices.Option
	if cfg.AlphaVantageKey != "" {
		priceOpts = append(priceOpts, prices.WithAlphaVantageKey(cfg.AlphaVantageKey))
	}
	priceClient := prices.NewClient(log, priceOpts...)

	investmentService := investment.NewService(investmentRepo)
	portfolioService := portfolio.NewService(investmentRepo, historyRepo)
	historyService := history.NewService(historyRepo)
	refreshService := refresh.NewService(investmentRepo, historyRepo, priceClient)

	ctx := context.Background()

	if cfg.SeedData {
		if err := seeder.NewSeeder(investmentRepo).Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed starter portfolio")
		}
	}

	sched := scheduler.New(log)
	autoRefresh := scheduler.NewAutoRefresh(sched, scheduler.NewPriceRefreshJob(refreshService))

	settings, err := settingsRepo.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	if err := autoRefresh.Apply(settings); err != nil {
		log.Fatal().Err(err).Msg("Failed to register price refresh job")
	}
	sched.Start()
	defer sched.Stop()

	srv := httpapi.New(httpapi.Config{
		Port:              cfg.Port,
		APIToken:          cfg.APIToken,
		Log:               log,
		InvestmentService: investmentService,
		PortfolioService:  portfolioService,
		RefreshService:    refreshService,
		HistoryService:    historyService,
		SettingsRepo:      settingsRepo,
		OnSettingsChange: func(s domain.Settings) {
			if err := autoRefresh.Apply(s); err != nil {
				log.Error().Err(err).Msg("Failed to re-arm price refresh job")
			}
		},
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
