package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"PriceTrend/internal/config"
	"PriceTrend/internal/logger"
	"PriceTrend/internal/recorder"
	"PriceTrend/internal/scheduler"
	"PriceTrend/internal/server"
	"PriceTrend/internal/source"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	// Init logger
	lg, err := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()
	zap.L().Info("PriceTrend starting")

	// Init fetcher
	var fetcher source.Fetcher
	if cfg.PriceSource.BaseURL != "" {
		fetcher = source.NewHTTPFetcher(cfg.PriceSource.BaseURL, cfg.PriceSource.APIKey, cfg.Proxy)
	} else {
		fetcher = &source.MockFetcher{}
	}
	zap.L().Info("price source ready", zap.String("fetcher", fetcher.Name()))

	col := source.NewCollector(fetcher)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			zap.L().Warn("init sqlite recorder failed, using noop", zap.Error(err))
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, rec, cfg.Products)
	if err := sched.Register(cfg.Schedule.SnapshotCron); err != nil {
		zap.L().Fatal("register snapshot task", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		zap.L().Info("RUN_ON_START enabled, executing snapshot task now")
		go sched.RunNow()
	}

	// Init HTTP server
	srv := server.NewServer(cfg.Server.Addr, col, cfg.Chart.Width, cfg.Chart.Height, cfg.Chart.PixelRatio)
	go func() {
		if err := srv.Start(); err != nil {
			zap.L().Fatal("http server", zap.Error(err))
		}
	}()

	zap.L().Info("PriceTrend is running")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zap.L().Info("shutdown signal received, stopping")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Warn("http shutdown", zap.Error(err))
	}
	zap.L().Info("PriceTrend stopped")
}
