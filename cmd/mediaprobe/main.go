package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"easyref/internal/adapters/eventbroker/nats"
	"easyref/internal/adapters/media/mp4"
	"easyref/internal/adapters/repository/postgres"
	"easyref/internal/adapters/storage"
	"easyref/internal/config"
	"easyref/internal/core/service/mediaprobe"
	"easyref/internal/logger"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log, logCloser, err := logger.New(cfg.Log, os.Stdout)
	if err != nil {
		slog.Error("failed to init logger", slog.Any("error", err))
		os.Exit(1)
	}
	defer logCloser.Close()

	if cfg.NATS.URL == "" {
		log.Error("NATS_URL is required by the media probe worker")
		os.Exit(1)
	}

	// Initialize database
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to init database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", slog.Any("error", err))
		}
	}()
	log.Info("db connection established")

	fileStorage, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("failed to init storage", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize services
	unitOfWork := postgres.NewUnitOfWork(db)
	probeService := mediaprobe.NewMediaProbeService(fileStorage, unitOfWork, mp4.NewProber(), log)

	// Initialize NATS consumer
	natsConsumer, err := nats.NewNATSConsumer(ctx, cfg.NATS, log)
	if err != nil {
		log.Error("failed to create NATS consumer", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("NATS consumer initialized")

	// Subscribe to NATS
	if err := natsConsumer.Subscribe(ctx, probeService); err != nil {
		log.Error("failed to subscribe to NATS", slog.Any("error", err))
		natsConsumer.Close()
		os.Exit(1)
	}
	log.Info("NATS subscription active")

	// Wait for termination signal
	<-ctx.Done()
	log.Info("gracefully shutting down media probe worker")

	if err := natsConsumer.Close(); err != nil {
		log.Error("failed to close NATS consumer during shutdown", slog.Any("error", err))
	}

	log.Info("media probe worker shutdown complete")
}
