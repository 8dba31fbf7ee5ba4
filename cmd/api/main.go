package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easyref/internal/adapters/eventbroker/inline"
	"easyref/internal/adapters/eventbroker/nats"
	"easyref/internal/adapters/handlers/http/chi"
	"easyref/internal/adapters/handlers/http/chi/v1/board"
	"easyref/internal/adapters/handlers/http/chi/v1/file"
	"easyref/internal/adapters/handlers/http/chi/v1/tag"
	"easyref/internal/adapters/media/mp4"
	"easyref/internal/adapters/repository/postgres"
	"easyref/internal/adapters/storage"
	"easyref/internal/config"
	"easyref/internal/core/port"
	"easyref/internal/core/service/batch"
	boardservice "easyref/internal/core/service/board"
	"easyref/internal/core/service/cleanup"
	fileservice "easyref/internal/core/service/file"
	"easyref/internal/core/service/mediaprobe"
	tagservice "easyref/internal/core/service/tag"
	"easyref/internal/logger"

	"golang.org/x/sync/errgroup"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

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

	//storage
	fileStorage, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("failed to init storage", slog.Any("error", err))
		os.Exit(1)
	}

	//repositories
	tagRepo := postgres.NewSqlTagRepository(db)
	unitOfWork := postgres.NewUnitOfWork(db)

	//events
	publisher, err := newPublisher(ctx, cfg, fileStorage, unitOfWork, log)
	if err != nil {
		log.Error("failed to init event publisher", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("failed to close event publisher", slog.Any("error", err))
		}
	}()

	//services
	tagService := tagservice.NewTagService(tagRepo, log)
	fileService := fileservice.NewFileService(unitOfWork, fileStorage, publisher, cfg.Upload, log)
	boardService := boardservice.NewBoardService(unitOfWork, fileStorage, log)
	batchService := batch.NewBatchService(unitOfWork, fileStorage, log)
	cleanupService := cleanup.NewCleanupService(unitOfWork, fileStorage, log)

	//http
	router := chi.NewRouter(log, chi.Handlers{
		Tag:   tag.NewTagHandlerV1(tagService, log),
		File:  file.NewFileHandlerV1(fileService, batchService, cfg.Upload, log),
		Board: board.NewBoardHandlerV1(boardService, log),
	}, cfg.Env.Env)
	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", slog.String("host", cfg.Server.Host), slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("gracefully shutting down app")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info("server gracefully shutdown complete")
		return nil
	})

	g.Go(func() error {
		runTrashSweep(gctx, cleanupService, cfg.Trash, log)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("app stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("app shutdown complete")
}

// newPublisher sends media events to NATS when configured, otherwise probes them in-process
func newPublisher(ctx context.Context, cfg *config.Config, fileStorage port.FileStorage, uow port.UnitOfWork, log *slog.Logger) (port.EventPublisher, error) {
	if cfg.NATS.URL != "" {
		publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, log)
		if err != nil {
			return nil, err
		}
		log.Info("media events published to NATS", slog.String("subject", cfg.NATS.Subject))
		return publisher, nil
	}

	probeService := mediaprobe.NewMediaProbeService(fileStorage, uow, mp4.NewProber(), log)
	log.Info("media events handled in-process")
	return inline.NewPublisher(probeService, log), nil
}

// runTrashSweep settles the trash periodically until ctx is done
func runTrashSweep(ctx context.Context, service port.CleanupService, cfg config.TrashConfig, log *slog.Logger) {
	ticker := time.NewTicker(cfg.SweepEvery)
	defer ticker.Stop()

	log.Info("trash sweep initialized", slog.Duration("interval", cfg.SweepEvery), slog.Duration("grace", cfg.Grace))

	for {
		select {
		case <-ticker.C:
			if err := service.SweepTrash(ctx, time.Now().Add(-cfg.Grace)); err != nil {
				log.Error("failed to sweep trash", slog.Any("error", err))
			}
		case <-ctx.Done():
			log.Info("trash sweep stopped")
			return
		}
	}
}
