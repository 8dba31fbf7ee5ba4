package storage

import (
	"context"
	"easyref/internal/adapters/storage/local"
	"easyref/internal/adapters/storage/minio"
	"easyref/internal/config"
	"easyref/internal/core/port"
	"fmt"
	"log/slog"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// New builds the storage backend selected by cfg.Backend
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (port.FileStorage, error) {
	switch cfg.Backend {
	case BackendLocal, "":
		logger.Info("using local storage", slog.String("path", cfg.LocalPath))
		return local.NewAdapter(cfg.LocalPath, logger)
	case BackendS3:
		logger.Info("using s3 storage",
			slog.String("endpoint", cfg.S3.Endpoint),
			slog.String("bucket", cfg.S3.BucketName))
		return minio.NewAdapter(ctx, cfg.S3, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
