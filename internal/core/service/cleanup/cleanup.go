package cleanup

import (
	"easyref/internal/core/port"
	"log/slog"
)

// trashSweeper settles the trash of one storage backend against the file records
type trashSweeper struct {
	uow     port.UnitOfWork
	storage port.FileStorage
	logger  *slog.Logger
}

// NewCleanupService returns the trash sweeper for storage
func NewCleanupService(uow port.UnitOfWork, storage port.FileStorage, logger *slog.Logger) port.CleanupService {
	return &trashSweeper{
		uow:     uow,
		storage: storage,
		logger:  logger.With(slog.String("storage", string(storage.Type()))),
	}
}
