package batch

import (
	"easyref/internal/core/port"
	"log/slog"
)

type batchService struct {
	uow         port.UnitOfWork
	fileStorage port.FileStorage
	logger      *slog.Logger
}

// NewBatchService creates a new batch service
func NewBatchService(uow port.UnitOfWork, storage port.FileStorage, logger *slog.Logger) port.BatchService {
	return &batchService{uow: uow, fileStorage: storage, logger: logger}
}
