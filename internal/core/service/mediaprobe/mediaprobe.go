package mediaprobe

import (
	"easyref/internal/core/port"
	"log/slog"
)

type mediaProbeService struct {
	storage port.FileStorage
	uow     port.UnitOfWork
	prober  port.MediaProber
	logger  *slog.Logger
}

// NewMediaProbeService creates the handler of media uploaded events
func NewMediaProbeService(storage port.FileStorage, uow port.UnitOfWork, prober port.MediaProber, logger *slog.Logger) port.MessageService {
	return &mediaProbeService{
		storage: storage,
		uow:     uow,
		prober:  prober,
		logger:  logger,
	}
}
