package file

import (
	"easyref/internal/config"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"log/slog"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type fileService struct {
	fileStorage   port.FileStorage
	uow           port.UnitOfWork
	publisher     port.EventPublisher
	fileUploadCfg config.FileUploadConfig
	logger        *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(uow port.UnitOfWork, storage port.FileStorage, publisher port.EventPublisher, cfg config.FileUploadConfig, logger *slog.Logger) port.FileService {
	return &fileService{
		uow:           uow,
		fileStorage:   storage,
		publisher:     publisher,
		fileUploadCfg: cfg,
		logger:        logger,
	}
}

// withURL resolves the public URL of a file leaving the service
func (f *fileService) withURL(file *domain.File) *domain.File {
	file.URL = f.fileStorage.PublicURL(file.StorageKey)
	return file
}

func (f *fileService) withURLs(files []domain.File) []domain.File {
	for i := range files {
		f.withURL(&files[i])
	}
	return files
}
