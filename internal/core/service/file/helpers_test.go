package file_test

import (
	"easyref/internal/adapters/eventbroker"
	"easyref/internal/adapters/repository"
	"easyref/internal/adapters/storage"
	"easyref/internal/config"
	"easyref/internal/core/port"
	"easyref/internal/core/service/file"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

type fixture struct {
	service   port.FileService
	uow       *repository.MockUnitOfWork
	storage   *storage.MockStorage
	publisher *eventbroker.MockPublisher
}

func setup() fixture {
	uow := repository.NewMockUnitOfWork()
	fileStorage := storage.NewMockStorage()
	publisher := eventbroker.NewMockPublisher()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fileStorage.On("PublicURL", mock.Anything).Return("/storage/key").Maybe()

	cfg := config.FileUploadConfig{MaxFileSize: 1024}
	return fixture{
		service:   file.NewFileService(uow, fileStorage, publisher, cfg, logger),
		uow:       uow,
		storage:   fileStorage,
		publisher: publisher,
	}
}
