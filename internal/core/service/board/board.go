package board

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"log/slog"
)

type boardService struct {
	uow         port.UnitOfWork
	fileStorage port.FileStorage
	logger      *slog.Logger
}

// NewBoardService creates a new board service
func NewBoardService(uow port.UnitOfWork, storage port.FileStorage, logger *slog.Logger) port.BoardService {
	return &boardService{uow: uow, fileStorage: storage, logger: logger}
}

// attachFiles loads the file placed by every item
func (b *boardService) attachFiles(ctx context.Context, uow port.UnitOfWork, items []domain.BoardItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.FileID)
	}
	files, err := uow.FileRepo().FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range items {
		file, ok := files[items[i].FileID]
		if !ok {
			continue
		}
		file.URL = b.fileStorage.PublicURL(file.StorageKey)
		items[i].File = &file
	}
	return nil
}
