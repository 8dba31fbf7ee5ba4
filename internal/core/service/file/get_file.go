package file

import (
	"context"
	"easyref/internal/core/domain"
)

func (f *fileService) GetFile(ctx context.Context, id int64) (*domain.File, error) {
	file, err := f.uow.FileRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return f.withURL(file), nil
}

// GetRandomFile returns domain.ErrLibraryEmpty when there is nothing to pick from
func (f *fileService) GetRandomFile(ctx context.Context) (*domain.File, error) {
	file, err := f.uow.FileRepo().FindRandom(ctx)
	if err != nil {
		return nil, err
	}
	return f.withURL(file), nil
}
