package file

import (
	"context"
	"easyref/internal/core/domain"
)

func (f *fileService) ListFiles(ctx context.Context, skip, limit int) ([]domain.File, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	files, err := f.uow.FileRepo().List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return f.withURLs(files), nil
}

// SearchFiles matches any of the tags unless filter.TagMode asks for all of them
func (f *fileService) SearchFiles(ctx context.Context, filter domain.SearchFilter) ([]domain.File, error) {
	if filter.TagMode != domain.TagSearchModeAnd {
		filter.TagMode = domain.TagSearchModeOr
	}
	if filter.FileType != domain.FileTypeImage && filter.FileType != domain.FileTypeVideo {
		filter.FileType = ""
	}

	files, err := f.uow.FileRepo().Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return f.withURLs(files), nil
}
