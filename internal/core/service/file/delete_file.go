package file

import (
	"context"
	"easyref/internal/core/domain"
	"errors"
	"log/slog"
)

// DeleteFile removes the file record, then its stored bytes best-effort.
// Deleting an unknown file succeeds.
func (f *fileService) DeleteFile(ctx context.Context, id int64) error {
	file, err := f.uow.FileRepo().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil
		}
		return err
	}

	if err := f.uow.FileRepo().Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil
		}
		return err
	}

	if err := f.fileStorage.Delete(ctx, file.StorageKey); err != nil {
		f.logger.Warn("failed to delete stored file",
			slog.Int64("fileID", id),
			slog.String("fileKey", file.StorageKey),
			slog.Any("error", err))
	}

	return nil
}
