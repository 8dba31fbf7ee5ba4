package file

import (
	"context"
	"easyref/internal/core/domain"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// Upload stores every upload and records it. In a multi-file request a rejected upload is skipped
// and the others go on. When nothing could be stored the last failure is returned.
// Committed videos are announced for probing.
func (f *fileService) Upload(ctx context.Context, uploads []domain.Upload) ([]domain.File, error) {
	if len(uploads) == 0 {
		return nil, domain.ErrNothingUploaded
	}

	created := make([]domain.File, 0, len(uploads))
	var lastErr error
	for _, upload := range uploads {
		file, err := f.uploadOne(ctx, upload)
		if err != nil {
			lastErr = err
			f.logger.Warn("skipping upload",
				slog.String("fileName", upload.Name),
				slog.String("size", humanize.Bytes(uint64(max(upload.Size, 0)))),
				slog.Any("error", err))
			continue
		}

		if domain.FileTypeFromName(file.Name) == domain.FileTypeVideo {
			file = f.announceVideo(ctx, file)
		}
		created = append(created, *f.withURL(file))
	}

	f.logger.Info("upload completed",
		slog.Int("received", len(uploads)),
		slog.Int("stored", len(created)))

	if len(created) == 0 {
		return nil, fmt.Errorf("nothing stored out of %d upload(s): %w", len(uploads), lastErr)
	}
	return created, nil
}

func (f *fileService) uploadOne(ctx context.Context, upload domain.Upload) (*domain.File, error) {
	if err := validateFileName(upload.Name); err != nil {
		return nil, err
	}
	if f.fileUploadCfg.MaxFileSize > 0 && upload.Size > f.fileUploadCfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %s", domain.ErrFileSizeTooBig,
			humanize.Bytes(uint64(upload.Size)), humanize.Bytes(uint64(f.fileUploadCfg.MaxFileSize)))
	}

	content, err := upload.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer content.Close()

	key, err := f.fileStorage.Save(ctx, content, upload.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	file := &domain.File{
		Name:        upload.Name,
		StorageKey:  key,
		StorageType: f.fileStorage.Type(),
		Tags:        []domain.Tag{},
	}
	if err := f.uow.FileRepo().Create(ctx, file); err != nil {
		if delErr := f.fileStorage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			f.logger.Warn("failed to delete orphan upload", slog.String("fileKey", key), slog.Any("error", delErr))
		}
		return nil, err
	}

	f.logger.Info("file uploaded",
		slog.Int64("fileID", file.ID),
		slog.String("fileKey", key),
		slog.String("size", humanize.Bytes(uint64(max(upload.Size, 0)))))

	return file, nil
}

// announceVideo publishes the upload for probing. When the probe ran in-process the file is
// reloaded so the caller sees the probed metadata.
func (f *fileService) announceVideo(ctx context.Context, file *domain.File) *domain.File {
	event := domain.MediaUploaded{FileID: file.ID, StorageKey: file.StorageKey, Name: file.Name}
	if err := f.publisher.PublishMediaUploaded(ctx, event); err != nil {
		f.logger.Warn("failed to publish media uploaded event",
			slog.Int64("fileID", file.ID),
			slog.Any("error", err))
		return file
	}

	reloaded, err := f.uow.FileRepo().FindByID(ctx, file.ID)
	if err != nil {
		return file
	}
	return reloaded
}

func validateFileName(name string) error {
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %s", domain.ErrInvalidFileName, name)
	}
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if strings.TrimSpace(name) == "" || base == "." || base == "/" {
		return fmt.Errorf("%w: empty name", domain.ErrInvalidFileName)
	}
	return nil
}
