package mediaprobe

import (
	"bytes"
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// HandleMessage probes the uploaded video and stores its duration and size in the file metadata.
// A video that cannot be probed, or whose file is gone, is logged and acknowledged.
func (m *mediaProbeService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.MediaUploaded
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal media event: %w", err)
	}
	if event.FileID == 0 || event.StorageKey == "" {
		return fmt.Errorf("incomplete media event: %s", data)
	}

	logger := m.logger.With(slog.Int64("fileID", event.FileID), slog.String("fileKey", event.StorageKey))

	if !m.prober.Supports(event.Name) {
		logger.Info("skipping probe of unsupported container", slog.String("fileName", event.Name))
		return nil
	}

	if _, err := m.uow.FileRepo().FindByID(ctx, event.FileID); err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			logger.Info("skipping probe of deleted file")
			return nil
		}
		return err
	}

	info, err := m.probe(ctx, event.StorageKey)
	if err != nil {
		if errors.Is(err, domain.ErrStoredObjectNotFound) || errors.Is(err, domain.ErrUnsupportedMedia) {
			logger.Warn("could not probe video", slog.Any("error", err))
			return nil
		}
		return err
	}

	err = m.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		metadata, err := uow.MetadataRepo().FindByFileID(ctx, event.FileID)
		if err != nil {
			if !errors.Is(err, domain.ErrMetadataNotFound) {
				return err
			}
			metadata = &domain.Metadata{FileID: event.FileID}
		}
		metadata.ApplyVideoInfo(*info)
		return uow.MetadataRepo().Upsert(ctx, metadata)
	})
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			logger.Info("file deleted while probing")
			return nil
		}
		return err
	}

	logger.Info("video probed",
		slog.Float64("duration", info.Duration),
		slog.Int("width", info.Width),
		slog.Int("height", info.Height))
	return nil
}

func (m *mediaProbeService) probe(ctx context.Context, key string) (*domain.VideoInfo, error) {
	content, _, err := m.storage.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer content.Close()

	seeker, ok := content.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(content)
		if err != nil {
			return nil, fmt.Errorf("failed to read stored video: %w", err)
		}
		seeker = bytes.NewReader(data)
	}

	return m.prober.Probe(ctx, seeker)
}
