package file

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
)

// UpdateMetadata writes the set fields of update, creating the metadata on first write
func (f *fileService) UpdateMetadata(ctx context.Context, fileID int64, update domain.MetadataUpdate) (*domain.Metadata, error) {
	var metadata *domain.Metadata

	err := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if _, err := uow.FileRepo().FindByID(ctx, fileID); err != nil {
			return err
		}

		current, err := uow.MetadataRepo().FindByFileID(ctx, fileID)
		if err != nil {
			if !errors.Is(err, domain.ErrMetadataNotFound) {
				return err
			}
			current = &domain.Metadata{FileID: fileID}
		}

		current.Apply(update)
		if err := uow.MetadataRepo().Upsert(ctx, current); err != nil {
			return err
		}

		metadata = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return metadata, nil
}
