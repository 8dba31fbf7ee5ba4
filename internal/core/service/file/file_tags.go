package file

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
	"strings"
)

// AddTag attaches the tag named name to the file, creating the tag when no tag matches case-insensitively
func (f *fileService) AddTag(ctx context.Context, fileID int64, name string) (*domain.File, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidTagName
	}

	var file *domain.File
	err := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		current, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}

		if _, err := uow.TagRepo().CreateMany(ctx, []string{name}); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			return err
		}
		tag, err := uow.TagRepo().FindByName(ctx, name)
		if err != nil {
			return err
		}

		if !current.HasTag(tag.ID) {
			if _, err := uow.FileTagRepo().Attach(ctx, fileID, []int64{tag.ID}); err != nil {
				return err
			}
		}

		file, err = uow.FileRepo().FindByID(ctx, fileID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return f.withURL(file), nil
}

// RemoveTag detaches a tag from the file. Removing a tag the file does not carry is a no-op.
func (f *fileService) RemoveTag(ctx context.Context, fileID int64, tagID int64) (*domain.File, error) {
	var file *domain.File
	err := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		current, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}
		if _, err := uow.TagRepo().FindByID(ctx, tagID); err != nil {
			return err
		}

		if !current.HasTag(tagID) {
			file = current
			return nil
		}

		if _, err := uow.FileTagRepo().Detach(ctx, fileID, []int64{tagID}); err != nil {
			return err
		}

		file, err = uow.FileRepo().FindByID(ctx, fileID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return f.withURL(file), nil
}
