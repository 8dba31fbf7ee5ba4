package batch

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Apply applies every mutation of req to the selected files as one unit.
// Any failure rolls the database back and restores the objects already moved to the trash.
func (b *batchService) Apply(ctx context.Context, req domain.BatchApplyRequest) (*domain.BatchApplyResult, error) {
	fileIDs := req.UniqueFileIDs()
	if err := validateRequest(fileIDs); err != nil {
		return nil, err
	}

	stage := newTrashStage(b.fileStorage, b.logger)
	defer stage.revert(ctx)

	result := &domain.BatchApplyResult{}

	err := b.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		files, err := lockFiles(ctx, uow, fileIDs)
		if err != nil {
			return err
		}

		if err := checkBoard(ctx, uow, req, fileIDs); err != nil {
			return err
		}

		addTags, removeTags, err := resolveTags(ctx, uow, req.AddTags, req.RemoveTags)
		if err != nil {
			return err
		}

		for _, file := range files {
			changed, err := applyToFile(ctx, uow, file, addTags, removeTags, req)
			if err != nil {
				return err
			}
			if changed {
				result.Updated++
			}
		}

		if req.BoardID != nil {
			for _, placement := range req.BoardItems {
				item := domain.NewBoardItem(*req.BoardID, placement)
				if err := uow.BoardItemRepo().Create(ctx, &item); err != nil {
					return err
				}
				result.AddedToBoard++
			}
		}

		if req.DeleteFiles {
			for _, file := range files {
				if err := stage.move(ctx, file.StorageKey); err != nil {
					return err
				}
			}
			for _, file := range files {
				if err := uow.FileRepo().Delete(ctx, file.ID); err != nil {
					return err
				}
			}
			result.Deleted = len(files)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	stage.finalize(ctx)

	b.logger.Info("batch applied",
		slog.Int("files", len(fileIDs)),
		slog.Int("updated", result.Updated),
		slog.Int("addedToBoard", result.AddedToBoard),
		slog.Int("deleted", result.Deleted))

	return result, nil
}

// validateRequest checks what needs no database. The other preconditions are checked in order
// once the files are locked: unknown files, then the board placement.
func validateRequest(fileIDs []int64) error {
	if len(fileIDs) == 0 {
		return domain.ErrNoFileIDs
	}
	return nil
}

// checkBoard validates a board placement: exclusive with deletion, an existing board, then
// items that only place selected files
func checkBoard(ctx context.Context, uow port.UnitOfWork, req domain.BatchApplyRequest, fileIDs []int64) error {
	if req.BoardID == nil {
		return nil
	}
	if req.DeleteFiles {
		return domain.ErrBoardWithDelete
	}
	if _, err := uow.BoardRepo().FindByID(ctx, *req.BoardID); err != nil {
		return err
	}
	if len(req.BoardItems) == 0 {
		return domain.ErrBoardItemsRequired
	}
	for _, item := range req.BoardItems {
		if !slices.Contains(fileIDs, item.FileID) {
			return domain.ErrBoardItemOutsideSelection
		}
	}
	return nil
}

// lockFiles loads the selected files, locking them for the rest of the transaction
func lockFiles(ctx context.Context, uow port.UnitOfWork, fileIDs []int64) ([]domain.File, error) {
	files, err := uow.FileRepo().FindByIDsForUpdate(ctx, fileIDs)
	if err != nil {
		return nil, err
	}
	if len(files) == len(fileIDs) {
		return files, nil
	}

	found := make(map[int64]struct{}, len(files))
	for _, file := range files {
		found[file.ID] = struct{}{}
	}
	var missing []int64
	for _, id := range fileIDs {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	slices.Sort(missing)
	return nil, fmt.Errorf("%w: %v", domain.ErrFileNotFound, missing)
}

// resolveTags returns the tags to add, created when missing, and the existing tags to remove.
// Unknown names to remove are ignored.
func resolveTags(ctx context.Context, uow port.UnitOfWork, add, remove []string) ([]domain.Tag, []domain.Tag, error) {
	add = domain.NormalizeTagNames(add)
	remove = domain.NormalizeTagNames(remove)
	if len(add) == 0 && len(remove) == 0 {
		return nil, nil, nil
	}

	if len(add) > 0 {
		// a tag created concurrently is skipped here and picked up by the lookup below
		if _, err := uow.TagRepo().CreateMany(ctx, add); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, nil, err
		}
	}

	found, err := uow.TagRepo().FindByNames(ctx, append(slices.Clone(add), remove...))
	if err != nil {
		return nil, nil, err
	}

	addTags, err := pickTags(found, add, true)
	if err != nil {
		return nil, nil, err
	}
	removeTags, _ := pickTags(found, remove, false)
	return addTags, removeTags, nil
}

func pickTags(found map[string]domain.Tag, names []string, required bool) ([]domain.Tag, error) {
	seen := make(map[int64]struct{}, len(names))
	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		tag, ok := found[domain.TagKey(name)]
		if !ok {
			if required {
				return nil, fmt.Errorf("tag %s: %w", name, domain.ErrTagNotFound)
			}
			continue
		}
		if _, ok := seen[tag.ID]; ok {
			continue
		}
		seen[tag.ID] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}

// applyToFile adds then removes tags and writes favorite/rating. It reports whether the file changed:
// tag edits count only when membership moves, a metadata write always counts.
func applyToFile(ctx context.Context, uow port.UnitOfWork, file domain.File, addTags, removeTags []domain.Tag, req domain.BatchApplyRequest) (bool, error) {
	changed := false

	current := make(map[int64]bool, len(file.Tags)+len(addTags))
	for _, tag := range file.Tags {
		current[tag.ID] = true
	}

	var added []int64
	for _, tag := range addTags {
		if !current[tag.ID] {
			current[tag.ID] = true
			added = append(added, tag.ID)
			changed = true
		}
	}

	var detach []int64
	for _, tag := range removeTags {
		if !current[tag.ID] {
			continue
		}
		delete(current, tag.ID)
		changed = true
		if file.HasTag(tag.ID) {
			detach = append(detach, tag.ID)
		}
	}

	// a tag both added and removed ends up absent
	attach := make([]int64, 0, len(added))
	for _, id := range added {
		if current[id] {
			attach = append(attach, id)
		}
	}

	if len(attach) > 0 {
		if _, err := uow.FileTagRepo().Attach(ctx, file.ID, attach); err != nil {
			return false, err
		}
	}
	if len(detach) > 0 {
		if _, err := uow.FileTagRepo().Detach(ctx, file.ID, detach); err != nil {
			return false, err
		}
	}

	if req.TouchesMetadata() {
		metadata := file.Metadata
		if metadata == nil {
			metadata = &domain.Metadata{FileID: file.ID}
		}
		if req.ToggleFavorite {
			metadata.IsFavorite = !metadata.IsFavorite
		}
		if req.Rating != nil {
			rating := *req.Rating
			metadata.Rating = &rating
		}
		if err := uow.MetadataRepo().Upsert(ctx, metadata); err != nil {
			return false, err
		}
		changed = true
	}

	return changed, nil
}
