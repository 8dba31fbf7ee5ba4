package batch

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
	"fmt"
	"log/slog"
)

type stagedMove struct {
	key      string
	trashKey string
}

// trashStage tracks the stored objects moved to the trash during one batch.
// Until settled, revert puts every object back. finalize purges them once the
// database change is committed.
type trashStage struct {
	storage port.FileStorage
	logger  *slog.Logger
	moves   []stagedMove
	settled bool
}

func newTrashStage(storage port.FileStorage, logger *slog.Logger) *trashStage {
	return &trashStage{storage: storage, logger: logger}
}

// move stages the deletion of key. A missing object fails with domain.ErrStoredBytesMissing.
func (s *trashStage) move(ctx context.Context, key string) error {
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check stored file %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrStoredBytesMissing, key)
	}

	trashKey, err := s.storage.MoveToTrash(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrStoredObjectNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrStoredBytesMissing, key)
		}
		return fmt.Errorf("failed to move %s to trash: %w", key, err)
	}

	s.moves = append(s.moves, stagedMove{key: key, trashKey: trashKey})
	return nil
}

// revert restores the staged objects, newest first. It runs even when the request is cancelled.
func (s *trashStage) revert(ctx context.Context) {
	if s.settled {
		return
	}
	s.settled = true

	ctx = context.WithoutCancel(ctx)
	for i := len(s.moves) - 1; i >= 0; i-- {
		m := s.moves[i]
		if err := s.storage.RestoreFromTrash(ctx, m.trashKey, m.key); err != nil {
			// left for the trash sweep, which restores entries whose file still exists
			s.logger.Error("failed to restore staged file",
				slog.String("key", m.key),
				slog.String("trashKey", m.trashKey),
				slog.Any("error", err))
		}
	}
}

// finalize purges the staged objects. Failures are logged only.
func (s *trashStage) finalize(ctx context.Context) {
	s.settled = true

	ctx = context.WithoutCancel(ctx)
	for _, m := range s.moves {
		if err := s.storage.PurgeTrash(ctx, m.trashKey); err != nil {
			s.logger.Warn("failed to purge trash entry",
				slog.String("trashKey", m.trashKey),
				slog.Any("error", err))
		}
	}
}
