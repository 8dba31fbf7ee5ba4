package cleanup

import (
	"context"
	"easyref/internal/core/domain"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// SweepTrash settles what an interrupted deletion left in the trash.
// Entries staged at or after stagedBefore may belong to a batch still running and are skipped.
func (c *trashSweeper) SweepTrash(ctx context.Context, stagedBefore time.Time) error {
	entries, err := c.storage.ListTrash(ctx)
	if err != nil {
		return err
	}

	var errs []error
	restored, purged := 0, 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if !entry.StagedAt.Before(stagedBefore) {
			continue
		}

		wasRestored, sweepErr := c.sweepEntry(ctx, entry)
		if sweepErr != nil {
			c.logger.Error("failed to sweep trash entry",
				slog.String("trashKey", entry.TrashKey),
				slog.Any("error", sweepErr))
			errs = append(errs, fmt.Errorf("trash entry %s: %w", entry.TrashKey, sweepErr))
			continue
		}
		if wasRestored {
			restored++
		} else {
			purged++
		}
	}

	if restored > 0 || purged > 0 {
		c.logger.Info("trash swept", slog.Int("restored", restored), slog.Int("purged", purged))
	}
	return errors.Join(errs...)
}

// sweepEntry restores the bytes of a file that still exists and purges the rest
func (c *trashSweeper) sweepEntry(ctx context.Context, entry domain.TrashEntry) (bool, error) {
	referenced, err := c.uow.FileRepo().ExistsByStorageKey(ctx, c.storage.Type(), entry.OriginalKey)
	if err != nil {
		return false, err
	}
	if referenced {
		return true, c.storage.RestoreFromTrash(ctx, entry.TrashKey, entry.OriginalKey)
	}
	return false, c.storage.PurgeTrash(ctx, entry.TrashKey)
}
