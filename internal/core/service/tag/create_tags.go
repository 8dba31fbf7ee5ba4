package tag

import (
	"context"
	"easyref/internal/core/domain"
	"log/slog"
)

// CreateTags creates tags by batch. Blank names are dropped; domain.ErrAlreadyExists is
// returned when every name already exists.
func (t *tagService) CreateTags(ctx context.Context, tags []string) error {
	names := domain.NormalizeTagNames(tags)
	if len(names) == 0 {
		return nil
	}

	created, err := t.repo.CreateMany(ctx, names)
	if err != nil {
		return err
	}

	t.logger.Debug("tags created", slog.Int("requested", len(names)), slog.Int("created", created))
	return nil
}
