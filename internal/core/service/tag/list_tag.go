package tag

import (
	"context"
	"easyref/internal/core/domain"
	"fmt"
	"strings"
)

// ListTags returns one page of tags ordered by name, starting after marker.
// A blank marker starts from the first tag and limit is capped to maxListLimit.
func (t *tagService) ListTags(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error) {
	limit = min(max(limit, 1), maxListLimit)
	if marker != nil && strings.TrimSpace(*marker) == "" {
		marker = nil
	}

	page, next, err := t.repo.List(ctx, limit, marker)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return page, next, nil
}
