package tag

import (
	"context"
	"easyref/internal/core/domain"
	"strings"
)

func (t *tagService) GetTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrTagNotFound
	}
	return t.repo.FindByName(ctx, name)
}
