package port

import (
	"context"
	"easyref/internal/core/domain"
)

// TagRepository represents a tag repository implementation
type TagRepository interface {
	CreateMany(ctx context.Context, tags []string) (int, error)
	FindByID(ctx context.Context, id int64) (*domain.Tag, error)
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	// FindByNames returns the found tags keyed by domain.TagKey
	FindByNames(ctx context.Context, names []string) (map[string]domain.Tag, error)
	List(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error)
}

// TagService represents a tag service implementation
type TagService interface {
	CreateTags(ctx context.Context, name []string) error
	GetTagByName(ctx context.Context, name string) (*domain.Tag, error)
	ListTags(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error)
}
