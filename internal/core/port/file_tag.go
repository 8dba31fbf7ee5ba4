package port

import (
	"context"
	"easyref/internal/core/domain"
)

// FileTagRepository is an interface to define file/tag association interactions
type FileTagRepository interface {
	Attach(ctx context.Context, fileID int64, tagIDs []int64) (int, error)
	Detach(ctx context.Context, fileID int64, tagIDs []int64) (int, error)
	FindByFileID(ctx context.Context, fileID int64) ([]domain.FileTag, error)
}
