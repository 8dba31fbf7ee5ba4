package port

import (
	"context"
	"easyref/internal/core/domain"
	"io"
)

// MetadataRepository is an interface to define metadata interactions
type MetadataRepository interface {
	FindByFileID(ctx context.Context, fileID int64) (*domain.Metadata, error)
	// Upsert inserts the metadata of a file or overwrites the existing one, then sets its ID
	Upsert(ctx context.Context, metadata *domain.Metadata) error
}

// MediaProber reads the properties of a video container
type MediaProber interface {
	Supports(name string) bool
	Probe(ctx context.Context, content io.ReadSeeker) (*domain.VideoInfo, error)
}
