package port

import (
	"context"
	"time"
)

// CleanupService is service that handles cleanup
type CleanupService interface {
	// SweepTrash settles the trash entries staged before stagedBefore: restored when their
	// file record still exists, purged otherwise
	SweepTrash(ctx context.Context, stagedBefore time.Time) error
}
