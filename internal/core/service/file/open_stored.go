package file

import (
	"context"
	"io"
)

// OpenStored streams the bytes stored under key
func (f *fileService) OpenStored(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	return f.fileStorage.Open(ctx, key)
}
