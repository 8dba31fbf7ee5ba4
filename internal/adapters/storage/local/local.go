package local

import (
	"context"
	"easyref/internal/adapters/storage/objectkey"
	"easyref/internal/core/domain"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Adapter stores objects as files under a root directory
type Adapter struct {
	root   string
	logger *slog.Logger
}

// NewAdapter returns Adapter, creating the root and trash directories
func NewAdapter(root string, logger *slog.Logger) (*Adapter, error) {
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(objectkey.TrashPrefix)), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Adapter{root: root, logger: logger}, nil
}

// Type returns domain.StorageTypeLocal
func (a *Adapter) Type() domain.StorageType {
	return domain.StorageTypeLocal
}

// Save writes content under a new key derived from suggestedName
func (a *Adapter) Save(ctx context.Context, content io.Reader, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := objectkey.New(suggestedName)
	path := a.path(key)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return key, nil
}

// Delete removes an object. A missing object is not an error.
func (a *Adapter) Delete(_ context.Context, key string) error {
	if err := objectkey.Validate(key); err != nil {
		return err
	}
	if err := os.Remove(a.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	a.logger.Info("object deleted", slog.String("fileKey", key))
	return nil
}

// PublicURL returns the path served by the storage endpoint
func (a *Adapter) PublicURL(key string) string {
	return "/storage/" + url.PathEscape(key)
}

// Exists reports whether the object is on disk
func (a *Adapter) Exists(_ context.Context, key string) (bool, error) {
	if err := objectkey.Validate(key); err != nil {
		return false, err
	}
	info, err := os.Stat(a.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Open returns the content of an object and its size
func (a *Adapter) Open(_ context.Context, key string) (io.ReadCloser, int64, error) {
	if err := objectkey.Validate(key); err != nil {
		return nil, 0, err
	}

	f, err := os.Open(a.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%s: %w", key, domain.ErrStoredObjectNotFound)
		}
		return nil, 0, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, 0, fmt.Errorf("%s: %w", key, domain.ErrStoredObjectNotFound)
	}
	return f, info.Size(), nil
}

// MoveToTrash renames the object into the trash area and stamps the staging time
func (a *Adapter) MoveToTrash(_ context.Context, key string) (string, error) {
	if err := objectkey.Validate(key); err != nil {
		return "", err
	}

	trashKey := objectkey.Trash(key)
	if err := os.Rename(a.path(key), a.path(trashKey)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", key, domain.ErrStoredObjectNotFound)
		}
		return "", fmt.Errorf("failed to move file to trash: %w", err)
	}

	now := time.Now()
	if err := os.Chtimes(a.path(trashKey), now, now); err != nil {
		a.logger.Warn("failed to stamp trash entry", slog.String("trashKey", trashKey), slog.Any("error", err))
	}
	return trashKey, nil
}

// RestoreFromTrash moves a staged object back to key
func (a *Adapter) RestoreFromTrash(_ context.Context, trashKey string, key string) error {
	if _, err := objectkey.ParseTrash(trashKey); err != nil {
		return err
	}
	if err := objectkey.Validate(key); err != nil {
		return err
	}

	if err := os.Rename(a.path(trashKey), a.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", trashKey, domain.ErrStoredObjectNotFound)
		}
		return fmt.Errorf("failed to restore file from trash: %w", err)
	}
	return nil
}

// PurgeTrash removes a staged object for good. A missing entry is not an error.
func (a *Adapter) PurgeTrash(_ context.Context, trashKey string) error {
	if _, err := objectkey.ParseTrash(trashKey); err != nil {
		return err
	}
	if err := os.Remove(a.path(trashKey)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to purge trash entry: %w", err)
	}
	return nil
}

// ListTrash lists the staged objects. Unrecognized entries are skipped.
func (a *Adapter) ListTrash(_ context.Context) ([]domain.TrashEntry, error) {
	dir := filepath.Join(a.root, filepath.FromSlash(objectkey.TrashPrefix))
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read trash: %w", err)
	}

	entries := make([]domain.TrashEntry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		trashKey := objectkey.TrashPrefix + dirEntry.Name()
		original, err := objectkey.ParseTrash(trashKey)
		if err != nil {
			a.logger.Warn("skipping unknown trash entry", slog.String("name", dirEntry.Name()))
			continue
		}
		info, err := dirEntry.Info()
		if err != nil {
			continue
		}
		entries = append(entries, domain.TrashEntry{
			TrashKey:    trashKey,
			OriginalKey: original,
			StagedAt:    info.ModTime(),
		})
	}
	return entries, nil
}

func (a *Adapter) path(key string) string {
	return filepath.Join(a.root, filepath.FromSlash(strings.TrimPrefix(key, "/")))
}
