package minio

import (
	"context"
	"easyref/internal/adapters/storage/objectkey"
	"easyref/internal/config"
	"easyref/internal/core/domain"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const errCodeNoSuchKey = "NoSuchKey"

// Adapter stores objects in an S3-compatible bucket (MinIO, R2, AWS)
type Adapter struct {
	client *minio.Client
	config config.S3Config
	logger *slog.Logger
}

// NewAdapter returns Adapter, creating the bucket when missing
func NewAdapter(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Type returns domain.StorageTypeS3
func (a *Adapter) Type() domain.StorageType {
	return domain.StorageTypeS3
}

// Save streams content to a new key derived from suggestedName
func (a *Adapter) Save(ctx context.Context, content io.Reader, suggestedName string) (string, error) {
	key := objectkey.New(suggestedName)

	opts := minio.PutObjectOptions{
		ContentType: mime.TypeByExtension(strings.ToLower(path.Ext(key))),
	}
	if _, err := a.client.PutObject(ctx, a.config.BucketName, key, content, -1, opts); err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return key, nil
}

// Delete deletes an object from storage
func (a *Adapter) Delete(ctx context.Context, key string) error {
	if err := objectkey.Validate(key); err != nil {
		return err
	}
	err := a.client.RemoveObject(ctx, a.config.BucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("fileKey", key),
		slog.String("bucket", a.config.BucketName))

	return nil
}

// PublicURL returns the public bucket URL when configured, the proxied storage path otherwise
func (a *Adapter) PublicURL(key string) string {
	if a.config.PublicBaseURL != "" {
		return strings.TrimRight(a.config.PublicBaseURL, "/") + "/" + url.PathEscape(key)
	}
	return "/storage/" + url.PathEscape(key)
}

// Exists reports whether the object is in the bucket
func (a *Adapter) Exists(ctx context.Context, key string) (bool, error) {
	if err := objectkey.Validate(key); err != nil {
		return false, err
	}
	_, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get object info: %w", err)
	}
	return true, nil
}

// Open returns the content of an object and its size
func (a *Adapter) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	if err := objectkey.Validate(key); err != nil {
		return nil, 0, err
	}

	info, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, 0, fmt.Errorf("%s: %w", key, domain.ErrStoredObjectNotFound)
		}
		return nil, 0, fmt.Errorf("failed to get object info: %w", err)
	}

	object, err := a.client.GetObject(ctx, a.config.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get object: %w", err)
	}
	return object, info.Size, nil
}

// MoveToTrash copies the object under the trash prefix server-side, then removes the source
func (a *Adapter) MoveToTrash(ctx context.Context, key string) (string, error) {
	if err := objectkey.Validate(key); err != nil {
		return "", err
	}

	trashKey := objectkey.Trash(key)
	if err := a.move(ctx, key, trashKey); err != nil {
		return "", err
	}
	return trashKey, nil
}

// RestoreFromTrash moves a staged object back to key
func (a *Adapter) RestoreFromTrash(ctx context.Context, trashKey string, key string) error {
	if _, err := objectkey.ParseTrash(trashKey); err != nil {
		return err
	}
	if err := objectkey.Validate(key); err != nil {
		return err
	}
	return a.move(ctx, trashKey, key)
}

// PurgeTrash removes a staged object for good
func (a *Adapter) PurgeTrash(ctx context.Context, trashKey string) error {
	if _, err := objectkey.ParseTrash(trashKey); err != nil {
		return err
	}
	if err := a.client.RemoveObject(ctx, a.config.BucketName, trashKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to purge trash entry: %w", err)
	}
	return nil
}

// ListTrash lists the staged objects. Unrecognized entries are skipped.
func (a *Adapter) ListTrash(ctx context.Context) ([]domain.TrashEntry, error) {
	var entries []domain.TrashEntry

	objects := a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{
		Prefix:    objectkey.TrashPrefix,
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list trash: %w", object.Err)
		}
		original, err := objectkey.ParseTrash(object.Key)
		if err != nil {
			a.logger.Warn("skipping unknown trash entry", slog.String("fileKey", object.Key))
			continue
		}
		entries = append(entries, domain.TrashEntry{
			TrashKey:    object.Key,
			OriginalKey: original,
			StagedAt:    object.LastModified,
		})
	}
	return entries, nil
}

func (a *Adapter) move(ctx context.Context, from, to string) error {
	_, err := a.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: a.config.BucketName, Object: to},
		minio.CopySrcOptions{Bucket: a.config.BucketName, Object: from},
	)
	if err != nil {
		if isNoSuchKey(err) {
			return fmt.Errorf("%s: %w", from, domain.ErrStoredObjectNotFound)
		}
		return fmt.Errorf("failed to copy object: %w", err)
	}

	if err := a.client.RemoveObject(ctx, a.config.BucketName, from, minio.RemoveObjectOptions{}); err != nil {
		// the copy is authoritative, drop it so the object stays in one place
		_ = a.client.RemoveObject(context.WithoutCancel(ctx), a.config.BucketName, to, minio.RemoveObjectOptions{})
		return fmt.Errorf("failed to remove source object: %w", err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == errCodeNoSuchKey
}
