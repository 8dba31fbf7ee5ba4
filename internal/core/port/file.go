package port

import (
	"context"
	"easyref/internal/core/domain"
	"io"
)

// FileRepository is an interface to define file repository interactions
type FileRepository interface {
	Create(ctx context.Context, file *domain.File) error
	FindByID(ctx context.Context, id int64) (*domain.File, error)
	// FindByIDsForUpdate loads the files and row-locks them until the surrounding transaction ends
	FindByIDsForUpdate(ctx context.Context, ids []int64) ([]domain.File, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.File, error)
	List(ctx context.Context, skip, limit int) ([]domain.File, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.File, error)
	FindRandom(ctx context.Context) (*domain.File, error)
	ExistsByStorageKey(ctx context.Context, storageType domain.StorageType, key string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// FileStorage is an interface to define file storage interactions.
// MoveToTrash, RestoreFromTrash and PurgeTrash stage a deletion reversibly.
type FileStorage interface {
	Type() domain.StorageType
	Save(ctx context.Context, content io.Reader, suggestedName string) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	Exists(ctx context.Context, key string) (bool, error)
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)
	MoveToTrash(ctx context.Context, key string) (string, error)
	RestoreFromTrash(ctx context.Context, trashKey string, key string) error
	PurgeTrash(ctx context.Context, trashKey string) error
	ListTrash(ctx context.Context) ([]domain.TrashEntry, error)
}

// FileService is an interface to define file service
type FileService interface {
	Upload(ctx context.Context, uploads []domain.Upload) ([]domain.File, error)
	ListFiles(ctx context.Context, skip, limit int) ([]domain.File, error)
	SearchFiles(ctx context.Context, filter domain.SearchFilter) ([]domain.File, error)
	GetFile(ctx context.Context, id int64) (*domain.File, error)
	GetRandomFile(ctx context.Context) (*domain.File, error)
	UpdateMetadata(ctx context.Context, fileID int64, update domain.MetadataUpdate) (*domain.Metadata, error)
	AddTag(ctx context.Context, fileID int64, name string) (*domain.File, error)
	RemoveTag(ctx context.Context, fileID int64, tagID int64) (*domain.File, error)
	DeleteFile(ctx context.Context, id int64) error
	OpenStored(ctx context.Context, key string) (io.ReadCloser, int64, error)
}
