package batch_test

import (
	"context"
	"easyref/internal/adapters/repository/postgres"
	"easyref/internal/adapters/storage/local"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"easyref/internal/core/service/batch"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// library is a postgres database and a local storage root sharing one batch service
type library struct {
	uow     port.UnitOfWork
	storage *local.Adapter
	service port.BatchService
}

func newLibrary(t *testing.T) (*library, func(), func()) {
	db, cleanup, truncate := postgres.NewTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage, err := local.NewAdapter(t.TempDir(), logger)
	require.NoError(t, err)

	uow := postgres.NewUnitOfWork(db)
	return &library{
		uow:     uow,
		storage: storage,
		service: batch.NewBatchService(uow, storage, logger),
	}, cleanup, truncate
}

// addFile stores bytes and records a tagged, rated file pointing at them
func (l *library) addFile(t *testing.T, name string, rating int) domain.File {
	ctx := context.Background()
	key, err := l.storage.Save(ctx, strings.NewReader("bytes of "+name), name)
	require.NoError(t, err)

	file := &domain.File{Name: name, StorageKey: key, StorageType: l.storage.Type()}
	require.NoError(t, l.uow.FileRepo().Create(ctx, file))

	_, _ = l.uow.TagRepo().CreateMany(ctx, []string{"ref"})
	tag, err := l.uow.TagRepo().FindByName(ctx, "ref")
	require.NoError(t, err)
	_, err = l.uow.FileTagRepo().Attach(ctx, file.ID, []int64{tag.ID})
	require.NoError(t, err)
	require.NoError(t, l.uow.MetadataRepo().Upsert(ctx, &domain.Metadata{FileID: file.ID, Rating: &rating}))
	return *file
}

func (l *library) requireUntouched(t *testing.T, file domain.File, rating int) {
	found, err := l.uow.FileRepo().FindByID(context.Background(), file.ID)
	require.NoError(t, err)
	require.Len(t, found.Tags, 1)
	assert.Equal(t, "ref", found.Tags[0].Name)
	require.NotNil(t, found.Metadata)
	require.NotNil(t, found.Metadata.Rating)
	assert.Equal(t, rating, *found.Metadata.Rating)
}

func (l *library) requireEmptyTrash(t *testing.T) {
	entries, err := l.storage.ListTrash(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApply_Postgres(t *testing.T) {
	lib, cleanup, truncate := newLibrary(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("missing bytes restore every moved file and keep every row", func(t *testing.T) {
		//Arrange
		truncate()
		first := lib.addFile(t, "first.png", 3)
		second := lib.addFile(t, "second.png", 4)
		require.NoError(t, lib.storage.Delete(ctx, second.StorageKey))

		//Act
		result, err := lib.service.Apply(ctx, domain.BatchApplyRequest{
			FileIDs:     []int64{first.ID, second.ID},
			DeleteFiles: true,
		})

		//Assert
		require.ErrorIs(t, err, domain.ErrStoredBytesMissing)
		require.Nil(t, result)
		lib.requireUntouched(t, first, 3)
		lib.requireUntouched(t, second, 4)

		exists, err := lib.storage.Exists(ctx, first.StorageKey)
		require.NoError(t, err)
		assert.True(t, exists)
		lib.requireEmptyTrash(t)
	})

	t.Run("rolled back batch leaves no new tag", func(t *testing.T) {
		//Arrange
		truncate()
		first := lib.addFile(t, "first.png", 3)
		second := lib.addFile(t, "second.png", 4)
		require.NoError(t, lib.storage.Delete(ctx, second.StorageKey))
		rating := 1

		//Act
		_, err := lib.service.Apply(ctx, domain.BatchApplyRequest{
			FileIDs:     []int64{first.ID, second.ID},
			AddTags:     []string{"brand-new"},
			RemoveTags:  []string{"ref"},
			Rating:      &rating,
			DeleteFiles: true,
		})

		//Assert
		require.ErrorIs(t, err, domain.ErrStoredBytesMissing)
		_, err = lib.uow.TagRepo().FindByName(ctx, "brand-new")
		require.ErrorIs(t, err, domain.ErrTagNotFound)
		lib.requireUntouched(t, first, 3)
		lib.requireUntouched(t, second, 4)
		lib.requireEmptyTrash(t)
	})

	t.Run("unknown file aborts before any change", func(t *testing.T) {
		//Arrange
		truncate()
		first := lib.addFile(t, "first.png", 3)

		//Act
		_, err := lib.service.Apply(ctx, domain.BatchApplyRequest{
			FileIDs: []int64{first.ID, 999},
			AddTags: []string{"brand-new"},
		})

		//Assert
		require.ErrorIs(t, err, domain.ErrFileNotFound)
		_, err = lib.uow.TagRepo().FindByName(ctx, "brand-new")
		require.ErrorIs(t, err, domain.ErrTagNotFound)
		lib.requireUntouched(t, first, 3)
	})

	t.Run("delete commits and purges the trash", func(t *testing.T) {
		//Arrange
		truncate()
		first := lib.addFile(t, "first.png", 3)
		second := lib.addFile(t, "second.png", 4)

		//Act
		result, err := lib.service.Apply(ctx, domain.BatchApplyRequest{
			FileIDs:     []int64{first.ID, second.ID},
			DeleteFiles: true,
		})

		//Assert
		require.NoError(t, err)
		assert.Equal(t, &domain.BatchApplyResult{Deleted: 2}, result)
		for _, file := range []domain.File{first, second} {
			_, err := lib.uow.FileRepo().FindByID(ctx, file.ID)
			require.ErrorIs(t, err, domain.ErrFileNotFound)
			exists, err := lib.storage.Exists(ctx, file.StorageKey)
			require.NoError(t, err)
			assert.False(t, exists)
		}
		lib.requireEmptyTrash(t)
	})

	t.Run("tags and rating are committed", func(t *testing.T) {
		//Arrange
		truncate()
		first := lib.addFile(t, "first.png", 3)
		second := lib.addFile(t, "second.png", 4)
		rating := 5

		//Act
		result, err := lib.service.Apply(ctx, domain.BatchApplyRequest{
			FileIDs: []int64{first.ID, second.ID},
			AddTags: []string{"Pose"},
			Rating:  &rating,
		})

		//Assert
		require.NoError(t, err)
		assert.Equal(t, &domain.BatchApplyResult{Updated: 2}, result)
		for _, file := range []domain.File{first, second} {
			found, err := lib.uow.FileRepo().FindByID(ctx, file.ID)
			require.NoError(t, err)
			assert.Len(t, found.Tags, 2)
			assert.Equal(t, 5, *found.Metadata.Rating)
		}
	})
}
