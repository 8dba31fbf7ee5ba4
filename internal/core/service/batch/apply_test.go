package batch_test

import (
	"context"
	"easyref/internal/adapters/repository"
	"easyref/internal/adapters/storage"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"easyref/internal/core/service/batch"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup() (port.BatchService, *repository.MockUnitOfWork, *storage.MockStorage) {
	uow := repository.NewMockUnitOfWork()
	fileStorage := storage.NewMockStorage()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return batch.NewBatchService(uow, fileStorage, logger), uow, fileStorage
}

func files(ids ...int64) []domain.File {
	result := make([]domain.File, len(ids))
	for i, id := range ids {
		result[i] = domain.File{ID: id, Name: "f.png", StorageKey: keyOf(id), StorageType: domain.StorageTypeLocal, Tags: []domain.Tag{}}
	}
	return result
}

func keyOf(id int64) string {
	return map[int64]string{1: "k1", 2: "k2", 3: "k3"}[id]
}

func intPtr(v int) *int {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestApply_Validation(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, fileStorage := setup()

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{AddTags: []string{"x"}})

	//Assert
	require.ErrorIs(t, err, domain.ErrNoFileIDs)
	require.Nil(t, result)
	uow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fileStorage.AssertNotCalled(t, "MoveToTrash", mock.Anything, mock.Anything)
}

func TestApply_BoardPreconditions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		req         domain.BatchApplyRequest
		boardFound  bool
		expectedErr error
	}{
		{
			name:        "board with delete",
			req:         domain.BatchApplyRequest{FileIDs: []int64{1}, DeleteFiles: true, BoardID: int64Ptr(1), BoardItems: []domain.BoardItemPlacement{{FileID: 1}}},
			expectedErr: domain.ErrBoardWithDelete,
		},
		{
			name:        "board without items",
			req:         domain.BatchApplyRequest{FileIDs: []int64{1}, BoardID: int64Ptr(1)},
			boardFound:  true,
			expectedErr: domain.ErrBoardItemsRequired,
		},
		{
			name:        "missing board before missing items",
			req:         domain.BatchApplyRequest{FileIDs: []int64{1}, BoardID: int64Ptr(1)},
			expectedErr: domain.ErrBoardNotFound,
		},
		{
			name:        "item outside selection",
			req:         domain.BatchApplyRequest{FileIDs: []int64{1}, BoardID: int64Ptr(1), BoardItems: []domain.BoardItemPlacement{{FileID: 2}}},
			boardFound:  true,
			expectedErr: domain.ErrBoardItemOutsideSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Arrange
			service, uow, fileStorage := setup()
			uow.On("Execute", ctx, mock.Anything).Return(nil)
			uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1}).Return(files(1), nil)
			if tt.boardFound {
				uow.GetBoardRepoMock().On("FindByID", ctx, int64(1)).Return(&domain.Board{ID: 1}, nil)
			} else {
				uow.GetBoardRepoMock().On("FindByID", ctx, int64(1)).Return(nil, domain.ErrBoardNotFound).Maybe()
			}

			//Act
			result, err := service.Apply(ctx, tt.req)

			//Assert
			require.ErrorIs(t, err, tt.expectedErr)
			require.Nil(t, result)
			uow.GetTagRepoMock().AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
			uow.GetBoardItemRepoMock().AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			fileStorage.AssertNotCalled(t, "MoveToTrash", mock.Anything, mock.Anything)
		})
	}
}

func TestApply_UnknownFilesReportedFirst(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2}).Return(files(1), nil)

	//Act
	_, err := service.Apply(ctx, domain.BatchApplyRequest{
		FileIDs:     []int64{1, 2},
		DeleteFiles: true,
		BoardID:     int64Ptr(9),
	})

	//Assert
	require.ErrorIs(t, err, domain.ErrFileNotFound)
	uow.GetBoardRepoMock().AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestApply_FilesNotFound(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{3, 1, 2}).Return(files(1), nil)

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{3, 1, 2, 3}, AddTags: []string{"x"}})

	//Assert
	require.ErrorIs(t, err, domain.ErrFileNotFound)
	require.Contains(t, err.Error(), "[2 3]")
	require.Nil(t, result)
	uow.GetTagRepoMock().AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestApply_BoardNotFound(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1}).Return(files(1), nil)
	uow.GetBoardRepoMock().On("FindByID", ctx, int64(9)).Return(nil, domain.ErrBoardNotFound)

	//Act
	_, err := service.Apply(ctx, domain.BatchApplyRequest{
		FileIDs:    []int64{1},
		BoardID:    int64Ptr(9),
		BoardItems: []domain.BoardItemPlacement{{FileID: 1}},
	})

	//Assert
	require.ErrorIs(t, err, domain.ErrBoardNotFound)
	uow.GetBoardItemRepoMock().AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApply_TagsAndRating(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	tag := domain.Tag{ID: 10, Name: "ref"}
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2}).Return(files(1, 2), nil)
	uow.GetTagRepoMock().On("CreateMany", ctx, []string{"ref"}).Return(1, nil)
	uow.GetTagRepoMock().On("FindByNames", ctx, []string{"ref"}).Return(map[string]domain.Tag{"ref": tag}, nil)
	uow.GetFileTagRepoMock().On("Attach", ctx, int64(1), []int64{10}).Return(1, nil)
	uow.GetFileTagRepoMock().On("Attach", ctx, int64(2), []int64{10}).Return(1, nil)
	uow.GetMetadataRepoMock().On("Upsert", ctx, mock.MatchedBy(func(m *domain.Metadata) bool {
		return m.Rating != nil && *m.Rating == 5 && !m.IsFavorite
	})).Return(nil).Twice()

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{
		FileIDs: []int64{1, 2},
		AddTags: []string{" ref ", ""},
		Rating:  intPtr(5),
	})

	//Assert
	require.NoError(t, err)
	require.Equal(t, &domain.BatchApplyResult{Updated: 2}, result)
	uow.AssertExpectations(t)
	uow.GetFileTagRepoMock().AssertExpectations(t)
	uow.GetMetadataRepoMock().AssertExpectations(t)
}

func TestApply_AddTagsIsIdempotent(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	tag := domain.Tag{ID: 10, Name: "x"}
	selected := files(1, 2)
	for i := range selected {
		selected[i].Tags = []domain.Tag{tag}
	}
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2}).Return(selected, nil)
	uow.GetTagRepoMock().On("CreateMany", ctx, []string{"X"}).Return(0, domain.ErrAlreadyExists)
	uow.GetTagRepoMock().On("FindByNames", ctx, []string{"X"}).Return(map[string]domain.Tag{"x": tag}, nil)

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1, 2}, AddTags: []string{"X"}})

	//Assert
	require.NoError(t, err)
	require.Equal(t, 0, result.Updated)
	uow.GetFileTagRepoMock().AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything)
}

func TestApply_RemoveTags(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	keep := domain.Tag{ID: 1, Name: "keep"}
	drop := domain.Tag{ID: 2, Name: "drop"}
	selected := files(1, 2)
	selected[0].Tags = []domain.Tag{keep, drop}
	selected[1].Tags = []domain.Tag{keep}
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2}).Return(selected, nil)
	uow.GetTagRepoMock().On("FindByNames", ctx, []string{"drop", "unknown"}).Return(map[string]domain.Tag{"drop": drop}, nil)
	uow.GetFileTagRepoMock().On("Detach", ctx, int64(1), []int64{2}).Return(1, nil)

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1, 2}, RemoveTags: []string{"drop", "unknown"}})

	//Assert
	require.NoError(t, err)
	require.Equal(t, 1, result.Updated)
	uow.GetTagRepoMock().AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	uow.GetFileTagRepoMock().AssertExpectations(t)
}

func TestApply_AddAndRemoveSameTag(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	tag := domain.Tag{ID: 10, Name: "x"}
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1}).Return(files(1), nil)
	uow.GetTagRepoMock().On("CreateMany", ctx, []string{"x"}).Return(1, nil)
	uow.GetTagRepoMock().On("FindByNames", ctx, []string{"x", "x"}).Return(map[string]domain.Tag{"x": tag}, nil)

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1}, AddTags: []string{"x"}, RemoveTags: []string{"x"}})

	//Assert
	require.NoError(t, err)
	require.Equal(t, 1, result.Updated)
	uow.GetFileTagRepoMock().AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything)
	uow.GetFileTagRepoMock().AssertNotCalled(t, "Detach", mock.Anything, mock.Anything, mock.Anything)
}

func TestApply_ToggleFavorite(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	selected := files(1, 2)
	selected[0].Metadata = &domain.Metadata{ID: 7, FileID: 1, IsFavorite: true, Rating: intPtr(3)}
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2}).Return(selected, nil)
	uow.GetMetadataRepoMock().On("Upsert", ctx, mock.MatchedBy(func(m *domain.Metadata) bool {
		return m.FileID == 1 && m.ID == 7 && !m.IsFavorite && *m.Rating == 3
	})).Return(nil).Once()
	uow.GetMetadataRepoMock().On("Upsert", ctx, mock.MatchedBy(func(m *domain.Metadata) bool {
		return m.FileID == 2 && m.ID == 0 && m.IsFavorite && m.Rating == nil
	})).Return(nil).Once()

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1, 2}, ToggleFavorite: true})

	//Assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Updated)
	uow.GetMetadataRepoMock().AssertExpectations(t)
}

func TestApply_BoardPlacement(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, _ := setup()
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2}).Return(files(1, 2), nil)
	uow.GetBoardRepoMock().On("FindByID", ctx, int64(4)).Return(&domain.Board{ID: 4}, nil)
	uow.GetBoardItemRepoMock().On("Create", ctx, mock.MatchedBy(func(item *domain.BoardItem) bool {
		return item.BoardID == 4 && item.Width == 300 && *item.OriginalWidth == 300 && *item.OriginalHeight == 200
	})).Return(nil).Twice()

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{
		FileIDs: []int64{1, 2},
		BoardID: int64Ptr(4),
		BoardItems: []domain.BoardItemPlacement{
			{FileID: 1, Width: 300, Height: 200},
			{FileID: 2, PosX: 320, Width: 300, Height: 200, ZIndex: 1},
		},
	})

	//Assert
	require.NoError(t, err)
	require.Equal(t, &domain.BatchApplyResult{AddedToBoard: 2}, result)
	uow.GetBoardItemRepoMock().AssertExpectations(t)
}

func TestApply_Delete(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, fileStorage := setup()
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2}).Return(files(1, 2), nil)
	fileStorage.On("Exists", ctx, "k1").Return(true, nil)
	fileStorage.On("Exists", ctx, "k2").Return(true, nil)
	fileStorage.On("MoveToTrash", ctx, "k1").Return(".trash/t1", nil)
	fileStorage.On("MoveToTrash", ctx, "k2").Return(".trash/t2", nil)
	uow.GetFileRepoMock().On("Delete", ctx, int64(1)).Return(nil)
	uow.GetFileRepoMock().On("Delete", ctx, int64(2)).Return(nil)
	fileStorage.On("PurgeTrash", mock.Anything, ".trash/t1").Return(nil)
	fileStorage.On("PurgeTrash", mock.Anything, ".trash/t2").Return(assert.AnError)

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1, 2}, DeleteFiles: true})

	//Assert
	require.NoError(t, err)
	require.Equal(t, &domain.BatchApplyResult{Deleted: 2}, result)
	fileStorage.AssertExpectations(t)
	fileStorage.AssertNotCalled(t, "RestoreFromTrash", mock.Anything, mock.Anything, mock.Anything)
}

func TestApply_DeleteWithMissingBytes(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, fileStorage := setup()
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2}).Return(files(1, 2), nil)
	fileStorage.On("Exists", ctx, "k1").Return(true, nil)
	fileStorage.On("MoveToTrash", ctx, "k1").Return(".trash/t1", nil)
	fileStorage.On("Exists", ctx, "k2").Return(false, nil)
	fileStorage.On("RestoreFromTrash", mock.Anything, ".trash/t1", "k1").Return(nil)

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1, 2}, DeleteFiles: true})

	//Assert
	require.ErrorIs(t, err, domain.ErrStoredBytesMissing)
	require.Nil(t, result)
	fileStorage.AssertExpectations(t)
	fileStorage.AssertNotCalled(t, "PurgeTrash", mock.Anything, mock.Anything)
	uow.GetFileRepoMock().AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestApply_DeleteSingleFileWithMissingBytes(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, fileStorage := setup()
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1}).Return(files(1), nil)
	fileStorage.On("Exists", ctx, "k1").Return(false, nil)

	//Act
	_, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1}, DeleteFiles: true})

	//Assert
	require.ErrorIs(t, err, domain.ErrStoredBytesMissing)
	fileStorage.AssertNotCalled(t, "MoveToTrash", mock.Anything, mock.Anything)
	fileStorage.AssertNotCalled(t, "RestoreFromTrash", mock.Anything, mock.Anything, mock.Anything)
	uow.GetFileRepoMock().AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestApply_CommitFailureRestoresEveryMove(t *testing.T) {
	//Arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service, uow, fileStorage := setup()
	uow.On("Execute", ctx, mock.Anything).Return(assert.AnError)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1, 2, 3}).Return(files(1, 2, 3), nil)
	for _, id := range []int64{1, 2, 3} {
		fileStorage.On("Exists", ctx, keyOf(id)).Return(true, nil)
		fileStorage.On("MoveToTrash", ctx, keyOf(id)).Return(".trash/"+keyOf(id), nil)
	}
	uow.GetFileRepoMock().On("Delete", ctx, int64(1)).Return(nil)
	uow.GetFileRepoMock().On("Delete", ctx, int64(2)).Return(nil)
	// the request is gone by the time the commit fails
	uow.GetFileRepoMock().On("Delete", ctx, int64(3)).Run(func(mock.Arguments) { cancel() }).Return(nil)

	var restored []string
	fileStorage.On("RestoreFromTrash", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(0).(context.Context).Err())
			restored = append(restored, args.String(2))
		}).
		Return(nil)

	//Act
	result, err := service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1, 2, 3}, DeleteFiles: true})

	//Assert
	require.ErrorIs(t, err, assert.AnError)
	require.Nil(t, result)
	require.Equal(t, []string{"k3", "k2", "k1"}, restored)
	fileStorage.AssertNotCalled(t, "PurgeTrash", mock.Anything, mock.Anything)
}

func TestApply_PanicRestoresMoves(t *testing.T) {
	//Arrange
	ctx := context.Background()
	service, uow, fileStorage := setup()
	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByIDsForUpdate", ctx, []int64{1}).Return(files(1), nil)
	fileStorage.On("Exists", ctx, "k1").Return(true, nil)
	fileStorage.On("MoveToTrash", ctx, "k1").Return(".trash/t1", nil)
	uow.GetFileRepoMock().On("Delete", ctx, int64(1)).Run(func(mock.Arguments) { panic("boom") })
	fileStorage.On("RestoreFromTrash", mock.Anything, ".trash/t1", "k1").Return(nil)

	//Act
	require.Panics(t, func() {
		_, _ = service.Apply(ctx, domain.BatchApplyRequest{FileIDs: []int64{1}, DeleteFiles: true})
	})

	//Assert
	fileStorage.AssertCalled(t, "RestoreFromTrash", mock.Anything, ".trash/t1", "k1")
}
