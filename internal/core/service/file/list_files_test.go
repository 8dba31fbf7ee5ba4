package file_test

import (
	"context"
	"easyref/internal/core/domain"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name                string
		skip, limit         int
		wantSkip, wantLimit int
	}{
		{"as asked", 10, 20, 10, 20},
		{"defaults", -5, 0, 0, 100},
		{"capped", 0, 5000, 0, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Arrange
			f := setup()
			f.uow.GetFileRepoMock().On("List", ctx, tt.wantSkip, tt.wantLimit).
				Return([]domain.File{{ID: 1, StorageKey: "k"}}, nil)

			//Act
			files, err := f.service.ListFiles(ctx, tt.skip, tt.limit)

			//Assert
			require.NoError(t, err)
			require.Len(t, files, 1)
			assert.Equal(t, "/storage/key", files[0].URL)
			f.uow.GetFileRepoMock().AssertExpectations(t)
		})
	}
}

func TestSearchFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to any tag", func(t *testing.T) {
		//Arrange
		f := setup()
		expected := domain.SearchFilter{Tags: []string{"pose"}, TagMode: domain.TagSearchModeOr, FileType: domain.FileTypeImage}
		f.uow.GetFileRepoMock().On("Search", ctx, expected).Return([]domain.File{}, nil)

		//Act
		_, err := f.service.SearchFiles(ctx, domain.SearchFilter{Tags: []string{"pose"}, TagMode: "", FileType: domain.FileTypeImage})

		//Assert
		require.NoError(t, err)
		f.uow.GetFileRepoMock().AssertExpectations(t)
	})

	t.Run("unknown file type is ignored", func(t *testing.T) {
		//Arrange
		f := setup()
		expected := domain.SearchFilter{TagMode: domain.TagSearchModeAnd}
		f.uow.GetFileRepoMock().On("Search", ctx, expected).Return([]domain.File{}, nil)

		//Act
		_, err := f.service.SearchFiles(ctx, domain.SearchFilter{TagMode: domain.TagSearchModeAnd, FileType: "audio"})

		//Assert
		require.NoError(t, err)
		f.uow.GetFileRepoMock().AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		//Arrange
		f := setup()
		f.uow.GetFileRepoMock().On("Search", ctx, domain.SearchFilter{TagMode: domain.TagSearchModeOr}).Return(nil, assert.AnError)

		//Act
		_, err := f.service.SearchFiles(ctx, domain.SearchFilter{})

		//Assert
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestOpenStored(t *testing.T) {
	//Arrange
	ctx := context.Background()
	f := setup()
	f.storage.On("Open", ctx, "abc_a.png").Return(io.NopCloser(strings.NewReader("png")), int64(3), nil)

	//Act
	content, size, err := f.service.OpenStored(ctx, "abc_a.png")

	//Assert
	require.NoError(t, err)
	defer content.Close()
	assert.Equal(t, int64(3), size)
	data, err := io.ReadAll(content)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
}
