package postgres_test

import (
	"context"
	"easyref/internal/adapters/repository/postgres"
	"easyref/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqlBoardRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	boardRepo := postgres.NewSqlBoardRepository(dbConnection)
	itemRepo := postgres.NewSqlBoardItemRepository(dbConnection)
	fileRepo := postgres.NewSqlFileRepository(dbConnection)

	t.Run("board lifecycle", func(t *testing.T) {
		truncate()
		description := "moodboard"
		board := &domain.Board{Name: "Sketches", Description: &description}
		require.NoError(t, boardRepo.Create(ctx, board))
		require.NotZero(t, board.ID)

		board.Name = "Poses"
		board.Description = nil
		require.NoError(t, boardRepo.Update(ctx, board))

		found, err := boardRepo.FindByID(ctx, board.ID)
		require.NoError(t, err)
		require.Equal(t, "Poses", found.Name)
		require.Nil(t, found.Description)

		boards, err := boardRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, boards, 1)

		require.NoError(t, boardRepo.Delete(ctx, board.ID))
		_, err = boardRepo.FindByID(ctx, board.ID)
		require.ErrorIs(t, err, domain.ErrBoardNotFound)
		require.ErrorIs(t, boardRepo.Delete(ctx, board.ID), domain.ErrBoardNotFound)
		require.ErrorIs(t, boardRepo.Update(ctx, board), domain.ErrBoardNotFound)
	})

	t.Run("items keep their original size", func(t *testing.T) {
		truncate()
		board := &domain.Board{Name: "b"}
		require.NoError(t, boardRepo.Create(ctx, board))
		file := &domain.File{Name: "a.png", StorageKey: "a", StorageType: domain.StorageTypeLocal}
		require.NoError(t, fileRepo.Create(ctx, file))

		item := domain.NewBoardItem(board.ID, domain.BoardItemPlacement{FileID: file.ID, Width: 300, Height: 200, ZIndex: 2})
		require.NoError(t, itemRepo.Create(ctx, &item))
		require.NotZero(t, item.ID)

		width, height := 500.0, 400.0
		item.Apply(domain.BoardItemUpdate{Width: &width, Height: &height})
		require.NoError(t, itemRepo.Update(ctx, &item))

		found, err := itemRepo.FindByID(ctx, item.ID)
		require.NoError(t, err)
		require.Equal(t, 500.0, found.Width)
		require.Equal(t, 300.0, *found.OriginalWidth)
		require.Equal(t, 200.0, *found.OriginalHeight)

		items, err := itemRepo.FindByBoardIDs(ctx, []int64{board.ID})
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("item creation with unknown references", func(t *testing.T) {
		truncate()
		board := &domain.Board{Name: "b"}
		require.NoError(t, boardRepo.Create(ctx, board))
		file := &domain.File{Name: "a.png", StorageKey: "a", StorageType: domain.StorageTypeLocal}
		require.NoError(t, fileRepo.Create(ctx, file))

		item := domain.NewBoardItem(board.ID, domain.BoardItemPlacement{FileID: 999})
		require.ErrorIs(t, itemRepo.Create(ctx, &item), domain.ErrFileNotFound)

		item = domain.NewBoardItem(999, domain.BoardItemPlacement{FileID: file.ID})
		require.ErrorIs(t, itemRepo.Create(ctx, &item), domain.ErrBoardNotFound)
	})

	t.Run("deleting board or file removes items", func(t *testing.T) {
		truncate()
		board := &domain.Board{Name: "b"}
		require.NoError(t, boardRepo.Create(ctx, board))
		a := &domain.File{Name: "a.png", StorageKey: "a", StorageType: domain.StorageTypeLocal}
		b := &domain.File{Name: "b.png", StorageKey: "b", StorageType: domain.StorageTypeLocal}
		require.NoError(t, fileRepo.Create(ctx, a))
		require.NoError(t, fileRepo.Create(ctx, b))
		itemA := domain.NewBoardItem(board.ID, domain.BoardItemPlacement{FileID: a.ID})
		itemB := domain.NewBoardItem(board.ID, domain.BoardItemPlacement{FileID: b.ID})
		require.NoError(t, itemRepo.Create(ctx, &itemA))
		require.NoError(t, itemRepo.Create(ctx, &itemB))

		require.NoError(t, fileRepo.Delete(ctx, a.ID))
		_, err := itemRepo.FindByID(ctx, itemA.ID)
		require.ErrorIs(t, err, domain.ErrBoardItemNotFound)

		require.NoError(t, boardRepo.Delete(ctx, board.ID))
		_, err = itemRepo.FindByID(ctx, itemB.ID)
		require.ErrorIs(t, err, domain.ErrBoardItemNotFound)
	})

	t.Run("item delete not found", func(t *testing.T) {
		truncate()
		require.ErrorIs(t, itemRepo.Delete(ctx, 1), domain.ErrBoardItemNotFound)
	})
}
