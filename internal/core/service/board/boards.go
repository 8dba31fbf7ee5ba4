package board

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
	"log/slog"
	"strings"
)

func (b *boardService) CreateBoard(ctx context.Context, name string, description *string) (*domain.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidBoardName
	}

	board := &domain.Board{Name: name, Description: description, Items: []domain.BoardItem{}}
	if err := b.uow.BoardRepo().Create(ctx, board); err != nil {
		return nil, err
	}

	b.logger.Info("board created", slog.Int64("boardID", board.ID))
	return board, nil
}

// ListBoards lists the boards, newest first, with their items
func (b *boardService) ListBoards(ctx context.Context) ([]domain.Board, error) {
	boards, err := b.uow.BoardRepo().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return boards, nil
	}

	ids := make([]int64, 0, len(boards))
	for _, board := range boards {
		ids = append(ids, board.ID)
	}
	items, err := b.uow.BoardItemRepo().FindByBoardIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if err := b.attachFiles(ctx, b.uow, items); err != nil {
		return nil, err
	}

	byBoard := make(map[int64][]domain.BoardItem, len(boards))
	for _, item := range items {
		byBoard[item.BoardID] = append(byBoard[item.BoardID], item)
	}
	for i := range boards {
		boards[i].Items = byBoard[boards[i].ID]
		if boards[i].Items == nil {
			boards[i].Items = []domain.BoardItem{}
		}
	}
	return boards, nil
}

// GetBoard returns a board with its items ordered by z-index, each carrying its file
func (b *boardService) GetBoard(ctx context.Context, id int64) (*domain.Board, error) {
	board, err := b.uow.BoardRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := b.uow.BoardItemRepo().FindByBoardIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if err := b.attachFiles(ctx, b.uow, items); err != nil {
		return nil, err
	}
	if items != nil {
		board.Items = items
	}
	return board, nil
}

func (b *boardService) UpdateBoard(ctx context.Context, id int64, update domain.BoardUpdate) (*domain.Board, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, domain.ErrInvalidBoardName
	}

	var board *domain.Board
	err := b.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		current, err := uow.BoardRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if update.Name != nil {
			current.Name = strings.TrimSpace(*update.Name)
		}
		if update.Description != nil {
			current.Description = update.Description
		}
		if err := uow.BoardRepo().Update(ctx, current); err != nil {
			return err
		}
		board = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// DeleteBoard deletes a board and its items. Deleting an unknown board succeeds.
func (b *boardService) DeleteBoard(ctx context.Context, id int64) error {
	err := b.uow.BoardRepo().Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrBoardNotFound) {
		return err
	}
	return nil
}
