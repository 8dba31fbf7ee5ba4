package board

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
)

// AddItem places a file on a board. The placement size becomes the item's original size.
func (b *boardService) AddItem(ctx context.Context, boardID int64, placement domain.BoardItemPlacement) (*domain.BoardItem, error) {
	var item domain.BoardItem
	err := b.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if _, err := uow.BoardRepo().FindByID(ctx, boardID); err != nil {
			return err
		}
		if _, err := uow.FileRepo().FindByID(ctx, placement.FileID); err != nil {
			return err
		}

		item = domain.NewBoardItem(boardID, placement)
		return uow.BoardItemRepo().Create(ctx, &item)
	})
	if err != nil {
		return nil, err
	}
	return b.withFile(ctx, item)
}

// UpdateItem writes the set geometry fields of an item
func (b *boardService) UpdateItem(ctx context.Context, id int64, update domain.BoardItemUpdate) (*domain.BoardItem, error) {
	return b.modifyItem(ctx, id, func(item *domain.BoardItem) {
		item.Apply(update)
	})
}

// ResetItem restores the original size of an item and clears its rotation
func (b *boardService) ResetItem(ctx context.Context, id int64) (*domain.BoardItem, error) {
	return b.modifyItem(ctx, id, func(item *domain.BoardItem) {
		item.Reset()
	})
}

// DeleteItem removes an item from its board. Deleting an unknown item succeeds.
func (b *boardService) DeleteItem(ctx context.Context, id int64) error {
	err := b.uow.BoardItemRepo().Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrBoardItemNotFound) {
		return err
	}
	return nil
}

func (b *boardService) modifyItem(ctx context.Context, id int64, modify func(item *domain.BoardItem)) (*domain.BoardItem, error) {
	var item *domain.BoardItem
	err := b.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		current, err := uow.BoardItemRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		modify(current)
		if err := uow.BoardItemRepo().Update(ctx, current); err != nil {
			return err
		}
		item = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b.withFile(ctx, *item)
}

// withFile attaches the placed file once the write is committed
func (b *boardService) withFile(ctx context.Context, item domain.BoardItem) (*domain.BoardItem, error) {
	items := []domain.BoardItem{item}
	if err := b.attachFiles(ctx, b.uow, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}
