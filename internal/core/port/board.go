package port

import (
	"context"
	"easyref/internal/core/domain"
)

// BoardRepository is an interface to define board interactions
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id int64) (*domain.Board, error)
	List(ctx context.Context) ([]domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id int64) error
}

// BoardItemRepository is an interface to define board item interactions
type BoardItemRepository interface {
	Create(ctx context.Context, item *domain.BoardItem) error
	FindByID(ctx context.Context, id int64) (*domain.BoardItem, error)
	FindByBoardIDs(ctx context.Context, boardIDs []int64) ([]domain.BoardItem, error)
	Update(ctx context.Context, item *domain.BoardItem) error
	Delete(ctx context.Context, id int64) error
}

// BoardService is an interface to define board service
type BoardService interface {
	CreateBoard(ctx context.Context, name string, description *string) (*domain.Board, error)
	ListBoards(ctx context.Context) ([]domain.Board, error)
	GetBoard(ctx context.Context, id int64) (*domain.Board, error)
	UpdateBoard(ctx context.Context, id int64, update domain.BoardUpdate) (*domain.Board, error)
	DeleteBoard(ctx context.Context, id int64) error
	AddItem(ctx context.Context, boardID int64, placement domain.BoardItemPlacement) (*domain.BoardItem, error)
	UpdateItem(ctx context.Context, id int64, update domain.BoardItemUpdate) (*domain.BoardItem, error)
	DeleteItem(ctx context.Context, id int64) error
	ResetItem(ctx context.Context, id int64) (*domain.BoardItem, error)
}
