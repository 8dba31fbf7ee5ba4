package board

import (
	"context"
	"easyref/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) CreateBoard(ctx context.Context, name string, description *string) (*domain.Board, error) {
	args := m.Called(ctx, name, description)
	board, _ := args.Get(0).(*domain.Board)
	return board, args.Error(1)
}

func (m *MockBoardService) ListBoards(ctx context.Context) ([]domain.Board, error) {
	args := m.Called(ctx)
	boards, _ := args.Get(0).([]domain.Board)
	return boards, args.Error(1)
}

func (m *MockBoardService) GetBoard(ctx context.Context, id int64) (*domain.Board, error) {
	args := m.Called(ctx, id)
	board, _ := args.Get(0).(*domain.Board)
	return board, args.Error(1)
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, id int64, update domain.BoardUpdate) (*domain.Board, error) {
	args := m.Called(ctx, id, update)
	board, _ := args.Get(0).(*domain.Board)
	return board, args.Error(1)
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardService) AddItem(ctx context.Context, boardID int64, placement domain.BoardItemPlacement) (*domain.BoardItem, error) {
	args := m.Called(ctx, boardID, placement)
	item, _ := args.Get(0).(*domain.BoardItem)
	return item, args.Error(1)
}

func (m *MockBoardService) UpdateItem(ctx context.Context, id int64, update domain.BoardItemUpdate) (*domain.BoardItem, error) {
	args := m.Called(ctx, id, update)
	item, _ := args.Get(0).(*domain.BoardItem)
	return item, args.Error(1)
}

func (m *MockBoardService) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardService) ResetItem(ctx context.Context, id int64) (*domain.BoardItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.BoardItem)
	return item, args.Error(1)
}
