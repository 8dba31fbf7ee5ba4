package storage

import (
	"context"
	"easyref/internal/core/domain"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Type() domain.StorageType {
	args := m.Called()
	return args.Get(0).(domain.StorageType)
}

func (m *MockStorage) Save(ctx context.Context, content io.Reader, suggestedName string) (string, error) {
	args := m.Called(ctx, content, suggestedName)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) MoveToTrash(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) RestoreFromTrash(ctx context.Context, trashKey string, key string) error {
	args := m.Called(ctx, trashKey, key)
	return args.Error(0)
}

func (m *MockStorage) PurgeTrash(ctx context.Context, trashKey string) error {
	args := m.Called(ctx, trashKey)
	return args.Error(0)
}

func (m *MockStorage) ListTrash(ctx context.Context) ([]domain.TrashEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.TrashEntry)
	return entries, args.Error(1)
}
