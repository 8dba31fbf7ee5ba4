package file

import (
	"context"
	"easyref/internal/core/domain"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

// NewMockFileService creates a new MockFileService
func NewMockFileService() *MockFileService {
	return &MockFileService{}
}

func (m *MockFileService) Upload(ctx context.Context, uploads []domain.Upload) ([]domain.File, error) {
	args := m.Called(ctx, uploads)
	files, _ := args.Get(0).([]domain.File)
	return files, args.Error(1)
}

func (m *MockFileService) ListFiles(ctx context.Context, skip, limit int) ([]domain.File, error) {
	args := m.Called(ctx, skip, limit)
	files, _ := args.Get(0).([]domain.File)
	return files, args.Error(1)
}

func (m *MockFileService) SearchFiles(ctx context.Context, filter domain.SearchFilter) ([]domain.File, error) {
	args := m.Called(ctx, filter)
	files, _ := args.Get(0).([]domain.File)
	return files, args.Error(1)
}

func (m *MockFileService) GetFile(ctx context.Context, id int64) (*domain.File, error) {
	args := m.Called(ctx, id)
	file, _ := args.Get(0).(*domain.File)
	return file, args.Error(1)
}

func (m *MockFileService) GetRandomFile(ctx context.Context) (*domain.File, error) {
	args := m.Called(ctx)
	file, _ := args.Get(0).(*domain.File)
	return file, args.Error(1)
}

func (m *MockFileService) UpdateMetadata(ctx context.Context, fileID int64, update domain.MetadataUpdate) (*domain.Metadata, error) {
	args := m.Called(ctx, fileID, update)
	metadata, _ := args.Get(0).(*domain.Metadata)
	return metadata, args.Error(1)
}

func (m *MockFileService) AddTag(ctx context.Context, fileID int64, name string) (*domain.File, error) {
	args := m.Called(ctx, fileID, name)
	file, _ := args.Get(0).(*domain.File)
	return file, args.Error(1)
}

func (m *MockFileService) RemoveTag(ctx context.Context, fileID int64, tagID int64) (*domain.File, error) {
	args := m.Called(ctx, fileID, tagID)
	file, _ := args.Get(0).(*domain.File)
	return file, args.Error(1)
}

func (m *MockFileService) DeleteFile(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileService) OpenStored(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(int64), args.Error(2)
}
