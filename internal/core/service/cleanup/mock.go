package cleanup

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCleanupService struct {
	mock.Mock
}

func NewMockCleanupService() *MockCleanupService {
	return &MockCleanupService{}
}

func (m *MockCleanupService) SweepTrash(ctx context.Context, stagedBefore time.Time) error {
	args := m.Called(ctx, stagedBefore)
	return args.Error(0)
}
