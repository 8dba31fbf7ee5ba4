package batch

import (
	"context"
	"easyref/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockBatchService is a mock implementation of BatchService
type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) Apply(ctx context.Context, req domain.BatchApplyRequest) (*domain.BatchApplyResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*domain.BatchApplyResult)
	return result, args.Error(1)
}
