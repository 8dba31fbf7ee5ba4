package media

import (
	"context"
	"easyref/internal/core/domain"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockProber struct {
	mock.Mock
}

func NewMockProber() *MockProber {
	return &MockProber{}
}

func (m *MockProber) Supports(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockProber) Probe(ctx context.Context, content io.ReadSeeker) (*domain.VideoInfo, error) {
	args := m.Called(ctx, content)
	info, _ := args.Get(0).(*domain.VideoInfo)
	return info, args.Error(1)
}
