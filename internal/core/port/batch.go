package port

import (
	"context"
	"easyref/internal/core/domain"
)

// BatchService applies a set of mutations to many files as one all-or-nothing operation
type BatchService interface {
	Apply(ctx context.Context, req domain.BatchApplyRequest) (*domain.BatchApplyResult, error)
}
