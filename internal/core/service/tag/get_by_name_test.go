package tag_test

import (
	"context"
	"easyref/internal/adapters/repository"
	"easyref/internal/core/domain"
	"easyref/internal/core/service/tag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTagService_ok(t *testing.T) {
	//Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockTagRepository()
	tagService := tag.NewTagService(mockRepo, discardLogger)
	mockRepo.On("FindByName", ctx, "test").Return(&domain.Tag{
		ID:   1,
		Name: "Test",
	}, nil)

	//Act
	res, err := tagService.GetTagByName(ctx, " test ")

	//Assert
	require.NoError(t, err)
	require.Equal(t, "Test", res.Name)
}

func TestTagService_blank(t *testing.T) {
	//Arrange
	mockRepo := repository.NewMockTagRepository()
	tagService := tag.NewTagService(mockRepo, discardLogger)

	//Act
	_, err := tagService.GetTagByName(context.Background(), "  ")

	//Assert
	require.ErrorIs(t, err, domain.ErrTagNotFound)
	mockRepo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestTagService_ko(t *testing.T) {
	//Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockTagRepository()
	tagService := tag.NewTagService(mockRepo, discardLogger)
	mockRepo.On("FindByName", ctx, "test").Return(nil, assert.AnError)

	//Act
	_, err := tagService.GetTagByName(ctx, "test")

	//Assert
	require.ErrorIs(t, err, assert.AnError)
	mockRepo.AssertExpectations(t)
}
