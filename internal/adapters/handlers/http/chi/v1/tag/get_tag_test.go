package tag_test

import (
	"context"
	"encoding/json"
	httpgo "net/http"
	"net/http/httptest"
	"testing"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
	"easyref/internal/core/domain"
	tagservice "easyref/internal/core/service/tag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTagV1(t *testing.T) {

	t.Run("found with escaped name", func(t *testing.T) {
		//Arrange
		service := &tagservice.MockTagService{}
		service.On("GetTagByName", mock.Anything, "life drawing").
			Return(&domain.Tag{ID: 7, Name: "Life Drawing"}, nil)
		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/tags/life%20drawing", nil)
		w := httptest.NewRecorder()

		//Act
		newRouter(service).ServeHTTP(w, req)

		//Assert
		require.Equal(t, httpgo.StatusOK, w.Code)
		var got response.Tag
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, response.Tag{ID: 7, Name: "Life Drawing"}, got)
		service.AssertExpectations(t)
	})

	t.Run("unknown tag", func(t *testing.T) {
		//Arrange
		service := &tagservice.MockTagService{}
		service.On("GetTagByName", mock.Anything, "missing").Return(nil, domain.ErrTagNotFound)
		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/tags/missing", nil)
		w := httptest.NewRecorder()

		//Act
		newRouter(service).ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusNotFound, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("service failure is hidden", func(t *testing.T) {
		//Arrange
		service := &tagservice.MockTagService{}
		service.On("GetTagByName", mock.Anything, "pose").Return(nil, context.DeadlineExceeded)
		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/tags/pose", nil)
		w := httptest.NewRecorder()

		//Act
		newRouter(service).ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "deadline")
	})
}
