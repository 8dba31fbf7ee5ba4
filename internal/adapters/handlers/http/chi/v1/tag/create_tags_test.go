package tag_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"testing"

	"easyref/internal/adapters/handlers/http/chi"
	tag2 "easyref/internal/adapters/handlers/http/chi/v1/tag"
	"easyref/internal/core/domain"
	tagservice "easyref/internal/core/service/tag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(service *tagservice.MockTagService) httpgo.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := tag2.NewTagHandlerV1(service, discardLogger)
	return chi.NewRouter(discardLogger, chi.Handlers{Tag: handler}, "")
}

func createRequest(t *testing.T, tags []string) *httpgo.Request {
	jsonBody, err := json.Marshal(tag2.V1CreateTagsRequest{Tags: tags})
	require.NoError(t, err)
	req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/tags/", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateTagsV1_Success(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {

		//Arrange
		expectedTags := []string{"tag1"}
		mockTagService := &tagservice.MockTagService{}
		mockTagService.On("CreateTags", mock.Anything, expectedTags).Return(nil)
		h := newRouter(mockTagService)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, createRequest(t, expectedTags))

		//Assert
		assert.Equal(t, httpgo.StatusCreated, w.Code)
		mockTagService.AssertExpectations(t)
	})

	t.Run("multiple tags with spaces and dashes", func(t *testing.T) {

		//Arrange
		expectedTags := []string{"tag1", "hand pose", "low-key", "warm_light"}
		mockTagService := &tagservice.MockTagService{}
		mockTagService.On("CreateTags", mock.Anything, expectedTags).Return(nil)
		h := newRouter(mockTagService)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, createRequest(t, expectedTags))

		//Assert
		assert.Equal(t, httpgo.StatusCreated, w.Code)
		mockTagService.AssertExpectations(t)
	})
}

func TestCreateTagsV1_Error(t *testing.T) {

	t.Run("Missing body", func(t *testing.T) {

		//Arrange
		mockTagService := &tagservice.MockTagService{}
		h := newRouter(mockTagService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/tags/", nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusBadRequest, w.Code)
		mockTagService.AssertNotCalled(t, "CreateTags")
	})

	invalid := map[string][]string{
		"Empty body":         {},
		"One tag empty":      {"tag1", "  ", "tag3"},
		"invalid characters": {"tag1", "tag&&*"},
	}
	for name, tags := range invalid {
		t.Run(name, func(t *testing.T) {

			//Arrange
			mockTagService := &tagservice.MockTagService{}
			h := newRouter(mockTagService)
			w := httptest.NewRecorder()

			//Act
			h.ServeHTTP(w, createRequest(t, tags))

			//Assert
			assert.Equal(t, httpgo.StatusBadRequest, w.Code)
			mockTagService.AssertNotCalled(t, "CreateTags")
		})
	}

	t.Run("already exists", func(t *testing.T) {

		//Arrange
		expectedTags := []string{"tag1", "tag4"}
		mockTagService := &tagservice.MockTagService{}
		mockTagService.On("CreateTags", mock.Anything, expectedTags).Return(domain.ErrAlreadyExists)
		h := newRouter(mockTagService)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, createRequest(t, expectedTags))

		//Assert
		assert.Equal(t, httpgo.StatusConflict, w.Code)
		mockTagService.AssertExpectations(t)
	})

	t.Run("internal error", func(t *testing.T) {

		//Arrange
		expectedTags := []string{"tag1", "tag4"}
		mockTagService := &tagservice.MockTagService{}
		mockTagService.On("CreateTags", mock.Anything, expectedTags).Return(assert.AnError)
		h := newRouter(mockTagService)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, createRequest(t, expectedTags))

		//Assert
		assert.Equal(t, httpgo.StatusInternalServerError, w.Code)
		mockTagService.AssertExpectations(t)
	})
}
