package file_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"easyref/internal/adapters/handlers/http/chi"
	file2 "easyref/internal/adapters/handlers/http/chi/v1/file"
	"easyref/internal/config"
	"easyref/internal/core/domain"
	"easyref/internal/core/service/batch"
	fileservice "easyref/internal/core/service/file"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	files   *fileservice.MockFileService
	batches *batch.MockBatchService
	router  httpgo.Handler
}

func newFixture(cfg config.FileUploadConfig) *fixture {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		files:   fileservice.NewMockFileService(),
		batches: &batch.MockBatchService{},
	}
	handler := file2.NewFileHandlerV1(f.files, f.batches, cfg, discardLogger)
	f.router = chi.NewRouter(discardLogger, chi.Handlers{File: handler}, "")
	return f
}

func defaultFixture() *fixture {
	return newFixture(config.FileUploadConfig{MaxFileSize: 1 << 20, MaxRequestSize: 4 << 20, MaxMemory: 1 << 20})
}

func (f *fixture) serve(req *httpgo.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, target string, body any) *httpgo.Request {
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func sampleFile(id int64, name string) domain.File {
	key := "0b7d3b36_" + name
	return domain.File{
		ID:          id,
		Name:        name,
		StorageKey:  key,
		StorageType: domain.StorageTypeLocal,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Tags:        []domain.Tag{},
		URL:         "/storage/" + key,
	}
}
