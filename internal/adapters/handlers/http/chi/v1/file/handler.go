package file

import (
	"log/slog"

	"easyref/internal/config"
	"easyref/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 files routes
type HandlerV1 struct {
	fileService  port.FileService
	batchService port.BatchService
	uploadCfg    config.FileUploadConfig
	logger       *slog.Logger
}

// NewFileHandlerV1 creates HandlerV1
func NewFileHandlerV1(fileService port.FileService, batchService port.BatchService, uploadCfg config.FileUploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		fileService:  fileService,
		batchService: batchService,
		uploadCfg:    uploadCfg,
		logger:       logger,
	}
}

// Routes exposes handler routes. UploadFilesV1 is mounted apart with its own body limits.
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/batch-apply", h.BatchApplyV1)
	router.Get("/", h.ListFilesV1)
	router.Get("/search", h.SearchFilesV1)
	router.Get("/random", h.GetRandomFileV1)
	router.Get("/{fileID}", h.GetFileV1)
	router.Put("/{fileID}/metadata", h.UpdateMetadataV1)
	router.Post("/{fileID}/tags", h.AddTagV1)
	router.Delete("/{fileID}/tags/{tagID}", h.RemoveTagV1)
	router.Delete("/{fileID}", h.DeleteFileV1)

	return router
}
