package tag

import (
	"log/slog"

	"easyref/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 serves the tag catalogue under /api/v1/tags
type HandlerV1 struct {
	tags   port.TagService
	logger *slog.Logger
}

// NewTagHandlerV1 creates HandlerV1
func NewTagHandlerV1(tags port.TagService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{tags: tags, logger: logger.With(slog.String("handler", "tags"))}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListTagsV1)
	router.Post("/", h.CreateTagsV1)
	router.Get("/{name}", h.GetTagV1)

	return router
}
