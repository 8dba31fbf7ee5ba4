package board

import (
	"log/slog"

	"easyref/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 boards and items routes
type HandlerV1 struct {
	boardService port.BoardService
	logger       *slog.Logger
}

// NewBoardHandlerV1 creates HandlerV1
func NewBoardHandlerV1(service port.BoardService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		boardService: service,
		logger:       logger,
	}
}

// BoardRoutes exposes board routes
func (h *HandlerV1) BoardRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateBoardV1)
	router.Get("/", h.ListBoardsV1)
	router.Get("/{boardID}", h.GetBoardV1)
	router.Put("/{boardID}", h.UpdateBoardV1)
	router.Delete("/{boardID}", h.DeleteBoardV1)
	router.Post("/{boardID}/items", h.AddItemV1)

	return router
}

// ItemRoutes exposes board item routes
func (h *HandlerV1) ItemRoutes() chi.Router {
	router := chi.NewRouter()

	router.Put("/{itemID}", h.UpdateItemV1)
	router.Delete("/{itemID}", h.DeleteItemV1)
	router.Put("/{itemID}/reset", h.ResetItemV1)

	return router
}
