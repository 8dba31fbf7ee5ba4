package board

import (
	"net/http"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
	"easyref/internal/core/domain"
)

// V1CreateBoardRequest is the body request for create board
type V1CreateBoardRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// V1UpdateBoardRequest is a partial board write
type V1UpdateBoardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *HandlerV1) CreateBoardV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateBoardRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	board, err := h.boardService.CreateBoard(r.Context(), req.Name, req.Description)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewBoard(*board))
}

// ListBoardsV1 lists every board with its items, newest first
func (h *HandlerV1) ListBoardsV1(w http.ResponseWriter, r *http.Request) {

	boards, err := h.boardService.ListBoards(r.Context())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewBoards(boards))
}

func (h *HandlerV1) GetBoardV1(w http.ResponseWriter, r *http.Request) {

	boardID, ok := response.IDParam(w, r, "boardID")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(r.Context(), boardID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewBoard(*board))
}

func (h *HandlerV1) UpdateBoardV1(w http.ResponseWriter, r *http.Request) {

	boardID, ok := response.IDParam(w, r, "boardID")
	if !ok {
		return
	}

	var req V1UpdateBoardRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	board, err := h.boardService.UpdateBoard(r.Context(), boardID, domain.BoardUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewBoard(*board))
}

func (h *HandlerV1) DeleteBoardV1(w http.ResponseWriter, r *http.Request) {

	boardID, ok := response.IDParam(w, r, "boardID")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(r.Context(), boardID); err != nil {
		response.Error(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
