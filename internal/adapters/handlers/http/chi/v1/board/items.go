package board

import (
	"net/http"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
	"easyref/internal/core/domain"
)

// V1AddItemRequest places a file on a board
type V1AddItemRequest struct {
	FileID   int64   `json:"file_id"`
	PosX     float64 `json:"pos_x"`
	PosY     float64 `json:"pos_y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"z_index"`
}

// V1UpdateItemRequest is a partial item write
type V1UpdateItemRequest struct {
	PosX     *float64 `json:"pos_x"`
	PosY     *float64 `json:"pos_y"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Rotation *float64 `json:"rotation"`
	ZIndex   *int     `json:"z_index"`
}

func (h *HandlerV1) AddItemV1(w http.ResponseWriter, r *http.Request) {

	boardID, ok := response.IDParam(w, r, "boardID")
	if !ok {
		return
	}

	var req V1AddItemRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.boardService.AddItem(r.Context(), boardID, domain.BoardItemPlacement{
		FileID:   req.FileID,
		PosX:     req.PosX,
		PosY:     req.PosY,
		Width:    req.Width,
		Height:   req.Height,
		Rotation: req.Rotation,
		ZIndex:   req.ZIndex,
	})
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewBoardItem(*item))
}

func (h *HandlerV1) UpdateItemV1(w http.ResponseWriter, r *http.Request) {

	itemID, ok := response.IDParam(w, r, "itemID")
	if !ok {
		return
	}

	var req V1UpdateItemRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.boardService.UpdateItem(r.Context(), itemID, domain.BoardItemUpdate{
		PosX:     req.PosX,
		PosY:     req.PosY,
		Width:    req.Width,
		Height:   req.Height,
		Rotation: req.Rotation,
		ZIndex:   req.ZIndex,
	})
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewBoardItem(*item))
}

func (h *HandlerV1) DeleteItemV1(w http.ResponseWriter, r *http.Request) {

	itemID, ok := response.IDParam(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.boardService.DeleteItem(r.Context(), itemID); err != nil {
		response.Error(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetItemV1 restores the original size of an item and clears its rotation
func (h *HandlerV1) ResetItemV1(w http.ResponseWriter, r *http.Request) {

	itemID, ok := response.IDParam(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.boardService.ResetItem(r.Context(), itemID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewBoardItem(*item))
}
