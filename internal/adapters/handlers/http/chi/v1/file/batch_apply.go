package file

import (
	"log/slog"
	"net/http"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
	"easyref/internal/core/domain"
)

// V1BatchBoardItem is one placement of a batch; rotation and z_index default to 0
type V1BatchBoardItem struct {
	FileID   int64   `json:"file_id"`
	PosX     float64 `json:"pos_x"`
	PosY     float64 `json:"pos_y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"z_index"`
}

// V1BatchApplyRequest is the body request for batch apply
type V1BatchApplyRequest struct {
	FileIDs        []int64            `json:"file_ids"`
	AddTags        []string           `json:"add_tags"`
	RemoveTags     []string           `json:"remove_tags"`
	ToggleFavorite bool               `json:"toggle_favorite"`
	Rating         *int               `json:"rating"`
	DeleteFiles    bool               `json:"delete_files"`
	BoardID        *int64             `json:"board_id"`
	BoardItems     []V1BatchBoardItem `json:"board_items"`
}

// V1BatchApplyResponse counts what the batch changed
type V1BatchApplyResponse struct {
	Updated      int `json:"updated"`
	AddedToBoard int `json:"added_to_board"`
	Deleted      int `json:"deleted"`
}

func (req V1BatchApplyRequest) toDomain() domain.BatchApplyRequest {
	items := make([]domain.BoardItemPlacement, 0, len(req.BoardItems))
	for _, item := range req.BoardItems {
		items = append(items, domain.BoardItemPlacement{
			FileID:   item.FileID,
			PosX:     item.PosX,
			PosY:     item.PosY,
			Width:    item.Width,
			Height:   item.Height,
			Rotation: item.Rotation,
			ZIndex:   item.ZIndex,
		})
	}
	return domain.BatchApplyRequest{
		FileIDs:        req.FileIDs,
		AddTags:        req.AddTags,
		RemoveTags:     req.RemoveTags,
		ToggleFavorite: req.ToggleFavorite,
		Rating:         req.Rating,
		DeleteFiles:    req.DeleteFiles,
		BoardID:        req.BoardID,
		BoardItems:     items,
	}
}

// BatchApplyV1 applies tags, favorite, rating, board placement or deletion to many files at once
func (h *HandlerV1) BatchApplyV1(w http.ResponseWriter, r *http.Request) {

	var req V1BatchApplyRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.batchService.Apply(r.Context(), req.toDomain())
	if err != nil {
		h.logger.Warn("batch apply failed", slog.Int("files", len(req.FileIDs)), slog.Any("error", err))
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusOK, V1BatchApplyResponse{
		Updated:      result.Updated,
		AddedToBoard: result.AddedToBoard,
		Deleted:      result.Deleted,
	})
}
