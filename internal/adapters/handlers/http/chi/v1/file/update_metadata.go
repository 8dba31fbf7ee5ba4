package file

import (
	"net/http"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
	"easyref/internal/core/domain"
)

// V1UpdateMetadataRequest is a partial metadata write, absent fields are kept
type V1UpdateMetadataRequest struct {
	Rating     *int     `json:"rating"`
	Notes      *string  `json:"notes"`
	SourceURL  *string  `json:"source_url"`
	IsFavorite *bool    `json:"is_favorite"`
	Duration   *float64 `json:"duration"`
	Width      *int     `json:"width"`
	Height     *int     `json:"height"`
}

// UpdateMetadataV1 writes the metadata of a file, creating it on first write
func (h *HandlerV1) UpdateMetadataV1(w http.ResponseWriter, r *http.Request) {

	fileID, ok := response.IDParam(w, r, "fileID")
	if !ok {
		return
	}

	var req V1UpdateMetadataRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	metadata, err := h.fileService.UpdateMetadata(r.Context(), fileID, domain.MetadataUpdate{
		Rating:     req.Rating,
		Notes:      req.Notes,
		SourceURL:  req.SourceURL,
		IsFavorite: req.IsFavorite,
		Duration:   req.Duration,
		Width:      req.Width,
		Height:     req.Height,
	})
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewMetadata(metadata))
}
