package file

import (
	"net/http"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
)

// V1AddTagRequest names the tag to attach, created when missing
type V1AddTagRequest struct {
	Name string `json:"name"`
}

// AddTagV1 attaches a tag to a file
func (h *HandlerV1) AddTagV1(w http.ResponseWriter, r *http.Request) {

	fileID, ok := response.IDParam(w, r, "fileID")
	if !ok {
		return
	}

	var req V1AddTagRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	file, err := h.fileService.AddTag(r.Context(), fileID, req.Name)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewFile(*file))
}

// RemoveTagV1 detaches a tag from a file
func (h *HandlerV1) RemoveTagV1(w http.ResponseWriter, r *http.Request) {

	fileID, ok := response.IDParam(w, r, "fileID")
	if !ok {
		return
	}
	tagID, ok := response.IDParam(w, r, "tagID")
	if !ok {
		return
	}

	file, err := h.fileService.RemoveTag(r.Context(), fileID, tagID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewFile(*file))
}
