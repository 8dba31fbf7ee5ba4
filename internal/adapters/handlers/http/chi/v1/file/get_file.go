package file

import (
	"net/http"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
)

// GetFileV1 is the function that handles GetFile
func (h *HandlerV1) GetFileV1(w http.ResponseWriter, r *http.Request) {

	fileID, ok := response.IDParam(w, r, "fileID")
	if !ok {
		return
	}

	file, err := h.fileService.GetFile(r.Context(), fileID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewFile(*file))
}

// GetRandomFileV1 picks one file of the library
func (h *HandlerV1) GetRandomFileV1(w http.ResponseWriter, r *http.Request) {

	file, err := h.fileService.GetRandomFile(r.Context())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewFile(*file))
}
