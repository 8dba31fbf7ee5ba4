package file

import (
	"net/http"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
)

// DeleteFileV1 deletes a file and its stored bytes. Unknown ids succeed.
func (h *HandlerV1) DeleteFileV1(w http.ResponseWriter, r *http.Request) {

	fileID, ok := response.IDParam(w, r, "fileID")
	if !ok {
		return
	}

	if err := h.fileService.DeleteFile(r.Context(), fileID); err != nil {
		response.Error(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
