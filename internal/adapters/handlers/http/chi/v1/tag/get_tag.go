package tag

import (
	"net/http"
	"net/url"

	"easyref/internal/adapters/handlers/http/chi/v1/response"

	"github.com/go-chi/chi/v5"
)

// GetTagV1 looks a tag up by name, ignoring case and surrounding spaces
func (h *HandlerV1) GetTagV1(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, "invalid tag name", http.StatusBadRequest)
		return
	}

	found, err := h.tags.GetTagByName(r.Context(), name)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusOK, response.NewTag(*found))
}
