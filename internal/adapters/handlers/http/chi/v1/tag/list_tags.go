package tag

import (
	"net/http"
	"strconv"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
)

const defaultLimit = 100

type V1ListTagsResponse struct {
	Tags       []response.Tag `json:"tags"`
	NextMarker *string        `json:"nextMarker,omitempty"`
}

// ListTagsV1 lists tags by name, limit defaults to 100 and marker is the last name of the previous page
func (h *HandlerV1) ListTagsV1(w http.ResponseWriter, r *http.Request) {

	limitInt := defaultLimit
	if limit := r.URL.Query().Get("limit"); limit != "" {
		var err error
		limitInt, err = strconv.Atoi(limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if limitInt <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}

	var markerPtr *string
	if marker := r.URL.Query().Get("marker"); marker != "" {
		markerPtr = &marker
	}
	tags, nextMarker, err := h.tags.ListTags(r.Context(), limitInt, markerPtr)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusOK, V1ListTagsResponse{
		Tags:       response.NewTags(tags),
		NextMarker: nextMarker,
	})
}
