package file

import (
	"net/http"
	"strconv"
	"strings"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
	"easyref/internal/core/domain"
)

// ListFilesV1 lists files with skip and limit
func (h *HandlerV1) ListFilesV1(w http.ResponseWriter, r *http.Request) {

	skip, ok := intQuery(w, r, "skip", 0)
	if !ok {
		return
	}
	limit, ok := intQuery(w, r, "limit", 100)
	if !ok {
		return
	}

	files, err := h.fileService.ListFiles(r.Context(), skip, limit)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewFiles(files))
}

// SearchFilesV1 filters files by comma separated tags, rating, favorite and file type
func (h *HandlerV1) SearchFilesV1(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()
	filter := domain.SearchFilter{
		TagMode:  domain.TagSearchMode(query.Get("tag_search_mode")),
		FileType: domain.FileType(query.Get("file_type")),
	}
	if tags := query.Get("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	if raw := query.Get("min_rating"); raw != "" {
		minRating, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "min_rating must be an integer", http.StatusBadRequest)
			return
		}
		filter.MinRating = &minRating
	}
	if raw := query.Get("is_favorite"); raw != "" {
		isFavorite, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "is_favorite must be a boolean", http.StatusBadRequest)
			return
		}
		filter.IsFavorite = &isFavorite
	}

	files, err := h.fileService.SearchFiles(r.Context(), filter)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, response.NewFiles(files))
}

func intQuery(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, name+" must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return value, true
}
