package tag

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
	"easyref/internal/core/domain"
)

// V1CreateTagsRequest is the body request for Create Tags
type V1CreateTagsRequest struct {
	Tags []string `json:"tags"`
}

// CreateTagsV1 is the handler for create tags v1
func (h *HandlerV1) CreateTagsV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateTagsRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	if len(req.Tags) == 0 {
		http.Error(w, "tags required", http.StatusBadRequest)
		return
	}

	for _, tag := range req.Tags {
		if strings.TrimSpace(tag) == "" {
			http.Error(w, "tag cannot be empty", http.StatusBadRequest)
			return
		}
		if !validTagName(tag) {
			http.Error(w, fmt.Sprintf("tag :%s contains invalid characters", tag), http.StatusBadRequest)
			return
		}
	}

	err := h.tags.CreateTags(r.Context(), req.Tags)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		h.logger.Warn("all tags already exist", slog.Any("tags", req.Tags))
		http.Error(w, "all tags already exist", http.StatusConflict)
	case err != nil:
		response.Error(w, h.logger, err)
	default:
		w.WriteHeader(http.StatusCreated)
	}
}

// validTagName accepts letters, digits, spaces, dashes and underscores
func validTagName(tag string) bool {
	for _, char := range tag {
		if unicode.IsLetter(char) || unicode.IsDigit(char) || char == ' ' || char == '-' || char == '_' {
			continue
		}
		return false
	}
	return true
}
