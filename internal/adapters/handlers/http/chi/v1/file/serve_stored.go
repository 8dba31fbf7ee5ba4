package file

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"easyref/internal/adapters/handlers/http/chi/v1/response"

	"github.com/go-chi/chi/v5"
)

// ServeStoredV1 streams the bytes stored under {key}. Seekable objects support range requests.
func (h *HandlerV1) ServeStoredV1(w http.ResponseWriter, r *http.Request) {

	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil || key == "" {
		http.Error(w, "invalid key", http.StatusBadRequest)
		return
	}

	content, size, err := h.fileService.OpenStored(r.Context(), key)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	defer content.Close()

	w.Header().Set("Access-Control-Allow-Origin", "*")
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	if seeker, ok := content.(io.ReadSeeker); ok {
		http.ServeContent(w, r, key, time.Time{}, seeker)
		return
	}

	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, content); err != nil {
		h.logger.Warn("failed to stream stored object", slog.String("key", key), slog.Any("error", err))
	}
}
