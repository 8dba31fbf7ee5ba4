package file

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"easyref/internal/adapters/handlers/http/chi/v1/response"
	"easyref/internal/core/domain"

	"github.com/dustin/go-humanize"
)

const uploadField = "files"

// UploadFilesV1 stores every file of the multipart field "files".
// Rejected files are skipped, the response lists the stored ones.
func (h *HandlerV1) UploadFilesV1(w http.ResponseWriter, r *http.Request) {

	if h.uploadCfg.MaxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.uploadCfg.MaxRequestSize)
	}
	if err := r.ParseMultipartForm(h.uploadCfg.MaxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "request exceeds "+humanize.Bytes(uint64(maxErr.Limit)), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("failed to remove multipart temp files", slog.Any("error", err))
		}
	}()

	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		http.Error(w, "files required", http.StatusBadRequest)
		return
	}

	uploads := make([]domain.Upload, 0, len(headers))
	for _, header := range headers {
		uploads = append(uploads, toUpload(header))
	}

	files, err := h.fileService.Upload(r.Context(), uploads)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusOK, response.NewFiles(files))
}

func toUpload(header *multipart.FileHeader) domain.Upload {
	return domain.Upload{
		Name: header.Filename,
		Size: header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}
