package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"easyref/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// JSON writes v with the given status
func JSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("error encoding response", slog.Any("error", err))
	}
}

// Error maps a service error to its status. Unexpected errors are logged and hidden.
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNoFileIDs),
		errors.Is(err, domain.ErrBoardWithDelete),
		errors.Is(err, domain.ErrBoardItemsRequired),
		errors.Is(err, domain.ErrBoardItemOutsideSelection),
		errors.Is(err, domain.ErrStoredBytesMissing),
		errors.Is(err, domain.ErrInvalidFileName),
		errors.Is(err, domain.ErrInvalidTagName),
		errors.Is(err, domain.ErrInvalidBoardName),
		errors.Is(err, domain.ErrInvalidStorageKey),
		errors.Is(err, domain.ErrNothingUploaded):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrFileNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrBoardNotFound),
		errors.Is(err, domain.ErrBoardItemNotFound),
		errors.Is(err, domain.ErrMetadataNotFound),
		errors.Is(err, domain.ErrStoredObjectNotFound),
		errors.Is(err, domain.ErrLibraryEmpty):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrFileSizeTooBig):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	default:
		logger.Error("internal server error", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// DecodeJSON decodes the request body, answering 400 itself when it cannot
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// IDParam parses a positive int64 path parameter, answering 400 itself when it cannot
func IDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
