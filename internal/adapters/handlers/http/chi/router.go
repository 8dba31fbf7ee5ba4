package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"easyref/internal/adapters/handlers/http/chi/v1/board"
	"easyref/internal/adapters/handlers/http/chi/v1/file"
	"easyref/internal/adapters/handlers/http/chi/v1/tag"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const maxJSONBody = 5 << 20 // 5mb

// Handlers groups the handlers served by the router, a nil handler is not mounted
type Handlers struct {
	Tag   *tag.HandlerV1
	File  *file.HandlerV1
	Board *board.HandlerV1
}

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, handlers Handlers, env string) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if handlers.File != nil {
			// uploads stream large bodies, their size is bounded by the handler
			r.With(middleware.Timeout(10*time.Minute)).Post("/files/upload", handlers.File.UploadFilesV1)
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Use(middleware.RequestSize(maxJSONBody))

			if handlers.Tag != nil {
				r.Mount("/tags", handlers.Tag.Routes())
			}
			if handlers.File != nil {
				r.Mount("/files", handlers.File.Routes())
			}
			if handlers.Board != nil {
				r.Mount("/boards", handlers.Board.BoardRoutes())
				r.Mount("/items", handlers.Board.ItemRoutes())
			}
		})
	})

	if handlers.File != nil {
		r.Get("/storage/{key}", handlers.File.ServeStoredV1)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("error encoding response", slog.Any("error", err))
		}
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
