package tag

import (
	"easyref/internal/core/port"
	"log/slog"
)

// maxListLimit bounds one page of the tag listing
const maxListLimit = 1000

type tagService struct {
	repo   port.TagRepository
	logger *slog.Logger
}

// NewTagService returns the tag catalogue service backed by repo
func NewTagService(repo port.TagRepository, logger *slog.Logger) port.TagService {
	return &tagService{repo: repo, logger: logger}
}
