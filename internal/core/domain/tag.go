package domain

import (
	"strings"
	"time"
)

// Tag represents a tag entity. Names are unique case-insensitively.
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// FileTag represents a FileTag entity
type FileTag struct {
	FileID int64
	TagID  int64
}

// NormalizeTagNames trims names and drops the blank ones, keeping order.
func NormalizeTagNames(names []string) []string {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		normalized = append(normalized, name)
	}
	return normalized
}

// TagKey is the case-insensitive lookup key of a tag name
func TagKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
