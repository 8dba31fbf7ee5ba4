package domain

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// StorageType identifies the backend holding the bytes of a file
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// FileType represents a file type
type FileType string

const (
	FileTypeImage   FileType = "image"
	FileTypeVideo   FileType = "video"
	FileTypeUnknown FileType = "unknown"
)

// ImageExtensions are the extensions treated as images by search and upload
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}

// VideoExtensions are the extensions treated as videos by search and upload
var VideoExtensions = []string{".mp4", ".webm", ".mov", ".avi"}

// FileTypeFromName resolves the media type of a file from its extension
func FileTypeFromName(name string) FileType {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case slices.Contains(ImageExtensions, ext):
		return FileTypeImage
	case slices.Contains(VideoExtensions, ext):
		return FileTypeVideo
	default:
		return FileTypeUnknown
	}
}

// File represents an uploaded asset of the library
type File struct {
	ID          int64
	Name        string
	StorageKey  string
	StorageType StorageType
	CreatedAt   time.Time
	Tags        []Tag
	Metadata    *Metadata
	// URL is resolved from the storage backend when the file leaves the service layer
	URL string
}

// HasTag reports whether the file carries the tag id
func (f *File) HasTag(tagID int64) bool {
	for _, tag := range f.Tags {
		if tag.ID == tagID {
			return true
		}
	}
	return false
}

// Upload is one file of an upload request. Open is called at most once.
type Upload struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// TrashEntry is a staged object found in the trash area of a backend
type TrashEntry struct {
	TrashKey    string
	OriginalKey string
	StagedAt    time.Time
}
