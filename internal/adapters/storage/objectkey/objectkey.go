// Package objectkey builds and checks the keys shared by every storage backend.
//
// A stored object is addressed by "<uuid>_<sanitized name>". A staged deletion lives under
// TrashPrefix as "<uuid>_<original key>", so the original key can be recovered from the trash
// key alone.
package objectkey

import (
	"easyref/internal/core/domain"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// TrashPrefix is the area holding staged deletions
const TrashPrefix = ".trash/"

const uuidLen = 36

// MaxNameLen keeps a trash key, two uuid prefixes plus the name, within the 255 byte
// file name limit of common filesystems
const MaxNameLen = 255 - 2*(uuidLen+1)

// New returns a collision free key for an uploaded file name
func New(name string) string {
	return uuid.NewString() + "_" + SanitizeName(name)
}

// SanitizeName keeps the base name with only letters, digits, dots, dashes and underscores.
// Names longer than MaxNameLen are cut, keeping their extension when it is short.
func SanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.TrimLeft(b.String(), ".")
	if sanitized == "" {
		return "file"
	}
	return shorten(sanitized)
}

func shorten(name string) string {
	if len(name) <= MaxNameLen {
		return name
	}
	ext := path.Ext(name)
	if len(ext) > MaxNameLen/4 {
		ext = ""
	}
	return name[:MaxNameLen-len(ext)] + ext
}

// Validate rejects keys that would escape the backend root or address the trash area
func Validate(key string) error {
	if key == "" || strings.HasPrefix(key, ".") || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return fmt.Errorf("%q: %w", key, domain.ErrInvalidStorageKey)
	}
	return nil
}

// Trash returns a fresh trash key for key
func Trash(key string) string {
	return TrashPrefix + uuid.NewString() + "_" + key
}

// ParseTrash returns the original key staged under trashKey
func ParseTrash(trashKey string) (string, error) {
	rest, ok := strings.CutPrefix(trashKey, TrashPrefix)
	if !ok || len(rest) <= uuidLen+1 || rest[uuidLen] != '_' {
		return "", fmt.Errorf("%q: %w", trashKey, domain.ErrInvalidStorageKey)
	}
	if _, err := uuid.Parse(rest[:uuidLen]); err != nil {
		return "", fmt.Errorf("%q: %w", trashKey, domain.ErrInvalidStorageKey)
	}

	original := rest[uuidLen+1:]
	if err := Validate(original); err != nil {
		return "", err
	}
	return original, nil
}
