package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid filename")
)

// Store is the narrow media-store contract the handlers depend on. The
// default implementation is filesystem-backed; anything that can save,
// read, delete and list named image files can stand in for it.
type Store interface {
	// Save persists data under a timestamp-prefixed name derived from
	// suggestedName and returns the stored name.
	Save(suggestedName string, data []byte) (string, error)
	Read(name string) ([]byte, error)
	Delete(name string) error
	List() ([]string, error)
}

var allowedExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// AllowedExt reports whether name carries an extension from the image
// allow-list.
func AllowedExt(name string) bool {
	_, ok := allowedExts[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ContentType returns the MIME type for a stored image name.
func ContentType(name string) string {
	if ct, ok := allowedExts[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// validName rejects path traversal sequences and separators in
// caller-supplied filenames.
func validName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.Contains(name, "..") &&
		!strings.ContainsAny(name, "/\\")
}

// storedName builds the persisted filename: epoch-millis prefix plus the
// sanitized original name. A name reduced to nothing gets a random stem so
// the upload still lands somewhere retrievable.
func storedName(suggestedName string) string {
	base := strings.ReplaceAll(strings.TrimSpace(suggestedName), " ", "_")
	ext := strings.ToLower(filepath.Ext(base))
	if strings.TrimSuffix(base, filepath.Ext(base)) == "" {
		base = uuid.NewString() + ext
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}
