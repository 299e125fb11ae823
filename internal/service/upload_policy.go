package service

import (
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"

	"uplink/internal/domain"
)

// NormalizeContentType lower-cases a declared MIME type and strips its
// parameters, so "Text/Plain; charset=utf-8" compares as "text/plain".
func NormalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// ValidateUpload enforces the size limit and the MIME allow-list. The size
// check runs first so an oversized file is reported as such whatever its type.
func ValidateUpload(upload *domain.FileUpload) error {
	if upload == nil {
		return domain.ErrNoFile
	}
	if upload.Size() > domain.MaxFileSizeBytes {
		return domain.ErrFileTooLarge
	}
	if !domain.AllowedContentTypes[NormalizeContentType(upload.ContentType)] {
		return domain.ErrFileTypeNotAllowed
	}
	return nil
}

// Ext returns the extension of the base name of filename including the
// leading dot. Names without a dot, or whose only dot leads the name
// (".env"), have no extension.
func Ext(filename string) string {
	base := BaseName(filename)
	if strings.Trim(base, ".") == "" {
		return ""
	}
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return ""
	}
	return base[i:]
}

// BaseName strips any client-side directory from an uploaded file name.
// Both slash styles are treated as separators.
func BaseName(filename string) string {
	if filename == "" {
		return ""
	}
	return path.Base(strings.ReplaceAll(filename, `\`, "/"))
}

// IDGenerator returns a fresh unique identifier on every call.
type IDGenerator func() string

// NewRandomID returns a random (version 4) UUID string.
func NewRandomID() string {
	return uuid.NewString()
}

// StorageKey builds "{category}/{id}{ext}" for an upload.
func StorageKey(contentType, originalName string, newID IDGenerator) string {
	category := domain.CategoryFor(NormalizeContentType(contentType))
	return string(category) + "/" + newID() + Ext(originalName)
}
