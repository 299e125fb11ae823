package domain

import "strings"

// MaxFileSizeBytes is the largest upload accepted by both client and server.
const MaxFileSizeBytes int64 = 10 * 1024 * 1024

// MaxFileSizeMB is MaxFileSizeBytes expressed in whole megabytes for messages.
const MaxFileSizeMB = MaxFileSizeBytes / (1024 * 1024)

// Category is the top-level folder an upload is stored under.
type Category string

const (
	CategoryImages    Category = "images"
	CategoryDocuments Category = "documents"
	CategoryMisc      Category = "misc"
)

// AllowedContentTypes is the server-side allow-list of declared MIME types.
var AllowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
	"text/plain":      true,
}

// CategoryFor derives the storage folder from a MIME type.
func CategoryFor(contentType string) Category {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return CategoryImages
	case contentType == "application/pdf":
		return CategoryDocuments
	default:
		return CategoryMisc
	}
}

// Encoding identifies one of the accepted request body shapes for POST /upload.
type Encoding string

const (
	EncodingMultipart Encoding = "multipart"
	EncodingJSON      Encoding = "json"
)

// ParseEncoding validates an encoding name.
func ParseEncoding(s string) (Encoding, bool) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(s))); e {
	case EncodingMultipart, EncodingJSON:
		return e, true
	default:
		return "", false
	}
}
