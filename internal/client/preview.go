package client

import (
	"encoding/base64"
	"strings"
)

// Preview is what is shown for a file before it is uploaded. Images carry
// their content as a data URL; everything else gets an icon and the name.
type Preview struct {
	Name        string
	ContentType string
	DataURL     string
	Icon        string
}

// NewPreview builds the preview for f.
func NewPreview(f *File) Preview {
	p := Preview{Name: f.Name, ContentType: f.ContentType}
	if strings.HasPrefix(f.ContentType, "image/") {
		p.DataURL = "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Content)
		return p
	}
	p.Icon = FileIcon(f.ContentType)
	return p
}

// FileIcon names the icon for a content type.
func FileIcon(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "file-image"
	case contentType == "application/pdf":
		return "file-pdf"
	case strings.HasPrefix(contentType, "text/"):
		return "file-alt"
	default:
		return "file"
	}
}

// MediaKind is the kind of inline player a stored file can be shown with.
type MediaKind string

const (
	MediaNone  MediaKind = ""
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// MediaKindOf returns the media kind for a content type.
func MediaKindOf(contentType string) MediaKind {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return MediaImage
	case strings.HasPrefix(contentType, "video/"):
		return MediaVideo
	case strings.HasPrefix(contentType, "audio/"):
		return MediaAudio
	default:
		return MediaNone
	}
}
