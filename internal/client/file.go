package client

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// OpenFile reads the file at path. The content type comes from the file
// extension, or from the content when the extension is unknown.
func OpenFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	name := filepath.Base(path)
	return &File{
		Name:        name,
		ContentType: DetectContentType(name, content),
		Content:     content,
	}, nil
}

// DetectContentType returns the bare media type for a file.
func DetectContentType(name string, content []byte) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ct == "" {
		ct = mimetype.Detect(content).String()
	}
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		return mediaType
	}
	return ct
}
