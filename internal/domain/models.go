package domain

import "time"

// FileUpload is a single inbound file, owned by the request that carried it.
type FileUpload struct {
	Content      []byte
	OriginalName string
	ContentType  string
	ProjectID    string
}

// Size returns the byte length of the upload.
func (f *FileUpload) Size() int64 {
	return int64(len(f.Content))
}

// UploadResult is returned verbatim to the client after a successful upload.
type UploadResult struct {
	URL          string    `json:"url"`
	Key          string    `json:"key"`
	FileType     string    `json:"fileType"`
	OriginalName string    `json:"originalName"`
	ProjectID    string    `json:"projectId,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
