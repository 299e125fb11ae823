package client

import (
	"errors"
	"fmt"

	"uplink/internal/domain"
)

var (
	ErrNoFile          = errors.New("no file selected")
	ErrFileTooLarge    = fmt.Errorf("file size exceeds the limit of %dMB", domain.MaxFileSizeMB)
	ErrNetwork         = errors.New("network error during upload")
	ErrAborted         = errors.New("upload aborted")
	ErrInvalidResponse = errors.New("invalid server response")
)

// ServerError is a non-2xx answer from the upload endpoint.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// Message returns the text shown to the user for an upload error.
func Message(err error) string {
	var se *ServerError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return se.Message
	case errors.Is(err, ErrNoFile):
		return "No file selected"
	case errors.Is(err, ErrFileTooLarge):
		return fmt.Sprintf("File size exceeds the limit of %dMB", domain.MaxFileSizeMB)
	case errors.Is(err, ErrAborted):
		return "Upload aborted"
	case errors.Is(err, ErrNetwork):
		return "Network error during upload"
	case errors.Is(err, ErrInvalidResponse):
		return "Invalid server response"
	default:
		return err.Error()
	}
}
