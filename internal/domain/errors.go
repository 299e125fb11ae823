package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized        = errors.New("no token provided")
	ErrInvalidToken        = errors.New("invalid token")
	ErrNoFile              = errors.New("no file uploaded")
	ErrFileTooLarge        = fmt.Errorf("file size exceeds the limit of %dMB", MaxFileSizeMB)
	ErrFileTypeNotAllowed  = errors.New("file type not allowed")
	ErrInvalidEncoding     = errors.New("invalid base64 file content")
	ErrUnsupportedEncoding = errors.New("unsupported upload encoding")
	ErrUploadFailed        = errors.New("upload to storage failed")
)

// StorageError carries the underlying object-storage failure for a key.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storing %s: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match ErrUploadFailed.
func (e *StorageError) Is(target error) bool {
	return target == ErrUploadFailed
}
