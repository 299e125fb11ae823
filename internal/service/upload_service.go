package service

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"uplink/internal/config"
	"uplink/internal/domain"
	"uplink/internal/port"
)

// UploadService defines the single-file upload contract.
type UploadService interface {
	Upload(ctx context.Context, upload *domain.FileUpload) (*domain.UploadResult, error)
}

type uploadService struct {
	storage port.ObjectStorage
	cdn     *config.CDNConfig
	newID   IDGenerator
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(storage port.ObjectStorage, cdn *config.CDNConfig) UploadService {
	return &uploadService{
		storage: storage,
		cdn:     cdn,
		newID:   NewRandomID,
	}
}

func (s *uploadService) Upload(ctx context.Context, upload *domain.FileUpload) (*domain.UploadResult, error) {
	if err := ValidateUpload(upload); err != nil {
		return nil, err
	}

	contentType := NormalizeContentType(upload.ContentType)
	originalName := BaseName(upload.OriginalName)
	key := StorageKey(contentType, originalName, s.newID)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Key:         key,
		Body:        bytes.NewReader(upload.Content),
		ContentType: contentType,
		Size:        upload.Size(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "uploadService.Upload: storage upload failed", "key", key, "error", err)
		return nil, &domain.StorageError{Key: key, Err: err}
	}

	slog.InfoContext(ctx, "file uploaded successfully",
		"key", key, "content_type", contentType, "size", upload.Size())

	return &domain.UploadResult{
		URL:          s.cdn.URLFor(key),
		Key:          key,
		FileType:     contentType,
		OriginalName: originalName,
		ProjectID:    upload.ProjectID,
		UploadedAt:   time.Now().UTC(),
	}, nil
}
