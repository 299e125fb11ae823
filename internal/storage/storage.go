// Package storage selects the object storage backend named in the config.
package storage

import (
	"context"
	"fmt"

	"uplink/internal/config"
	"uplink/internal/port"
	"uplink/internal/storage/gcs"
	"uplink/internal/storage/minio"
	s3storage "uplink/internal/storage/s3"
)

// New creates the ObjectStorage for cfg.Provider.
func New(ctx context.Context, cfg *config.StorageConfig) (port.ObjectStorage, error) {
	switch cfg.Provider {
	case config.ProviderS3, "":
		return s3storage.NewS3Client(ctx, cfg)
	case config.ProviderMinio:
		// Importing the minio package pins minio-go's global MaxRetry to 1.
		c, err := minio.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderGCS:
		c, err := gcs.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
