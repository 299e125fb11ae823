package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplink/internal/config"
	"uplink/internal/storage"
	"uplink/internal/storage/minio"
)

func TestNew_UnknownProvider(t *testing.T) {
	_, err := storage.New(context.Background(), &config.StorageConfig{Provider: "ftp"})
	assert.ErrorContains(t, err, "unknown storage provider")
}

func TestNew_Minio(t *testing.T) {
	s, err := storage.New(context.Background(), &config.StorageConfig{
		Provider: config.ProviderMinio,
		Region:   "us-east-1",
		Bucket:   "uploads",
		Endpoint: "localhost:9000",
	})
	require.NoError(t, err)
	assert.IsType(t, &minio.Client{}, s)
}

func TestNew_S3(t *testing.T) {
	s, err := storage.New(context.Background(), &config.StorageConfig{
		Provider:  config.ProviderS3,
		Region:    "us-east-1",
		Bucket:    "uploads",
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	assert.NotNil(t, s)
}
