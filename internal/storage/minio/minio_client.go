// Package minio implements object storage against MinIO or any other
// S3-compatible endpoint using minio-go.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"uplink/internal/config"
	"uplink/internal/port"
)

// minio-go reads its retry budget from a package-level variable, so every
// client built in this process makes a single attempt per request.
func init() {
	minio.MaxRetry = 1
}

// Client implements port.ObjectStorage on top of a minio-go client.
type Client struct {
	client *minio.Client
	bucket string
}

// NewClient creates a minio-go client for cfg.Endpoint. The endpoint may be a
// bare host:port or a URL; a URL scheme overrides cfg.UseSSL.
func NewClient(cfg *config.StorageConfig) (*Client, error) {
	host, secure, err := splitEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Client{client: client, bucket: cfg.Bucket}, nil
}

// Upload streams input.Body to the bucket under input.Key with a single PutObject.
func (c *Client) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	info, err := c.client.PutObject(ctx, c.bucket, input.Key, input.Body, input.Size, minio.PutObjectOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object %q: %w", input.Key, err)
	}
	return &port.UploadOutput{
		Location: info.Location,
		ETag:     info.ETag,
	}, nil
}

// Ping checks that the bucket exists.
func (c *Client) Ping(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", c.bucket)
	}
	return nil
}

func splitEndpoint(endpoint string, useSSL bool) (host string, secure bool, err error) {
	if !strings.Contains(endpoint, "://") {
		return strings.TrimRight(endpoint, "/"), useSSL, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("parse storage endpoint: %w", err)
	}
	switch u.Scheme {
	case "http":
		return u.Host, false, nil
	case "https":
		return u.Host, true, nil
	default:
		return "", false, fmt.Errorf("unsupported storage endpoint scheme %q", u.Scheme)
	}
}

// Compile-time check.
var _ port.ObjectStorage = (*Client)(nil)
