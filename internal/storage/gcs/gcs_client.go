// Package gcs implements object storage on Google Cloud Storage.
package gcs

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"uplink/internal/config"
	"uplink/internal/port"
)

// Client uploads objects to a single GCS bucket.
type Client struct {
	client *storage.Client
	bucket string
}

// NewClient creates a Client for cfg.Bucket. A configured credentials file is
// passed to the GCS client; extra opts are appended, allowing tests to inject
// endpoints or disable authentication.
func NewClient(ctx context.Context, cfg *config.StorageConfig, opts ...option.ClientOption) (*Client, error) {
	var clientOpts []option.ClientOption
	if cfg.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create GCS client: %w", err)
	}
	return &Client{client: client, bucket: cfg.Bucket}, nil
}

// Upload writes input.Body to the bucket in a single request. Writes are
// never retried.
func (c *Client) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	obj := c.client.Bucket(c.bucket).Object(input.Key).Retryer(storage.WithPolicy(storage.RetryNever))

	// Cancelling wctx aborts the write without committing a partial object.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := obj.NewWriter(wctx)
	w.ContentType = input.ContentType
	// A zero chunk size sends the object in one request instead of a resumable session.
	w.ChunkSize = 0

	if _, err := io.Copy(w, input.Body); err != nil {
		cancel()
		_ = w.Close()
		return nil, fmt.Errorf("storage: upload write failed for %q: %w", input.Key, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("storage: upload close failed for %q: %w", input.Key, err)
	}

	out := &port.UploadOutput{Location: ObjectURI(c.bucket, input.Key)}
	if attrs := w.Attrs(); attrs != nil {
		out.ETag = attrs.Etag
	}
	return out, nil
}

// Ping fetches the bucket attributes.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.Bucket(c.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("storage: bucket %q not reachable: %w", c.bucket, err)
	}
	return nil
}

// Close releases the underlying GCS client.
func (c *Client) Close() error {
	return c.client.Close()
}

// ObjectURI returns the gs:// URI of an object.
func ObjectURI(bucket, key string) string {
	return "gs://" + bucket + "/" + key
}

// Compile-time check.
var _ port.ObjectStorage = (*Client)(nil)
