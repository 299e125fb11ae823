// Package client uploads files to the upload service and watches its health.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"uplink/internal/domain"
)

const maxResponseBytes = 1 << 20

// File is a file selected for upload.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Size returns the byte length of the file.
func (f *File) Size() int64 {
	return int64(len(f.Content))
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithEncoding selects the request body shape for uploads.
func WithEncoding(e domain.Encoding) Option {
	return func(c *Client) { c.encoding = e }
}

// WithProjectID attaches a project id to every upload.
func WithProjectID(id string) Option {
	return func(c *Client) { c.projectID = id }
}

// Client talks to the upload service.
type Client struct {
	baseURL   string
	token     string
	encoding  domain.Encoding
	projectID string
	http      *http.Client
}

// New creates a Client for the service at baseURL authenticating with token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		encoding: domain.EncodingMultipart,
		http:     &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckFile rejects a missing selection or a file over the size limit.
func CheckFile(f *File) error {
	if f == nil || (f.Name == "" && len(f.Content) == 0) {
		return ErrNoFile
	}
	if f.Size() > domain.MaxFileSizeBytes {
		return ErrFileTooLarge
	}
	return nil
}

// Upload sends f to POST /upload, reporting progress as the body is written.
// Files over the size limit are rejected without a request.
func (c *Client) Upload(ctx context.Context, f *File, onProgress ProgressFunc) (*domain.UploadResult, error) {
	if err := CheckFile(f); err != nil {
		return nil, err
	}

	payload, contentType, err := c.encode(f)
	if err != nil {
		return nil, fmt.Errorf("encoding upload: %w", err)
	}

	body := newProgressReader(bytes.NewReader(payload), int64(len(payload)), onProgress)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", body)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.ContentLength = int64(len(payload))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serverError(resp.StatusCode, raw)
	}

	var result domain.UploadResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &result, nil
}

// Health probes GET /health and returns an error unless it answers 200.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("building health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) encode(f *File) ([]byte, string, error) {
	if c.encoding == domain.EncodingJSON {
		return c.encodeJSON(f)
	}
	return c.encodeMultipart(f)
}

func (c *Client) encodeMultipart(f *File) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(f.Name)))
	h.Set("Content-Type", contentTypeOf(f))
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(f.Content); err != nil {
		return nil, "", err
	}
	if c.projectID != "" {
		if err := w.WriteField("projectId", c.projectID); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

type jsonUpload struct {
	File      string `json:"file"`
	FileName  string `json:"fileName"`
	FileType  string `json:"fileType"`
	ProjectID string `json:"projectId,omitempty"`
}

func (c *Client) encodeJSON(f *File) ([]byte, string, error) {
	b, err := json.Marshal(jsonUpload{
		File:      base64.StdEncoding.EncodeToString(f.Content),
		FileName:  f.Name,
		FileType:  contentTypeOf(f),
		ProjectID: c.projectID,
	})
	if err != nil {
		return nil, "", err
	}
	return b, "application/json", nil
}

func contentTypeOf(f *File) string {
	if f.ContentType == "" {
		return "application/octet-stream"
	}
	return f.ContentType
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrAborted, ctx.Err())
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

// serverError extracts the "error" field of a JSON error body. A JSON body
// without one yields a generic message; a non-JSON body yields the status.
func serverError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return &ServerError{Status: status, Message: fmt.Sprintf("Upload failed with status %d", status)}
	}
	if payload.Error == "" {
		return &ServerError{Status: status, Message: "Upload failed"}
	}
	return &ServerError{Status: status, Message: payload.Error}
}
