package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"uplink/internal/config"
	"uplink/internal/domain"
	"uplink/internal/service"
)

// MaxRequestBodyBytes caps the raw request body. A base64 payload is about
// 4/3 of the file, so twice the file limit plus room for the envelope is
// enough for any acceptable upload.
const MaxRequestBodyBytes = 2*domain.MaxFileSizeBytes + 1<<20

// UploadHandler handles the single-file upload endpoint.
type UploadHandler struct {
	uploadService service.UploadService
	cfg           *config.UploadConfig
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService, cfg *config.UploadConfig) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, cfg: cfg}
}

// Upload handles POST /upload
// @Summary Upload a file
// @Description Upload one file (JPEG, PNG, PDF or plain text, max 10MB) as multipart/form-data
// @Description or as a JSON body with base64 content
// @Tags upload
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "File to upload (multipart)"
// @Param projectId formData string false "Project ID echoed back in the response (multipart)"
// @Param body body UploadJSONRequest false "Upload with base64 content (json)"
// @Success 200 {object} UploadResponse "File uploaded successfully"
// @Failure 400 {object} ErrorResponseBody "Missing file, too large, or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if c.Request.ContentLength > MaxRequestBodyBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBodyBytes)

	upload, err := h.readUpload(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.uploadService.Upload(c.Request.Context(), upload)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

func (h *UploadHandler) readUpload(c *gin.Context) (*domain.FileUpload, error) {
	switch c.ContentType() {
	case gin.MIMEMultipartPOSTForm:
		if !h.cfg.Accepts(domain.EncodingMultipart) {
			return nil, domain.ErrUnsupportedEncoding
		}
		return readMultipart(c)
	case gin.MIMEJSON:
		if !h.cfg.Accepts(domain.EncodingJSON) {
			return nil, domain.ErrUnsupportedEncoding
		}
		return readJSON(c)
	default:
		return nil, domain.ErrNoFile
	}
}

func readMultipart(c *gin.Context) (*domain.FileUpload, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, bodyError(err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening multipart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading multipart file: %w", err)
	}

	return &domain.FileUpload{
		Content:      content,
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		ProjectID:    c.PostForm("projectId"),
	}, nil
}

func readJSON(c *gin.Context) (*domain.FileUpload, error) {
	var req UploadJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, bodyError(err)
	}
	if req.File == "" {
		return nil, domain.ErrNoFile
	}

	content, err := base64.StdEncoding.DecodeString(req.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidEncoding, err)
	}

	return &domain.FileUpload{
		Content:      content,
		OriginalName: req.FileName,
		ContentType:  req.FileType,
		ProjectID:    req.ProjectID,
	}, nil
}

// bodyError maps a failure to read the request body to a domain error.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return domain.ErrFileTooLarge
	}
	return fmt.Errorf("%w: %v", domain.ErrNoFile, err)
}
