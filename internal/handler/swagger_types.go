package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// UploadJSONRequest represents the JSON upload request body.
type UploadJSONRequest struct {
	File      string `json:"file" example:"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="`
	FileName  string `json:"fileName" example:"cat.png"`
	FileType  string `json:"fileType" example:"image/png"`
	ProjectID string `json:"projectId,omitempty" example:"p1"`
}

// UploadResponse represents a successful upload.
type UploadResponse struct {
	URL          string `json:"url" example:"https://cdn.example.com/images/3f0c9a52-8d1e-4b7a-9c2f-0a1b2c3d4e5f.png"`
	Key          string `json:"key" example:"images/3f0c9a52-8d1e-4b7a-9c2f-0a1b2c3d4e5f.png"`
	FileType     string `json:"fileType" example:"image/png"`
	OriginalName string `json:"originalName" example:"cat.png"`
	ProjectID    string `json:"projectId,omitempty" example:"p1"`
	UploadedAt   string `json:"uploadedAt" example:"2024-05-01T12:00:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponseBody represents an error response.
type ErrorResponseBody struct {
	Error   string `json:"error" example:"File type not allowed"`
	Details string `json:"details,omitempty" example:"operation error S3: PutObject, https response error StatusCode: 500"`
}
