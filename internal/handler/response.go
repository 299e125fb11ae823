package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"uplink/internal/domain"
	"uplink/internal/middleware"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondOK sends a 200 response with the value as the JSON body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg, details string) {
	c.JSON(status, ErrorBody{Error: msg, Details: details})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
// Details are only filled for server-side failures.
func MapDomainError(err error) (status int, msg, details string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, middleware.MsgNoToken, ""
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, middleware.MsgInvalidToken, ""
	case errors.Is(err, domain.ErrNoFile):
		return http.StatusBadRequest, "No file uploaded", ""
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "File size exceeds the limit of 10MB", ""
	case errors.Is(err, domain.ErrFileTypeNotAllowed):
		return http.StatusBadRequest, "File type not allowed", ""
	case errors.Is(err, domain.ErrInvalidEncoding):
		return http.StatusBadRequest, "Invalid base64 file content", ""
	case errors.Is(err, domain.ErrUnsupportedEncoding):
		return http.StatusBadRequest, "Unsupported upload encoding", ""
	case errors.Is(err, domain.ErrUploadFailed):
		var se *domain.StorageError
		if errors.As(err, &se) && se.Err != nil {
			return http.StatusInternalServerError, "Upload to storage failed", se.Err.Error()
		}
		return http.StatusInternalServerError, "Upload to storage failed", err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error", err.Error()
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg, details := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "internal error",
			"request_id", c.GetString(middleware.ContextKeyRequestID), "error", err)
	}
	RespondError(c, status, msg, details)
}
