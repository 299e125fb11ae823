package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"uplink/internal/domain"
	"uplink/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMsg     string
		wantDetails string
	}{
		{"no token", domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized: No token provided", ""},
		{"invalid token", fmt.Errorf("%w: expired", domain.ErrInvalidToken), http.StatusUnauthorized, "Unauthorized: Invalid token", ""},
		{"no file", domain.ErrNoFile, http.StatusBadRequest, "No file uploaded", ""},
		{"too large", domain.ErrFileTooLarge, http.StatusBadRequest, "File size exceeds the limit of 10MB", ""},
		{"type", domain.ErrFileTypeNotAllowed, http.StatusBadRequest, "File type not allowed", ""},
		{"base64", fmt.Errorf("%w: illegal data", domain.ErrInvalidEncoding), http.StatusBadRequest, "Invalid base64 file content", ""},
		{"encoding", domain.ErrUnsupportedEncoding, http.StatusBadRequest, "Unsupported upload encoding", ""},
		{
			"storage",
			&domain.StorageError{Key: "images/x.png", Err: errors.New("connection reset")},
			http.StatusInternalServerError, "Upload to storage failed", "connection reset",
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg, details := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantDetails, details)
		})
	}
}

func TestHandleError_ClientErrorHasNoDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newRequest(t, http.MethodPost, "/upload", nil, "")

	handler.HandleError(c, domain.ErrFileTypeNotAllowed)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"File type not allowed"}`, w.Body.String())
}

func TestHandleError_ServerErrorHasDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newRequest(t, http.MethodPost, "/upload", nil, "")

	handler.HandleError(c, &domain.StorageError{Key: "misc/a.txt", Err: errors.New("AccessDenied")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Upload to storage failed","details":"AccessDenied"}`, w.Body.String())
}
