package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"uplink/internal/handler"
	"uplink/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	h := handler.NewHealthHandler(storage)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newRequest(t, http.MethodGet, "/health", nil, "")

	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	storage.AssertNotCalled(t, "Ping", mock.Anything)
}

func TestHealthHandler_Readiness_OK(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Ping", mock.Anything).Return(nil)
	h := handler.NewHealthHandler(storage)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newRequest(t, http.MethodGet, "/readyz", nil, "")

	h.Readiness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	storage.AssertExpectations(t)
}

func TestHealthHandler_Readiness_StorageDown(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Ping", mock.Anything).Return(errors.New("NoSuchBucket"))
	h := handler.NewHealthHandler(storage)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newRequest(t, http.MethodGet, "/readyz", nil, "")

	h.Readiness(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","error":"storage not reachable"}`, w.Body.String())
}
