package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"uplink/docs"
	"uplink/internal/config"
	"uplink/internal/handler"
	"uplink/internal/middleware"
	"uplink/internal/port"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log *slog.Logger,
	verifier port.TokenVerifier,
	uploadH *handler.UploadHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/health", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Protected routes - require a valid bearer token
	r.POST("/upload", middleware.AuthMiddleware(verifier), uploadH.Upload)

	if !cfg.Server.IsProduction() {
		docs.SwaggerInfo.BasePath = "/"
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		handler.RespondError(c, http.StatusNotFound, "Not found", "")
	})

	return r
}
