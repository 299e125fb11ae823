package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"uplink/internal/port"
)

// Messages returned for rejected bearer tokens.
const (
	MsgNoToken      = "Unauthorized: No token provided"
	MsgInvalidToken = "Unauthorized: Invalid token"
)

// AuthMiddleware returns Gin middleware that requires a valid
// "Authorization: Bearer <token>" header. It runs before the request body is
// read.
func AuthMiddleware(verifier port.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgNoToken})
			return
		}

		if err := verifier.Verify(c.Request.Context(), token); err != nil {
			slog.DebugContext(c.Request.Context(), "token rejected",
				"request_id", c.GetString(ContextKeyRequestID), "mode", verifier.Mode(), "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgInvalidToken})
			return
		}
		c.Next()
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}
