package port

import "context"

// TokenVerifier checks a bearer token presented on an upload request.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) error
	Mode() string
}
