// Package token verifies bearer tokens presented to the upload endpoint.
package token

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"uplink/internal/config"
	"uplink/internal/domain"
	"uplink/internal/port"
)

// New returns the verifier selected by cfg.Mode.
func New(cfg *config.AuthConfig) (port.TokenVerifier, error) {
	switch cfg.Mode {
	case config.AuthModeJWT:
		return NewJWTVerifier(cfg.JWTSecret, cfg.Issuer), nil
	case config.AuthModeStatic:
		return NewStaticVerifier(cfg.StaticToken), nil
	default:
		return nil, fmt.Errorf("unknown auth mode: %s", cfg.Mode)
	}
}

// StaticVerifier accepts exactly one shared token. It exists for local
// development; it offers no expiry or identity.
type StaticVerifier struct {
	token []byte
}

// NewStaticVerifier creates a StaticVerifier for token.
func NewStaticVerifier(token string) *StaticVerifier {
	return &StaticVerifier{token: []byte(token)}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) error {
	if len(v.token) == 0 || subtle.ConstantTimeCompare(v.token, []byte(token)) != 1 {
		return domain.ErrInvalidToken
	}
	return nil
}

func (v *StaticVerifier) Mode() string {
	return config.AuthModeStatic
}

// JWTVerifier validates HS256-signed tokens. Tokens must carry an expiry and,
// when an issuer is configured, a matching iss claim.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a JWTVerifier.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !token.Valid {
		return domain.ErrInvalidToken
	}
	return nil
}

func (v *JWTVerifier) Mode() string {
	return config.AuthModeJWT
}

// Compile-time checks.
var (
	_ port.TokenVerifier = (*StaticVerifier)(nil)
	_ port.TokenVerifier = (*JWTVerifier)(nil)
)
