package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplink/internal/config"
	"uplink/internal/domain"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("UPLINK_CDN_BASE_URL", "https://cdn.example.com/")
	t.Setenv("UPLINK_AUTH_JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, config.ProviderS3, cfg.Storage.Provider)
	assert.Equal(t, "uplink-uploads", cfg.Storage.Bucket)
	assert.Equal(t, "https://cdn.example.com", cfg.CDN.BaseURL)
	assert.Equal(t, config.AuthModeJWT, cfg.Auth.Mode)
	assert.Equal(t, []domain.Encoding{domain.EncodingMultipart, domain.EncodingJSON}, cfg.Upload.Encodings)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_LegacyVariableNames(t *testing.T) {
	t.Setenv("CDN_URL", "https://d111.cloudfront.net")
	t.Setenv("BUCKET_NAME", "legacy-bucket")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("FRONTEND_URL", "https://app.example.com")
	t.Setenv("UPLINK_AUTH_MODE", "static")
	t.Setenv("UPLINK_AUTH_STATIC_TOKEN", "dev-token")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://d111.cloudfront.net", cfg.CDN.BaseURL)
	assert.Equal(t, "legacy-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, config.AuthModeStatic, cfg.Auth.Mode)
}

func TestLoad_PrefixedNameWinsOverLegacy(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BUCKET_NAME", "legacy-bucket")
	t.Setenv("UPLINK_STORAGE_BUCKET", "new-bucket")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "new-bucket", cfg.Storage.Bucket)
}

func TestLoad_PlatformPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_MissingCDN(t *testing.T) {
	t.Setenv("UPLINK_AUTH_JWT_SECRET", "test-secret")
	t.Setenv("UPLINK_CDN_BASE_URL", "")
	t.Setenv("CDN_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_UnknownEncoding(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UPLINK_UPLOAD_ENCODINGS", "multipart,xml")

	_, err := config.Load()
	assert.ErrorContains(t, err, "xml")
}

func TestLoad_JSONOnly(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UPLINK_UPLOAD_ENCODINGS", "json")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Upload.Accepts(domain.EncodingJSON))
	assert.False(t, cfg.Upload.Accepts(domain.EncodingMultipart))
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Storage: config.StorageConfig{Provider: config.ProviderS3, Bucket: "b"},
			CDN:     config.CDNConfig{BaseURL: "https://cdn"},
			Auth:    config.AuthConfig{Mode: config.AuthModeJWT, JWTSecret: "s"},
			Upload:  config.UploadConfig{Encodings: []domain.Encoding{domain.EncodingMultipart}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"unknown provider", func(c *config.Config) { c.Storage.Provider = "ftp" }, true},
		{"empty bucket", func(c *config.Config) { c.Storage.Bucket = "" }, true},
		{"minio without endpoint", func(c *config.Config) { c.Storage.Provider = config.ProviderMinio }, true},
		{"gcs", func(c *config.Config) { c.Storage.Provider = config.ProviderGCS }, false},
		{"jwt without secret", func(c *config.Config) { c.Auth.JWTSecret = "" }, true},
		{"static without token", func(c *config.Config) { c.Auth.Mode = config.AuthModeStatic }, true},
		{"static with token", func(c *config.Config) {
			c.Auth.Mode = config.AuthModeStatic
			c.Auth.StaticToken = "t"
		}, false},
		{"unknown auth mode", func(c *config.Config) { c.Auth.Mode = "none" }, true},
		{"no encodings", func(c *config.Config) { c.Upload.Encodings = nil }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCDNConfig_URLFor(t *testing.T) {
	cdn := config.CDNConfig{BaseURL: "https://cdn.example.com/"}
	assert.Equal(t, "https://cdn.example.com/images/a.png", cdn.URLFor("images/a.png"))
}
