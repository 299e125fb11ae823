package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"uplink/internal/domain"
)

// Config holds all application configuration. It is built once by Load and
// passed by pointer; nothing mutates it afterwards.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	CDN     CDNConfig
	Auth    AuthConfig
	Upload  UploadConfig
	CORS    CORSConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// Storage providers.
const (
	ProviderS3    = "s3"
	ProviderMinio = "minio"
	ProviderGCS   = "gcs"
)

// StorageConfig holds object storage settings. Endpoint is only used by
// S3-compatible providers; CredentialsFile only by GCS.
type StorageConfig struct {
	Provider        string `mapstructure:"provider"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKey       string `mapstructure:"access_key"`
	SecretKey       string `mapstructure:"secret_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// CDNConfig holds the public URL prefix for stored objects.
type CDNConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// URLFor returns the public URL of a storage key.
func (c *CDNConfig) URLFor(key string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + key
}

// Auth modes.
const (
	AuthModeJWT    = "jwt"
	AuthModeStatic = "static"
)

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	Mode        string `mapstructure:"mode"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	Issuer      string `mapstructure:"issuer"`
	StaticToken string `mapstructure:"static_token"`
}

// UploadConfig holds the request encodings the upload endpoint accepts.
type UploadConfig struct {
	Encodings []domain.Encoding `mapstructure:"encodings"`
}

// Accepts reports whether the given encoding is enabled.
func (u *UploadConfig) Accepts(e domain.Encoding) bool {
	for _, enabled := range u.Encodings {
		if enabled == e {
			return true
		}
	}
	return false
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional .env file and environment
// variables with the UPLINK_ prefix. The variable names used by the first
// deployment (BUCKET_NAME, AWS_REGION, CDN_URL, ...) are accepted as fallbacks.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("UPLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Storage defaults
	v.SetDefault("storage.provider", ProviderS3)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "uplink-uploads")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.use_ssl", true)

	v.SetDefault("cdn.base_url", "")

	v.SetDefault("auth.mode", AuthModeJWT)

	v.SetDefault("upload.encodings", "multipart,json")

	v.SetDefault("cors.allowed_origins", "http://localhost:8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	envBindings := map[string][]string{
		"server.port":              {"UPLINK_SERVER_PORT"},
		"server.read_timeout":      {"UPLINK_SERVER_READ_TIMEOUT"},
		"server.write_timeout":     {"UPLINK_SERVER_WRITE_TIMEOUT"},
		"server.environment":       {"UPLINK_SERVER_ENVIRONMENT"},
		"storage.provider":         {"UPLINK_STORAGE_PROVIDER"},
		"storage.region":           {"UPLINK_STORAGE_REGION", "AWS_REGION"},
		"storage.bucket":           {"UPLINK_STORAGE_BUCKET", "BUCKET_NAME"},
		"storage.endpoint":         {"UPLINK_STORAGE_ENDPOINT"},
		"storage.access_key":       {"UPLINK_STORAGE_ACCESS_KEY", "AWS_ACCESS_KEY_ID"},
		"storage.secret_key":       {"UPLINK_STORAGE_SECRET_KEY", "AWS_SECRET_ACCESS_KEY"},
		"storage.use_ssl":          {"UPLINK_STORAGE_USE_SSL"},
		"storage.credentials_file": {"UPLINK_STORAGE_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS"},
		"cdn.base_url":             {"UPLINK_CDN_BASE_URL", "CDN_URL"},
		"auth.mode":                {"UPLINK_AUTH_MODE"},
		"auth.jwt_secret":          {"UPLINK_AUTH_JWT_SECRET"},
		"auth.issuer":              {"UPLINK_AUTH_ISSUER"},
		"auth.static_token":        {"UPLINK_AUTH_STATIC_TOKEN"},
		"upload.encodings":         {"UPLINK_UPLOAD_ENCODINGS"},
		"cors.allowed_origins":     {"UPLINK_CORS_ALLOWED_ORIGINS", "FRONTEND_URL"},
		"log.level":                {"UPLINK_LOG_LEVEL"},
		"log.format":               {"UPLINK_LOG_FORMAT"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if UPLINK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("UPLINK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Storage = StorageConfig{
		Provider:        strings.ToLower(v.GetString("storage.provider")),
		Region:          v.GetString("storage.region"),
		Bucket:          v.GetString("storage.bucket"),
		Endpoint:        v.GetString("storage.endpoint"),
		AccessKey:       v.GetString("storage.access_key"),
		SecretKey:       v.GetString("storage.secret_key"),
		UseSSL:          v.GetBool("storage.use_ssl"),
		CredentialsFile: v.GetString("storage.credentials_file"),
	}
	cfg.CDN = CDNConfig{
		BaseURL: strings.TrimRight(v.GetString("cdn.base_url"), "/"),
	}
	cfg.Auth = AuthConfig{
		Mode:        strings.ToLower(v.GetString("auth.mode")),
		JWTSecret:   v.GetString("auth.jwt_secret"),
		Issuer:      v.GetString("auth.issuer"),
		StaticToken: v.GetString("auth.static_token"),
	}

	encodings, err := ParseEncodings(v.GetString("upload.encodings"))
	if err != nil {
		return nil, err
	}
	cfg.Upload = UploadConfig{Encodings: encodings}

	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	switch c.Storage.Provider {
	case ProviderS3, ProviderMinio, ProviderGCS:
	default:
		return fmt.Errorf("unknown storage provider: %q", c.Storage.Provider)
	}
	if c.Storage.Bucket == "" {
		return errors.New("storage bucket is required")
	}
	if c.Storage.Provider == ProviderMinio && c.Storage.Endpoint == "" {
		return errors.New("storage endpoint is required for minio")
	}
	if c.CDN.BaseURL == "" {
		return errors.New("cdn base url is required")
	}

	switch c.Auth.Mode {
	case AuthModeJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("auth jwt secret is required in jwt mode")
		}
	case AuthModeStatic:
		if c.Auth.StaticToken == "" {
			return errors.New("auth static token is required in static mode")
		}
		if c.Server.IsProduction() {
			slog.Warn("static token authentication is enabled in production")
		}
	default:
		return fmt.Errorf("unknown auth mode: %q", c.Auth.Mode)
	}

	if len(c.Upload.Encodings) == 0 {
		return errors.New("at least one upload encoding must be enabled")
	}
	return nil
}

// ParseEncodings parses a comma-separated list of upload encodings.
func ParseEncodings(s string) ([]domain.Encoding, error) {
	var out []domain.Encoding
	for _, name := range splitList(s) {
		e, ok := domain.ParseEncoding(name)
		if !ok {
			return nil, fmt.Errorf("unknown upload encoding: %q", name)
		}
		out = append(out, e)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
