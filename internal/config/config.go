package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	Env         string
	Port        string
	PostgresURL string
	JWTSecret   string
	AppBaseURL  string
	CORSOrigins []string

	Storage StorageConfig
	Media   MediaConfig
}

type StorageConfig struct {
	Driver    string
	UploadDir string

	S3Bucket   string
	S3Region   string
	S3Endpoint string
	S3Prefix   string
}

type MediaConfig struct {
	MaxUploadBytes int64
	MaxDimension   int
	JPEGQuality    int
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:         getEnvWithDefault("APP_ENV", "production"),
		Port:        getEnvWithDefault("PORT", "8080"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AppBaseURL:  strings.TrimRight(getEnvWithDefault("APP_BASE_URL", "http://localhost:3000"), "/"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		Storage: StorageConfig{
			Driver:     strings.ToLower(getEnvWithDefault("STORAGE_DRIVER", StorageLocal)),
			UploadDir:  getEnvWithDefault("UPLOAD_DIR", "./uploads"),
			S3Bucket:   os.Getenv("S3_BUCKET"),
			S3Region:   getEnvWithDefault("S3_REGION", "us-east-1"),
			S3Endpoint: os.Getenv("S3_ENDPOINT"),
			S3Prefix:   os.Getenv("S3_PREFIX"),
		},
	}

	var err error
	if cfg.Media.MaxUploadBytes, err = getInt64("MAX_UPLOAD_BYTES", 10*1024*1024); err != nil {
		return nil, err
	}
	maxDim, err := getInt64("MAX_DIMENSION", 2048)
	if err != nil {
		return nil, err
	}
	quality, err := getInt64("JPEG_QUALITY", 85)
	if err != nil {
		return nil, err
	}
	cfg.Media.MaxDimension = int(maxDim)
	cfg.Media.JPEGQuality = int(quality)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Media.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.Media.MaxDimension <= 0 {
		return fmt.Errorf("MAX_DIMENSION must be positive")
	}
	if c.Media.JPEGQuality < 1 || c.Media.JPEGQuality > 100 {
		return fmt.Errorf("JPEG_QUALITY must be between 1 and 100")
	}
	switch c.Storage.Driver {
	case StorageLocal:
	case StorageS3:
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q: use 'local' or 's3'", c.Storage.Driver)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
