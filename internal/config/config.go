package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// UploadConfig controls bootcamp photo uploads.
type UploadConfig struct {
	// Driver selects the storage sink: "local" writes under Path, "minio" uses MinIOConfig.
	Driver   string
	Path     string
	MaxBytes int64
}

// GeocoderConfig configures the postal code / address geocoding client.
type GeocoderConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	Retries  int
}

// LogConfig configures the global zerolog logger.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once and passed to constructors.
type AppConfig struct {
	Env            string
	Port           string
	RequestTimeout time.Duration
	Database       DatabaseConfig
	MinIO          MinIOConfig
	Upload         UploadConfig
	Geocoder       GeocoderConfig
	Log            LogConfig
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() *AppConfig {
	env := getEnv("APP_ENV", getEnv("NODE_ENV", "development"))

	logFormat := "json"
	if env == "development" {
		logFormat = "console"
	}

	return &AppConfig{
		Env:            env,
		Port:           getEnv("PORT", "5000"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 15)) * time.Second,
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Upload: UploadConfig{
			Driver:   getEnv("STORAGE_DRIVER", "local"),
			Path:     getEnv("FILE_UPLOAD_PATH", "./public/uploads"),
			MaxBytes: getEnvInt64("MAX_FILE_UPLOAD", 1000000),
		},
		Geocoder: GeocoderConfig{
			Provider: getEnv("GEOCODER_PROVIDER", "mapquest"),
			APIKey:   getEnv("GEOCODER_API_KEY", ""),
			BaseURL:  getEnv("GEOCODER_BASE_URL", "https://www.mapquestapi.com"),
			Timeout:  time.Duration(getEnvInt("GEOCODER_TIMEOUT_SEC", 5)) * time.Second,
			Retries:  getEnvInt("GEOCODER_RETRIES", 2),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", logFormat),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil && i > 0 {
			return i
		}
	}
	return def
}
