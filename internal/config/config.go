package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

// DatabaseConfig holds PostgreSQL settings for the document archive.
type DatabaseConfig struct {
	// URL, when set, replaces the discrete connection fields below.
	URL string

	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int

	// ConnectAttempts bounds the startup pings while Postgres comes up.
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

// MinIOConfig holds object storage settings for archived PDFs.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// PDFConfig holds metadata stamped into every generated document.
type PDFConfig struct {
	Author  string
	Creator string
	// OwnerPassword unlocks protected payslips with full permissions.
	OwnerPassword string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost         string
	Port            string
	TimeZone        string
	LogLevel        string
	BodyLimitBytes  int
	ShutdownTimeout time.Duration
	PDF             PDFConfig
	Database        DatabaseConfig
	MinIO           MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:         getEnv("APP_HOST", "localhost:8080"),
		Port:            getEnv("PORT", "8080"),
		TimeZone:        getEnv("TZ_NAME", "UTC"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		BodyLimitBytes:  getEnvInt("BODY_LIMIT_BYTES", 4*1024*1024),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT_SEC", 10*time.Second),
		PDF: PDFConfig{
			Author:        getEnv("PDF_AUTHOR", "docgen"),
			Creator:       getEnv("PDF_CREATOR", "docgen"),
			OwnerPassword: getEnv("PDF_OWNER_PASSWORD", ""),
		},
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			ConnectAttempts:    getEnvInt("DB_CONNECT_ATTEMPTS", 5),
			ConnectBackoff:     getEnvDuration("DB_CONNECT_BACKOFF_SEC", time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "documents"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// ArchiveEnabled reports whether both the archive database and object
// storage are configured. Generation works without them.
func (c *AppConfig) ArchiveEnabled() bool {
	return (c.Database.URL != "" || c.Database.Host != "") && c.MinIO.Endpoint != ""
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
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

// getEnvDuration reads a whole number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		s, err := strconv.Atoi(v)
		if err == nil && s > 0 {
			return time.Duration(s) * time.Second
		}
	}
	return def
}
