package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Detect   DetectConfig
	Sysb     SysbConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds text-recognition configuration
type OCRConfig struct {
	Tesseract        string
	TesseractLang    string
	TessdataDir      string
	ArtifactCacheDir string
}

// DetectConfig holds label-detection API configuration.
// An empty APIKey disables remote detection; scans fall back to the
// full uncropped image.
type DetectConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// SysbConfig holds Systembolaget product-search configuration.
// An empty APIKey disables catalog search.
type SysbConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// IngestConfig holds photo-inbox configuration
type IngestConfig struct {
	WatchRoots []string
	Debounce   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Tesseract:        getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang:    getEnv("TESSERACT_LANG", "swe+eng"),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		Detect: DetectConfig{
			BaseURL: getEnv("ROBOFLOW_BASE_URL", "https://detect.roboflow.com"),
			Model:   getEnv("ROBOFLOW_MODEL", "wine-label/1"),
			APIKey:  getEnv("ROBOFLOW_API_KEY", ""),
			Timeout: getEnvAsDuration("ROBOFLOW_TIMEOUT", 15*time.Second),
		},
		Sysb: SysbConfig{
			BaseURL: getEnv("SYSTEMBOLAGET_BASE_URL", "https://api.systembolaget.se/api"),
			APIKey:  getEnv("SYSTEMBOLAGET_API_KEY", ""),
			Timeout: getEnvAsDuration("SYSTEMBOLAGET_TIMEOUT", 10*time.Second),
		},
		Ingest: IngestConfig{
			WatchRoots: splitNonEmpty(getEnv("INGEST_WATCH_ROOTS", "")),
			Debounce:   getEnvAsDuration("INGEST_DEBOUNCE", 2*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitNonEmpty(csv string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(csv); i++ {
		if i == len(csv) || csv[i] == ',' {
			if s := csv[start:i]; s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	return out
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
