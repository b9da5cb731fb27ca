package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Queue      QueueConfig
	Storage    StorageConfig
	Extraction ExtractionConfig
	Dispatch   DispatchConfig
	Worker     WorkerConfig
	Poller     PollerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" or "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// QueueConfig holds work-queue (Redis) configuration
type QueueConfig struct {
	Addr        string
	Password    string
	DB          int
	Namespace   string
	DialTimeout time.Duration
}

// StorageConfig holds object-storage configuration
type StorageConfig struct {
	Backend  string // "local" or "memory"
	BasePath string
}

// ExtractionConfig holds archive-extraction configuration
type ExtractionConfig struct {
	WorkDir      string
	ExtractedDir string
	MaxDepth     int
	Extensions   []string // empty -> constants.SupportedExtensions
}

// DispatchConfig holds job-dispatch configuration
type DispatchConfig struct {
	Concurrency int
	MaxAttempts int
	RetryDelay  time.Duration
}

// WorkerConfig holds external extraction-worker configuration
type WorkerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PollerConfig holds batch status-poller configuration
type PollerConfig struct {
	Interval time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "postgres"),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Queue: QueueConfig{
			Addr:        getEnv("REDIS_ADDR", "localhost:6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvAsInt("REDIS_DB", 0),
			Namespace:   getEnv("QUEUE_NAMESPACE", "tenderbatch"),
			DialTimeout: getEnvAsDuration("REDIS_DIAL_TIMEOUT", 3*time.Second),
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", "local"),
			BasePath: getEnv("STORAGE_BASE_PATH", "./data"),
		},
		Extraction: ExtractionConfig{
			WorkDir:      getEnv("EXTRACTION_WORK_DIR", "./tmp/extract"),
			ExtractedDir: getEnv("EXTRACTION_DIR_NAME", "extracted"),
			MaxDepth:     getEnvAsInt("EXTRACTION_MAX_DEPTH", 3),
			Extensions:   getEnvAsList("EXTRACTION_EXTENSIONS", nil),
		},
		Dispatch: DispatchConfig{
			Concurrency: getEnvAsInt("DISPATCH_CONCURRENCY", 3),
			MaxAttempts: getEnvAsInt("DISPATCH_MAX_ATTEMPTS", 3),
			RetryDelay:  getEnvAsDuration("DISPATCH_RETRY_DELAY", 30*time.Second),
		},
		Worker: WorkerConfig{
			BaseURL: getEnv("WORKER_URL", "http://localhost:9090"),
			Timeout: getEnvAsDuration("WORKER_TIMEOUT", 5*time.Minute),
		},
		Poller: PollerConfig{
			Interval: getEnvAsDuration("POLLER_INTERVAL", 15*time.Second),
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

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
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

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Queue.Addr == "" {
		return NewAppError("CONFIG_ERROR", "REDIS_ADDR is required", ErrInvalidInput)
	}
	if c.Storage.Backend != "local" && c.Storage.Backend != "memory" {
		return NewAppError("CONFIG_ERROR", "STORAGE_BACKEND must be local or memory", ErrInvalidInput)
	}
	if c.Dispatch.Concurrency < 1 {
		return NewAppError("CONFIG_ERROR", "DISPATCH_CONCURRENCY must be at least 1", ErrInvalidInput)
	}
	if c.Dispatch.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "DISPATCH_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	return nil
}
