package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Security SecurityConfig
	Logging  LoggingConfig

	Environment    string
	SeedSampleData bool
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	// Path to the sqlite database file. ":memory:" is accepted for tests.
	Path string
	// DataDir holds everything outside the entity store, e.g. the
	// preferences file.
	DataDir string
	// SchemaVersion the binary expects; a stored mismatch drops the data.
	SchemaVersion int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type LoggingConfig struct {
	Level string
}

// SchemaVersion is bumped whenever the entity schema changes shape. There is
// no row migration: old data is dropped and the store recreated.
const SchemaVersion = 4

func Load() *Config {
	// A .env file is optional; real env vars win.
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", defaultDataDir())

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Path:          getEnv("DB_PATH", filepath.Join(dataDir, "finance.db")),
			DataDir:       dataDir,
			SchemaVersion: getIntEnv("DB_SCHEMA_VERSION", SchemaVersion),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Environment:    getEnv("APP_ENV", "development"),
		SeedSampleData: getBoolEnv("SEED_SAMPLE_DATA", false),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "finance-tracker")
	}
	return "."
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
