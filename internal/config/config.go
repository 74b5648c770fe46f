// Package config loads runtime settings from configs/.env and the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the full process configuration.
type Config struct {
	Port           string
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	SQLitePath     string
	MatchTolerance decimal.Decimal
	CORSOrigins    []string
	LogLevel       slog.Level
	LogFormat      string
	KnownVendors   []string
}

// Load reads envFile (when present) and then the process environment.
// A missing env file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			slog.Debug("no env file loaded", "path", envFile, "error", err)
		}
	}

	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DBDriver:    strings.ToLower(getenv("DB_DRIVER", DriverSQLite)),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  getenv("DB_PASSWORD", "postgres"),
		DBName:      getenv("DB_NAME", "postgres"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),
		SQLitePath:  getenv("SQLITE_PATH", "buyit_hub.db"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		LogFormat:   strings.ToLower(getenv("LOG_FORMAT", "json")),
	}
	cfg.KnownVendors = splitList(getenv("KNOWN_VENDORS", "Figma,Microsoft,Amazon Business,Dell,Adobe,Google"))

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	tolerance, err := decimal.NewFromString(getenv("MATCH_TOLERANCE", "50"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid MATCH_TOLERANCE: %w", err)
	}
	if tolerance.IsNegative() {
		return Config{}, fmt.Errorf("MATCH_TOLERANCE must not be negative, got %s", tolerance)
	}
	cfg.MatchTolerance = tolerance

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return Config{}, fmt.Errorf("unsupported LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

// PostgresDSN builds the connection URL for the postgres driver.
func (c Config) PostgresDSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// NewLogger builds the root structured logger.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
