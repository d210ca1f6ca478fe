package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnv        = "development"
	defaultDBPath     = "./dev.db"
	defaultPort       = "8080"
	defaultLogLevel   = "INFO"
	defaultPDFTimeout = 15 * time.Second
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env          string
	DBPath       string
	Port         string
	LogLevel     string
	ChromiumPath string
	PDFTimeout   time.Duration
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// Variables already present in the environment win over the file.
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("ignoring .env file", "error", err)
	}

	cfg := Config{
		Env:          os.Getenv("APP_ENV"),
		DBPath:       os.Getenv("DB_PATH"),
		Port:         os.Getenv("PORT"),
		LogLevel:     strings.ToUpper(os.Getenv("LOG_LEVEL")),
		ChromiumPath: os.Getenv("CHROMIUM_PATH"),
		PDFTimeout:   defaultPDFTimeout,
	}

	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if raw := os.Getenv("PDF_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			slog.Warn("invalid PDF_TIMEOUT, using default", "value", raw, "default", defaultPDFTimeout)
		} else {
			cfg.PDFTimeout = d
		}
	}

	return cfg
}

// IsDev reports whether the app runs in local development mode.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv || c.Env == "dev"
}

// SlogLevel maps LogLevel to a slog level; unknown values mean INFO.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
