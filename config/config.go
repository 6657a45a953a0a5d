package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultHTTPAddr    = ":8080"
	DefaultDatabaseURL = "user=postgres password=postgres dbname=postgres sslmode=disable"
	DefaultMaxUploadMB = 10
)

type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	JWTSecret      string
	MaxUploadMB    int64
	LogLevel       string
	LogFormat      string
	AdminRateLimit float64
	AdminRateBurst int
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("http_addr", DefaultHTTPAddr)
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("jwt_secret", "")
	v.SetDefault("max_upload_mb", DefaultMaxUploadMB)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("admin_rate_limit", 5.0)
	v.SetDefault("admin_rate_burst", 10)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		HTTPAddr:       v.GetString("http_addr"),
		DatabaseURL:    v.GetString("database_url"),
		JWTSecret:      v.GetString("jwt_secret"),
		MaxUploadMB:    v.GetInt64("max_upload_mb"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		AdminRateLimit: v.GetFloat64("admin_rate_limit"),
		AdminRateBurst: v.GetInt("admin_rate_burst"),
	}

	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}
	return cfg, nil
}

// Validate checks the settings only the HTTP server needs.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AdminRateLimit <= 0 || c.AdminRateBurst <= 0 {
		return errors.New("ADMIN_RATE_LIMIT and ADMIN_RATE_BURST must be positive")
	}
	return nil
}

func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// ConfigureLogging applies level and format to the standard logrus logger.
func (c *Config) ConfigureLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
