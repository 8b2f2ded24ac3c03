// Package config loads service configuration from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds top-level configuration groups.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Export    ExportConfig    `mapstructure:"export"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig controls application logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // "info", "debug", etc.
	Format string `mapstructure:"format"` // "json" or "text"
}

// RateLimitConfig controls per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	ExportLimit     int           `mapstructure:"export_limit"`
	ExportWindow    time.Duration `mapstructure:"export_window"`
	ExportBurst     int           `mapstructure:"export_burst"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

// ExportConfig controls document rendering.
type ExportConfig struct {
	LegacyHeadings bool  `mapstructure:"legacy_headings"`
	MaxBodyBytes   int64 `mapstructure:"max_body_bytes"`
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"server.port":                 "PORT",
	"server.read_timeout":         "SERVER_READ_TIMEOUT",
	"server.write_timeout":        "SERVER_WRITE_TIMEOUT",
	"server.shutdown_timeout":     "SERVER_SHUTDOWN_TIMEOUT",
	"jwt.secret":                  "JWT_SECRET",
	"jwt.expiration_hours":        "JWT_EXPIRATION_HOURS",
	"logging.level":               "LOG_LEVEL",
	"logging.format":              "LOG_FORMAT",
	"rate_limit.enabled":          "RATE_LIMIT_ENABLED",
	"rate_limit.default_limit":    "RATE_LIMIT_DEFAULT_LIMIT",
	"rate_limit.default_window":   "RATE_LIMIT_DEFAULT_WINDOW",
	"rate_limit.export_limit":     "RATE_LIMIT_EXPORT_LIMIT",
	"rate_limit.export_window":    "RATE_LIMIT_EXPORT_WINDOW",
	"rate_limit.export_burst":     "RATE_LIMIT_EXPORT_BURST",
	"rate_limit.cleanup_interval": "RATE_LIMIT_CLEANUP_INTERVAL",
	"rate_limit.whitelist":        "RATE_LIMIT_WHITELIST",
	"rate_limit.blacklist":        "RATE_LIMIT_BLACKLIST",
	"export.legacy_headings":      "EXPORT_LEGACY_HEADINGS",
	"export.max_body_bytes":       "EXPORT_MAX_BODY_BYTES",
}

// Load reads configuration from environment variables and, when path is
// set, from that file. Without a path, a "config.yaml" in the working
// directory or ./configs is used if present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.RateLimit.Whitelist = splitList(cfg.RateLimit.Whitelist)
	cfg.RateLimit.Blacklist = splitList(cfg.RateLimit.Blacklist)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("jwt.expiration_hours", 24)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", "1m")
	v.SetDefault("rate_limit.export_limit", 30)
	v.SetDefault("rate_limit.export_window", "1m")
	v.SetDefault("rate_limit.export_burst", 5)
	v.SetDefault("rate_limit.cleanup_interval", "5m")

	v.SetDefault("export.legacy_headings", false)
	v.SetDefault("export.max_body_bytes", 1<<20)
}

// Validate checks values that do not depend on which command runs. JWT
// settings are checked separately by commands that sign or verify tokens.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Export.MaxBodyBytes < 1 {
		return fmt.Errorf("EXPORT_MAX_BODY_BYTES must be positive, got: %d", c.Export.MaxBodyBytes)
	}
	format := strings.ToLower(c.Logging.Format)
	if format != "json" && format != "text" {
		return fmt.Errorf("LOG_FORMAT must be \"json\" or \"text\", got: %q", c.Logging.Format)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.DefaultWindow <= 0 || c.RateLimit.ExportWindow <= 0 {
			return fmt.Errorf("rate limit windows must be positive")
		}
	}
	return nil
}

// splitList flattens comma-separated entries and drops blanks.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
