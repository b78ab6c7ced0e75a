// Package config provides environment-driven configuration for the audit message builder.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/persistorai/atna/internal/models"
	"github.com/persistorai/atna/xmltree"
)

// Config holds all application configuration values.
type Config struct {
	SystemName     string
	Hostname       string
	Format         models.Format
	Indent         int
	XMLDeclaration bool
	Workers        int
	LogLevel       string
	LogFormat      string
	MetricsFile    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		SystemName:     envOrDefault("ATNA_SYSTEM_NAME", ""),
		Hostname:       envOrDefault("ATNA_HOSTNAME", defaultHostname()),
		XMLDeclaration: envOrDefault("ATNA_XML_DECLARATION", "false") == "true",
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "text"),
		MetricsFile:    envOrDefault("ATNA_METRICS_FILE", ""),
	}

	format, err := models.ParseFormat(envOrDefault("ATNA_FORMAT", "xml"))
	if err != nil {
		return nil, fmt.Errorf("ATNA_FORMAT: %w", err)
	}
	cfg.Format = format

	indent, err := strconv.Atoi(envOrDefault("ATNA_INDENT", "4"))
	if err != nil {
		return nil, fmt.Errorf("ATNA_INDENT must be a valid integer: %w", err)
	}
	cfg.Indent = indent

	workers, err := strconv.Atoi(envOrDefault("ATNA_WORKERS", "4"))
	if err != nil || workers < 1 || workers > 16 {
		return nil, fmt.Errorf("ATNA_WORKERS must be an integer between 1 and 16")
	}
	cfg.Workers = workers

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// RenderOptions returns the XML renderer settings.
func (c *Config) RenderOptions() xmltree.RenderOptions {
	return xmltree.RenderOptions{Indent: c.Indent, Declaration: c.XMLDeclaration}
}

func defaultHostname() string {
	h, err := os.Hostname()
	if err != nil {
		return ""
	}

	return h
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
