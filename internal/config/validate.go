package config

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/atna/internal/models"
)

const maxNameLen = 255

// Validate checks the configuration. Load calls it; callers that modify a
// loaded Config (flag overrides) should call it again.
func (c *Config) Validate() error {
	if err := c.validateIdentity(); err != nil {
		return err
	}

	if err := c.validateOutput(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateIdentity() error {
	if len(c.SystemName) > maxNameLen {
		return fmt.Errorf("ATNA_SYSTEM_NAME exceeds maximum length of %d", maxNameLen)
	}

	if len(c.Hostname) > maxNameLen {
		return fmt.Errorf("ATNA_HOSTNAME exceeds maximum length of %d", maxNameLen)
	}

	return nil
}

func (c *Config) validateOutput() error {
	if _, err := models.ParseFormat(string(c.Format)); err != nil {
		return fmt.Errorf("ATNA_FORMAT: %w", err)
	}

	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("ATNA_INDENT must be between 0 and 8")
	}

	if c.Workers < 1 || c.Workers > 16 {
		return fmt.Errorf("ATNA_WORKERS must be an integer between 1 and 16")
	}

	if c.MetricsFile != "" && filepath.Ext(c.MetricsFile) != ".prom" {
		return fmt.Errorf("ATNA_METRICS_FILE must end in .prom, got %q", c.MetricsFile)
	}

	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got %q", c.LogFormat)
	}

	return nil
}
