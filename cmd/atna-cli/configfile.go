package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/persistorai/atna/internal/config"
	"github.com/persistorai/atna/internal/models"
)

// configProfile holds defaults for a single profile.
type configProfile struct {
	SystemName     string `yaml:"system_name"`
	Hostname       string `yaml:"hostname"`
	Format         string `yaml:"format"`
	Indent         *int   `yaml:"indent"`
	XMLDeclaration *bool  `yaml:"xml_declaration"`
}

type configFile struct {
	// Flat format
	configProfile `yaml:",inline"`
	// Profile format
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".atna", "config.yaml"), nil
}

func loadConfigFile() (string, *configFile, error) {
	cfgPath, err := configPath()
	if err != nil {
		return "", nil, err
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfgPath, nil, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfgPath, nil, err
	}
	return cfgPath, &cfg, nil
}

// resolve merges the named profile (or the active one, or "default") over
// the flat settings.
func (f *configFile) resolve(name string) configProfile {
	out := f.configProfile
	if f.Profiles == nil {
		return out
	}

	if name == "" {
		name = f.ActiveProfile
	}
	if name == "" {
		name = "default"
	}

	p, ok := f.Profiles[name]
	if !ok {
		return out
	}
	if p.SystemName != "" {
		out.SystemName = p.SystemName
	}
	if p.Hostname != "" {
		out.Hostname = p.Hostname
	}
	if p.Format != "" {
		out.Format = p.Format
	}
	if p.Indent != nil {
		out.Indent = p.Indent
	}
	if p.XMLDeclaration != nil {
		out.XMLDeclaration = p.XMLDeclaration
	}

	return out
}

// applyConfigFile fills settings whose environment variable is unset.
func applyConfigFile(cfg *config.Config, p configProfile) {
	if os.Getenv("ATNA_SYSTEM_NAME") == "" && p.SystemName != "" {
		cfg.SystemName = p.SystemName
	}
	if os.Getenv("ATNA_HOSTNAME") == "" && p.Hostname != "" {
		cfg.Hostname = p.Hostname
	}
	if os.Getenv("ATNA_FORMAT") == "" && p.Format != "" {
		if f, err := models.ParseFormat(p.Format); err == nil {
			cfg.Format = f
		} else {
			cfg.Format = models.Format(p.Format)
		}
	}
	if os.Getenv("ATNA_INDENT") == "" && p.Indent != nil {
		cfg.Indent = *p.Indent
	}
	if os.Getenv("ATNA_XML_DECLARATION") == "" && p.XMLDeclaration != nil {
		cfg.XMLDeclaration = *p.XMLDeclaration
	}
}
