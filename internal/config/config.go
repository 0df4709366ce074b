package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Config represents the donations configuration stored in .donations/config.yaml
type Config struct {
	Version  string `yaml:"version"`
	DataFile string `yaml:"data_file,omitempty"` // CSV-like donations file; relative paths resolve against the config dir
	AuditDB  string `yaml:"audit_db,omitempty"`  // sqlite audit trail; empty disables auditing
}

// Path returns the config file path for dir.
func Path(dir string) string {
	return filepath.Join(dir, ".donations", "config.yaml")
}

// LoadConfig reads .donations/config.yaml from the specified directory.
// Resolution order: dir only (no home fallback).
// A missing file returns an error matching os.ErrNotExist.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.DataFile = resolve(dir, cfg.DataFile)
	cfg.AuditDB = resolve(dir, cfg.AuditDB)
	return &cfg, nil
}

// LoadOrDefault is LoadConfig, but a missing config yields an empty Config.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{Version: CurrentVersion}, nil
	}
	return cfg, err
}

// SaveConfig writes config.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	configDir := filepath.Dir(Path(dir))
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create .donations dir: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
