// Package config provides configuration loading and management for the
// todo application.
package config

import (
	"fmt"
	"time"
)

// Backend selects the persistence backend.
type Backend string

const (
	// BackendFile persists snapshots to a JSON file.
	BackendFile Backend = "file"
	// BackendMemory keeps snapshots in process memory only.
	BackendMemory Backend = "memory"
)

// IsValid returns true if the backend is a known valid backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendFile, BackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation of the backend.
func (b Backend) String() string {
	return string(b)
}

// Config represents the complete configuration loaded from
// ~/.todo/config.yaml.
type Config struct {
	Storage StorageConfig `yaml:"storage" json:"storage" mapstructure:"storage"`
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// StorageConfig configures the persistence backend.
type StorageConfig struct {
	// Backend selects the persistence backend (default: file).
	Backend Backend `yaml:"backend" json:"backend" mapstructure:"backend"`
	// DataDir overrides the directory holding todos.json.
	// Empty means the per-user documents directory.
	DataDir string `yaml:"data_dir" json:"data_dir" mapstructure:"data_dir"`
}

// LoggingConfig configures the operational log.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error; default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir overrides the log directory. Empty means ~/.todo/logs.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// MaxFiles is the maximum number of log files to keep (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// MaxAge is the maximum age of log files before cleanup (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age" mapstructure:"max_age"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in defaults for any unset values.
func (c *Config) ApplyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.MaxFiles == 0 {
		c.Logging.MaxFiles = 10
	}
	if c.Logging.MaxAge == 0 {
		c.Logging.MaxAge = 7 * 24 * time.Hour
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if !c.Storage.Backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %q (must be %q or %q)",
			c.Storage.Backend, BackendFile, BackendMemory)
	}
	if c.Logging.MaxFiles < 0 {
		return fmt.Errorf("logging max_files must not be negative: %d", c.Logging.MaxFiles)
	}
	if c.Logging.MaxAge < 0 {
		return fmt.Errorf("logging max_age must not be negative: %s", c.Logging.MaxAge)
	}
	return nil
}
