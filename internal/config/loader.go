package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the per-user directory holding the config file.
	DefaultConfigDir = ".todo"
	// DefaultConfigFilename is the config file name inside DefaultConfigDir.
	DefaultConfigFilename = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "TODO"
)

// DefaultConfigPath returns the default config file path
// (~/.todo/config.yaml). Falls back to a relative path when the home
// directory cannot be resolved.
func DefaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, DefaultConfigDir, DefaultConfigFilename)
	}
	return filepath.Join(DefaultConfigDir, DefaultConfigFilename)
}

// LoadError describes a configuration loading failure.
type LoadError struct {
	// Path is the config file path that failed to load.
	Path string
	// Message describes what went wrong.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Path)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies
// defaults, and validates the result. If path is empty, the default
// per-user config path is used. A missing config file is not an error:
// the defaults are returned unchanged.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// AutomaticEnv only covers keys present in the file, so the known settings
// are checked explicitly.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = Backend(v)
	}
	if v := os.Getenv(EnvPrefix + "_STORAGE_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
}

// WriteDefault writes a default config file to the given path, creating
// parent directories as needed. If path is empty, the default per-user
// config path is used. Returns the path written and an error, if any.
// An existing file is not overwritten unless force is set.
func WriteDefault(path string, force bool) (string, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, &LoadError{
				Path:    path,
				Message: "config file already exists (use --force to overwrite)",
			}
		}
	}

	// Durations are rendered as strings ("168h0m0s"), which the duration
	// decode hook parses back; yaml.Marshal on time.Duration would emit
	// raw nanoseconds.
	def := NewConfig()
	doc := map[string]any{
		"storage": map[string]any{
			"backend":  def.Storage.Backend.String(),
			"data_dir": def.Storage.DataDir,
		},
		"logging": map[string]any{
			"level":     def.Logging.Level,
			"dir":       def.Logging.Dir,
			"max_files": def.Logging.MaxFiles,
			"max_age":   def.Logging.MaxAge.String(),
		},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return path, &LoadError{
			Path:    path,
			Message: "failed to render default config",
			Err:     err,
		}
	}

	header := "# todo configuration.\n" +
		"# storage.backend: \"file\" (persist to todos.json) or \"memory\" (session only).\n" +
		"# storage.data_dir: directory for todos.json; empty means ~/Documents.\n\n"

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, &LoadError{
			Path:    path,
			Message: "failed to create config directory",
			Err:     err,
		}
	}
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return path, &LoadError{
			Path:    path,
			Message: "failed to write config file",
			Err:     err,
		}
	}

	return path, nil
}

// Load is a convenience function that creates a new Loader and loads
// configuration. If path is empty, it uses the default per-user path.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// viperDecodeHook configures the mapstructure decoder used by viper.
// It composes the standard duration hook with the Backend string hook.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToBackendHookFunc(),
	)
}

// stringToBackendHookFunc converts string config values to Backend.
func stringToBackendHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(Backend("")) {
			return data, nil
		}
		return Backend(data.(string)), nil
	}
}
