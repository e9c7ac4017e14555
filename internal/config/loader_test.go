package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, BackendFile)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.MaxFiles != 10 {
		t.Errorf("MaxFiles = %d, want 10", cfg.Logging.MaxFiles)
	}
	if cfg.Logging.MaxAge != 7*24*time.Hour {
		t.Errorf("MaxAge = %s, want 168h", cfg.Logging.MaxAge)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage:
  backend: memory
  data_dir: /tmp/todo-data
logging:
  level: debug
  max_files: 3
  max_age: 24h
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, BackendMemory)
	}
	if cfg.Storage.DataDir != "/tmp/todo-data" {
		t.Errorf("DataDir = %q, want %q", cfg.Storage.DataDir, "/tmp/todo-data")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.MaxFiles != 3 {
		t.Errorf("MaxFiles = %d, want 3", cfg.Logging.MaxFiles)
	}
	if cfg.Logging.MaxAge != 24*time.Hour {
		t.Errorf("MaxAge = %s, want 24h", cfg.Logging.MaxAge)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage:
  backend: memory
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, BackendMemory)
	}
	if cfg.Logging.MaxFiles != 10 {
		t.Errorf("MaxFiles = %d, want default 10", cfg.Logging.MaxFiles)
	}
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage:
  backend: carrier-pigeon
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should reject an unknown backend")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error type = %T, want *LoadError", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load should fail on malformed YAML")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("TODO_STORAGE_BACKEND", "memory")
	t.Setenv("TODO_LOGGING_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage:
  backend: file
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Backend = %q, want env override %q", cfg.Storage.Backend, BackendMemory)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Level = %q, want env override %q", cfg.Logging.Level, "error")
	}
}

func TestWriteDefault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".todo", "config.yaml")

	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if written != path {
		t.Errorf("written path = %q, want %q", written, path)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of written default: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("written default should validate: %v", err)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, BackendFile)
	}
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if _, err := WriteDefault(path, false); err != nil {
		t.Fatalf("first WriteDefault: %v", err)
	}
	if _, err := WriteDefault(path, false); err == nil {
		t.Fatal("second WriteDefault without force should fail")
	}
	if _, err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault with force: %v", err)
	}
}
