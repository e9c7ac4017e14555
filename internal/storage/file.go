package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/todo"
)

// SnapshotFilename is the fixed file name for the persisted snapshot.
const SnapshotFilename = "todos.json"

// FileStore persists snapshots as a JSON file in the user's documents
// directory, or in an explicitly configured directory.
//
// The target path is re-resolved on every call rather than cached, so a
// home directory that appears mid-session is picked up. Writes go through
// a temp file in the same directory followed by a rename, so a reader
// never observes a partially written snapshot.
type FileStore struct {
	dataDir string
	logger  *logging.Logger
}

// NewFileStore creates a FileStore that writes to the per-user documents
// directory. A nil logger falls back to the global logger.
func NewFileStore(logger *logging.Logger) *FileStore {
	return NewFileStoreInDir("", logger)
}

// NewFileStoreInDir creates a FileStore that writes to the given
// directory. An empty dir means the per-user documents directory.
func NewFileStoreInDir(dir string, logger *logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.Global()
	}
	return &FileStore{
		dataDir: dir,
		logger:  logger,
	}
}

// Save persists the snapshot. Failures degrade to a no-op; the cause is
// written to the operational log.
func (s *FileStore) Save(todos []todo.Todo) {
	if err := s.save(todos); err != nil {
		s.logger.Error("snapshot save failed", "error", err)
	}
}

// Load reads the persisted snapshot. An absent, unreadable, or malformed
// file yields ok=false; read and parse failures are logged.
func (s *FileStore) Load() ([]todo.Todo, bool) {
	todos, err := s.load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Error("snapshot load failed", "error", err)
		}
		return nil, false
	}
	return todos, true
}

// path resolves the snapshot file path. Never cached.
func (s *FileStore) path() (string, error) {
	dir := s.dataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", apperrors.NewStorageError("resolve", "", err)
		}
		dir = filepath.Join(home, "Documents")
	}
	return filepath.Join(dir, SnapshotFilename), nil
}

func (s *FileStore) save(todos []todo.Todo) error {
	path, err := s.path()
	if err != nil {
		return err
	}

	// A nil slice would serialize as JSON null; persist an empty snapshot
	// as an empty array instead.
	if todos == nil {
		todos = []todo.Todo{}
	}

	data, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("save", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("save", path, err)
	}

	tmp, err := os.CreateTemp(dir, SnapshotFilename+".tmp-*")
	if err != nil {
		return apperrors.NewStorageError("save", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperrors.NewStorageError("save", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewStorageError("save", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewStorageError("save", path, err)
	}

	s.logger.Debug("snapshot saved", "path", path, "todos", len(todos))
	return nil
}

func (s *FileStore) load() ([]todo.Todo, error) {
	path, err := s.path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no snapshot at %s: %w", path, os.ErrNotExist)
		}
		return nil, apperrors.NewStorageError("load", path, err)
	}

	var todos []todo.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, apperrors.NewStorageError("load", path, err)
	}

	s.logger.Debug("snapshot loaded", "path", path, "todos", len(todos))
	return todos, nil
}
