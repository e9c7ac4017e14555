package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/todo"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStoreInDir(t.TempDir(), logging.NewNoop())

	todos := []todo.Todo{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second", IsCompleted: true},
		{ID: "c", Title: "first"}, // duplicate titles are fine
	}
	s.Save(todos)

	loaded, ok := s.Load()
	if !ok {
		t.Fatal("Load after Save should report a snapshot")
	}
	if len(loaded) != len(todos) {
		t.Fatalf("loaded %d todos, want %d", len(loaded), len(todos))
	}
	for i := range todos {
		if loaded[i] != todos[i] {
			t.Errorf("todo %d = %+v, want %+v", i, loaded[i], todos[i])
		}
	}
}

func TestFileStore_RoundTrip_Empty(t *testing.T) {
	s := NewFileStoreInDir(t.TempDir(), logging.NewNoop())

	s.Save([]todo.Todo{})

	loaded, ok := s.Load()
	if !ok {
		t.Fatal("Load after saving an empty snapshot should report ok")
	}
	if len(loaded) != 0 {
		t.Errorf("loaded %d todos, want 0", len(loaded))
	}
}

func TestFileStore_Load_NoFile(t *testing.T) {
	s := NewFileStoreInDir(t.TempDir(), logging.NewNoop())

	if _, ok := s.Load(); ok {
		t.Error("Load with no saved snapshot should report absent")
	}
}

func TestFileStore_Load_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SnapshotFilename), []byte("{not json"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	s := NewFileStoreInDir(dir, logging.NewNoop())
	if _, ok := s.Load(); ok {
		t.Error("Load of a malformed file should report absent")
	}
}

func TestFileStore_Save_Overwrites(t *testing.T) {
	s := NewFileStoreInDir(t.TempDir(), logging.NewNoop())

	s.Save([]todo.Todo{{ID: "a", Title: "old"}})
	s.Save([]todo.Todo{{ID: "b", Title: "new"}})

	loaded, ok := s.Load()
	if !ok {
		t.Fatal("Load should report a snapshot")
	}
	if len(loaded) != 1 || loaded[0].Title != "new" {
		t.Errorf("loaded = %+v, want only the new snapshot", loaded)
	}
}

func TestFileStore_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStoreInDir(dir, logging.NewNoop())

	s.Save([]todo.Todo{{ID: "a", Title: "x"}})
	s.Save([]todo.Todo{{ID: "a", Title: "y"}})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file %q left behind", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected only %s in the data dir, got %d entries", SnapshotFilename, len(entries))
	}
}

func TestFileStore_Save_NilSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStoreInDir(dir, logging.NewNoop())

	s.Save(nil)

	data, err := os.ReadFile(filepath.Join(dir, SnapshotFilename))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if strings.TrimSpace(string(data)) == "null" {
		t.Error("nil snapshot should be written as an empty array, not null")
	}

	loaded, ok := s.Load()
	if !ok {
		t.Fatal("Load should report a snapshot")
	}
	if len(loaded) != 0 {
		t.Errorf("loaded %d todos, want 0", len(loaded))
	}
}

func TestFileStore_Save_UnwritableDir(t *testing.T) {
	// Pointing the store at a file path makes directory creation fail;
	// the failure must degrade to a logged no-op, not a panic or error.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	s := NewFileStoreInDir(filepath.Join(blocker, "sub"), logging.NewNoop())
	s.Save([]todo.Todo{{ID: "a", Title: "x"}})

	if _, ok := s.Load(); ok {
		t.Error("Load after a failed save should report absent")
	}
}
