package storage

import (
	"github.com/wexinc/todo/internal/todo"
)

// MemoryStore keeps the most recently saved snapshot in process memory.
// Nothing survives a restart; it serves as the session-only backend and
// as a test double for FileStore.
type MemoryStore struct {
	todos []todo.Todo
}

// NewMemoryStore creates a MemoryStore holding an empty snapshot.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos: []todo.Todo{},
	}
}

// Save replaces the held snapshot.
func (s *MemoryStore) Save(todos []todo.Todo) {
	s.todos = make([]todo.Todo, len(todos))
	copy(s.todos, todos)
}

// Load returns the held snapshot. ok is always true; before any save the
// snapshot is empty, not absent.
func (s *MemoryStore) Load() ([]todo.Todo, bool) {
	snapshot := make([]todo.Todo, len(s.todos))
	copy(snapshot, s.todos)
	return snapshot, true
}
