// Package storage provides pluggable persistence backends for todo
// snapshots. A snapshot is the complete ordered todo list, saved and
// loaded as a single unit.
package storage

import (
	"github.com/wexinc/todo/internal/todo"
)

// Store is the capability contract every persistence backend implements.
// The concrete backend is chosen at construction time; see FileStore and
// MemoryStore.
//
// Failures never propagate to callers: a failed Save degrades to a no-op
// and a failed Load reports an absent snapshot, with the cause recorded in
// the operational log. Callers cannot distinguish "nothing saved yet" from
// "save/load failed".
type Store interface {
	// Save replaces any previously stored snapshot wholesale.
	Save(todos []todo.Todo)
	// Load returns the stored snapshot in its saved order. ok is false
	// when nothing has been stored or the snapshot could not be read.
	Load() (todos []todo.Todo, ok bool)
}
