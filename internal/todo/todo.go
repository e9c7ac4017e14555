// Package todo provides the todo data model and list management.
package todo

import (
	"fmt"

	"github.com/google/uuid"
)

// Todo represents a single todo item.
type Todo struct {
	// ID is the unique identifier, assigned at creation and never reused.
	ID string `json:"id"`
	// Title is the todo text. It cannot be changed after creation.
	Title string `json:"title"`
	// IsCompleted reports whether the todo has been checked off.
	IsCompleted bool `json:"isCompleted"`
}

// New creates a todo with the given title, a fresh unique ID, and
// completion unset. Titles are stored as given; empty titles are allowed.
func New(title string) Todo {
	return Todo{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Render returns the human-readable form shown in list output,
// e.g. "Buy milk. ❌" or "Buy milk. ✅".
func (t Todo) Render() string {
	mark := "❌"
	if t.IsCompleted {
		mark = "✅"
	}
	return fmt.Sprintf("%s. %s", t.Title, mark)
}
