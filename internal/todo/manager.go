package todo

import (
	"fmt"
	"io"

	apperrors "github.com/wexinc/todo/internal/errors"
)

// Manager owns the in-session todo list and performs all list operations.
// Todos keep the order they were added in; display indices are 1-based.
//
// The Manager never touches persistence. Loading and saving snapshots is
// the caller's responsibility (see repl.REPL and tui.Run), so that list
// manipulation stays testable without a backing store.
type Manager struct {
	out   io.Writer
	todos []Todo
}

// NewManager creates an empty Manager. User-facing notices are written
// to out.
func NewManager(out io.Writer) *Manager {
	return &Manager{
		out:   out,
		todos: []Todo{},
	}
}

// Count returns the number of todos in the list.
func (m *Manager) Count() int {
	return len(m.todos)
}

// Todos returns a copy of the current list, in display order.
func (m *Manager) Todos() []Todo {
	snapshot := make([]Todo, len(m.todos))
	copy(snapshot, m.todos)
	return snapshot
}

// Replace swaps the whole list for the given snapshot.
// Used to seed the session from a loaded snapshot.
func (m *Manager) Replace(todos []Todo) {
	m.todos = make([]Todo, len(todos))
	copy(m.todos, todos)
}

// List prints every todo with its 1-based display index, in list order.
// An empty list prints a "no todos" notice instead.
func (m *Manager) List() {
	if len(m.todos) == 0 {
		fmt.Fprintln(m.out, "You have no todos.")
		return
	}
	for i, t := range m.todos {
		fmt.Fprintf(m.out, "%d) %s\n", i+1, t.Render())
	}
}

// Add appends a new todo with the given title to the end of the list.
// It always succeeds.
func (m *Manager) Add(title string) {
	m.todos = append(m.todos, New(title))
	fmt.Fprintf(m.out, "Added %q.\n", title)
}

// Toggle flips the completion flag of the todo at the given 1-based
// display index. An out-of-range index leaves the list untouched, prints
// a distinct notice, and returns an error matching ErrIndexOutOfRange.
func (m *Manager) Toggle(index int) error {
	pos := index - 1
	if pos < 0 || pos >= len(m.todos) {
		fmt.Fprintf(m.out, "Index %d is out of range.\n", index)
		return apperrors.IndexError(index, len(m.todos))
	}
	m.todos[pos].IsCompleted = !m.todos[pos].IsCompleted
	fmt.Fprintf(m.out, "Toggled %d) %s\n", index, m.todos[pos].Render())
	return nil
}

// Delete removes the todo at the given 1-based display index; todos after
// it shift down by one. An out-of-range index leaves the list untouched,
// prints a distinct notice, and returns an error matching
// ErrIndexOutOfRange.
func (m *Manager) Delete(index int) error {
	pos := index - 1
	if pos < 0 || pos >= len(m.todos) {
		fmt.Fprintf(m.out, "Index %d is out of range.\n", index)
		return apperrors.IndexError(index, len(m.todos))
	}
	title := m.todos[pos].Title
	m.todos = append(m.todos[:pos], m.todos[pos+1:]...)
	fmt.Fprintf(m.out, "Deleted %q.\n", title)
	return nil
}
