// Package repl provides the interactive command loop for the todo CLI.
//
// The loop reads one command per line, dispatches to the todo Manager,
// and prompts again until "exit" or end of input. It also owns the
// persistence lifecycle: the stored snapshot seeds the session at
// startup, and every successful mutation is saved back.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/storage"
	"github.com/wexinc/todo/internal/todo"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const (
	commandPrompt = "Enter a command (add, list, toggle, delete, exit): "
	titlePrompt   = "Enter the todo title: "
	numberPrompt  = "Enter the todo number: "
	parseNotice   = "Something went wrong. Please enter a valid number."
	farewell      = "Bye!"
)

// REPL is the interactive command loop.
type REPL struct {
	manager *todo.Manager
	store   storage.Store
	in      *bufio.Scanner
	out     io.Writer
	logger  *logging.Logger
}

// New creates a command loop reading from in and writing to out.
// The store seeds the manager at startup and receives a snapshot after
// every mutation.
func New(manager *todo.Manager, store storage.Store, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		manager: manager,
		store:   store,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logging.Global(),
	}
}

// Run executes the command loop until the exit command or end of input.
func (r *REPL) Run() error {
	if snapshot, ok := r.store.Load(); ok {
		r.manager.Replace(snapshot)
		r.logger.Info("session seeded from snapshot", "todos", len(snapshot))
	}

	for {
		fmt.Fprint(r.out, promptStyle.Render(commandPrompt))

		line, ok := r.readLine()
		if !ok {
			return r.in.Err()
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "add":
			if !r.handleAdd() {
				return r.in.Err()
			}
		case "list":
			r.manager.List()
		case "toggle":
			if !r.handleIndexCommand(r.manager.Toggle) {
				return r.in.Err()
			}
		case "delete":
			if !r.handleIndexCommand(r.manager.Delete) {
				return r.in.Err()
			}
		case "exit":
			fmt.Fprintln(r.out, farewell)
			return nil
		default:
			// Unrecognized input produces no output; the prompt
			// simply reappears.
		}
	}
}

// handleAdd reads the title line and adds the todo. Returns false when
// input ended before a title could be read.
func (r *REPL) handleAdd() bool {
	fmt.Fprint(r.out, promptStyle.Render(titlePrompt))

	title, ok := r.readLine()
	if !ok {
		return false
	}

	r.manager.Add(title)
	r.save()
	return true
}

// handleIndexCommand reads the number line and applies op with the parsed
// 1-based index. A line that does not parse as an integer skips the
// operation with a retry notice. Returns false when input ended before a
// number could be read.
func (r *REPL) handleIndexCommand(op func(int) error) bool {
	fmt.Fprint(r.out, promptStyle.Render(numberPrompt))

	line, ok := r.readLine()
	if !ok {
		return false
	}

	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(r.out, errorStyle.Render(parseNotice))
		return true
	}

	if err := op(index); err != nil {
		// Out-of-range: notice already printed by the manager, list
		// unchanged, nothing to save.
		r.logger.Debug("index command rejected", "index", index, "error", err)
		return true
	}

	r.save()
	return true
}

// readLine reads the next input line. ok is false at end of input.
func (r *REPL) readLine() (string, bool) {
	if !r.in.Scan() {
		fmt.Fprintln(r.out)
		return "", false
	}
	return r.in.Text(), true
}

// save persists the manager's current snapshot.
func (r *REPL) save() {
	r.store.Save(r.manager.Todos())
}
