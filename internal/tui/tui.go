// Package tui provides a full-screen list interface over the todo
// Manager, as an alternative to the line-based command loop.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/todo/internal/storage"
	"github.com/wexinc/todo/internal/todo"
)

// entry adapts a Todo to the bubbles list.Item interface.
type entry struct {
	t todo.Todo
}

// Title implements list.Item.
func (e entry) Title() string { return e.t.Render() }

// Description implements list.Item.
func (e entry) Description() string { return "" }

// FilterValue implements list.Item.
func (e entry) FilterValue() string { return e.t.Title }

// delegate renders each todo on a single line.
type delegate struct{}

// Height implements list.ItemDelegate.
func (d delegate) Height() int { return 1 }

// Spacing implements list.ItemDelegate.
func (d delegate) Spacing() int { return 0 }

// Update implements list.ItemDelegate.
func (d delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate.
func (d delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(entry)
	if !ok {
		return
	}

	line := fmt.Sprintf("%d) %s", index+1, e.t.Title)
	mark := "❌"
	if e.t.IsCompleted {
		mark = "✅"
		line = doneStyle.Render(line)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s\n", prefix, line, mark)
}

// keyMap defines the key bindings of the list view.
type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubble Tea model for the todo list view.
type Model struct {
	list    list.Model
	input   textinput.Model
	keys    keyMap
	manager *todo.Manager
	store   storage.Store
	adding  bool
}

// NewModel creates the list view over the given manager and store.
// The manager's notice writer should be io.Discard in TUI mode; all
// feedback is drawn by the view itself.
func NewModel(manager *todo.Manager, store storage.Store) Model {
	keys := newKeyMap()

	l := list.New(nil, delegate{}, 0, 0)
	l.Title = "Todos"
	l.SetShowTitle(true)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("todo", "todos")
	// Filtering would break the index mapping between the visible list
	// and the manager's 1-based display indices.
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = mutedStyle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}

	ti := textinput.New()
	ti.Prompt = "New todo: "
	ti.PromptStyle = inputStyle
	ti.CharLimit = 0

	m := Model{
		list:    l,
		input:   ti,
		keys:    keys,
		manager: manager,
		store:   store,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateAdding handles keys while the inline add input is active.
func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Reset()
		return m, nil
	case "enter":
		m.manager.Add(m.input.Value())
		m.store.Save(m.manager.Todos())
		m.adding = false
		m.input.Reset()
		m.refresh()
		m.list.Select(m.manager.Count() - 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateList handles keys in the list view.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		if err := m.manager.Toggle(m.list.Index() + 1); err == nil {
			m.store.Save(m.manager.Todos())
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		index := m.list.Index()
		if err := m.manager.Delete(index + 1); err == nil {
			m.store.Save(m.manager.Todos())
			m.refresh()
			if index >= m.manager.Count() && index > 0 {
				m.list.Select(index - 1)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.adding {
		return m.list.View() + "\n" + m.input.View()
	}

	done := 0
	for _, t := range m.manager.Todos() {
		if t.IsCompleted {
			done++
		}
	}
	status := countStyle.Render(fmt.Sprintf("%d/%d done", done, m.manager.Count()))
	return m.list.View() + "\n" + status
}

// refresh rebuilds the list items from the manager's current state.
func (m *Model) refresh() {
	todos := m.manager.Todos()
	items := make([]list.Item, len(todos))
	for i, t := range todos {
		items[i] = entry{t: t}
	}
	m.list.SetItems(items)
}

// Run starts the full-screen interface and blocks until it exits.
func Run(manager *todo.Manager, store storage.Store) error {
	p := tea.NewProgram(NewModel(manager, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
