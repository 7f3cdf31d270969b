package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/checklist/pkg/task"
)

var (
	container = lipgloss.NewStyle().Padding(1, 2)
	danger    = lipgloss.NewStyle().Foreground(lipgloss.Color("#c42912")).Bold(true)
	muted     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Padding(0, 1)
)

// ConfirmMsg asks the owner of the list to remove the task
type ConfirmMsg struct {
	ID task.ID
}

// CancelMsg means the pending deletion was dropped
type CancelMsg struct{}

// Model gates a deletion: idle, or pending on a single task
type Model struct {
	pending     bool
	id          task.ID
	description string
}

// Open asks for confirmation before deleting the given task
func (m *Model) Open(id task.ID, description string) {
	m.pending = true
	m.id = id
	m.description = description
}

// Confirm resolves the pending deletion and returns the id to delete.
// Returns false if nothing was pending.
func (m *Model) Confirm() (task.ID, bool) {
	if !m.pending {
		return 0, false
	}
	id := m.id
	m.reset()
	return id, true
}

// Cancel drops the pending deletion without touching anything
func (m *Model) Cancel() {
	m.reset()
}

func (m Model) Pending() bool {
	return m.pending
}

func (m *Model) reset() {
	*m = Model{}
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.pending {
		return m, nil
	}
	switch key.String() {
	case "y", "enter":
		id, _ := m.Confirm()
		return m, func() tea.Msg { return ConfirmMsg{ID: id} }
	case "n", "esc", "q":
		m.Cancel()
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, nil
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Model) View() string {
	if !m.pending {
		return ""
	}
	s := "Delete the task " + danger.Render(m.description) + "?\n\n"
	s += muted.Render("n Cancel") + danger.Render("y Delete")
	return container.Render(s)
}
