package taskform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/checklist/pkg/task"
)

var (
	faded     = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}
	highlight = lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}

	container = lipgloss.NewStyle().Padding(1, 2)
	expanded  = container.Copy().Padding(2, 2)
	heading   = lipgloss.NewStyle().Bold(true)
	label     = lipgloss.NewStyle().Foreground(faded)
	active    = lipgloss.NewStyle().Foreground(highlight).Bold(true)
	option    = lipgloss.NewStyle().Padding(0, 2)
	button    = lipgloss.NewStyle().Padding(0, 1).Foreground(faded)
)

// SubmitMsg is sent when the form holds a valid task
type SubmitMsg struct {
	Description string
	Category    task.Category
}

// CancelMsg is sent when the user closes the form
type CancelMsg struct{}

type field int

const (
	fieldDescription field = iota
	fieldCategory
)

// Model collects a description and a category for a new task
type Model struct {
	input      textinput.Model
	categories []task.Category

	selected  int // -1 while nothing is picked
	highlight int
	menuOpen  bool
	field     field

	// Expanded is a purely visual flag: it follows focus of the text field and
	// flips every time the category menu opens or closes.
	Expanded bool
}

func New(categories []task.Category) Model {
	i := textinput.NewModel()
	i.Prompt = ""
	i.Placeholder = "Task"
	i.CharLimit = 120
	i.Width = 40
	m := Model{
		input:      i,
		categories: categories,
		selected:   -1,
	}
	m.focusDescription()
	return m
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.menuOpen {
		switch key.Type {
		case tea.KeyUp:
			m.highlight = (m.highlight - 1 + len(m.categories)) % len(m.categories)
		case tea.KeyDown, tea.KeyTab:
			m.highlight = (m.highlight + 1) % len(m.categories)
		case tea.KeyEnter:
			m.selected = m.highlight
			m.closeMenu()
		case tea.KeyEsc:
			m.closeMenu()
		}
		return m, nil
	}
	switch key.Type {
	case tea.KeyEsc:
		return m, func() tea.Msg { return CancelMsg{} }
	case tea.KeyCtrlS:
		return m.submit()
	case tea.KeyTab, tea.KeyShiftTab:
		if m.field == fieldDescription {
			m.focusCategory()
		} else {
			m.focusDescription()
		}
		return m, nil
	}
	switch m.field {
	case fieldCategory:
		switch key.String() {
		case "enter", " ":
			m.openMenu()
		}
		return m, nil
	default:
		if key.Type == tea.KeyEnter {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	s, ok := m.Submit()
	if !ok {
		return m, nil
	}
	return m, func() tea.Msg { return s }
}

// Submit validates the form. On success it returns the new task and clears
// both fields; otherwise nothing changes and no feedback is given.
func (m *Model) Submit() (SubmitMsg, bool) {
	c := m.Category()
	if strings.TrimSpace(m.input.Value()) == "" || c == task.NoCategory {
		return SubmitMsg{}, false
	}
	s := SubmitMsg{Description: m.input.Value(), Category: c}
	m.input.SetValue("")
	m.selected = -1
	return s, true
}

func (m Model) Description() string {
	return m.input.Value()
}

func (m *Model) SetDescription(s string) {
	m.input.SetValue(s)
}

// Category returns the picked category or task.NoCategory
func (m Model) Category() task.Category {
	if m.selected < 0 || m.selected >= len(m.categories) {
		return task.NoCategory
	}
	return m.categories[m.selected]
}

// Select picks the category at index i of the category set, -1 clears it
func (m *Model) Select(i int) {
	if i < -1 || i >= len(m.categories) {
		return
	}
	m.selected = i
}

func (m Model) MenuOpen() bool {
	return m.menuOpen
}

func (m *Model) focusDescription() {
	m.field = fieldDescription
	m.input.Focus()
	m.Expanded = true
}

func (m *Model) focusCategory() {
	m.field = fieldCategory
	m.input.Blur()
	m.Expanded = false
}

func (m *Model) openMenu() {
	if len(m.categories) == 0 {
		return
	}
	m.menuOpen = true
	m.highlight = max(m.selected, 0)
	m.Expanded = !m.Expanded
}

func (m *Model) closeMenu() {
	m.menuOpen = false
	m.Expanded = !m.Expanded
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Model) View() string {
	s := heading.Render("Add task") + "\n\n"

	s += m.labelFor(fieldDescription, "Task: ") + m.input.View() + "\n"

	current := "Category"
	if c := m.Category(); c != task.NoCategory {
		current = string(c)
	}
	s += m.labelFor(fieldCategory, "Category: ") + current + "\n"
	if m.menuOpen {
		for i, c := range m.categories {
			if i == m.highlight {
				s += option.Render(active.Render("› "+string(c))) + "\n"
				continue
			}
			s += option.Render("  "+string(c)) + "\n"
		}
	}

	s += "\n" + button.Render("esc Cancel") + button.Render("ctrl+s Add")
	if m.Expanded {
		return expanded.Render(s)
	}
	return container.Render(s)
}

func (m Model) labelFor(f field, text string) string {
	if m.field == f {
		return active.Render(text)
	}
	return label.Render(text)
}
