package main

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/checklist/internal/ui"
	"github.com/td0m/checklist/pkg/confirm"
	"github.com/td0m/checklist/pkg/task"
	"github.com/td0m/checklist/pkg/taskform"
)

const (
	headerHeight = 3
	footerHeight = 1

	// lines taken by a section title
	titleHeight = 2
)

type mode int

const (
	modeNormal mode = iota
	modeCreate
	modeDelete
)

type app struct {
	mode mode

	viewport viewport.Model
	tabs     ui.Tabs
	form     taskform.Model
	confirm  confirm.Model

	list       *task.List
	categories []task.Category
	locale     ui.Locale
	now        func() time.Time

	summary ui.Summary
	visible []task.Task
	cursor  int
}

func newApp(list *task.List, categories []task.Category, locale ui.Locale) *app {
	a := &app{
		viewport:   viewport.Model{},
		tabs:       ui.NewTabs([]string{"To do", "Completed"}),
		form:       taskform.New(categories),
		list:       list,
		categories: categories,
		locale:     locale,
		now:        time.Now,
	}
	a.refresh()
	return a
}

func runTUI() error {
	p := tea.NewProgram(newApp(list, cfg.Categories, cfg.Locale))
	p.EnterAltScreen()
	defer p.ExitAltScreen()

	log.Debug("ui started")
	return p.Start()
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m app) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		verticalMargins := headerHeight + footerHeight
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalMargins
		m.tabs.Width = msg.Width
		m.setCursor(m.cursor) // make sure cursor is visible
	case taskform.SubmitMsg:
		// the form only sends valid tasks, a rejection here is ignored like any other
		m.list.Add(msg.Description, msg.Category)
		m.mode = modeNormal
	case taskform.CancelMsg:
		m.mode = modeNormal
	case confirm.ConfirmMsg:
		m.list.Remove(msg.ID)
		m.mode = modeNormal
	case confirm.CancelMsg:
		m.mode = modeNormal
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmd = m.keyUpdate(msg)
	}
	m.refresh()
	return m, cmd
}

// handle keys differently based on the current mode
func (m *app) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeCreate:
		m.form, cmd = m.form.Update(msg)
	case modeDelete:
		m.confirm, cmd = m.confirm.Update(msg)
	case modeNormal:
		switch msg.String() {
		case "q":
			return tea.Quit
		case "g":
			m.setCursor(0)
		case "G":
			m.setCursor(len(m.visible))
		case "j", "down":
			m.setCursor(m.cursor + 1)
		case "k", "up":
			m.setCursor(m.cursor - 1)
		case " ", "x":
			if t, ok := m.atCursor(); ok {
				m.list.Toggle(t.ID)
			}
		case "enter", "d":
			if t, ok := m.atCursor(); ok {
				m.confirm.Open(t.ID, t.Description)
				m.mode = modeDelete
			}
		case "+", "a":
			m.form = taskform.New(m.categories)
			m.mode = modeCreate
		}
	}
	return cmd
}

// refresh derives everything on screen from the list
func (m *app) refresh() {
	m.summary = ui.Summarize(m.list, m.now(), m.locale)
	m.visible = m.summary.Order()
	m.setCursor(m.cursor)

	m.tabs.Date = m.summary.Date
	m.tabs.Counts = m.summary.Counts()
	if m.cursor < len(m.summary.Incomplete) {
		m.tabs.Set(0)
	} else {
		m.tabs.Set(1)
	}
	m.viewport.SetContent(ui.RenderList(m.summary, ui.ListOptions{Cursor: m.cursor}))
}

func (m app) atCursor() (task.Task, bool) {
	// if no items visible
	if m.cursor >= len(m.visible) {
		return task.Task{}, false
	}
	return m.visible[m.cursor], true
}

func (m *app) setCursor(value int) {
	size := len(m.visible)
	m.cursor = clamp(value, 0, max(size-1, 0))
	if m.cursor == 0 {
		m.viewport.YOffset = 0
	}
	// not sized yet
	if m.viewport.Height <= 0 {
		return
	}
	line := m.lineOf(m.cursor)
	if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = line - m.viewport.Height + 1
	}
	if line < m.viewport.YOffset {
		m.viewport.YOffset = line
	}
}

// lineOf returns the line of the viewport the i-th visible task is drawn on
func (m app) lineOf(i int) int {
	incomplete := len(m.summary.Incomplete)
	if i < incomplete {
		return titleHeight + i
	}
	// an empty section still takes a line for its hint
	return titleHeight + max(incomplete, 1) + titleHeight + i - incomplete
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m app) View() string {
	header := m.tabs.View()
	switch m.mode {
	case modeCreate:
		return header + m.form.View()
	case modeDelete:
		return header + m.confirm.View()
	}
	help := ui.Help.Render("j/k move • space done • enter delete • + add • q quit")
	return header + m.viewport.View() + "\n" + help
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}
