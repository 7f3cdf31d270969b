package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
	"github.com/td0m/checklist/internal/ui"
	"github.com/td0m/checklist/pkg/task"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the app and then every message its commands produce
func send(m *app, msg tea.Msg) {
	for msg != nil {
		_, cmd := m.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func testApp(l *task.List) *app {
	m := newApp(l, task.DefaultCategories, ui.English)
	m.now = func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC) }
	send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestApp_AddToggleDelete(t *testing.T) {
	is := is.New(t)
	l := task.NewList()
	m := testApp(l)
	is.True(strings.Contains(m.View(), ui.EmptyIncomplete))
	is.True(strings.Contains(m.View(), "October 19, 2026"))

	// open the form and submit it
	send(m, key("+"))
	is.Equal(m.mode, modeCreate)
	m.form.SetDescription("Buy milk")
	m.form.Select(2)
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	is.Equal(m.mode, modeNormal)
	is.Equal(l.Len(), 1)
	is.True(strings.Contains(m.View(), "Buy milk"))
	is.True(strings.Contains(m.View(), "1 incomplete, 0 complete"))

	// space ticks the checkbox
	send(m, key(" "))
	incomplete, complete := l.Partition()
	is.Equal(len(incomplete), 0)
	is.Equal(len(complete), 1)
	is.True(strings.Contains(m.View(), "0 incomplete, 1 complete"))

	// enter asks before deleting, n keeps the task
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	is.Equal(m.mode, modeDelete)
	is.True(strings.Contains(m.View(), "Buy milk"))
	send(m, key("n"))
	is.Equal(m.mode, modeNormal)
	is.Equal(l.Len(), 1)

	// y deletes it
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	send(m, key("y"))
	is.Equal(m.mode, modeNormal)
	is.Equal(l.Len(), 0)
}

func TestApp_InvalidFormStaysOpen(t *testing.T) {
	is := is.New(t)
	l := task.NewList()
	m := testApp(l)

	send(m, key("+"))
	m.form.SetDescription("   ")
	m.form.Select(0)
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	is.Equal(m.mode, modeCreate)
	is.Equal(l.Len(), 0)

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	is.Equal(m.mode, modeNormal)
	is.Equal(l.Len(), 0)
}

func TestApp_Cursor(t *testing.T) {
	is := is.New(t)
	l := task.NewList()
	a, _ := l.Add("a", "Work")
	l.Add("b", "Work")
	c, _ := l.Add("c", "Work")
	l.Toggle(a)
	m := testApp(l)

	// b, c are incomplete and a is complete
	is.Equal(m.tabs.Value(), 0)
	send(m, key("j"))
	got, _ := m.atCursor()
	is.Equal(got.ID, c)

	send(m, key("G"))
	got, _ = m.atCursor()
	is.Equal(got.ID, a)
	is.Equal(m.tabs.Value(), 1)

	// moving past either end stays put
	send(m, key("j"))
	got, _ = m.atCursor()
	is.Equal(got.ID, a)
	send(m, key("g"))
	send(m, key("k"))
	is.Equal(m.cursor, 0)
}

func TestApp_LineOf(t *testing.T) {
	is := is.New(t)
	m := &app{summary: ui.Summary{
		Incomplete: []task.Task{{ID: 1}, {ID: 2}},
		Complete:   []task.Task{{ID: 3, Completed: true}},
	}}
	is.Equal(m.lineOf(0), 2)
	is.Equal(m.lineOf(1), 3)
	is.Equal(m.lineOf(2), 6)

	// the hint of an empty "To do" section takes one line
	m.summary.Incomplete = nil
	is.Equal(m.lineOf(0), 5)
}
