package taskform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
	"github.com/td0m/checklist/pkg/task"
)

func press(m Model, keys ...tea.KeyType) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(tea.KeyMsg{Type: k})
	}
	return m, cmd
}

func TestModel_Submit(t *testing.T) {
	tests := []struct {
		name        string
		description string
		category    int
		ok          bool
	}{
		{"valid", "Buy milk", 2, true},
		{"empty description", "", 2, false},
		{"whitespace description", "   ", 2, false},
		{"no category", "Buy milk", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			m := New(task.DefaultCategories)
			m.SetDescription(tt.description)
			m.Select(tt.category)

			got, ok := m.Submit()
			is.Equal(ok, tt.ok)
			if !tt.ok {
				// a rejected submit keeps whatever was typed
				is.Equal(m.Description(), tt.description)
				return
			}
			is.Equal(got, SubmitMsg{Description: "Buy milk", Category: "Shopping List"})
			is.Equal(m.Description(), "")
			is.Equal(m.Category(), task.NoCategory)
		})
	}
}

func TestModel_PickCategory(t *testing.T) {
	is := is.New(t)
	m := New(task.DefaultCategories)
	m.SetDescription("Book venue")
	is.True(m.Expanded)

	// leaving the text field collapses the form
	m, _ = press(m, tea.KeyTab)
	is.True(!m.Expanded)

	m, _ = press(m, tea.KeyEnter)
	is.True(m.MenuOpen())
	is.True(m.Expanded)

	m, _ = press(m, tea.KeyDown, tea.KeyEnter)
	is.True(!m.MenuOpen())
	is.True(!m.Expanded)
	is.Equal(m.Category(), task.Category("Wedding"))

	m, cmd := press(m, tea.KeyCtrlS)
	is.True(cmd != nil)
	is.Equal(cmd(), SubmitMsg{Description: "Book venue", Category: "Wedding"})
	is.Equal(m.Description(), "")
	is.Equal(m.Category(), task.NoCategory)
}

func TestModel_InvalidSubmitIsSilent(t *testing.T) {
	is := is.New(t)
	m := New(task.DefaultCategories)
	m.SetDescription("Pay rent")

	m, cmd := press(m, tea.KeyEnter)
	is.True(cmd == nil)
	is.Equal(m.Description(), "Pay rent")
}

func TestModel_Escape(t *testing.T) {
	t.Run("closes the menu first", func(t *testing.T) {
		is := is.New(t)
		m := New(task.DefaultCategories)
		m, _ = press(m, tea.KeyTab, tea.KeyEnter)
		is.True(m.MenuOpen())

		m, cmd := press(m, tea.KeyEsc)
		is.True(!m.MenuOpen())
		is.True(cmd == nil)
		is.Equal(m.Category(), task.NoCategory)
	})
	t.Run("then cancels the form", func(t *testing.T) {
		is := is.New(t)
		m := New(task.DefaultCategories)
		_, cmd := press(m, tea.KeyEsc)
		is.True(cmd != nil)
		is.Equal(cmd(), CancelMsg{})
	})
}

func TestModel_MenuWraps(t *testing.T) {
	is := is.New(t)
	m := New(task.DefaultCategories)
	m, _ = press(m, tea.KeyTab, tea.KeyEnter, tea.KeyUp, tea.KeyEnter)
	is.Equal(m.Category(), task.DefaultCategories[len(task.DefaultCategories)-1])
}
