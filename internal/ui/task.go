package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TaskIcon      = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TaskTitle     = lipgloss.NewStyle().Bold(true)
	TaskDoneTitle = lipgloss.NewStyle().Foreground(Secondary).Strikethrough(true)
	TaskCategory  = lipgloss.NewStyle().Foreground(Secondary)

	TaskDivider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")

	SectionTitle = lipgloss.NewStyle().Bold(true).Foreground(Blue).Padding(1, 1, 0, 1)
	EmptyHint    = lipgloss.NewStyle().Foreground(Faded).Padding(0, 3)
	Help         = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1)

	checked   = lipgloss.NewStyle().Foreground(Green).Render("[✓]")
	unchecked = lipgloss.NewStyle().Foreground(Secondary).Render("[ ]")
)

// Checkbox renders the box in front of a task
func Checkbox(done bool) string {
	if done {
		return checked
	}
	return unchecked
}
