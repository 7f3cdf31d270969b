package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tabContainer = lipgloss.NewStyle().Padding(1, 1)
	activeTab    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	inactiveTab  = lipgloss.NewStyle().Foreground(Secondary)
	tabDivider   = lipgloss.NewStyle().Foreground(Faded)
	headerDate   = lipgloss.NewStyle().Foreground(Secondary)
	headerCounts = lipgloss.NewStyle().Foreground(Blue)
)

// Tabs is the header line: tab names on the left, the date and the task
// counts on the right
type Tabs struct {
	tabs []string
	i    int

	Width  int
	Date   string
	Counts string
}

func NewTabs(tabs []string) Tabs {
	return Tabs{tabs: tabs}
}

func (m Tabs) View() string {
	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		r := inactiveTab
		if i == m.i {
			r = activeTab
		}
		tabs[i] = r.Render(t)
	}
	w := lipgloss.Width
	left := strings.Join(tabs, tabDivider.Render(" | "))
	right := m.info()
	space := lipgloss.NewStyle().Width(max(m.Width-2-w(left)-w(right), 0)).Render("")
	return tabContainer.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, space, right)) + "\n"
}

// info renders whichever of Date and Counts is set
func (m Tabs) info() string {
	parts := []string{}
	if m.Date != "" {
		parts = append(parts, headerDate.Render(m.Date))
	}
	if m.Counts != "" {
		parts = append(parts, headerCounts.Render(m.Counts))
	}
	return strings.Join(parts, TaskDivider)
}

func (m Tabs) Value() int {
	return m.i
}

func (m *Tabs) Set(i int) {
	m.i = min(max(i, 0), len(m.tabs)-1)
}
