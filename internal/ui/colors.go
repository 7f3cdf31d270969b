package ui

import "github.com/charmbracelet/lipgloss"

const (
	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue  = lipgloss.Color("#4db7ff")
	Green = lipgloss.Color("#00a352")
)
