package ui

import "github.com/td0m/checklist/pkg/task"

var icons = map[task.Category]rune{
	"Finances":      '💰',
	"Wedding":       '🎁',
	"Shopping List": '🛒',
	"Work":          '🖥',

	// labels written by the browser version
	"Finanças":         '💰',
	"Casamento":        '🎁',
	"Lista de Compras": '🛒',
	"Trabalho":         '🖥',
}

// Icon returns the icon of a category, or false when it has none
func Icon(c task.Category) (string, bool) {
	r, ok := icons[c]
	if !ok {
		return "", false
	}
	return string(r), true
}
