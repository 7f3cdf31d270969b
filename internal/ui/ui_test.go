package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/checklist/pkg/task"
)

func TestFormatDate(t *testing.T) {
	day := time.Date(2026, time.October, 19, 15, 4, 0, 0, time.UTC)
	tests := []struct {
		locale Locale
		want   string
	}{
		{English, "October 19, 2026"},
		{Portuguese, "19 de outubro de 2026"},
	}
	for _, tt := range tests {
		t.Run(string(tt.locale), func(t *testing.T) {
			is := is.New(t)
			is.NoErr(tt.locale.Valid())
			is.Equal(FormatDate(day, tt.locale), tt.want)
		})
	}
	t.Run("unknown", func(t *testing.T) {
		is := is.New(t)
		is.Equal(Locale("fr").Valid(), ErrUnknownLocale)
		is.Equal(FormatDate(day, "fr"), "October 19, 2026")
	})
}

func TestIcon(t *testing.T) {
	is := is.New(t)
	for _, c := range task.DefaultCategories {
		_, ok := Icon(c)
		is.True(ok)
	}
	// stores written by the browser version use Portuguese labels
	for _, c := range []task.Category{"Finanças", "Casamento", "Lista de Compras", "Trabalho"} {
		_, ok := Icon(c)
		is.True(ok)
	}
	pt, _ := Icon("Lista de Compras")
	en, _ := Icon("Shopping List")
	is.Equal(pt, en)

	icon, ok := Icon("Gardening")
	is.True(!ok)
	is.Equal(icon, "")
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	l := task.NewList()
	milk, _ := l.Add("Buy milk", "Shopping List")
	l.Add("Pay rent", "Finances")
	l.Toggle(milk)

	s := Summarize(l, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), English)
	is.Equal(s.Date, "January 2, 2026")
	is.Equal(s.Counts(), "1 incomplete, 1 complete")
	is.Equal(len(s.Order()), 2)
	is.Equal(s.Order()[0].Description, "Pay rent")
	is.Equal(s.Order()[1].Description, "Buy milk")
}

func TestRenderList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		is := is.New(t)
		out := RenderList(Summary{}, ListOptions{Cursor: -1})
		is.True(strings.Contains(out, EmptyIncomplete))
		is.True(strings.Contains(out, EmptyComplete))
	})
	t.Run("tasks", func(t *testing.T) {
		is := is.New(t)
		s := Summary{
			Incomplete: []task.Task{
				{ID: 1, Description: "Pay rent", Category: "Finances"},
				{ID: 2, Description: "Water plants", Category: "Gardening"},
			},
			Complete: []task.Task{{ID: 3, Description: "Buy milk", Category: "Shopping List", Completed: true}},
		}
		out := RenderList(s, ListOptions{Cursor: -1, IDs: true})
		is.True(!strings.Contains(out, EmptyIncomplete))
		is.True(!strings.Contains(out, EmptyComplete))
		is.True(strings.Contains(out, "Pay rent"))
		is.True(strings.Contains(out, "💰"))
		// unmapped categories still show their label, just no icon
		is.True(strings.Contains(out, "Gardening"))
		// completed tasks only show their description
		is.True(strings.Contains(out, "Buy milk"))
		is.True(!strings.Contains(out, "Shopping List"))
		is.True(!strings.Contains(out, "🛒"))
		is.True(strings.Contains(out, "3"))
	})
}

func TestTabs(t *testing.T) {
	is := is.New(t)
	tabs := NewTabs([]string{"To do", "Completed"})
	tabs.Width = 80
	tabs.Set(5)
	is.Equal(tabs.Value(), 1)

	is.True(!strings.Contains(tabs.View(), TaskDivider))
	tabs.Date = "October 19, 2026"
	tabs.Counts = "1 incomplete, 0 complete"
	out := tabs.View()
	is.True(strings.Contains(out, "October 19, 2026"))
	is.True(strings.Contains(out, "1 incomplete, 0 complete"))
	is.True(strings.Contains(out, TaskDivider))
}
