package ui

import (
	"strconv"

	"github.com/td0m/checklist/pkg/task"
)

const (
	EmptyIncomplete = "Add tasks by pressing +!"
	EmptyComplete   = "No completed tasks."
)

// ListOptions controls how RenderList draws the two sections
type ListOptions struct {
	// Cursor is the index into Summary.Order of the highlighted task, -1 for none
	Cursor int
	// IDs prints the id of every task, for the non interactive listing
	IDs bool
}

// RenderList draws the "To do" and "Completed" sections
func RenderList(s Summary, opts ListOptions) string {
	out := SectionTitle.Render("To do") + "\n"
	if len(s.Incomplete) == 0 {
		out += EmptyHint.Render(EmptyIncomplete) + "\n"
	}
	for i, t := range s.Incomplete {
		out += renderTask(t, i == opts.Cursor, opts.IDs) + "\n"
	}

	out += SectionTitle.Render("Completed") + "\n"
	if len(s.Complete) == 0 {
		out += EmptyHint.Render(EmptyComplete) + "\n"
	}
	offset := len(s.Incomplete)
	for i, t := range s.Complete {
		out += renderTask(t, offset+i == opts.Cursor, opts.IDs) + "\n"
	}
	return out
}

func renderTask(t task.Task, selected, id bool) string {
	title := TaskTitle
	if t.Completed {
		title = TaskDoneTitle
	}
	if selected {
		title = title.Copy().Background(Faded)
	}

	s := " " + Checkbox(t.Completed) + " "
	if id {
		s += TaskCategory.Render(strconv.FormatInt(int64(t.ID), 10)) + " "
	}
	s += title.Render(t.Description)
	// completed tasks only show their description
	if t.Completed {
		return s
	}
	if icon, ok := Icon(t.Category); ok {
		s += TaskIcon.Render(icon)
	} else if t.Category != task.NoCategory {
		s += " "
	}
	if t.Category != task.NoCategory {
		s += TaskCategory.Render(string(t.Category))
	}
	return s
}
