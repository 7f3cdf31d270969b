package ui

import (
	"strconv"
	"time"

	"github.com/td0m/checklist/pkg/task"
)

// Summary is everything the list screen shows, derived from the collection
type Summary struct {
	Date       string
	Incomplete []task.Task
	Complete   []task.Task
}

type partitioner interface {
	Partition() (incomplete, complete []task.Task)
}

func Summarize(l partitioner, now time.Time, locale Locale) Summary {
	incomplete, complete := l.Partition()
	return Summary{
		Date:       FormatDate(now, locale),
		Incomplete: incomplete,
		Complete:   complete,
	}
}

// Counts renders "2 incomplete, 1 complete"
func (s Summary) Counts() string {
	return strconv.Itoa(len(s.Incomplete)) + " incomplete, " + strconv.Itoa(len(s.Complete)) + " complete"
}

// Order is the order in which tasks are laid out on screen
func (s Summary) Order() []task.Task {
	out := make([]task.Task, 0, len(s.Incomplete)+len(s.Complete))
	out = append(out, s.Incomplete...)
	return append(out, s.Complete...)
}
