package task

import "time"

type ID int64

type Category string

// NoCategory is the zero value, used when nothing has been picked yet.
const NoCategory Category = ""

// DefaultCategories is the category set offered when none is configured.
var DefaultCategories = []Category{"Finances", "Wedding", "Shopping List", "Work"}

type Task struct {
	ID          ID
	Description string
	Category    Category
	Completed   bool
}

// IDGen hands out ids derived from the creation time in milliseconds.
// Two tasks created within the same millisecond still get distinct ids,
// since the generator never issues a value lower than or equal to the last one.
type IDGen struct {
	last ID
	now  func() time.Time
}

func NewIDGen() *IDGen {
	return &IDGen{now: time.Now}
}

// Next returns a fresh id
func (g *IDGen) Next() ID {
	id := ID(g.now().UnixMilli())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe makes sure an id that already exists is never issued again
func (g *IDGen) Observe(id ID) {
	if id > g.last {
		g.last = id
	}
}
