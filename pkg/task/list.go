package task

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/td0m/checklist/internal/logging"
)

var (
	ErrEmptyDescription = errors.New("description is empty")
	ErrNoCategory       = errors.New("no category selected")
	// ErrNoData is returned by a Persistor when nothing has been saved yet
	ErrNoData = errors.New("no saved tasks")
)

// Persistor reads and writes the whole collection as a single snapshot
type Persistor interface {
	Save([]Task) error
	Load() ([]Task, error)
}

// List is the ordered task collection. It is the only thing allowed to change
// tasks, and it writes a full snapshot to its Persistor after every change.
type List struct {
	tasks []Task

	ids      *IDGen
	persist  Persistor
	log      logrus.FieldLogger
	onReject func(error)

	// result of the last save
	err error
}

type Option func(*List)

func WithLogger(l logrus.FieldLogger) Option {
	return func(list *List) { list.log = l }
}

func WithIDGen(g *IDGen) Option {
	return func(list *List) { list.ids = g }
}

// WithRejectObserver registers fn to be told about every rejected Add.
// Without it rejections are silent.
func WithRejectObserver(fn func(error)) Option {
	return func(list *List) { list.onReject = fn }
}

func NewList(opts ...Option) *List {
	l := &List{
		tasks: []Task{},
		ids:   NewIDGen(),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open creates a list backed by p and loads whatever p holds.
// A missing or unreadable snapshot leaves the list empty.
func Open(p Persistor, opts ...Option) *List {
	l := NewList(opts...)
	l.persist = p
	if p == nil {
		return l
	}
	tasks, err := p.Load()
	switch {
	case errors.Is(err, ErrNoData):
		l.log.Debug("no saved tasks, starting empty")
		return l
	case err != nil:
		l.log.WithError(err).Warn("could not load tasks, starting empty")
		return l
	}
	reassigned := l.load(tasks)
	l.log.WithField("count", len(l.tasks)).Debug("tasks loaded")
	// later runs must see the same ids
	if reassigned > 0 {
		l.save()
	}
	return l
}

// load replaces the contents, giving a fresh id to any duplicate.
// It returns how many ids were reassigned.
func (l *List) load(tasks []Task) int {
	reassigned := 0
	seen := make(map[ID]bool, len(tasks))
	for _, t := range tasks {
		l.ids.Observe(t.ID)
	}
	l.tasks = make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			old := t.ID
			t.ID = l.ids.Next()
			reassigned++
			l.log.WithFields(logrus.Fields{"old": old, "new": t.ID}).Warn("duplicate task id reassigned")
		}
		seen[t.ID] = true
		l.tasks = append(l.tasks, t)
	}
	return reassigned
}

func (l *List) Add(description string, category Category) (ID, error) {
	var err error
	switch {
	case strings.TrimSpace(description) == "":
		err = ErrEmptyDescription
	case category == NoCategory:
		err = ErrNoCategory
	}
	if err != nil {
		l.log.WithError(err).Debug("add rejected")
		if l.onReject != nil {
			l.onReject(err)
		}
		return 0, err
	}
	t := Task{
		ID:          l.ids.Next(),
		Description: description,
		Category:    category,
	}
	l.tasks = append(l.tasks, t)
	l.log.WithFields(logrus.Fields{"id": t.ID, "category": t.Category}).Info("task added")
	l.save()
	return t.ID, nil
}

// Toggle flips the completion of a task. Unknown ids are ignored.
func (l *List) Toggle(id ID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	l.log.WithFields(logrus.Fields{"id": id, "completed": l.tasks[i].Completed}).Info("task toggled")
	l.save()
	return true
}

// Remove deletes a task. Unknown ids are ignored.
func (l *List) Remove(id ID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.log.WithField("id", id).Info("task removed")
	l.save()
	return true
}

// Partition splits the list into incomplete and complete tasks, keeping
// insertion order inside each half.
func (l *List) Partition() (incomplete, complete []Task) {
	incomplete, complete = []Task{}, []Task{}
	for _, t := range l.tasks {
		if t.Completed {
			complete = append(complete, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	return incomplete, complete
}

func (l *List) Get(id ID) (Task, bool) {
	i := l.index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Tasks returns a copy of every task in insertion order
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Err returns the error of the last save, or nil if it succeeded.
// A failed save leaves the list as it is in memory.
func (l *List) Err() error {
	return l.err
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) index(id ID) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) save() {
	if l.persist == nil {
		return
	}
	l.err = l.persist.Save(l.Tasks())
	if l.err != nil {
		l.log.WithError(l.err).Error("could not save tasks")
	}
}
