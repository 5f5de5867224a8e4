// Package board runs task operations against a store: it validates raw input,
// enforces the duplicate rule, encodes tasks, and records activity.
package board

import (
	"strconv"
	"strings"
	"time"

	"github.com/twiced-technology-gmbh/todolist/internal/config"
	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/store"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

// Input holds raw task fields as typed by the user.
type Input struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Due         string `yaml:"due,omitempty" json:"due,omitempty"`
	Category    string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Board is the entry point for presentation layers.
type Board struct {
	store      *store.Store
	rejectPast bool
	defaultCat task.Category
	logPath    string
	now        func() time.Time
}

// Option configures a Board.
type Option func(*Board)

// WithClock overrides the clock used for past-date checks and log timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// New creates a Board over s using the settings in cfg.
func New(cfg *config.Config, s *store.Store, opts ...Option) *Board {
	b := &Board{
		store: s,
		now:   time.Now,
	}
	b.Configure(cfg)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Configure applies settings from cfg. Used again when the config file changes.
func (b *Board) Configure(cfg *config.Config) {
	b.rejectPast = cfg.PastDatesRejected()
	b.defaultCat = cfg.NewTaskCategory()
	b.logPath = cfg.ActivityLogPath()
}

// DefaultCategory returns the category used when input names none.
func (b *Board) DefaultCategory() task.Category {
	return b.defaultCat
}

func (b *Board) today() date.Date {
	now := b.now()
	return date.New(now.Year(), now.Month(), now.Day())
}

// Add validates in, registers the task, and returns its encoded string.
func (b *Board) Add(in Input) (string, error) {
	t, err := b.parse(in)
	if err != nil {
		return "", err
	}
	if !b.store.IsNew(t.Title) {
		return "", task.ValidateDuplicate(t.Title)
	}

	encoded := t.Encode()
	b.store.Register(t.Title, encoded, t.Category)
	b.logMutation(ActionAdd, encoded, string(t.Category))
	return encoded, nil
}

// parse turns raw input into a Task.
func (b *Board) parse(in Input) (task.Task, error) {
	title := strings.TrimSpace(in.Title)
	if err := task.ValidateTitle(title); err != nil {
		return task.Task{}, err
	}
	if err := task.ValidateDescription(in.Description); err != nil {
		return task.Task{}, err
	}
	due, err := task.ParseDue(in.Due, b.today(), b.rejectPast)
	if err != nil {
		return task.Task{}, err
	}
	cat := b.defaultCat
	if strings.TrimSpace(in.Category) != "" {
		cat = task.ParseCategory(in.Category)
	}
	return task.Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Due:         due,
		Category:    cat,
	}, nil
}

// Complete moves a pending task to the history.
func (b *Board) Complete(encoded string) error {
	if !b.store.Complete(encoded) {
		return task.ValidateNotFound(encoded)
	}
	b.logMutation(ActionComplete, encoded, "")
	return nil
}

// Delete removes a pending task without recording it in the history.
func (b *Board) Delete(encoded string) error {
	if !b.store.Delete(encoded) {
		return task.ValidateNotFound(encoded)
	}
	b.logMutation(ActionDelete, encoded, "")
	return nil
}

// ClearHistory empties the completed list and returns how many entries were removed.
func (b *Board) ClearHistory() int {
	n := b.store.ClearHistory()
	if n > 0 {
		b.logMutation(ActionClearHistory, "", pluralTasks(n))
	}
	return n
}

// Resolve returns the encoded string of the pending task titled title.
func (b *Board) Resolve(title string) (string, error) {
	encoded, ok := b.store.Lookup(title)
	if !ok {
		return "", task.ValidateNotFound(strings.TrimSpace(title))
	}
	return encoded, nil
}

// IsNew reports whether title is free for a new task.
func (b *Board) IsNew(title string) bool {
	return b.store.IsNew(title)
}

// Pending returns pending tasks in display order, filtered by opts.
func (b *Board) Pending(opts FilterOptions) []string {
	return Filter(b.store.Pending(), opts, b.today())
}

// Completed returns the history, newest first, filtered by opts.
func (b *Board) Completed(opts FilterOptions) []string {
	return Filter(b.store.Completed(), opts, b.today())
}

// CategoryCount holds the pending count for one category.
type CategoryCount struct {
	Category task.Category `json:"category"`
	Label    string        `json:"label"`
	Count    int           `json:"count"`
}

// Overview is the aggregate board summary.
type Overview struct {
	Pending    int             `json:"pending"`
	Completed  int             `json:"completed"`
	Overdue    int             `json:"overdue"`
	DueToday   int             `json:"due_today"`
	Categories []CategoryCount `json:"categories"`
}

// Summary computes counts over the current state.
func (b *Board) Summary() Overview {
	pending := b.store.Pending()
	today := b.today()

	counts := b.store.CategoryCounts()
	cats := make([]CategoryCount, 0, len(task.Categories()))
	for _, c := range task.Categories() {
		cats = append(cats, CategoryCount{Category: c, Label: c.Label(), Count: counts[c]})
	}

	var overdue, dueToday int
	for _, encoded := range pending {
		d := task.DueDate(encoded)
		switch {
		case d.IsMax():
		case d.Before(today.Time):
			overdue++
		case d.Equal(today.Time):
			dueToday++
		}
	}

	return Overview{
		Pending:    len(pending),
		Completed:  len(b.store.Completed()),
		Overdue:    overdue,
		DueToday:   dueToday,
		Categories: cats,
	}
}

func pluralTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return strconv.Itoa(n) + " tasks"
}
