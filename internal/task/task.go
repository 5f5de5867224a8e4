// Package task defines the task value object and the display encoding shared
// by the store, the CLI, and the TUI.
package task

import (
	"strings"

	"github.com/twiced-technology-gmbh/todolist/internal/date"
)

// Task holds the raw fields of a task before it is encoded for display.
type Task struct {
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Due         *date.Date `yaml:"due,omitempty" json:"due,omitempty"`
	Category    Category   `yaml:"category" json:"category"`
}

// Identity returns the canonical identity used for duplicate detection:
// the trimmed, upper-cased title. Surrounding whitespace never distinguishes
// two tasks, so Store.IsNew("  x") and Store.IsNew("x") always agree.
func Identity(title string) string {
	return strings.ToUpper(strings.TrimSpace(title))
}

// Identity returns the canonical identity of t.
func (t Task) Identity() string {
	return Identity(t.Title)
}

// Encode returns the display-encoded string for t.
func (t Task) Encode() string {
	return Encode(t.Title, t.Description, t.Due, t.Category)
}
