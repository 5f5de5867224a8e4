package task

import "strings"

// Category is the fixed, closed set of task categories.
type Category string

// Categories in rank order.
const (
	Important Category = "important"
	Today     Category = "today"
	General   Category = "general"
)

// Categories returns every category in rank order.
func Categories() []Category {
	return []Category{Important, Today, General}
}

// categoryAliases maps lowercase input spellings to categories. Anything not
// listed here falls back to General.
var categoryAliases = map[string]Category{
	"important":    Important,
	"importante":   Important,
	"importantes":  Important,
	"urgent":       Important,
	"urgente":      Important,
	"today":        Today,
	"hoy":          Today,
	"tarea de hoy": Today,
	"general":      General,
}

// ParseCategory maps user input to a Category. Matching is case-insensitive and
// unrecognised values map to General.
func ParseCategory(s string) Category {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c
	}
	return General
}

// IsKnownCategory reports whether s names a category without falling back.
func IsKnownCategory(s string) bool {
	_, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// Label returns the label shown in selectors.
func (c Category) Label() string {
	switch c {
	case Important:
		return "Importante"
	case Today:
		return "Tarea de hoy"
	default:
		return "General"
	}
}

// Rank returns the priority tier of c (1 is highest).
func (c Category) Rank() int {
	for _, m := range markers {
		if m.category == c {
			return m.rank
		}
	}
	return markers[len(markers)-1].rank
}

// Next returns the category after c in rank order, wrapping around.
func (c Category) Next() Category {
	all := Categories()
	for i, cat := range all {
		if cat == c {
			return all[(i+1)%len(all)]
		}
	}
	return Important
}
