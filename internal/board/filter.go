package board

import (
	"slices"
	"strings"

	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

// FilterOptions defines which tasks to include.
type FilterOptions struct {
	Categories []task.Category // empty = all
	Search     string          // case-insensitive substring match on the encoded text
	Overdue    bool            // only tasks due before today
	Limit      int             // 0 = no limit
}

// Filter returns the encoded strings matching all criteria (AND logic), in input order.
func Filter(encoded []string, opts FilterOptions, today date.Date) []string {
	result := make([]string, 0, len(encoded))
	for _, e := range encoded {
		if !matchesFilter(e, opts, today) {
			continue
		}
		result = append(result, e)
		if opts.Limit > 0 && len(result) == opts.Limit {
			break
		}
	}
	return result
}

func matchesFilter(encoded string, opts FilterOptions, today date.Date) bool {
	// History entries carry the completion marker ahead of the category marker.
	body := strings.TrimPrefix(encoded, task.CompletionMarker)

	if len(opts.Categories) > 0 && !slices.Contains(opts.Categories, task.CategoryOf(body)) {
		return false
	}
	if opts.Search != "" && !strings.Contains(strings.ToLower(body), strings.ToLower(opts.Search)) {
		return false
	}
	if opts.Overdue {
		d := task.DueDate(body)
		if d.IsMax() || !d.Before(today.Time) {
			return false
		}
	}
	return true
}
