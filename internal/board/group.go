package board

import (
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

// Group holds the encoded tasks of one category.
type Group struct {
	Category task.Category `json:"category"`
	Label    string        `json:"label"`
	Tasks    []string      `json:"tasks"`
}

// GroupByCategory splits encoded tasks by their leading marker. Groups follow
// rank order, tasks keep their relative order, and empty groups are left out.
// Strings without a known marker count as General.
func GroupByCategory(encoded []string) []Group {
	byCat := make(map[task.Category][]string)
	for _, e := range encoded {
		c := task.CategoryOf(e)
		byCat[c] = append(byCat[c], e)
	}

	groups := make([]Group, 0, len(byCat))
	for _, c := range task.Categories() {
		if len(byCat[c]) == 0 {
			continue
		}
		groups = append(groups, Group{Category: c, Label: c.Label(), Tasks: byCat[c]})
	}
	return groups
}
