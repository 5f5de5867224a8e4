package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

func TestFilter(t *testing.T) {
	today := date.New(2026, time.October, 19)
	past := date.New(2026, time.October, 1)
	future := date.New(2026, time.December, 1)

	imp := task.Encode("Informe", "", &past, task.Important)
	hoy := task.Encode("Llamar", "a Ana", &future, task.Today)
	gen := task.Encode("Comprar pan", "", nil, task.General)
	all := []string{imp, hoy, gen}

	assert.Equal(t, all, Filter(all, FilterOptions{}, today))
	assert.Equal(t, []string{hoy, gen}, Filter(all, FilterOptions{Categories: []task.Category{task.Today, task.General}}, today))
	assert.Equal(t, []string{hoy}, Filter(all, FilterOptions{Search: "ANA"}, today))
	assert.Equal(t, []string{imp}, Filter(all, FilterOptions{Overdue: true}, today))
	assert.Equal(t, []string{imp, hoy}, Filter(all, FilterOptions{Limit: 2}, today))
}

func TestFilter_CompletedEntries(t *testing.T) {
	today := date.New(2026, time.October, 19)
	done := task.Completed(task.Encode("x", "", nil, task.Important))

	assert.Equal(t, []string{done}, Filter([]string{done}, FilterOptions{Categories: []task.Category{task.Important}}, today))
}

func TestGroupByCategory(t *testing.T) {
	pending := []string{
		task.Encode("a", "", nil, task.Important),
		task.Encode("b", "", nil, task.General),
		task.Encode("c", "", nil, task.Important),
		"unmarked",
	}

	groups := GroupByCategory(pending)

	require.Len(t, groups, 2)
	assert.Equal(t, task.Important, groups[0].Category)
	assert.Equal(t, "Importante", groups[0].Label)
	assert.Equal(t, []string{pending[0], pending[2]}, groups[0].Tasks)
	assert.Equal(t, task.General, groups[1].Category)
	assert.Equal(t, []string{pending[1], "unmarked"}, groups[1].Tasks)

	assert.Empty(t, GroupByCategory(nil))
}
