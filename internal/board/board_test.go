package board

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/todolist/internal/clierr"
	"github.com/twiced-technology-gmbh/todolist/internal/config"
	"github.com/twiced-technology-gmbh/todolist/internal/store"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

var fixedNow = time.Date(2026, time.October, 19, 15, 4, 0, 0, time.UTC)

func newTestBoard(t *testing.T) (*Board, *config.Config) {
	t.Helper()
	cfg := config.NewDefault()
	cfg.SetDir(t.TempDir())
	return New(cfg, store.New(), WithClock(func() time.Time { return fixedNow })), cfg
}

func TestAdd(t *testing.T) {
	b, _ := newTestBoard(t)

	encoded, err := b.Add(Input{Title: "  Comprar pan ", Description: " integral ", Due: "20/10/2026", Category: "Importantes"})
	require.NoError(t, err)
	assert.Equal(t, "★ [URGENTE] COMPRAR PAN : INTEGRAL (Vence: 20/10/2026)", encoded)
	assert.False(t, b.IsNew("comprar pan"))
	assert.Equal(t, []string{encoded}, b.Pending(FilterOptions{}))
}

func TestAdd_DefaultCategory(t *testing.T) {
	b, cfg := newTestBoard(t)
	cfg.DefaultCategory = task.Today
	b.Configure(cfg)

	encoded, err := b.Add(Input{Title: "Llamar"})
	require.NoError(t, err)
	assert.Equal(t, "📅 [HOY] Llamar", encoded)
}

func TestAdd_Duplicate(t *testing.T) {
	b, _ := newTestBoard(t)
	_, err := b.Add(Input{Title: "Comprar pan"})
	require.NoError(t, err)

	_, err = b.Add(Input{Title: "COMPRAR PAN", Category: "hoy"})
	assert.True(t, clierr.HasCode(err, clierr.DuplicateTask))
	assert.Len(t, b.Pending(FilterOptions{}), 1)
}

func TestAdd_InvalidInput(t *testing.T) {
	b, _ := newTestBoard(t)

	_, err := b.Add(Input{Title: " "})
	assert.True(t, clierr.HasCode(err, clierr.InvalidInput))

	_, err = b.Add(Input{Title: "x", Due: "2026-12-01"})
	assert.True(t, clierr.HasCode(err, clierr.InvalidDate))

	_, err = b.Add(Input{Title: "x", Due: "18/10/2026"})
	assert.True(t, clierr.HasCode(err, clierr.PastDate))

	assert.Empty(t, b.Pending(FilterOptions{}))
	assert.True(t, b.IsNew("x"))
}

func TestAdd_DueLabelInText(t *testing.T) {
	b, _ := newTestBoard(t)

	dated, err := b.Add(Input{Title: "z", Due: "05/05/2027"})
	require.NoError(t, err)

	for _, in := range []Input{
		{Title: "w(Vence: 01/01/2020)"},
		{Title: "informe (vence: lunes", Category: "important"},
		{Title: "v", Description: "nota(vence: 01/01/2020)"},
	} {
		_, err := b.Add(in)
		assert.True(t, clierr.HasCode(err, clierr.InvalidInput), in.Title)
		assert.True(t, b.IsNew(in.Title), in.Title)
	}

	dateless, err := b.Add(Input{Title: "w", Description: "sin fecha"})
	require.NoError(t, err)
	assert.Equal(t, []string{dated, dateless}, b.Pending(FilterOptions{}))
}

func TestAdd_PastDatesAllowedWhenConfigured(t *testing.T) {
	b, cfg := newTestBoard(t)
	off := false
	cfg.RejectPastDates = &off
	b.Configure(cfg)

	_, err := b.Add(Input{Title: "x", Due: "18/10/2026"})
	assert.NoError(t, err)
}

func TestCompleteAndReuse(t *testing.T) {
	b, _ := newTestBoard(t)
	encoded, err := b.Add(Input{Title: "Regar plantas", Category: "general"})
	require.NoError(t, err)

	require.NoError(t, b.Complete(encoded))
	assert.Empty(t, b.Pending(FilterOptions{}))
	assert.Equal(t, []string{task.Completed(encoded)}, b.Completed(FilterOptions{}))

	_, err = b.Add(Input{Title: "Regar plantas"})
	assert.NoError(t, err)
}

func TestCompleteAndDelete_NotFound(t *testing.T) {
	b, _ := newTestBoard(t)

	assert.True(t, clierr.HasCode(b.Complete("📝 nada"), clierr.TaskNotFound))
	assert.True(t, clierr.HasCode(b.Delete("📝 nada"), clierr.TaskNotFound))
	assert.Empty(t, b.Completed(FilterOptions{}))
}

func TestDelete(t *testing.T) {
	b, _ := newTestBoard(t)
	encoded, err := b.Add(Input{Title: "Borrar"})
	require.NoError(t, err)

	require.NoError(t, b.Delete(encoded))
	assert.Empty(t, b.Pending(FilterOptions{}))
	assert.Empty(t, b.Completed(FilterOptions{}))
	assert.True(t, b.IsNew("Borrar"))
}

func TestClearHistory_KeepsIdentities(t *testing.T) {
	b, _ := newTestBoard(t)
	done, err := b.Add(Input{Title: "hecha"})
	require.NoError(t, err)
	_, err = b.Add(Input{Title: "pendiente"})
	require.NoError(t, err)
	require.NoError(t, b.Complete(done))

	assert.Equal(t, 1, b.ClearHistory())
	assert.Empty(t, b.Completed(FilterOptions{}))
	assert.True(t, b.IsNew("hecha"))
	assert.False(t, b.IsNew("pendiente"))
}

func TestResolve(t *testing.T) {
	b, _ := newTestBoard(t)
	encoded, err := b.Add(Input{Title: "Tarea 1", Description: "algo", Category: "Importante"})
	require.NoError(t, err)

	got, err := b.Resolve("tarea 1")
	require.NoError(t, err)
	assert.Equal(t, encoded, got)

	_, err = b.Resolve("tarea 2")
	assert.True(t, clierr.HasCode(err, clierr.TaskNotFound))
}

func TestSummary(t *testing.T) {
	b, cfg := newTestBoard(t)
	off := false
	cfg.RejectPastDates = &off
	b.Configure(cfg)

	_, _ = b.Add(Input{Title: "a", Category: "importante", Due: "01/10/2026"})
	_, _ = b.Add(Input{Title: "b", Category: "hoy", Due: "19/10/2026"})
	_, _ = b.Add(Input{Title: "c"})
	done, _ := b.Add(Input{Title: "d"})
	require.NoError(t, b.Complete(done))

	s := b.Summary()
	assert.Equal(t, 3, s.Pending)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Overdue)
	assert.Equal(t, 1, s.DueToday)
	require.Len(t, s.Categories, 3)
	assert.Equal(t, CategoryCount{Category: task.Important, Label: "Importante", Count: 1}, s.Categories[0])
	assert.Equal(t, 1, s.Categories[2].Count)
}

func TestActivityLog(t *testing.T) {
	b, cfg := newTestBoard(t)
	cfg.ActivityLog = "activity.jsonl"
	b.Configure(cfg)

	encoded, err := b.Add(Input{Title: "x"})
	require.NoError(t, err)
	require.NoError(t, b.Complete(encoded))
	b.ClearHistory()

	entries, err := ReadLog(filepath.Join(cfg.Dir(), "activity.jsonl"))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, ActionAdd, entries[0].Action)
	assert.Equal(t, encoded, entries[0].Task)
	assert.Equal(t, ActionComplete, entries[1].Action)
	assert.Equal(t, ActionClearHistory, entries[2].Action)
	assert.Equal(t, "1 task", entries[2].Detail)
	assert.Len(t, entries[0].ID, 26)
	assert.True(t, entries[0].Timestamp.Equal(fixedNow))
}

func TestActivityLog_DisabledByDefault(t *testing.T) {
	b, cfg := newTestBoard(t)
	_, err := b.Add(Input{Title: "x"})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(cfg.Dir(), "activity.jsonl"))
}
