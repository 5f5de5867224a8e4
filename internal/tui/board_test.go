package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/todolist/internal/board"
	"github.com/twiced-technology-gmbh/todolist/internal/config"
	"github.com/twiced-technology-gmbh/todolist/internal/store"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

var fixedNow = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func newTestBoard(t *testing.T, cfg *config.Config) (*Board, *board.Board) {
	t.Helper()
	if cfg == nil {
		cfg = config.NewDefault()
	}
	cfg.SetDir(t.TempDir())
	clock := func() time.Time { return fixedNow }
	tasks := board.New(cfg, store.New(), board.WithClock(clock))
	m := NewBoard(cfg, tasks)
	m.SetNow(clock)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, tasks
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Board, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func addTask(t *testing.T, tasks *board.Board, in board.Input) string {
	t.Helper()
	encoded, err := tasks.Add(in)
	require.NoError(t, err)
	return encoded
}

func TestAddViaForm(t *testing.T) {
	m, tasks := newTestBoard(t, nil)

	press(m, runes("a"))
	require.Equal(t, viewForm, m.view)

	press(m,
		runes("Pagar luz"),
		tea.KeyMsg{Type: tea.KeyTab},
		runes("factura"),
		tea.KeyMsg{Type: tea.KeyTab},
		runes("20/10/2026"),
		tea.KeyMsg{Type: tea.KeyCtrlT}, // general -> important
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, viewList, m.view)
	assert.Equal(t, []string{"★ [URGENTE] PAGAR LUZ : FACTURA (Vence: 20/10/2026)"}, tasks.Pending(board.FilterOptions{}))
	assert.Contains(t, m.status, "PAGAR LUZ")
}

func TestAddViaFormShowsValidationError(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	addTask(t, tasks, board.Input{Title: "pan"})

	press(m, runes("a"), runes("PAN"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, viewForm, m.view, "form stays open on error")
	require.Error(t, m.form.err)
	assert.Contains(t, m.View(), m.form.err.Error())
	assert.Len(t, tasks.Pending(board.FilterOptions{}), 1)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewList, m.view)
}

func TestFormRejectsBadDate(t *testing.T) {
	m, tasks := newTestBoard(t, nil)

	press(m, runes("a"), runes("Leche"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab},
		runes("31/02/2026"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, viewForm, m.view)
	assert.Empty(t, tasks.Pending(board.FilterOptions{}))
}

func TestCompleteSelected(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	addTask(t, tasks, board.Input{Title: "uno"})
	second := addTask(t, tasks, board.Input{Title: "dos"})

	press(m, runes("j"), runes("c"))

	assert.Equal(t, []string{"📝 uno"}, tasks.Pending(board.FilterOptions{}))
	assert.Equal(t, []string{task.CompletionMarker + second}, tasks.Completed(board.FilterOptions{}))
	assert.Equal(t, 0, m.rows[panePending], "cursor clamps after the list shrinks")
	assert.True(t, tasks.IsNew("dos"))
}

func TestCompleteIgnoredInHistoryPane(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	encoded := addTask(t, tasks, board.Input{Title: "uno"})
	require.NoError(t, tasks.Complete(encoded))

	press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("c"), runes("d"))

	assert.Equal(t, paneHistory, m.pane)
	assert.Len(t, tasks.Completed(board.FilterOptions{}), 1)
	assert.Equal(t, viewList, m.view)
}

func TestDeleteWithConfirmation(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	addTask(t, tasks, board.Input{Title: "uno"})

	press(m, runes("d"))
	require.Equal(t, viewConfirmDelete, m.view)
	assert.Contains(t, m.View(), "📝 uno")

	press(m, runes("n"))
	assert.Equal(t, viewList, m.view)
	assert.Len(t, tasks.Pending(board.FilterOptions{}), 1)

	press(m, runes("d"), runes("y"))
	assert.Equal(t, viewList, m.view)
	assert.Empty(t, tasks.Pending(board.FilterOptions{}))
	assert.Empty(t, tasks.Completed(board.FilterOptions{}), "delete does not record history")
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Confirm.Delete = false
	m, tasks := newTestBoard(t, cfg)
	addTask(t, tasks, board.Input{Title: "uno"})

	press(m, runes("d"))

	assert.Equal(t, viewList, m.view)
	assert.Empty(t, tasks.Pending(board.FilterOptions{}))
}

func TestClearHistory(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	for _, title := range []string{"uno", "dos"} {
		require.NoError(t, tasks.Complete(addTask(t, tasks, board.Input{Title: title})))
	}

	press(m, runes("C"))
	require.Equal(t, viewConfirmClear, m.view)
	assert.Contains(t, m.View(), "2 completed tasks")

	press(m, runes("y"))
	assert.Equal(t, viewList, m.view)
	assert.Empty(t, tasks.Completed(board.FilterOptions{}))
}

func TestClearHistoryWhenEmpty(t *testing.T) {
	m, _ := newTestBoard(t, nil)

	press(m, runes("C"))

	assert.Equal(t, viewList, m.view)
	assert.Equal(t, "History is already empty", m.status)
}

func TestListRendersRankOrder(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	addTask(t, tasks, board.Input{Title: "general"})
	addTask(t, tasks, board.Input{Title: "hoy", Category: "today"})
	addTask(t, tasks, board.Input{Title: "urgente", Category: "important"})

	out := m.View()

	urgent := strings.Index(out, "URGENTE")
	today := strings.Index(out, "[HOY]")
	general := strings.Index(out, "📝 general")
	require.NotEqual(t, -1, urgent)
	assert.Less(t, urgent, today)
	assert.Less(t, today, general)
	assert.Contains(t, out, "Pending (3)")
	assert.Contains(t, out, "History (0)")
}

func TestNavigationStaysInBounds(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	addTask(t, tasks, board.Input{Title: "uno"})
	addTask(t, tasks, board.Input{Title: "dos"})

	press(m, runes("k"), runes("k"))
	assert.Equal(t, 0, m.rows[panePending])

	press(m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 1, m.rows[panePending])
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: listChrome + 3})
	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		addTask(t, tasks, board.Input{Title: title})
	}

	for range 5 {
		press(m, runes("j"))
	}

	assert.Equal(t, 5, m.rows[panePending])
	assert.Equal(t, 3, m.offs[panePending])
	assert.Contains(t, m.View(), "📝 f")
	assert.NotContains(t, m.View(), "📝 a")
}

func TestDetailAndHelpViews(t *testing.T) {
	m, tasks := newTestBoard(t, nil)
	addTask(t, tasks, board.Input{Title: "uno", Due: "25/10/2026"})

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewDetail, m.view)
	assert.NotEmpty(t, m.detail)

	press(m, runes("x"))
	assert.Equal(t, viewList, m.view)

	press(m, runes("?"))
	require.Equal(t, viewHelp, m.view)
	assert.Contains(t, m.View(), "clear history")

	press(m, runes("?"))
	assert.Equal(t, viewList, m.view)
}

func TestConfigReload(t *testing.T) {
	m, tasks := newTestBoard(t, nil)

	cfg := config.NewDefault()
	cfg.DefaultCategory = task.Today
	m.Update(ConfigReloadMsg{Config: cfg})

	assert.Equal(t, task.Today, tasks.DefaultCategory())
	assert.Same(t, cfg, m.cfg)

	m.Update(ConfigReloadMsg{Err: errors.New("boom")})
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "boom")
}

func TestQuit(t *testing.T) {
	m, _ := newTestBoard(t, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "a...", truncate("abcdefgh", 2))
}
