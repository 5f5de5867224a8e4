// Package tui implements the interactive terminal task list.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/todolist/internal/board"
	"github.com/twiced-technology-gmbh/todolist/internal/config"
	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/output"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

// view represents the current screen state.
type view int

const (
	viewList view = iota
	viewForm
	viewConfirmDelete
	viewConfirmClear
	viewDetail
	viewHelp
)

// pane selects which list the cursor moves through.
type pane int

const (
	panePending pane = iota
	paneHistory
)

// Key and layout constants.
const (
	keyEsc   = "esc"
	keyEnter = "enter"

	listChrome   = 4 // tab header, blank line, blank line, status bar
	errorChrome  = 1 // extra line when an error toast is displayed
	tickInterval = time.Minute
)

// Board is the top-level bubbletea model.
type Board struct {
	cfg    *config.Config
	tasks  *board.Board
	pane   pane
	rows   [2]int // cursor row per pane
	offs   [2]int // first visible row per pane
	view   view
	width  int
	height int
	err    error
	status string
	now    func() time.Time

	form form

	// Delete confirmation.
	deleteTarget string

	// Clear history confirmation.
	clearCount int

	detail string
}

// NewBoard creates a Board model driving tasks with the settings in cfg.
func NewBoard(cfg *config.Config, tasks *board.Board) *Board {
	return &Board{cfg: cfg, tasks: tasks, now: time.Now}
}

// SetNow overrides the clock used for overdue highlighting (for testing).
func (b *Board) SetNow(fn func() time.Time) {
	b.now = fn
}

// Init implements tea.Model.
func (b *Board) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.ensureVisible()
		return b, nil
	case ConfigReloadMsg:
		if msg.Err != nil {
			b.err = fmt.Errorf("reloading config: %w", msg.Err)
			return b, nil
		}
		b.cfg = msg.Config
		b.tasks.Configure(msg.Config)
		b.err = nil
		b.status = "Config reloaded"
		return b, nil
	case TickMsg:
		return b, tickCmd()
	}

	if b.view == viewForm {
		var cmd tea.Cmd
		b.form.inputs[b.form.focus], cmd = b.form.inputs[b.form.focus].Update(msg)
		return b, cmd
	}
	return b, nil
}

// View implements tea.Model.
func (b *Board) View() string {
	if b.width == 0 {
		return "Loading..."
	}

	switch b.view {
	case viewForm:
		return b.form.view(b.width)
	case viewConfirmDelete:
		return b.viewDeleteConfirm()
	case viewConfirmClear:
		return b.viewClearConfirm()
	case viewDetail:
		return b.detail + "\n" + statusBarStyle.Render(" any key: back")
	case viewHelp:
		return b.viewHelp()
	default:
		return b.viewList()
	}
}

func (b *Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys.
	if key.Matches(msg, keys.ForceQuit) {
		return b, tea.Quit
	}

	switch b.view {
	case viewList:
		return b.handleListKey(msg)
	case viewForm:
		return b.handleFormKey(msg)
	case viewConfirmDelete:
		return b.handleDeleteKey(msg)
	case viewConfirmClear:
		return b.handleClearKey(msg)
	case viewDetail, viewHelp:
		b.view = viewList
	}

	return b, nil
}

func (b *Board) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b.status = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return b, tea.Quit
	case key.Matches(msg, keys.Down):
		if b.rows[b.pane] < len(b.current())-1 {
			b.rows[b.pane]++
			b.ensureVisible()
		}
	case key.Matches(msg, keys.Up):
		if b.rows[b.pane] > 0 {
			b.rows[b.pane]--
			b.ensureVisible()
		}
	case key.Matches(msg, keys.SwitchPane):
		b.pane = 1 - b.pane
		b.clampRow()
	case key.Matches(msg, keys.Add):
		b.form = newForm(b.tasks.DefaultCategory())
		b.view = viewForm
		return b, textinput.Blink
	case key.Matches(msg, keys.Complete):
		b.completeSelected()
	case key.Matches(msg, keys.Delete):
		b.handleDeleteStart()
	case key.Matches(msg, keys.ClearHistory):
		b.handleClearStart()
	case key.Matches(msg, keys.Detail):
		b.showDetail()
	case key.Matches(msg, keys.Help):
		b.view = viewHelp
	}
	return b, nil
}

func (b *Board) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		b.view = viewList
		return b, nil
	case keyEnter:
		encoded, err := b.tasks.Add(b.form.input())
		if err != nil {
			b.form.err = err
			return b, nil
		}
		b.view = viewList
		b.pane = panePending
		b.selectEncoded(encoded)
		b.status = "Added " + task.CanonicalName(encoded)
		return b, nil
	}
	b.form.err = nil
	return b, b.form.update(msg)
}

func (b *Board) completeSelected() {
	if b.pane != panePending {
		return
	}
	encoded := b.selected()
	if encoded == "" {
		return
	}
	if err := b.tasks.Complete(encoded); err != nil {
		b.err = err
		return
	}
	b.err = nil
	b.status = "Completed " + task.CanonicalName(encoded)
	b.clampRow()
}

func (b *Board) handleDeleteStart() {
	if b.pane != panePending {
		return
	}
	encoded := b.selected()
	if encoded == "" {
		return
	}
	b.deleteTarget = encoded
	if !b.cfg.Confirm.Delete {
		b.executeDelete()
		return
	}
	b.view = viewConfirmDelete
}

func (b *Board) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", keyEnter:
		b.executeDelete()
	case "n", "N", keyEsc, "q":
		b.deleteTarget = ""
	default:
		return b, nil
	}
	b.view = viewList
	return b, nil
}

func (b *Board) executeDelete() {
	if err := b.tasks.Delete(b.deleteTarget); err != nil {
		b.err = err
	} else {
		b.err = nil
		b.status = "Deleted " + task.CanonicalName(b.deleteTarget)
	}
	b.deleteTarget = ""
	b.clampRow()
}

func (b *Board) handleClearStart() {
	b.clearCount = len(b.tasks.Completed(board.FilterOptions{}))
	if b.clearCount == 0 {
		b.status = "History is already empty"
		return
	}
	if !b.cfg.Confirm.ClearHistory {
		b.executeClear()
		return
	}
	b.view = viewConfirmClear
}

func (b *Board) handleClearKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", keyEnter:
		b.executeClear()
	case "n", "N", keyEsc, "q":
	default:
		return b, nil
	}
	b.view = viewList
	return b, nil
}

func (b *Board) executeClear() {
	n := b.tasks.ClearHistory()
	b.status = fmt.Sprintf("Cleared %d from history", n)
	b.clampRow()
}

func (b *Board) showDetail() {
	encoded := b.selected()
	if encoded == "" {
		return
	}
	md := output.TaskMarkdown(encoded, b.today())
	rendered, err := output.RenderMarkdown(md, b.cfg.MarkdownStyle(), b.width-2) //nolint:mnd // side margin
	if err != nil {
		rendered = md
	}
	b.detail = rendered
	b.view = viewDetail
}

// selectEncoded moves the pending cursor to encoded when it is listed.
func (b *Board) selectEncoded(encoded string) {
	for i, e := range b.tasks.Pending(board.FilterOptions{}) {
		if e == encoded {
			b.rows[panePending] = i
			b.ensureVisible()
			return
		}
	}
	b.clampRow()
}

func (b *Board) current() []string {
	if b.pane == paneHistory {
		return b.tasks.Completed(board.FilterOptions{})
	}
	return b.tasks.Pending(board.FilterOptions{})
}

func (b *Board) selected() string {
	list := b.current()
	row := b.rows[b.pane]
	if row < 0 || row >= len(list) {
		return ""
	}
	return list[row]
}

func (b *Board) today() date.Date {
	now := b.now()
	return date.New(now.Year(), now.Month(), now.Day())
}

func (b *Board) clampRow() {
	n := len(b.current())
	if b.rows[b.pane] >= n {
		b.rows[b.pane] = n - 1
	}
	if b.rows[b.pane] < 0 {
		b.rows[b.pane] = 0
	}
	b.ensureVisible()
}

func (b *Board) visibleRows() int {
	rows := b.height - listChrome
	if b.err != nil {
		rows -= errorChrome
	}
	return max(rows, 1)
}

// ensureVisible adjusts the scroll offset so the cursor row is on screen.
func (b *Board) ensureVisible() {
	row, off := b.rows[b.pane], b.offs[b.pane]
	visible := b.visibleRows()
	switch {
	case row < off:
		off = row
	case row >= off+visible:
		off = row - visible + 1
	}
	b.offs[b.pane] = max(off, 0)
}

// TickMsg refreshes the overdue highlighting when the day changes.
type TickMsg struct{}

// ConfigReloadMsg carries a config re-read after the file changed on disk.
type ConfigReloadMsg struct {
	Config *config.Config
	Err    error
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}

// --- Styles ---

var (
	tabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)
)

// rankStyle colors a task line by its rank: urgent red, today orange.
func rankStyle(rank int) lipgloss.Style {
	switch rank {
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	case 2: //nolint:mnd // today rank
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	}
}

// --- View rendering ---

func (b *Board) viewList() string {
	pending := b.tasks.Pending(board.FilterOptions{})
	completed := b.tasks.Completed(board.FilterOptions{})

	tabs := [2]string{
		fmt.Sprintf("Pending (%d)", len(pending)),
		fmt.Sprintf("History (%d)", len(completed)),
	}
	for i := range tabs {
		if pane(i) == b.pane {
			tabs[i] = activeTabStyle.Render(tabs[i])
		} else {
			tabs[i] = tabStyle.Render(tabs[i])
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs[0], " ", tabs[1])

	list := pending
	if b.pane == paneHistory {
		list = completed
	}

	var body string
	if len(list) == 0 {
		if b.pane == paneHistory {
			body = dimStyle.Render("  No completed tasks.")
		} else {
			body = dimStyle.Render("  Nothing to do. Press a to add a task.")
		}
	} else {
		body = b.renderRows(list)
	}

	// Pad so the status bar stays at the bottom.
	targetHeight := b.visibleRows()
	if actual := strings.Count(body, "\n") + 1; actual < targetHeight {
		body += strings.Repeat("\n", targetHeight-actual)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", b.renderStatusBar())
}

func (b *Board) renderRows(list []string) string {
	today := b.today()
	row, off := b.rows[b.pane], b.offs[b.pane]
	end := min(off+b.visibleRows(), len(list))
	off = min(off, end)

	lines := make([]string, 0, end-off)
	for i := off; i < end; i++ {
		lines = append(lines, b.renderRow(list[i], i == row, today))
	}
	return strings.Join(lines, "\n")
}

func (b *Board) renderRow(encoded string, active bool, today date.Date) string {
	cursor := "  "
	if active {
		cursor = cursorStyle.Render("> ")
	}
	width := b.width - 2 //nolint:mnd // cursor column

	if b.pane == paneHistory {
		return cursor + dimStyle.Render(truncate(encoded, width))
	}

	line := rankStyle(task.Rank(encoded)).Render(truncate(encoded, width))
	if d := task.DueDate(encoded); !d.IsMax() && d.Before(today.Time) {
		line = overdueStyle.Render(truncate(encoded, width))
	}
	return cursor + line
}

func (b *Board) renderStatusBar() string {
	s := b.tasks.Summary()
	status := fmt.Sprintf(" %d pending | %d overdue | %d done", s.Pending, s.Overdue, s.Completed)
	if b.cfg.TUI.ShowHelp {
		status += " | a:add c:complete d:del tab:history ?:help q:quit"
	}
	status = statusBarStyle.Render(truncate(status, b.width))

	if b.err != nil {
		return errorStyle.Render(truncate("Error: "+b.err.Error(), b.width)) + "\n" + status
	}
	if b.status != "" {
		return okStyle.Render(truncate(b.status, b.width)) + "\n" + status
	}
	return status
}

func (b *Board) viewDeleteConfirm() string {
	content := errorStyle.Render("Delete task?") + "\n\n" +
		"  " + b.deleteTarget + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func (b *Board) viewClearConfirm() string {
	noun := "tasks"
	if b.clearCount == 1 {
		noun = "task"
	}
	content := errorStyle.Render("Clear history?") + "\n\n" +
		fmt.Sprintf("  %d completed %s will be removed.", b.clearCount, noun) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func (b *Board) viewHelp() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Keys"))
	sb.WriteString("\n\n")
	for _, kb := range keys.help() {
		h := kb.Help()
		fmt.Fprintf(&sb, "  %-12s %s\n", h.Key, h.Desc)
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("any key: back"))
	return dialogStyle.Render(sb.String())
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	// Slice by runes to avoid breaking multi-byte UTF-8 characters.
	runes := []rune(s)
	target := maxLen - 3 //nolint:mnd // room for "..."
	if target > len(runes) {
		target = len(runes)
	}
	// Trim runes from the end until the display width fits.
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
