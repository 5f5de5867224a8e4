package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/twiced-technology-gmbh/todolist/internal/board"
	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

const maxTaskWidth = 60

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// Rank colors aligned with the TUI palette.
	rankStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
)

// DisableColor strips all styling from table output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	overdueStyle = lipgloss.NewStyle()
	rankStyles = map[int]lipgloss.Style{}
}

// ListsTable renders the pending list and, when not empty, the history.
func ListsTable(w io.Writer, l Lists, today date.Date) {
	if len(l.Pending) == 0 {
		fmt.Fprintln(os.Stderr, "No pending tasks.")
	} else {
		TaskTable(w, l.Pending, today)
	}

	if len(l.Completed) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("HISTORY"))
	for _, e := range l.Completed {
		fmt.Fprintln(w, "  "+dimStyle.Render(truncate(e, maxTaskWidth)))
	}
}

// TaskTable renders pending encoded tasks as a numbered table with a due column.
func TaskTable(w io.Writer, pending []string, today date.Date) {
	const pad = 2
	idxW, taskW := 3, 6
	for i, e := range pending {
		idxW = max(idxW, len(strconv.Itoa(i+1))+pad)
		taskW = max(taskW, min(lipgloss.Width(e)+pad, maxTaskWidth+pad))
	}

	header := fmt.Sprintf("%-*s %-*s %s", idxW, "#", taskW, "TASK", "DUE")
	fmt.Fprintln(w, headerStyle.Render(header))

	for i, e := range pending {
		text := truncate(e, maxTaskWidth)
		if st, ok := rankStyles[task.Rank(e)]; ok {
			text = st.Render(text)
		}

		row := fmt.Sprintf("%-*d %s %s", idxW, i+1, padRight(text, taskW), dueCell(e, today))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// OverviewTable renders a board summary.
func OverviewTable(w io.Writer, s board.Overview) {
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render("todolist"))
	fmt.Fprintf(w, "Pending: %d  Completed: %d  Overdue: %d  Due today: %d\n\n",
		s.Pending, s.Completed, s.Overdue, s.DueToday)

	header := fmt.Sprintf("%-16s %6s", "CATEGORY", "COUNT")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, cc := range s.Categories {
		const catColW = 16
		label := cc.Label
		if st, ok := rankStyles[cc.Category.Rank()]; ok {
			label = st.Render(label)
		}
		fmt.Fprintf(w, "%s %6d\n", padRight(label, catColW), cc.Count)
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func dueCell(encoded string, today date.Date) string {
	d := task.DueDate(encoded)
	if d.IsMax() {
		return dimStyle.Render("--")
	}
	if d.Before(today.Time) {
		return overdueStyle.Render(d.String())
	}
	return d.String()
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// truncate shortens s to maxLen visible cells, ending with "...".
func truncate(s string, maxLen int) string {
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	target := len(runes)
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
