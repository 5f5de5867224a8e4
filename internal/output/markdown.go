package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/twiced-technology-gmbh/todolist/internal/board"
	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

// ListsMarkdown builds a markdown report of both lists, pending tasks grouped by category.
func ListsMarkdown(l Lists) string {
	var sb strings.Builder
	sb.WriteString("# Pending\n\n")
	if len(l.Pending) == 0 {
		sb.WriteString("_No pending tasks._\n")
	}
	for i, g := range board.GroupByCategory(l.Pending) {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n", g.Label)
		for _, e := range g.Tasks {
			fmt.Fprintf(&sb, "- [ ] %s\n", e)
		}
	}
	if len(l.Completed) > 0 {
		sb.WriteString("\n# History\n\n")
		for _, e := range l.Completed {
			fmt.Fprintf(&sb, "- [x] %s\n", strings.TrimPrefix(e, task.CompletionMarker))
		}
	}
	return sb.String()
}

// TaskMarkdown builds a markdown card describing one encoded task.
func TaskMarkdown(encoded string, today date.Date) string {
	body := strings.TrimPrefix(encoded, task.CompletionMarker)
	cat := task.CategoryOf(body)

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", task.CanonicalName(body))
	fmt.Fprintf(&sb, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Category | %s |\n", cat.Label())
	fmt.Fprintf(&sb, "| Rank | %d |\n", task.Rank(body))

	d := task.DueDate(body)
	switch {
	case d.IsMax():
		sb.WriteString("| Due | -- |\n")
	case d.Before(today.Time):
		fmt.Fprintf(&sb, "| Due | %s (overdue) |\n", d)
	default:
		fmt.Fprintf(&sb, "| Due | %s |\n", d)
	}
	if body != encoded {
		sb.WriteString("| Status | completed |\n")
	}

	fmt.Fprintf(&sb, "\n```\n%s\n```\n", encoded)
	return sb.String()
}

// RenderMarkdown renders md for a terminal using the named glamour style.
// width <= 0 leaves wrapping to glamour's default.
func RenderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// Markdown writes the rendered markdown report of l.
func Markdown(w io.Writer, l Lists, style string) error {
	out, err := RenderMarkdown(ListsMarkdown(l), style, 0)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
