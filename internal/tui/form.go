package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twiced-technology-gmbh/todolist/internal/board"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

// Form field indexes.
const (
	fieldTitle = iota
	fieldDescription
	fieldDue
	fieldCount
)

const formInputWidth = 40

// form collects the raw fields of a new task.
type form struct {
	inputs   []textinput.Model
	focus    int
	category task.Category
	err      error
}

func newForm(category task.Category) form {
	labels := [fieldCount]struct{ prompt, placeholder string }{
		fieldTitle:       {"Title       ", "Comprar pan"},
		fieldDescription: {"Description ", "optional"},
		fieldDue:         {"Due         ", "dd/mm/yyyy (optional)"},
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = labels[i].prompt
		in.Placeholder = labels[i].placeholder
		in.Width = formInputWidth
		in.CharLimit = 200
		inputs[i] = in
	}
	inputs[fieldDue].CharLimit = len("dd/mm/yyyy")
	inputs[fieldTitle].Focus()

	return form{inputs: inputs, category: category}
}

// input returns the form contents as raw board input.
func (f *form) input() board.Input {
	return board.Input{
		Title:       f.inputs[fieldTitle].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Due:         f.inputs[fieldDue].Value(),
		Category:    string(f.category),
	}
}

// update handles navigation keys and forwards everything else to the focused input.
func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.setFocus((f.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
	case "ctrl+t":
		f.category = f.category.Next()
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

func (f *form) view(width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("New task"))
	sb.WriteString("\n\n")
	for _, in := range f.inputs {
		sb.WriteString(in.View())
		sb.WriteString("\n")
	}

	sb.WriteString("Category    ")
	for i, c := range task.Categories() {
		if i > 0 {
			sb.WriteString("  ")
		}
		label := c.Label()
		if c == f.category {
			label = rankStyle(c.Rank()).Bold(true).Render("[" + label + "]")
		} else {
			label = dimStyle.Render(" " + label + " ")
		}
		sb.WriteString(label)
	}
	sb.WriteString("\n\n")

	if p := f.preview(); p != "" {
		sb.WriteString(dimStyle.Render(truncate(p, formInputWidth+20))) //nolint:mnd // dialog content width
		sb.WriteString("\n\n")
	}
	if f.err != nil {
		sb.WriteString(errorStyle.Render(f.err.Error()))
		sb.WriteString("\n\n")
	}
	sb.WriteString(statusBarStyle.Render("tab: next field  ctrl+t: category  enter: save  esc: cancel"))

	w := formInputWidth + 24 //nolint:mnd // prompt and padding
	if width > 0 && width-4 < w {
		w = width - 4 //nolint:mnd // border and margin
	}
	return dialogStyle.Width(w).Render(sb.String())
}

// preview returns the undated encoding of the current input, or "" without a title.
func (f *form) preview() string {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		return ""
	}
	return task.Encode(title, strings.TrimSpace(f.inputs[fieldDescription].Value()), nil, f.category)
}
