package task

import (
	"strings"

	"github.com/twiced-technology-gmbh/todolist/internal/clierr"
	"github.com/twiced-technology-gmbh/todolist/internal/date"
)

// ValidateTitle checks that a title is non-empty and does not contain the
// separators the encoding relies on to recover the title. The due-date label is
// matched in any case since Important tasks are upper-cased when encoded.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return clierr.New(clierr.InvalidInput, "task title is required")
	}
	if strings.Contains(trimmed, DescriptionSeparator) {
		return reservedError("title", trimmed, DescriptionSeparator)
	}
	return checkDueLabel("title", trimmed)
}

// ValidateDescription rejects descriptions carrying a due-date label, which
// would be read back as the task's due date.
func ValidateDescription(description string) error {
	return checkDueLabel("description", strings.TrimSpace(description))
}

func checkDueLabel(field, s string) error {
	if strings.Contains(strings.ToUpper(s), strings.ToUpper(dueLabels[0])) {
		return reservedError(field, s, dueLabels[0])
	}
	return nil
}

func reservedError(field, value, sep string) *clierr.Error {
	return clierr.Newf(clierr.InvalidInput, "task %s cannot contain %q", field, sep).
		WithDetails(map[string]any{
			field:       value,
			"separator": sep,
		})
}

// ParseDue parses due-date input typed by the user. Empty input means no due
// date. When rejectPast is set, dates before today are refused.
func ParseDue(input string, today date.Date, rejectPast bool) (*date.Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil //nolint:nilnil // no due date is a valid outcome
	}
	d, err := date.Parse(input)
	if err != nil {
		return nil, ValidateDate("due", input, err)
	}
	if rejectPast && d.Before(today.Time) {
		return nil, ValidatePastDate(input, today)
	}
	return &d, nil
}

// ValidateDate returns a CLIError for invalid date input.
func ValidateDate(field, input string, err error) *clierr.Error {
	return clierr.Newf(clierr.InvalidDate, "invalid %s date: %v", field, err).
		WithDetails(map[string]any{
			"field": field,
			"input": input,
		})
}

// ValidatePastDate returns a CLIError for a due date before today.
func ValidatePastDate(input string, today date.Date) *clierr.Error {
	return clierr.Newf(clierr.PastDate, "due date %s is in the past (today is %s)", input, today).
		WithDetails(map[string]any{
			"input": input,
			"today": today.String(),
		})
}

// ValidateDuplicate returns a CLIError for a title that is already pending.
func ValidateDuplicate(title string) *clierr.Error {
	return clierr.Newf(clierr.DuplicateTask, "task %q already exists", strings.TrimSpace(title)).
		WithDetails(map[string]any{"identity": Identity(title)})
}

// ValidateNotFound returns a CLIError for a task that is not pending.
func ValidateNotFound(ref string) *clierr.Error {
	return clierr.Newf(clierr.TaskNotFound, "task not found: %s", ref).
		WithDetails(map[string]any{"task": ref})
}
