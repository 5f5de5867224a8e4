// Package output handles formatting CLI output as table, JSON, compact, or markdown.
package output

import (
	"os"
)

// Format represents an output format.
type Format int

const (
	// FormatAuto uses the default format (table).
	FormatAuto Format = iota
	// FormatJSON outputs JSON.
	FormatJSON
	// FormatTable outputs a human-readable table.
	FormatTable
	// FormatCompact outputs one encoded task per line.
	FormatCompact
	// FormatMarkdown outputs a rendered markdown report.
	FormatMarkdown
)

// EnvOutput names the environment variable that selects a default format.
const EnvOutput = "TODOLIST_OUTPUT"

// Detect returns the appropriate format based on flags and environment.
// Default is table when no explicit format is set.
func Detect(jsonFlag, compactFlag, markdownFlag bool) Format {
	if jsonFlag {
		return FormatJSON
	}
	if compactFlag {
		return FormatCompact
	}
	if markdownFlag {
		return FormatMarkdown
	}

	switch os.Getenv(EnvOutput) {
	case "json":
		return FormatJSON
	case "compact", "oneline":
		return FormatCompact
	case "markdown", "md":
		return FormatMarkdown
	case "table":
		return FormatTable
	}

	return FormatTable
}

// Lists is the pair of task lists rendered by every format.
type Lists struct {
	Pending   []string `json:"pending"`
	Completed []string `json:"completed"`
}
