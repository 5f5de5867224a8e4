// Package config handles todolist configuration.
package config

import "github.com/twiced-technology-gmbh/todolist/internal/task"

const (
	// ConfigFileName is the name of the config file within the config directory.
	ConfigFileName = "config.yml"

	// DefaultHomeSubdir is the config directory below the user's home.
	DefaultHomeSubdir = ".config/todolist"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 2

	// DefaultCategory is the category preselected for new tasks.
	DefaultCategory = task.General

	// DefaultMarkdownStyle is the glamour style used for markdown rendering.
	DefaultMarkdownStyle = "dark"
)

// MarkdownStyles lists the glamour standard styles accepted by tui.markdown_style.
var MarkdownStyles = []string{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}
