package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("no todolist config found (run 'todolist init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the todolist configuration.
type Config struct {
	Version         int           `yaml:"version"`
	DefaultCategory task.Category `yaml:"default_category"`
	RejectPastDates *bool         `yaml:"reject_past_dates,omitempty"`
	Confirm         ConfirmConfig `yaml:"confirm"`
	ActivityLog     string        `yaml:"activity_log,omitempty"`
	TUI             TUIConfig     `yaml:"tui,omitempty"`

	// dir is the absolute path to the config directory (not serialized).
	dir string `yaml:"-"`
}

// ConfirmConfig controls which destructive actions ask for confirmation.
type ConfirmConfig struct {
	Delete       bool `yaml:"delete"`
	ClearHistory bool `yaml:"clear_history"`
}

// TUIConfig holds TUI-specific display settings.
type TUIConfig struct {
	ShowHelp      bool   `yaml:"show_help,omitempty"`
	MarkdownStyle string `yaml:"markdown_style,omitempty"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:         CurrentVersion,
		DefaultCategory: DefaultCategory,
		RejectPastDates: boolPtr(true),
		Confirm: ConfirmConfig{
			Delete:       true,
			ClearHistory: true,
		},
		TUI: TUIConfig{MarkdownStyle: DefaultMarkdownStyle},
	}
}

// Dir returns the absolute path to the config directory.
func (c *Config) Dir() string {
	return c.dir
}

// SetDir sets the config directory path.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// ActivityLogPath returns the activity log path, resolved against the config
// directory when relative. Empty means the activity log is disabled.
func (c *Config) ActivityLogPath() string {
	if c.ActivityLog == "" || filepath.IsAbs(c.ActivityLog) {
		return c.ActivityLog
	}
	return filepath.Join(c.dir, c.ActivityLog)
}

// PastDatesRejected reports whether due dates before today are refused.
// Defaults to true when unset.
func (c *Config) PastDatesRejected() bool {
	if c.RejectPastDates == nil {
		return true
	}
	return *c.RejectPastDates
}

// NewTaskCategory returns the category preselected for new tasks.
func (c *Config) NewTaskCategory() task.Category {
	return task.ParseCategory(string(c.DefaultCategory))
}

// MarkdownStyle returns the glamour style name, falling back to the default.
func (c *Config) MarkdownStyle() string {
	if c.TUI.MarkdownStyle == "" {
		return DefaultMarkdownStyle
	}
	return c.TUI.MarkdownStyle
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if !task.IsKnownCategory(string(c.DefaultCategory)) {
		return fmt.Errorf("%w: unknown default_category %q", ErrInvalid, c.DefaultCategory)
	}
	if c.TUI.MarkdownStyle != "" && IndexOf(MarkdownStyles, c.TUI.MarkdownStyle) < 0 {
		return fmt.Errorf("%w: unknown tui.markdown_style %q", ErrInvalid, c.TUI.MarkdownStyle)
	}
	return nil
}

// Init writes a default config into dir, creating the directory if needed.
func Init(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault()
	cfg.SetDir(absDir)

	if err := os.MkdirAll(absDir, dirMode); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.dir = absDir

	// Migrate old config versions forward before validating.
	oldVersion := cfg.Version
	if err := migrate(&cfg); err != nil {
		return nil, err
	}

	// Persist migrated config so future loads skip re-migration.
	if cfg.Version != oldVersion {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving migrated config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads the config from dir, or returns defaults bound to dir
// when no config file exists yet. Nothing is written.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	absDir, absErr := filepath.Abs(dir)
	if absErr != nil {
		return nil, fmt.Errorf("resolving path: %w", absErr)
	}
	cfg = NewDefault()
	cfg.SetDir(absDir)
	return cfg, nil
}

// IndexOf returns the index of item in slice, or -1 if not found.
func IndexOf(slice []string, item string) int {
	for i, s := range slice {
		if s == item {
			return i
		}
	}
	return -1
}

// boolPtr returns a pointer to the given bool value.
func boolPtr(v bool) *bool { return &v }
