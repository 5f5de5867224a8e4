package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/todolist/internal/clierr"
	"github.com/twiced-technology-gmbh/todolist/internal/config"
	"github.com/twiced-technology-gmbh/todolist/internal/filelock"
	"github.com/twiced-technology-gmbh/todolist/internal/output"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

const lockFileName = ".lock"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify configuration",
	Long:  `View the full configuration, get a specific key, or set a writable value.`,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configAccessor describes how to get and set a config key.
type configAccessor struct {
	get      func(*config.Config) any
	set      func(*config.Config, string) error
	writable bool
}

func configAccessors() map[string]configAccessor {
	return map[string]configAccessor{
		"version": {
			get: func(c *config.Config) any { return c.Version },
		},
		"default_category": {
			get: func(c *config.Config) any { return c.DefaultCategory },
			set: func(c *config.Config, v string) error {
				if !task.IsKnownCategory(v) {
					return clierr.Newf(clierr.InvalidInput,
						"invalid default category %q; allowed: %s", v, strings.Join(categoryNames(), ", "))
				}
				c.DefaultCategory = task.ParseCategory(v)
				return nil
			},
			writable: true,
		},
		"reject_past_dates": {
			get: func(c *config.Config) any { return c.PastDatesRejected() },
			set: func(c *config.Config, v string) error {
				b, err := parseBool("reject_past_dates", v)
				if err != nil {
					return err
				}
				c.RejectPastDates = &b
				return nil
			},
			writable: true,
		},
		"confirm.delete": {
			get: func(c *config.Config) any { return c.Confirm.Delete },
			set: func(c *config.Config, v string) error {
				b, err := parseBool("confirm.delete", v)
				c.Confirm.Delete = b
				return err
			},
			writable: true,
		},
		"confirm.clear_history": {
			get: func(c *config.Config) any { return c.Confirm.ClearHistory },
			set: func(c *config.Config, v string) error {
				b, err := parseBool("confirm.clear_history", v)
				c.Confirm.ClearHistory = b
				return err
			},
			writable: true,
		},
		"activity_log": {
			get:      func(c *config.Config) any { return c.ActivityLog },
			set:      func(c *config.Config, v string) error { c.ActivityLog = v; return nil },
			writable: true,
		},
		"tui.show_help": {
			get: func(c *config.Config) any { return c.TUI.ShowHelp },
			set: func(c *config.Config, v string) error {
				b, err := parseBool("tui.show_help", v)
				c.TUI.ShowHelp = b
				return err
			},
			writable: true,
		},
		"tui.markdown_style": {
			get: func(c *config.Config) any { return c.MarkdownStyle() },
			set: func(c *config.Config, v string) error {
				if config.IndexOf(config.MarkdownStyles, v) < 0 {
					return clierr.Newf(clierr.InvalidInput,
						"invalid tui.markdown_style %q; allowed: %s", v, strings.Join(config.MarkdownStyles, ", "))
				}
				c.TUI.MarkdownStyle = v
				return nil
			},
			writable: true,
		},
	}
}

// allConfigKeys returns config keys in display order.
func allConfigKeys() []string {
	return []string{
		"version",
		"default_category",
		"reject_past_dates",
		"confirm.delete",
		"confirm.clear_history",
		"activity_log",
		"tui.show_help",
		"tui.markdown_style",
	}
}

func lookupAccessor(key string) (configAccessor, error) {
	acc, ok := configAccessors()[key]
	if !ok {
		return configAccessor{}, clierr.Newf(clierr.InvalidConfigKey, "unknown config key %q", key).
			WithDetails(map[string]any{"key": key, "valid": allConfigKeys()})
	}
	return acc, nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accessors := configAccessors()

	if outputFormat() == output.FormatJSON {
		m := make(map[string]any, len(accessors))
		for _, key := range allConfigKeys() {
			m[key] = accessors[key].get(cfg)
		}
		return output.JSON(os.Stdout, m)
	}

	// Table mode: key-value pairs.
	for _, key := range allConfigKeys() {
		val := accessors[key].get(cfg)
		fmt.Fprintf(os.Stdout, "%-22s %v\n", key, formatConfigValue(val))
	}
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	acc, err := lookupAccessor(args[0])
	if err != nil {
		return err
	}

	val := acc.get(cfg)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, val)
	}

	fmt.Fprintln(os.Stdout, formatConfigValue(val))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	acc, err := lookupAccessor(key)
	if err != nil {
		return err
	}
	if !acc.writable {
		return clierr.Newf(clierr.InvalidConfigKey, "config key %q is read-only", key)
	}

	dir, err := resolveDir()
	if err != nil {
		return err
	}

	cfg, err := setConfigValue(dir, acc, value)
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{"key": key, "value": acc.get(cfg)})
	}

	output.Messagef(os.Stdout, "Set %s = %v", key, formatConfigValue(acc.get(cfg)))
	return nil
}

// setConfigValue applies one accessor change to the config in dir and saves it.
// The read-modify-write runs under the directory lock so concurrent sets do not
// overwrite each other.
func setConfigValue(dir string, acc configAccessor, value string) (*config.Config, error) {
	const dirMode = 0o750
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	var cfg *config.Config
	err := filelock.With(filepath.Join(dir, lockFileName), func() error {
		var err error
		cfg, err = config.LoadOrDefault(dir)
		if err != nil {
			return err
		}
		if err := acc.set(cfg, value); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, clierr.Newf(clierr.InvalidInput, "invalid %s %q: must be true or false", key, v)
	}
	return b, nil
}

func categoryNames() []string {
	cats := task.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

func formatConfigValue(val any) string {
	switch v := val.(type) {
	case []string:
		return strings.Join(v, ", ")
	case string:
		if v == "" {
			return "--"
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
