package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/todolist/internal/board"
	"github.com/twiced-technology-gmbh/todolist/internal/clierr"
	"github.com/twiced-technology-gmbh/todolist/internal/output"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the activity log",
	Long: `Prints the entries recorded in the activity log, oldest first.
The log is only written when activity_log is set in the config.`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntP("limit", "n", 0, "show only the newest N entries")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.ActivityLogPath()
	if path == "" {
		return clierr.New(clierr.InvalidInput,
			"activity log is disabled (set it with: todolist config set activity_log activity.jsonl)")
	}

	entries, err := board.ReadLog(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	if outputFormat() == output.FormatJSON {
		if entries == nil {
			entries = []board.LogEntry{}
		}
		return output.JSON(os.Stdout, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No activity recorded.")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-13s %s", e.Timestamp.Local().Format(time.DateTime), e.Action, e.Task)
		if e.Detail != "" {
			line += "  (" + e.Detail + ")"
		}
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}
