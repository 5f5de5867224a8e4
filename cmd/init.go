package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/todolist/internal/clierr"
	"github.com/twiced-technology-gmbh/todolist/internal/config"
	"github.com/twiced-technology-gmbh/todolist/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Creates the config directory and writes config.yml with default settings.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(filepath.Join(absDir, config.ConfigFileName)); err == nil && !force {
		return clierr.Newf(clierr.InvalidInput, "config already exists in %s (use --force to overwrite)", absDir).
			WithDetails(map[string]any{"dir": absDir})
	}

	cfg, err := config.Init(absDir)
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{
			"status": "initialized",
			"dir":    absDir,
			"config": cfg.ConfigPath(),
		})
	}

	output.Messagef(os.Stdout, "Initialized todolist in %s", absDir)
	output.Messagef(os.Stdout, "  Config: %s", cfg.ConfigPath())
	return nil
}
