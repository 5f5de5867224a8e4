package cmd

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/todolist/internal/board"
	"github.com/twiced-technology-gmbh/todolist/internal/clierr"
	"github.com/twiced-technology-gmbh/todolist/internal/config"
	"github.com/twiced-technology-gmbh/todolist/internal/store"
	"github.com/twiced-technology-gmbh/todolist/internal/tui"
	"github.com/twiced-technology-gmbh/todolist/internal/watcher"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive task list",
	Long:  `Opens the interactive task list. This is also what runs when no command is given.`,
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return clierr.New(clierr.NotATerminal,
			"the interactive list needs a terminal; use 'todolist apply' for scripted sessions")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model := tui.NewBoard(cfg, board.New(cfg, store.New()))
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startConfigWatcher(ctx, cfg.Dir(), cfg.ConfigPath(), p)

	_, err = p.Run()
	return err
}

// startConfigWatcher reloads the config into the running program whenever the file changes.
func startConfigWatcher(ctx context.Context, dir, path string, p *tea.Program) {
	w, err := watcher.New(path, func() {
		cfg, err := config.Load(dir)
		p.Send(tui.ConfigReloadMsg{Config: cfg, Err: err})
	})
	if err != nil {
		return // non-fatal: TUI works without live reload
	}
	defer w.Close()
	w.Run(ctx, nil)
}
