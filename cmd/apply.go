package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/todolist/internal/board"
	"github.com/twiced-technology-gmbh/todolist/internal/clierr"
	"github.com/twiced-technology-gmbh/todolist/internal/config"
	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/output"
	"github.com/twiced-technology-gmbh/todolist/internal/store"
)

// Script operations.
const (
	opAdd          = "add"
	opComplete     = "complete"
	opDelete       = "delete"
	opClearHistory = "clear-history"
)

var applyCmd = &cobra.Command{
	Use:   "apply FILE|-",
	Short: "Run a scripted session",
	Long: `Runs a YAML list of operations against a fresh task list and prints the result.

Each step names an op (add, complete, delete, clear-history). add takes title,
description, due (dd/mm/yyyy) and category; complete and delete take the title
of a pending task. Use - to read the script from stdin.

  - op: add
    title: Comprar pan
    due: 20/10/2026
    category: today
  - op: complete
    title: comprar pan`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().Bool("summary", false, "print category counts after the lists")
	rootCmd.AddCommand(applyCmd)
}

// scriptStep is one operation of an apply script.
type scriptStep struct {
	Op          string `yaml:"op"`
	board.Input `yaml:",inline"`
}

func runApply(cmd *cobra.Command, args []string) error {
	steps, err := readScript(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	b := board.New(cfg, store.New())
	results, anyFailed := runScript(b, steps)
	lists := output.Lists{
		Pending:   b.Pending(board.FilterOptions{}),
		Completed: b.Completed(board.FilterOptions{}),
	}

	if err := printApply(cmd, cfg, b, results, lists); err != nil {
		return err
	}

	if anyFailed {
		return &clierr.SilentError{Code: 1}
	}
	return nil
}

func readScript(name string) ([]scriptStep, error) {
	if name == "-" {
		return parseScript(os.Stdin)
	}
	f, err := os.Open(name) //nolint:gosec // script path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return parseScript(f)
}

// parseScript decodes a YAML list of steps. Unknown fields are rejected.
func parseScript(r io.Reader) ([]scriptStep, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var steps []scriptStep
	if err := dec.Decode(&steps); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, clierr.Newf(clierr.InvalidInput, "parsing script: %v", err)
	}
	return steps, nil
}

// runScript executes steps in order. A failed step is reported and the script continues.
func runScript(b *board.Board, steps []scriptStep) ([]output.BatchResult, bool) {
	results := make([]output.BatchResult, 0, len(steps))
	anyFailed := false

	for i, step := range steps {
		op := strings.ToLower(strings.TrimSpace(step.Op))
		encoded, err := runStep(b, op, step.Input)

		res := output.BatchResult{Step: i + 1, Op: op, Task: encoded, OK: err == nil}
		if err != nil {
			anyFailed = true
			if res.Task == "" {
				res.Task = strings.TrimSpace(step.Title)
			}
			var cliErr *clierr.Error
			if errors.As(err, &cliErr) {
				res.Error, res.Code = cliErr.Message, cliErr.Code
			} else {
				res.Error = err.Error()
			}
		}
		results = append(results, res)
	}
	return results, anyFailed
}

func runStep(b *board.Board, op string, in board.Input) (string, error) {
	switch op {
	case opAdd:
		return b.Add(in)
	case opComplete, opDelete:
		encoded, err := b.Resolve(in.Title)
		if err != nil {
			return "", err
		}
		if op == opComplete {
			return encoded, b.Complete(encoded)
		}
		return encoded, b.Delete(encoded)
	case opClearHistory:
		n := b.ClearHistory()
		return fmt.Sprintf("%d cleared", n), nil
	default:
		return "", clierr.Newf(clierr.InvalidInput, "unknown op %q (expected %s, %s, %s or %s)",
			op, opAdd, opComplete, opDelete, opClearHistory)
	}
}

func printApply(cmd *cobra.Command, cfg *config.Config, b *board.Board, results []output.BatchResult, lists output.Lists) error {
	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, output.ApplyReport{Results: results, Lists: lists})
	}

	var succeeded int
	for _, r := range results {
		if r.OK {
			succeeded++
		} else {
			fmt.Fprintf(os.Stderr, "Error: step %d (%s %s): %s\n", r.Step, r.Op, r.Task, r.Error)
		}
	}

	switch format {
	case output.FormatCompact:
		output.ListsCompact(os.Stdout, lists)
		return nil
	case output.FormatMarkdown:
		return output.Markdown(os.Stdout, lists, cfg.MarkdownStyle())
	}

	output.Messagef(os.Stdout, "Completed %d/%d operations\n", succeeded, len(results))
	output.ListsTable(os.Stdout, lists, date.Today())

	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		fmt.Fprintln(os.Stdout)
		output.OverviewTable(os.Stdout, b.Summary())
	}
	return nil
}
