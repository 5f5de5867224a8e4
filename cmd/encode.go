package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/output"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

var encodeCmd = &cobra.Command{
	Use:   "encode TITLE",
	Short: "Show how a task would be encoded",
	Long: `Prints the display string a task would get, together with the rank, the due date
used for ordering, and the canonical name recovered from the string.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().String("description", "", "task description")
	encodeCmd.Flags().String("due", "", "due date (dd/mm/yyyy)")
	encodeCmd.Flags().String("category", "", "important, today or general (default from config)")
	encodeCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "desc":
			name = "description"
		case "cat":
			name = "category"
		}
		return pflag.NormalizedName(name)
	})
	rootCmd.AddCommand(encodeCmd)
}

// encodeResult is the JSON shape of the encode command.
type encodeResult struct {
	Encoded   string        `json:"encoded"`
	Category  task.Category `json:"category"`
	Rank      int           `json:"rank"`
	Due       *date.Date    `json:"due"`
	Canonical string        `json:"canonical"`
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	title := strings.TrimSpace(args[0])
	if err := task.ValidateTitle(title); err != nil {
		return err
	}

	dueFlag, _ := cmd.Flags().GetString("due")
	due, err := task.ParseDue(dueFlag, date.Today(), cfg.PastDatesRejected())
	if err != nil {
		return err
	}

	cat := cfg.NewTaskCategory()
	if c, _ := cmd.Flags().GetString("category"); strings.TrimSpace(c) != "" {
		cat = task.ParseCategory(c)
	}
	desc, _ := cmd.Flags().GetString("description")
	if err := task.ValidateDescription(desc); err != nil {
		return err
	}

	t := task.Task{Title: title, Description: strings.TrimSpace(desc), Due: due, Category: cat}
	encoded := t.Encode()
	res := encodeResult{
		Encoded:   encoded,
		Category:  cat,
		Rank:      task.Rank(encoded),
		Canonical: task.CanonicalName(encoded),
	}
	if d := task.DueDate(encoded); !d.IsMax() {
		res.Due = &d
	}

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, res)
	case output.FormatCompact:
		output.Messagef(os.Stdout, "%s", encoded)
		return nil
	}

	sortDue := "--"
	if res.Due != nil {
		sortDue = res.Due.String()
	}
	output.Messagef(os.Stdout, "Encoded:   %s", encoded)
	output.Messagef(os.Stdout, "Category:  %s", cat.Label())
	output.Messagef(os.Stdout, "Rank:      %d", res.Rank)
	output.Messagef(os.Stdout, "Due:       %s", sortDue)
	output.Messagef(os.Stdout, "Canonical: %s", res.Canonical)
	return nil
}
