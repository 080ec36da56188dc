package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/cli"
	"github.com/theirongolddev/calburn/internal/model"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List the view date's logged entries",
	RunE:  runEntries,
}

func init() {
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	entries := s.ctrl.DayEntries()
	dateLabel := cli.FormatViewDate(s.ctrl.ViewDate(), time.Now())

	if len(entries) == 0 {
		fmt.Printf("\n  No entries for %s.\n", dateLabel)
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		sign := "+"
		if e.Type == model.EntryExercise {
			sign = "-"
		}
		rows = append(rows, []string{
			cli.ShortID(e.ID),
			cli.TypeLabel(e.Type),
			cli.FormatClock(e.Timestamp),
			e.Item,
			e.Quantity,
			sign + cli.FormatCalories(e.Calories),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ENTRIES  %s", dateLabel)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Type", "Time", "Item", "Quantity", "kcal"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
