package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged entry by id",
	Long:  "Delete a logged entry. Accepts the full id or the 8-char prefix shown by `calburn entries`.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	id := args[0]

	// Resolve a prefix against the view date's entries.
	if len(id) < 36 {
		matches := 0
		for _, e := range s.ctrl.DayEntries() {
			if strings.HasPrefix(e.ID, id) {
				id = e.ID
				matches++
			}
		}
		if matches > 1 {
			return fmt.Errorf("id prefix %q is ambiguous", args[0])
		}
	}

	if err := s.ctrl.DeleteEntry(id); err != nil {
		return err
	}

	fmt.Println("\n  Deleted.")
	printSummary(s)
	return nil
}
