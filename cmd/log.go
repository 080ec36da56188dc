package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/cli"
	"github.com/theirongolddev/calburn/internal/dictation"
	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/session"
)

var logCmd = &cobra.Command{
	Use:   "log [text...]",
	Short: "Log food or exercise from a plain-language phrase",
	Long: `Log food or exercise from a plain-language phrase, e.g.

  calburn log 2 eggs and a 30 min run
  echo "a bowl of oatmeal" | calburn log -

With "-" the utterance is read from stdin (one line), which is how a
dictation bridge hands over its transcript.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if text == "-" {
		var err error
		text, err = readDictated()
		if err != nil {
			return err
		}
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res := s.ctrl.LogUtterance(cmd.Context(), text)
	switch res.Outcome {
	case session.OutcomeApplied:
		fmt.Println()
		for _, e := range res.Entries {
			sign := "+"
			if e.Type == model.EntryExercise {
				sign = "-"
			}
			fmt.Printf("  Logged %s (%s): %s%s kcal\n",
				e.Item, e.Quantity, sign, cli.FormatCalories(e.Calories))
		}
		printSummary(s)
	case session.OutcomeNotUnderstood:
		fmt.Println("\n  I couldn't understand that. Try \"2 eggs\" or \"30 mins running\".")
	case session.OutcomeEmptyInput:
		fmt.Println("\n  Nothing to log: the text is empty.")
	default:
		return fmt.Errorf("logging failed: %w", res.Err)
	}

	return nil
}

// readDictated collects one final utterance from stdin through the
// dictation source. The line itself is the explicit submit.
func readDictated() (string, error) {
	src := dictation.NewReaderSource(os.Stdin)

	final := make(chan string, 1)
	src.OnFinal(func(text string) {
		select {
		case final <- text:
		default:
		}
	})

	if err := src.Start(); err != nil {
		return "", err
	}
	defer func() { _ = src.Stop() }()

	select {
	case text := <-final:
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("no utterance on stdin")
		}
		return text, nil
	case <-src.Done():
		// Reader drained; a final utterance may still be buffered.
		select {
		case text := <-final:
			if strings.TrimSpace(text) != "" {
				return text, nil
			}
		default:
		}
		return "", fmt.Errorf("no utterance on stdin")
	}
}
