package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/tui"
	"github.com/theirongolddev/calburn/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive day view",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s.ctrl)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
