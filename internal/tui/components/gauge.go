// Package components holds reusable TUI widgets.
package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/tui/theme"
)

// TierColor returns the status color for a budget tier.
func TierColor(tier model.Tier) lipgloss.Color {
	t := theme.Active
	switch tier {
	case model.TierWarning:
		return t.Orange
	case model.TierOverBudget:
		return t.Red
	default:
		return t.Green
	}
}

// BudgetGauge renders the remaining-budget gauge, colored by tier, with the
// remaining kcal readout. The terminal stand-in for the progress ring.
func BudgetGauge(summary model.DaySummary, width int) string {
	t := theme.Active

	barW := width - 12
	if barW < 10 {
		barW = 10
	}

	bar := progress.New(
		progress.WithSolidFill(string(TierColor(summary.Tier))),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(TierColor(summary.Tier)).Bold(true)

	return bar.ViewAs(summary.Percentage/100) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", summary.Percentage))
}

// BalanceRow renders the eaten / burned / left readout line.
func BalanceRow(summary model.DaySummary, width int) string {
	t := theme.Active

	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	eaten := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	burned := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	left := lipgloss.NewStyle().Foreground(TierColor(summary.Tier)).Bold(true)

	cells := lipgloss.JoinHorizontal(lipgloss.Top,
		label.Render("Eaten ")+eaten.Render(fmt.Sprintf("%d", summary.Consumed)),
		label.Render("   Burned ")+burned.Render(fmt.Sprintf("%d", summary.Burned)),
		label.Render("   Left ")+left.Render(fmt.Sprintf("%d", summary.Remaining)),
	)

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(cells)
}
