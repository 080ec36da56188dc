// Package tui provides the interactive Bubble Tea day view for calburn.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/calburn/internal/cli"
	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/session"
	"github.com/theirongolddev/calburn/internal/tui/components"
	"github.com/theirongolddev/calburn/internal/tui/theme"
)

// logResultMsg is sent when a logging attempt finishes.
type logResultMsg struct {
	res session.Result
}

// focus identifies which pane receives key input.
type focus int

const (
	focusInput focus = iota
	focusList
)

const minTerminalWidth = 60

// App is the root Bubble Tea model.
type App struct {
	ctrl *session.Controller

	input      textinput.Model
	spin       spinner.Model
	processing bool
	status     string // transient outcome line under the input
	statusErr  bool

	focus    focus
	selected int // entry list cursor

	width  int
	height int
}

// NewApp creates the day view bound to a session controller.
func NewApp(ctrl *session.Controller) App {
	ti := textinput.New()
	ti.Placeholder = "Describe food or activity... (\"2 eggs\", \"30 mins running\")"
	ti.CharLimit = 280
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{ctrl: ctrl, input: ti, spin: sp}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case logResultMsg:
		a.processing = false
		a.status, a.statusErr = outcomeStatus(msg.res)
		if msg.res.Outcome == session.OutcomeApplied {
			a.input.SetValue("")
		}
		return a, nil

	case spinner.TickMsg:
		if !a.processing {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit

	case "tab":
		if a.focus == focusInput {
			a.focus = focusList
			a.input.Blur()
		} else {
			a.focus = focusInput
			a.input.Focus()
		}
		return a, nil

	case "enter":
		if a.focus != focusInput || a.processing {
			return a, nil
		}
		text := strings.TrimSpace(a.input.Value())
		if text == "" {
			return a, nil
		}
		a.processing = true
		a.status = ""
		return a, tea.Batch(a.spin.Tick, submitCmd(a.ctrl, text))
	}

	if a.focus == focusList {
		return a.handleListKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := a.ctrl.DayEntries()

	switch msg.String() {
	case "left", "h":
		a.ctrl.ChangeDay(-1)
		a.selected = 0
	case "right", "l":
		a.ctrl.ChangeDay(1)
		a.selected = 0
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(entries)-1 {
			a.selected++
		}
	case "d", "backspace":
		if a.selected >= 0 && a.selected < len(entries) {
			if err := a.ctrl.DeleteEntry(entries[a.selected].ID); err != nil {
				a.status = "Could not save the change. Please try again."
				a.statusErr = true
			}
			if a.selected > 0 {
				a.selected--
			}
		}
	}

	return a, nil
}

// submitCmd runs the logging pipeline off the UI loop.
func submitCmd(ctrl *session.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		return logResultMsg{res: ctrl.LogUtterance(context.Background(), text)}
	}
}

func outcomeStatus(res session.Result) (string, bool) {
	switch res.Outcome {
	case session.OutcomeApplied:
		if len(res.Entries) == 1 {
			return fmt.Sprintf("Logged %s.", res.Entries[0].Item), false
		}
		return fmt.Sprintf("Logged %d items.", len(res.Entries)), false
	case session.OutcomeNotUnderstood:
		return "I couldn't understand that. Try \"2 eggs\" or \"30 mins running\".", true
	case session.OutcomeEmptyInput:
		return "Type something first.", true
	case session.OutcomeBusy:
		return "Still working on the last one.", true
	default:
		return "Something went wrong. Please try again.", true
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.width > 0 && a.width < minTerminalWidth {
		return "\n  Terminal too narrow for calburn (need 60 cols).\n"
	}

	t := theme.Active
	width := a.width
	if width <= 0 {
		width = 80
	}

	summary := a.ctrl.Summary()
	budget := a.ctrl.Budget()
	entries := a.ctrl.DayEntries()

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString("\n")

	// Header: navigated day and the fixed target
	dateLabel := cli.FormatViewDate(a.ctrl.ViewDate(), time.Now())
	header := titleStyle.Render("  ◀ "+dateLabel+" ▶") +
		mutedStyle.Render(fmt.Sprintf("   net target %s kcal, deficit goal %d",
			cli.FormatCalories(budget.DailyBudget), budget.TargetDeficit))
	b.WriteString(header)
	b.WriteString("\n\n")

	// Gauge and balance
	b.WriteString("  " + components.BudgetGauge(summary, width-4))
	b.WriteString("\n")
	b.WriteString(components.BalanceRow(summary, width))
	b.WriteString("\n")
	tierStyle := lipgloss.NewStyle().Foreground(components.TierColor(summary.Tier))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(tierStyle.Render(cli.TierLabel(summary.Tier))))
	b.WriteString("\n\n")

	// Entry list
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  Logs for %s", dateLabel)))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("    No entries for this day. Try \"I ate an apple\"."))
		b.WriteString("\n")
	}
	for i, e := range entries {
		b.WriteString(a.renderEntry(e, i == a.selected && a.focus == focusList))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Input line
	if a.processing {
		b.WriteString("  " + a.spin.View() + " thinking...")
	} else {
		b.WriteString("  " + a.input.View())
	}
	b.WriteString("\n")

	// Status line
	if a.status != "" {
		style := mutedStyle
		if a.statusErr {
			style = lipgloss.NewStyle().Foreground(t.Red)
		}
		b.WriteString("  " + style.Render(a.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  tab focus · ←/→ day · ↑/↓ select · d delete · enter log · esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (a App) renderEntry(e model.Entry, selected bool) string {
	t := theme.Active

	sign := "+"
	calColor := t.Red
	if e.Type == model.EntryExercise {
		sign = "-"
		calColor = t.Green
	}

	line := fmt.Sprintf("    %s  %-24s %-14s %s%s kcal",
		cli.FormatClock(e.Timestamp),
		truncate(e.Item, 24),
		truncate(e.Quantity, 14),
		sign,
		cli.FormatCalories(e.Calories),
	)

	if selected {
		return lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Render(line)
	}
	return lipgloss.NewStyle().Foreground(t.TextMuted).Render(line[:len("    ")]) +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(line[len("    "):strings.LastIndex(line, sign)]) +
		lipgloss.NewStyle().Foreground(calColor).Render(line[strings.LastIndex(line, sign):])
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
