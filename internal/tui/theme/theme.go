// Package theme defines color themes for the calburn TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Background  lipgloss.Color // main app background
	Surface     lipgloss.Color // panel backgrounds
	Border      lipgloss.Color // subtle borders
	TextDim     lipgloss.Color // lowest contrast text (hints, disabled)
	TextMuted   lipgloss.Color // secondary text (labels, metadata)
	TextPrimary lipgloss.Color // primary content text
	Accent      lipgloss.Color // active states, focus
	Green       lipgloss.Color // on-track tier
	Orange      lipgloss.Color // warning tier
	Red         lipgloss.Color // over-budget tier, errors
	Blue        lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Background:  lipgloss.Color("#100F0F"),
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Green:       lipgloss.Color("#879A39"),
	Orange:      lipgloss.Color("#DA702C"),
	Red:         lipgloss.Color("#D14D41"),
	Blue:        lipgloss.Color("#4385BE"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Background:  lipgloss.Color("#1E1E2E"),
	Surface:     lipgloss.Color("#313244"),
	Border:      lipgloss.Color("#585B70"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextMuted:   lipgloss.Color("#A6ADC8"),
	TextPrimary: lipgloss.Color("#CDD6F4"),
	Accent:      lipgloss.Color("#89B4FA"),
	Green:       lipgloss.Color("#A6E3A1"),
	Orange:      lipgloss.Color("#FAB387"),
	Red:         lipgloss.Color("#F38BA8"),
	Blue:        lipgloss.Color("#89B4FA"),
}

// Terminal uses the 16 ANSI colors so it follows the user's palette.
var Terminal = Theme{
	Name:        "terminal",
	Background:  lipgloss.Color("0"),
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Green:       lipgloss.Color("2"),
	Orange:      lipgloss.Color("3"),
	Red:         lipgloss.Color("1"),
	Blue:        lipgloss.Color("4"),
}

// All lists the selectable themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Terminal}

// SetActive switches the active theme by name. Unknown names keep the
// current theme.
func SetActive(name string) {
	for _, t := range All {
		if t.Name == name {
			Active = t
			return
		}
	}
}
