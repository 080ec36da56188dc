// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/calburn/internal/model"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCalories formats a kcal amount with separators.
func FormatCalories(n int) string {
	return FormatNumber(int64(n))
}

// FormatViewDate renders a navigated day relative to now.
// e.g., "Today", "Yesterday", "Jan 2, 2006"
func FormatViewDate(date, now time.Time) string {
	if sameDay(date, now) {
		return "Today"
	}
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	if sameDay(date, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	return date.Format("Jan 2, 2006")
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FormatClock renders the time-of-day an entry was logged.
func FormatClock(t time.Time) string {
	return t.Local().Format("3:04 PM")
}

// TierLabel returns the display label for a budget tier.
func TierLabel(tier model.Tier) string {
	switch tier {
	case model.TierGood:
		return "On track"
	case model.TierWarning:
		return "Close to budget"
	case model.TierOverBudget:
		return "Over budget"
	default:
		return string(tier)
	}
}

// TypeLabel returns the display label for an entry type.
func TypeLabel(typ model.EntryType) string {
	switch typ {
	case model.EntryFood:
		return "Food"
	case model.EntryExercise:
		return "Exercise"
	default:
		return string(typ)
	}
}

// ShortID abbreviates an entry id for table display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
