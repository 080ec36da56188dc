// Package pipeline computes derived energy-balance summaries from entries.
package pipeline

import (
	"sort"

	"github.com/theirongolddev/calburn/internal/model"
)

// Tier thresholds, in kcal remaining. Fixed policy constants.
const (
	goodThreshold = 500
	warnThreshold = 0
)

// Summarize computes the energy balance for one day's entries against the
// budget. Pure and order-independent: permuting entries yields the same
// summary. Remaining is never clamped; Percentage is clamped to [0, 100]
// for display only.
func Summarize(entries []model.Entry, budget model.Budget) model.DaySummary {
	var consumed, burned int
	for _, e := range entries {
		switch e.Type {
		case model.EntryFood:
			consumed += e.Calories
		case model.EntryExercise:
			burned += e.Calories
		}
	}

	remaining := budget.DailyBudget + burned - consumed

	var pct float64
	if budget.DailyBudget > 0 {
		pct = float64(remaining) / float64(budget.DailyBudget) * 100
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return model.DaySummary{
		Consumed:   consumed,
		Burned:     burned,
		Remaining:  remaining,
		Percentage: pct,
		Tier:       tierFor(remaining),
	}
}

func tierFor(remaining int) model.Tier {
	switch {
	case remaining >= goodThreshold:
		return model.TierGood
	case remaining >= warnThreshold:
		return model.TierWarning
	default:
		return model.TierOverBudget
	}
}

// SortForDisplay returns the entries ordered by logging time, oldest first.
// The sort is stable so entries from one utterance keep their batch order.
func SortForDisplay(entries []model.Entry) []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
