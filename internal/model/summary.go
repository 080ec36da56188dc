package model

// Tier is the coarse status of the remaining daily budget.
type Tier string

// Tier constants.
const (
	TierGood       Tier = "GOOD"
	TierWarning    Tier = "WARNING"
	TierOverBudget Tier = "OVER_BUDGET"
)

// Budget holds the daily energy target and the inputs it was derived from.
// Read-only at runtime.
type Budget struct {
	TDEE          int // total daily energy expenditure estimate
	TargetDeficit int
	DailyBudget   int // TDEE - TargetDeficit
}

// DaySummary is the derived energy balance for one calendar day.
// Never persisted; recomputed from the day's entries on demand.
type DaySummary struct {
	Consumed   int
	Burned     int
	Remaining  int     // DailyBudget + Burned - Consumed, may be negative
	Percentage float64 // remaining as % of budget, clamped to [0, 100] for display
	Tier       Tier
}
