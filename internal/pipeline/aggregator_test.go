package pipeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/theirongolddev/calburn/internal/model"
)

var testBudget = model.Budget{TDEE: 2050, TargetDeficit: 500, DailyBudget: 1550}

func mustEntry(t *testing.T, typ model.EntryType, item string, calories int, ts time.Time) model.Entry {
	t.Helper()
	e, err := model.NewEntry(typ, item, calories, "1", item, ts)
	if err != nil {
		t.Fatalf("building entry %q: %v", item, err)
	}
	return e
}

func TestSummarize_EggsAndRun(t *testing.T) {
	// "2 eggs and a 30 min run" on a 1550 budget day.
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	entries := []model.Entry{
		mustEntry(t, model.EntryFood, "eggs", 140, ts),
		mustEntry(t, model.EntryExercise, "running", 300, ts),
	}

	s := Summarize(entries, testBudget)
	if s.Consumed != 140 {
		t.Errorf("Consumed = %d, want 140", s.Consumed)
	}
	if s.Burned != 300 {
		t.Errorf("Burned = %d, want 300", s.Burned)
	}
	if s.Remaining != 1710 {
		t.Errorf("Remaining = %d, want 1710", s.Remaining)
	}
	if s.Tier != model.TierGood {
		t.Errorf("Tier = %q, want GOOD", s.Tier)
	}
	if s.Percentage != 100 {
		t.Errorf("Percentage = %.1f, want 100 (remaining exceeds budget)", s.Percentage)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, testBudget)
	if s.Consumed != 0 || s.Burned != 0 {
		t.Errorf("Consumed/Burned = %d/%d, want 0/0", s.Consumed, s.Burned)
	}
	if s.Remaining != 1550 {
		t.Errorf("Remaining = %d, want full budget 1550", s.Remaining)
	}
	if s.Tier != model.TierGood {
		t.Errorf("Tier = %q, want GOOD", s.Tier)
	}
}

func TestSummarize_NegativeRemainingUnclamped(t *testing.T) {
	ts := time.Now()
	entries := []model.Entry{
		mustEntry(t, model.EntryFood, "feast", 2500, ts),
		mustEntry(t, model.EntryExercise, "walk", 100, ts),
	}

	s := Summarize(entries, testBudget)
	if s.Remaining != 1550+100-2500 {
		t.Errorf("Remaining = %d, want %d", s.Remaining, 1550+100-2500)
	}
	if s.Tier != model.TierOverBudget {
		t.Errorf("Tier = %q, want OVER_BUDGET", s.Tier)
	}
	if s.Percentage != 0 {
		t.Errorf("Percentage = %.1f, want 0 (clamped)", s.Percentage)
	}
}

func TestSummarize_TierBoundaries(t *testing.T) {
	tests := []struct {
		consumed int
		want     model.Tier
	}{
		{1050, model.TierGood},       // remaining exactly 500
		{1051, model.TierWarning},    // remaining 499
		{1550, model.TierWarning},    // remaining exactly 0
		{1551, model.TierOverBudget}, // remaining -1
	}

	for _, tt := range tests {
		entries := []model.Entry{mustEntry(t, model.EntryFood, "meal", tt.consumed, time.Now())}
		s := Summarize(entries, testBudget)
		if s.Tier != tt.want {
			t.Errorf("consumed %d (remaining %d): Tier = %q, want %q",
				tt.consumed, s.Remaining, s.Tier, tt.want)
		}
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	ts := time.Now()
	entries := []model.Entry{
		mustEntry(t, model.EntryFood, "breakfast", 400, ts),
		mustEntry(t, model.EntryExercise, "run", 350, ts),
		mustEntry(t, model.EntryFood, "lunch", 700, ts),
		mustEntry(t, model.EntryFood, "snack", 150, ts),
		mustEntry(t, model.EntryExercise, "cycling", 500, ts),
	}

	want := Summarize(entries, testBudget)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.Entry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Summarize(shuffled, testBudget)
		if got != want {
			t.Fatalf("permutation %d: summary = %+v, want %+v", i, got, want)
		}
	}
}

func TestSummarize_PercentageAlwaysInRange(t *testing.T) {
	ts := time.Now()
	for _, consumed := range []int{0, 100, 1550, 3000, 10000} {
		for _, burned := range []int{0, 500, 5000} {
			entries := []model.Entry{
				mustEntry(t, model.EntryFood, "food", consumed, ts),
				mustEntry(t, model.EntryExercise, "exercise", burned, ts),
			}
			s := Summarize(entries, testBudget)
			if s.Percentage < 0 || s.Percentage > 100 {
				t.Errorf("consumed=%d burned=%d: Percentage = %.1f, want [0,100]",
					consumed, burned, s.Percentage)
			}
		}
	}
}

func TestSummarize_ZeroBudget(t *testing.T) {
	s := Summarize(nil, model.Budget{})
	if s.Percentage != 0 {
		t.Errorf("Percentage = %.1f, want 0 for zero budget", s.Percentage)
	}
}

func TestSortForDisplay(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	late := mustEntry(t, model.EntryFood, "dinner", 600, day.Add(19*time.Hour))
	early := mustEntry(t, model.EntryFood, "breakfast", 300, day.Add(8*time.Hour))
	mid := mustEntry(t, model.EntryExercise, "run", 250, day.Add(12*time.Hour))

	sorted := SortForDisplay([]model.Entry{late, early, mid})

	got := []string{sorted[0].Item, sorted[1].Item, sorted[2].Item}
	want := []string{"breakfast", "run", "dinner"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
