package model

import (
	"testing"
	"time"
)

func TestNewEntry_Valid(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.Local)

	e, err := NewEntry(EntryFood, "eggs", 140, "2 eggs", "2 eggs and toast", ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.ID == "" {
		t.Error("ID is empty")
	}
	if e.Type != EntryFood {
		t.Errorf("Type = %q, want FOOD", e.Type)
	}
	if e.Calories != 140 {
		t.Errorf("Calories = %d, want 140", e.Calories)
	}
	if !e.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", e.Timestamp, ts)
	}
}

func TestNewEntry_NegativeCalories(t *testing.T) {
	_, err := NewEntry(EntryExercise, "running", -300, "30 mins", "30 mins running", time.Now())
	if err == nil {
		t.Fatal("expected error for negative calories")
	}
}

func TestNewEntry_ZeroCalories(t *testing.T) {
	// Zero is a valid magnitude (e.g. water, stretching).
	if _, err := NewEntry(EntryFood, "water", 0, "1 glass", "a glass of water", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewEntry_RejectsUnknownType(t *testing.T) {
	for _, typ := range []EntryType{"UNKNOWN", "", "SLEEP"} {
		if _, err := NewEntry(typ, "x", 10, "1", "x", time.Now()); err == nil {
			t.Errorf("type %q: expected error", typ)
		}
	}
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		e, err := NewEntry(EntryFood, "apple", 80, "1", "an apple", time.Now())
		if err != nil {
			t.Fatal(err)
		}
		if _, dup := seen[e.ID]; dup {
			t.Fatalf("duplicate id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
}

func TestSameDay(t *testing.T) {
	ts := time.Date(2025, 6, 1, 23, 59, 0, 0, time.Local)
	e, err := NewEntry(EntryFood, "snack", 100, "1", "a snack", ts)
	if err != nil {
		t.Fatal(err)
	}

	if !e.SameDay(time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("SameDay = false for same calendar day")
	}
	if e.SameDay(time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)) {
		t.Error("SameDay = true across midnight boundary")
	}
}
