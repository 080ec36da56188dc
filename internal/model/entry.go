// Package model defines domain types for calburn entries and summaries.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntryType classifies a logged event as intake or expenditure.
type EntryType string

// Entry type constants. The oracle may also answer "UNKNOWN"; such
// candidates are filtered out before an Entry is ever constructed.
const (
	EntryFood     EntryType = "FOOD"
	EntryExercise EntryType = "EXERCISE"
)

// ErrInvalidEntry indicates a would-be entry with negative calories or an
// unrecognized type.
var ErrInvalidEntry = errors.New("model: invalid entry")

// Entry is a single logged calorie event. Entries are immutable once
// created; the only lifecycle operations are batch insert and delete by id.
type Entry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Type         EntryType `json:"type"`
	Item         string    `json:"item"`
	Calories     int       `json:"calories"`
	Quantity     string    `json:"quantity"`
	OriginalText string    `json:"originalText"`
}

// NewEntry builds a validated Entry with a fresh unique id.
// Calories is a magnitude: always non-negative, direction derived from Type
// at aggregation time. Fails with ErrInvalidEntry otherwise.
func NewEntry(typ EntryType, item string, calories int, quantity, originalText string, ts time.Time) (Entry, error) {
	if typ != EntryFood && typ != EntryExercise {
		return Entry{}, fmt.Errorf("%w: type %q", ErrInvalidEntry, typ)
	}
	if calories < 0 {
		return Entry{}, fmt.Errorf("%w: negative calories %d", ErrInvalidEntry, calories)
	}

	return Entry{
		ID:           uuid.NewString(),
		Timestamp:    ts,
		Type:         typ,
		Item:         item,
		Calories:     calories,
		Quantity:     quantity,
		OriginalText: originalText,
	}, nil
}

// SameDay reports whether the entry's timestamp falls on the given calendar
// day in local time.
func (e Entry) SameDay(day time.Time) bool {
	y1, m1, d1 := e.Timestamp.Local().Date()
	y2, m2, d2 := day.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
