// Package session orchestrates utterance logging against the ledger and
// tracks the navigated view date.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/calburn/internal/ledger"
	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/oracle"
	"github.com/theirongolddev/calburn/internal/pipeline"
)

// Outcome is the user-facing result of a logging attempt. Every error the
// pipeline can produce is recovered here and mapped to one of these.
type Outcome int

// Outcome constants.
const (
	OutcomeApplied Outcome = iota
	OutcomeNotUnderstood
	OutcomeFailed
	OutcomeEmptyInput
	OutcomeBusy
)

// Result describes what a LogUtterance call did.
type Result struct {
	Outcome Outcome
	Entries []model.Entry // appended entries when Outcome is OutcomeApplied
	Err     error         // underlying cause when Outcome is OutcomeFailed
}

// Controller drives one user session: it holds the view date, guards
// against concurrent logging attempts, and keeps the day summary fresh.
type Controller struct {
	mu         sync.Mutex
	processing bool

	ledger      *ledger.Ledger
	extractor   oracle.Extractor
	budget      model.Budget
	userContext string
	viewDate    time.Time
	summary     *model.DaySummary // nil when invalidated

	now func() time.Time
	log zerolog.Logger
}

// New creates a controller viewing today.
func New(lg *ledger.Ledger, ex oracle.Extractor, budget model.Budget, userContext string, log zerolog.Logger) *Controller {
	return &Controller{
		ledger:      lg,
		extractor:   ex,
		budget:      budget,
		userContext: userContext,
		viewDate:    time.Now(),
		now:         time.Now,
		log:         log,
	}
}

// ViewDate returns the currently navigated calendar day.
func (c *Controller) ViewDate() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewDate
}

// SetViewDate moves the view to the given day and invalidates the summary.
func (c *Controller) SetViewDate(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewDate = t
	c.summary = nil
}

// ChangeDay moves the view date by whole days. No bound checking: the view
// may move arbitrarily far into the past or future.
func (c *Controller) ChangeDay(offset int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewDate = c.viewDate.AddDate(0, 0, offset)
	c.summary = nil
}

// Budget returns the fixed daily budget configuration.
func (c *Controller) Budget() model.Budget {
	return c.budget
}

// LogUtterance runs the full pipeline for one utterance: extract, validate,
// timestamp, append, persist. While an attempt is in flight, further calls
// return OutcomeBusy without touching the ledger.
func (c *Controller) LogUtterance(ctx context.Context, text string) Result {
	c.mu.Lock()
	if c.processing {
		c.mu.Unlock()
		return Result{Outcome: OutcomeBusy}
	}
	c.processing = true
	viewDate := c.viewDate
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.processing = false
		c.mu.Unlock()
	}()

	candidates, err := c.extractor.Extract(ctx, text, c.userContext)
	if err != nil {
		if errors.Is(err, oracle.ErrEmptyInput) {
			return Result{Outcome: OutcomeEmptyInput}
		}
		c.log.Warn().Err(err).Msg("extraction failed")
		return Result{Outcome: OutcomeFailed, Err: err}
	}
	if len(candidates) == 0 {
		return Result{Outcome: OutcomeNotUnderstood}
	}

	// Entries logged against a past view date still carry the wall-clock
	// time of day, so they sort by real logging time within that day.
	now := c.now()
	ts := time.Date(viewDate.Year(), viewDate.Month(), viewDate.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, time.Local)

	entries := make([]model.Entry, 0, len(candidates))
	for _, cand := range candidates {
		e, err := model.NewEntry(cand.Type, cand.Item, cand.Calories, cand.Quantity, text, ts)
		if err != nil {
			// Invariant violation from a mis-filtered candidate. Drop just
			// this one; the rest of the batch still applies.
			c.log.Warn().Err(err).Str("item", cand.Item).Msg("dropping invalid candidate")
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return Result{Outcome: OutcomeNotUnderstood}
	}

	if err := c.ledger.AppendAll(entries); err != nil {
		c.log.Error().Err(err).Msg("appending entries")
		return Result{Outcome: OutcomeFailed, Err: err}
	}

	c.mu.Lock()
	c.summary = nil
	c.mu.Unlock()

	return Result{Outcome: OutcomeApplied, Entries: entries}
}

// DeleteEntry removes the entry with the given id. Deleting an unknown id
// is a no-op.
func (c *Controller) DeleteEntry(id string) error {
	if err := c.ledger.Remove(id); err != nil {
		return err
	}

	c.mu.Lock()
	c.summary = nil
	c.mu.Unlock()
	return nil
}

// Summary returns the energy balance for the view date, recomputing it if
// the ledger or view date changed since the last read.
func (c *Controller) Summary() model.DaySummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.summary == nil {
		s := pipeline.Summarize(c.ledger.EntriesOn(c.viewDate), c.budget)
		c.summary = &s
	}
	return *c.summary
}

// DayEntries returns the view date's entries in display order.
func (c *Controller) DayEntries() []model.Entry {
	c.mu.Lock()
	viewDate := c.viewDate
	c.mu.Unlock()

	return pipeline.SortForDisplay(c.ledger.EntriesOn(viewDate))
}
