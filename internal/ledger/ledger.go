package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/calburn/internal/model"
)

// snapshotKey is the blob key holding the serialized entry array.
const snapshotKey = "entries"

// ErrPersistence indicates a snapshot write failed. The in-memory state is
// left at the last known-good snapshot.
var ErrPersistence = errors.New("ledger: persistence failure")

// Ledger is the full collection of logged entries, persisted as a whole
// snapshot on every change. Mutations commit to memory only after the
// snapshot write succeeds, so memory and disk never diverge.
type Ledger struct {
	mu      sync.RWMutex
	store   BlobStore
	entries []model.Entry
	log     zerolog.Logger
}

// Load reads the persisted snapshot. A missing or corrupt snapshot yields
// an empty ledger; corruption is logged, not surfaced.
func Load(store BlobStore, log zerolog.Logger) *Ledger {
	l := &Ledger{store: store, log: log}

	data, err := store.Get(snapshotKey)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			log.Warn().Err(err).Msg("snapshot unreadable, starting fresh")
		}
		return l
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Msg("snapshot corrupt, starting fresh")
		return l
	}

	l.entries = entries
	return l
}

// AppendAll inserts the batch and persists the new snapshot. Entries with
// an id already present are skipped. The batch becomes visible atomically:
// either every entry is appended or none is.
func (l *Ledger) AppendAll(entries []model.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(l.entries))
	for _, e := range l.entries {
		seen[e.ID] = struct{}{}
	}

	next := make([]model.Entry, len(l.entries), len(l.entries)+len(entries))
	copy(next, l.entries)
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			l.log.Warn().Str("id", e.ID).Msg("skipping duplicate entry id")
			continue
		}
		seen[e.ID] = struct{}{}
		next = append(next, e)
	}

	if err := l.persist(next); err != nil {
		return err
	}
	l.entries = next
	return nil
}

// Remove deletes the entry with the given id and persists the result.
// Removing an absent id is a no-op: the persisted snapshot is untouched.
func (l *Ledger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, e := range l.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]model.Entry, 0, len(l.entries)-1)
	next = append(next, l.entries[:idx]...)
	next = append(next, l.entries[idx+1:]...)

	if err := l.persist(next); err != nil {
		return err
	}
	l.entries = next
	return nil
}

// EntriesOn returns all entries whose timestamp falls on the given calendar
// day in local time, in insertion order.
func (l *Ledger) EntriesOn(day time.Time) []model.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []model.Entry
	for _, e := range l.entries {
		if e.SameDay(day) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns a copy of the full collection.
func (l *Ledger) Entries() []model.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of stored entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// persist writes the full serialized snapshot. Called with l.mu held.
func (l *Ledger) persist(entries []model.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %v", ErrPersistence, err)
	}
	if err := l.store.Put(snapshotKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
