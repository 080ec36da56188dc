package ledger

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/calburn/internal/model"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "ledger.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("nothing")
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSQLiteStore_PutGetOverwrite(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("k", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("k", []byte("v2")); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("v2")) {
		t.Errorf("Get = %q, want v2", got)
	}
}

func TestSQLiteStore_LedgerSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	l := Load(store, zerolog.Nop())
	e := mustEntry(t, model.EntryFood, "oatmeal", 220, time.Now())
	if err := l.AppendAll([]model.Entry{e}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	store2, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store2.Close()

	reloaded := Load(store2, zerolog.Nop())
	if reloaded.Len() != 1 {
		t.Fatalf("Len = %d after reopen, want 1", reloaded.Len())
	}
	if reloaded.Entries()[0].ID != e.ID {
		t.Error("entry id lost across reopen")
	}
}
