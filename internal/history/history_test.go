package history_test

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/agrovet/pashumitra/internal/history"
	"github.com/agrovet/pashumitra/internal/testutil"
)

func openTestStore(t *testing.T) *history.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store, err := history.NewStore(db, &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	entries := []history.Entry{
		{Animal: "Cow", Symptoms: "High fever, Cough", Disease: "Anthrax", Probability: 0.91, RiskLevel: "High"},
		{Animal: "Goat", Symptoms: "Diarrhea, Weight loss", Disease: "PPR", Probability: 0.62, RiskLevel: "Medium"},
	}
	for _, e := range entries {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.ID == "" {
			t.Error("entry missing assigned id")
		}
		if e.CreatedAt.IsZero() {
			t.Error("entry missing timestamp")
		}
	}
}

func TestStore_RecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		e := history.Entry{Animal: "Cow", Symptoms: "Cough", Disease: "Anthrax", Probability: 0.5, RiskLevel: "Low"}
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestStore_RecentEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
