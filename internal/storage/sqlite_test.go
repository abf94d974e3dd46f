package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/hyperjump/hirescope/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult(id string, score float64) *models.AnalysisResult {
	return &models.AnalysisResult{
		ID:       id,
		Filename: id + ".pdf",
		Score:    score,
		Breakdown: models.ScoreBreakdown{
			Keyword:   0.5,
			Semantic:  0.6,
			Composite: score / 100,
			Role:      models.RoleTech,
		},
		MissingKeywords: []string{"kubernetes"},
	}
}

func TestSQLiteStore_SaveGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := sampleResult("res-1", 72.5)
	if err := store.SaveResult(ctx, want, "hash-1"); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetResult(ctx, "res-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Filename != want.Filename || got.Score != want.Score {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Breakdown.Role != models.RoleTech {
		t.Errorf("Role = %q, want %q", got.Breakdown.Role, models.RoleTech)
	}
	if len(got.MissingKeywords) != 1 || got.MissingKeywords[0] != "kubernetes" {
		t.Errorf("MissingKeywords = %v", got.MissingKeywords)
	}
}

func TestSQLiteStore_GetUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetResult(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_GetByHash(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveResult(ctx, sampleResult("res-1", 60), "shared"); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetResultByHash(ctx, "shared")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "res-1" {
		t.Errorf("ID = %q, want res-1", got.ID)
	}

	if _, err := store.GetResultByHash(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_ListCountDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("res-%d", i)
		if err := store.SaveResult(ctx, sampleResult(id, float64(50+i)), "h-"+id); err != nil {
			t.Fatal(err)
		}
	}

	count, err := store.CountResults(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	summaries, err := store.ListResults(ctx, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}
	for _, sum := range summaries {
		if sum.ID == "" || sum.Filename == "" || sum.CreatedAt.IsZero() {
			t.Errorf("incomplete summary %+v", sum)
		}
	}

	limited, err := store.ListResults(ctx, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d summaries with limit 1, want 1", len(limited))
	}

	if err := store.DeleteResult(ctx, "res-0"); err != nil {
		t.Fatal(err)
	}
	count, err = store.CountResults(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("count after delete = %d, want 2", count)
	}
	if _, err := store.GetResult(ctx, "res-0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
}
