package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"travel-time-service/internal/domain"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSeedListAndSaveRoundTrip(t *testing.T) {
	db := openTestDB(t)

	seed := `[
		{"pair_id": 1, "origin_lat": 40.0, "origin_lon": -75.0, "dest_lat": 40.1, "dest_lon": -75.1},
		{"pair_id": 2, "origin_lat": 41.0, "origin_lon": -76.0, "dest_lat": 41.1, "dest_lon": -76.1}
	]`
	seedPath := filepath.Join(t.TempDir(), "pairs.json")
	if err := os.WriteFile(seedPath, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if err := SeedFromJSON(db, seedPath); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSqliteODPairRepository(db)
	ctx := context.Background()

	pairs, err := repo.ListODPairs(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("listed %d pairs, want 2", len(pairs))
	}
	if pairs[0].PairID != 1 || pairs[1].PairID != 2 {
		t.Errorf("pairs out of order: %d, %d", pairs[0].PairID, pairs[1].PairID)
	}
	if pairs[0].TravelTimeMinutes != nil || pairs[0].DistanceKm != nil {
		t.Error("fresh pair should have no results")
	}

	minutes, km := 12.5, 8.2
	pairs[0].TravelTimeMinutes = &minutes
	pairs[0].DistanceKm = &km
	if err := repo.SaveResult(ctx, pairs[0]); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := repo.ListODPairs(ctx)
	if err != nil {
		t.Fatalf("list after save: %v", err)
	}
	if again[0].TravelTimeMinutes == nil || *again[0].TravelTimeMinutes != 12.5 {
		t.Errorf("minutes = %v, want 12.5", again[0].TravelTimeMinutes)
	}
	if again[0].DistanceKm == nil || *again[0].DistanceKm != 8.2 {
		t.Errorf("km = %v, want 8.2", again[0].DistanceKm)
	}
	if again[1].TravelTimeMinutes != nil {
		t.Error("pair 2 should still have no results")
	}
}

func TestSeedRejectsInvalidRows(t *testing.T) {
	db := openTestDB(t)

	cases := []struct {
		name string
		seed string
	}{
		{"bad pair id", `[{"pair_id": 0, "origin_lat": 1, "origin_lon": 1, "dest_lat": 2, "dest_lon": 2}]`},
		{"bad latitude", `[{"pair_id": 1, "origin_lat": 99, "origin_lon": 1, "dest_lat": 2, "dest_lon": 2}]`},
		{"bad longitude", `[{"pair_id": 1, "origin_lat": 1, "origin_lon": 181, "dest_lat": 2, "dest_lon": 2}]`},
		{"not json", `{"pair_id": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.json")
			if err := os.WriteFile(path, []byte(tc.seed), 0o644); err != nil {
				t.Fatalf("write seed: %v", err)
			}
			if err := SeedFromJSON(db, path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveResultUnknownPair(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteODPairRepository(db)

	minutes := 1.0
	pair := &domain.ODPair{PairID: 999, TravelTimeMinutes: &minutes}
	if err := repo.SaveResult(context.Background(), pair); err == nil {
		t.Error("expected error for unknown pair_id")
	}
}
