package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createODPairsQuery := `
	CREATE TABLE IF NOT EXISTS od_pairs (
		pair_id INTEGER PRIMARY KEY,
		origin_lat REAL NOT NULL,
		origin_lon REAL NOT NULL,
		dest_lat REAL NOT NULL,
		dest_lon REAL NOT NULL,
		travel_time_minutes REAL,
		distance_km REAL
	);
	`

	if _, err := db.Exec(createODPairsQuery); err != nil {
		return fmt.Errorf("init schema: create od_pairs: %w", err)
	}

	return nil
}

type ODPairSeed struct {
	PairID    int     `json:"pair_id"`
	OriginLat float64 `json:"origin_lat"`
	OriginLon float64 `json:"origin_lon"`
	DestLat   float64 `json:"dest_lat"`
	DestLon   float64 `json:"dest_lon"`
}

// Populate the database with OD-pair data from a JSON file.
// Result columns are left NULL; a batch run fills them later.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed od pairs: read %q: %w", jsonPath, err)
	}

	var data []ODPairSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed od pairs: parse json: %w", err)
	}

	for i, item := range data {
		if item.PairID <= 0 {
			return fmt.Errorf("seed od pairs: invalid pair_id at index %d: %d", i, item.PairID)
		}
		if item.OriginLat < -90 || item.OriginLat > 90 || item.DestLat < -90 || item.DestLat > 90 {
			return fmt.Errorf("seed od pairs: latitude out of range at index %d", i)
		}
		if item.OriginLon < -180 || item.OriginLon > 180 || item.DestLon < -180 || item.DestLon > 180 {
			return fmt.Errorf("seed od pairs: longitude out of range at index %d", i)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed od pairs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO od_pairs (
		pair_id,
		origin_lat,
		origin_lon,
		dest_lat,
		dest_lon
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed od pairs: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range data {
		if _, err := stmt.Exec(p.PairID, p.OriginLat, p.OriginLon, p.DestLat, p.DestLon); err != nil {
			return fmt.Errorf("seed od pairs: insert pair_id=%d: %w", p.PairID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed od pairs: commit tx: %w", err)
	}

	return nil
}
