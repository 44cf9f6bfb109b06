package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travel-time-service/internal/domain"
)

// SQLite-backed implementation of the ODPairRepository port.
type SqliteODPairRepository struct{ DB *sql.DB }

func NewSqliteODPairRepository(db *sql.DB) *SqliteODPairRepository {
	return &SqliteODPairRepository{DB: db}
}

// Return all stored OD pairs in pair_id order.
func (s *SqliteODPairRepository) ListODPairs(ctx context.Context) ([]*domain.ODPair, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite od pair repository: DB is nil")
	}

	query := `
	SELECT
		pair_id,
		origin_lat,
		origin_lon,
		dest_lat,
		dest_lon,
		travel_time_minutes,
		distance_km
	FROM od_pairs
	ORDER BY pair_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list od pairs: query od_pairs table: %w", err)
	}
	defer rows.Close()

	pairs := make([]*domain.ODPair, 0, 64)
	for rows.Next() {
		var p domain.ODPair
		var minutes, km sql.NullFloat64
		if err := rows.Scan(&p.PairID, &p.OriginLat, &p.OriginLon, &p.DestLat, &p.DestLon, &minutes, &km); err != nil {
			return nil, fmt.Errorf("list od pairs: scan row: %w", err)
		}
		if minutes.Valid {
			p.TravelTimeMinutes = &minutes.Float64
		}
		if km.Valid {
			p.DistanceKm = &km.Float64
		}
		pairs = append(pairs, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list od pairs: row iteration: %w", err)
	}

	return pairs, nil
}

// Persist the result columns of a single computed pair.
func (s *SqliteODPairRepository) SaveResult(ctx context.Context, pair *domain.ODPair) error {
	if s.DB == nil {
		return errors.New("sqlite od pair repository: DB is nil")
	}
	if pair == nil {
		return errors.New("save od pair result: pair is nil")
	}

	query := `
	UPDATE od_pairs
	SET travel_time_minutes = ?,
		distance_km = ?
	WHERE pair_id = ?;
	`
	res, err := s.DB.ExecContext(ctx, query, nullable(pair.TravelTimeMinutes), nullable(pair.DistanceKm), pair.PairID)
	if err != nil {
		return fmt.Errorf("save od pair result pair_id=%d: %w", pair.PairID, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("save od pair result: pair_id=%d not found", pair.PairID)
	}

	return nil
}

// nullable converts an optional float into a driver-friendly value.
func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
