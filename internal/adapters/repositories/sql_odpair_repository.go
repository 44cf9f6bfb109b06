package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/platform/obs"
)

// SQLODPairRepository is the Postgres-backed implementation of the
// ODPairRepository port. The od_pairs schema is managed externally
// (migrations) rather than on startup.
type SQLODPairRepository struct{ DB *sql.DB }

func NewSQLODPairRepository(db *sql.DB) *SQLODPairRepository {
	return &SQLODPairRepository{DB: db}
}

// Return all stored OD pairs in pair_id order.
func (s *SQLODPairRepository) ListODPairs(ctx context.Context) (_ []*domain.ODPair, err error) {
	defer obs.Time(ctx, "odpairs.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("od pair repository: DB is nil")
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
func (s *SQLODPairRepository) SaveResult(ctx context.Context, pair *domain.ODPair) (err error) {
	defer obs.Time(ctx, "odpairs.repo.Save")(&err)

	if s.DB == nil {
		return errors.New("od pair repository: DB is nil")
	}
	if pair == nil {
		return errors.New("save od pair result: pair is nil")
	}

	query := `
	UPDATE od_pairs
	SET travel_time_minutes = $1,
		distance_km = $2
	WHERE pair_id = $3;
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
