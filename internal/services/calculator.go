package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

// Column names added to every batch output row.
const (
	TravelTimeColumn = "travel_time_minutes"
	DistanceColumn   = "distance_km"
)

// TravelTimeCalculator resolves OD pairs one at a time through the route
// endpoint. The provider, and with it the transport profile, is fixed for
// the calculator's lifetime.
type TravelTimeCalculator struct {
	provider ports.RouteProvider
}

func NewTravelTimeCalculator(provider ports.RouteProvider) (*TravelTimeCalculator, error) {
	if provider == nil {
		return nil, errors.New("route provider must be non-nil")
	}
	return &TravelTimeCalculator{provider: provider}, nil
}

// GetTravelTime resolves a single pair to user-facing units (minutes, km).
//
// Soft-failure contract: a long batch run must survive sporadic backend
// failures, so every provider error, whatever its kind, collapses to
// ok=false. Callers that need failures surfaced should use the batched
// table path instead.
func (c *TravelTimeCalculator) GetTravelTime(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (domain.TravelEstimate, bool) {
	leg, err := c.provider.Route(ctx, origin, destination)
	if err != nil {
		return domain.TravelEstimate{}, false
	}

	return domain.TravelEstimate{
		Minutes: leg.DurationSeconds / 60,
		Km:      leg.DistanceMeters / 1000,
	}, true
}

// BatchRequest describes one pairwise run over a tabular dataset.
// Each row holds the four coordinate values under caller-named fields.
type BatchRequest struct {
	Rows           []map[string]any
	OriginLatField string
	OriginLonField string
	DestLatField   string
	DestLonField   string
	// Pause between consecutive rows, a courtesy to the shared public
	// backend. Zero disables the pause entirely.
	Delay time.Duration
	// Optional per-row hook, called after each row has been written.
	Progress func(processed, total int)
}

type BatchResult struct {
	Rows        []map[string]any
	Processed   int
	RoutesFound int
}

// CalculateTravelMatrix resolves every row of the request strictly in row
// order, one blocking call at a time. The output is a copy of the input
// rows with exactly two added fields, travel_time_minutes and distance_km,
// nil when the pair could not be routed. Per-pair backend failures never
// abort the run; malformed rows do, since they are caller bugs rather than
// backend weather.
func (c *TravelTimeCalculator) CalculateTravelMatrix(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	fields := []string{req.OriginLatField, req.OriginLonField, req.DestLatField, req.DestLonField}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return nil, errors.New("calculate travel matrix: all four coordinate field names are required")
		}
	}

	total := len(req.Rows)
	out := make([]map[string]any, 0, total)
	found := 0

	log.Printf("travel time batch start pairs=%d delay=%s", total, req.Delay)

	for i, row := range req.Rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("calculate travel matrix: row %d: %w", i, err)
		}

		origin, err := rowCoordinates(row, req.OriginLatField, req.OriginLonField)
		if err != nil {
			return nil, fmt.Errorf("calculate travel matrix: row %d: %w", i, err)
		}

		destination, err := rowCoordinates(row, req.DestLatField, req.DestLonField)
		if err != nil {
			return nil, fmt.Errorf("calculate travel matrix: row %d: %w", i, err)
		}

		next := make(map[string]any, len(row)+2)
		for k, v := range row {
			next[k] = v
		}
		next[TravelTimeColumn] = nil
		next[DistanceColumn] = nil

		if est, ok := c.GetTravelTime(ctx, origin, destination); ok {
			next[TravelTimeColumn] = est.Minutes
			next[DistanceColumn] = est.Km
			found++
		}
		out = append(out, next)

		if req.Progress != nil {
			req.Progress(i+1, total)
		}
		if (i+1)%10 == 0 {
			log.Printf("travel time batch progress processed=%d total=%d", i+1, total)
		}

		// No pause after the final row, so a zero delay adds no overhead.
		if req.Delay > 0 && i+1 < total {
			time.Sleep(req.Delay)
		}
	}

	log.Printf("travel time batch done processed=%d routes_found=%d", total, found)

	return &BatchResult{Rows: out, Processed: total, RoutesFound: found}, nil
}

// rowCoordinates extracts one lat/lon pair from a dataset row.
func rowCoordinates(row map[string]any, latField, lonField string) (domain.Coordinates, error) {
	lat, err := fieldFloat(row, latField)
	if err != nil {
		return domain.Coordinates{}, err
	}

	lon, err := fieldFloat(row, lonField)
	if err != nil {
		return domain.Coordinates{}, err
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}

// fieldFloat accepts the numeric types JSON decoding and SQL scanning
// produce.
func fieldFloat(row map[string]any, field string) (float64, error) {
	v, ok := row[field]
	if !ok {
		return 0, fmt.Errorf("missing field %q", field)
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	}
	return 0, fmt.Errorf("field %q is not numeric (got %T)", field, v)
}
