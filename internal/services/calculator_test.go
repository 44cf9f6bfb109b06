package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-time-service/internal/adapters/routing"
	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

func TestGetTravelTimeConvertsUnits(t *testing.T) {
	origin := domain.Coordinates{Lat: 40.0, Lon: -75.0}
	destination := domain.Coordinates{Lat: 40.1, Lon: -75.1}

	provider := routing.NewMockRoutingProvider([]routing.MockLeg{
		{Origin: origin, Destination: destination, Seconds: 600, Meters: 5000},
	})

	calc, err := NewTravelTimeCalculator(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	est, ok := calc.GetTravelTime(context.Background(), origin, destination)
	if !ok {
		t.Fatal("expected a route")
	}
	if est.Minutes != 10.0 {
		t.Errorf("minutes = %v, want 10.0", est.Minutes)
	}
	if est.Km != 5.0 {
		t.Errorf("km = %v, want 5.0", est.Km)
	}
}

func TestGetTravelTimeSwallowsAllFailureKinds(t *testing.T) {
	origin := domain.Coordinates{Lat: 1, Lon: 1}
	destination := domain.Coordinates{Lat: 2, Lon: 2}

	cases := []struct {
		name string
		err  error
	}{
		{"backend refusal", &ports.ExternalServiceError{Code: "NoRoute", HTTPStatus: 200}},
		{"transport failure", &ports.TransportError{Err: errors.New("dial tcp: connection refused")}},
		{"unusable response", &ports.ResponseParseError{Reason: "response has no routes"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := routing.NewMockRoutingProvider(nil)
			provider.RouteErr = tc.err

			calc, err := NewTravelTimeCalculator(provider)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, ok := calc.GetTravelTime(context.Background(), origin, destination); ok {
				t.Error("expected ok=false")
			}
		})
	}
}

func batchRows(n int) []map[string]any {
	rows := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, map[string]any{
			"trip_id": i + 1,
			"o_lat":   40.0 + float64(i)*0.01,
			"o_lon":   -75.0,
			"d_lat":   41.0,
			"d_lon":   -76.0,
		})
	}
	return rows
}

func batchLegs(rows []map[string]any) []routing.MockLeg {
	legs := make([]routing.MockLeg, 0, len(rows))
	for _, row := range rows {
		legs = append(legs, routing.MockLeg{
			Origin:      domain.Coordinates{Lat: row["o_lat"].(float64), Lon: row["o_lon"].(float64)},
			Destination: domain.Coordinates{Lat: row["d_lat"].(float64), Lon: row["d_lon"].(float64)},
			Seconds:     300,
			Meters:      2000,
		})
	}
	return legs
}

func TestCalculateTravelMatrixAddsTwoColumnsInRowOrder(t *testing.T) {
	rows := batchRows(15)
	provider := routing.NewMockRoutingProvider(batchLegs(rows))

	calc, err := NewTravelTimeCalculator(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Now()
	result, err := calc.CalculateTravelMatrix(context.Background(), BatchRequest{
		Rows:           rows,
		OriginLatField: "o_lat",
		OriginLonField: "o_lon",
		DestLatField:   "d_lat",
		DestLonField:   "d_lon",
	})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rows) != 15 {
		t.Fatalf("output rows = %d, want 15", len(result.Rows))
	}
	if result.Processed != 15 || result.RoutesFound != 15 {
		t.Errorf("processed=%d routes_found=%d, want 15/15", result.Processed, result.RoutesFound)
	}

	// Zero delay must add no sleep overhead on top of the mock calls.
	if elapsed > time.Second {
		t.Errorf("batch with zero delay took %s", elapsed)
	}

	for i, row := range result.Rows {
		if row["trip_id"] != i+1 {
			t.Fatalf("row %d out of order: trip_id=%v", i, row["trip_id"])
		}
		if len(row) != len(rows[i])+2 {
			t.Errorf("row %d has %d fields, want %d", i, len(row), len(rows[i])+2)
		}
		if row[TravelTimeColumn] != 5.0 {
			t.Errorf("row %d %s = %v, want 5.0", i, TravelTimeColumn, row[TravelTimeColumn])
		}
		if row[DistanceColumn] != 2.0 {
			t.Errorf("row %d %s = %v, want 2.0", i, DistanceColumn, row[DistanceColumn])
		}
	}

	// The input rows themselves must stay untouched.
	for i, row := range rows {
		if _, ok := row[TravelTimeColumn]; ok {
			t.Errorf("input row %d was mutated", i)
		}
	}
}

func TestCalculateTravelMatrixKeepsFailedPairsAsNull(t *testing.T) {
	rows := batchRows(4)
	legs := batchLegs(rows)
	// Drop the second pair so the backend reports NoRoute for it.
	legs = append(legs[:1], legs[2:]...)
	provider := routing.NewMockRoutingProvider(legs)

	calc, err := NewTravelTimeCalculator(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := calc.CalculateTravelMatrix(context.Background(), BatchRequest{
		Rows:           rows,
		OriginLatField: "o_lat",
		OriginLonField: "o_lon",
		DestLatField:   "d_lat",
		DestLonField:   "d_lon",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Processed != 4 {
		t.Errorf("processed = %d, want 4", result.Processed)
	}
	if result.RoutesFound != 3 {
		t.Errorf("routes_found = %d, want 3", result.RoutesFound)
	}
	if result.Rows[1][TravelTimeColumn] != nil || result.Rows[1][DistanceColumn] != nil {
		t.Errorf("failed pair should have null results, got %v / %v",
			result.Rows[1][TravelTimeColumn], result.Rows[1][DistanceColumn])
	}
	if result.Rows[0][TravelTimeColumn] == nil {
		t.Error("successful pair lost its result")
	}
}

func TestCalculateTravelMatrixRejectsMalformedRows(t *testing.T) {
	provider := routing.NewMockRoutingProvider(nil)
	calc, err := NewTravelTimeCalculator(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = calc.CalculateTravelMatrix(context.Background(), BatchRequest{
		Rows:           []map[string]any{{"o_lat": 1.0, "o_lon": 2.0, "d_lat": 3.0}},
		OriginLatField: "o_lat",
		OriginLonField: "o_lon",
		DestLatField:   "d_lat",
		DestLonField:   "d_lon",
	})
	if err == nil {
		t.Error("expected error for missing coordinate field")
	}

	_, err = calc.CalculateTravelMatrix(context.Background(), BatchRequest{
		Rows:           batchRows(1),
		OriginLatField: "o_lat",
		OriginLonField: "",
		DestLatField:   "d_lat",
		DestLonField:   "d_lon",
	})
	if err == nil {
		t.Error("expected error for blank field name")
	}
}

func TestCalculateTravelMatrixHonorsCancellation(t *testing.T) {
	provider := routing.NewMockRoutingProvider(nil)
	calc, err := NewTravelTimeCalculator(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = calc.CalculateTravelMatrix(ctx, BatchRequest{
		Rows:           batchRows(3),
		OriginLatField: "o_lat",
		OriginLonField: "o_lon",
		DestLatField:   "d_lat",
		DestLonField:   "d_lon",
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCalculateODPairsFillsResults(t *testing.T) {
	pairs := []*domain.ODPair{
		{PairID: 1, OriginLat: 40.0, OriginLon: -75.0, DestLat: 41.0, DestLon: -76.0},
		{PairID: 2, OriginLat: 50.0, OriginLon: -85.0, DestLat: 51.0, DestLon: -86.0},
	}

	provider := routing.NewMockRoutingProvider([]routing.MockLeg{
		{Origin: pairs[0].Origin(), Destination: pairs[0].Destination(), Seconds: 900, Meters: 12000},
	})

	calc, err := NewTravelTimeCalculator(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var calls int
	found, err := calc.CalculateODPairs(context.Background(), pairs, 0, func(processed, total int) {
		calls++
		if total != 2 {
			t.Errorf("progress total = %d, want 2", total)
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found != 1 {
		t.Errorf("found = %d, want 1", found)
	}
	if calls != 2 {
		t.Errorf("progress calls = %d, want 2", calls)
	}

	if pairs[0].TravelTimeMinutes == nil || *pairs[0].TravelTimeMinutes != 15.0 {
		t.Errorf("pair 1 minutes = %v, want 15.0", pairs[0].TravelTimeMinutes)
	}
	if pairs[0].DistanceKm == nil || *pairs[0].DistanceKm != 12.0 {
		t.Errorf("pair 1 km = %v, want 12.0", pairs[0].DistanceKm)
	}
	if pairs[1].TravelTimeMinutes != nil || pairs[1].DistanceKm != nil {
		t.Error("pair 2 should have no results")
	}
}
