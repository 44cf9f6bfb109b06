package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

// ComputeTravelMatrix performs one batched many-to-many lookup and shapes
// the reply into labeled tables: durations in minutes and distances in
// kilometers, origins as rows and destinations as columns, both in input
// order.
//
// The computation is all-or-nothing: any provider failure propagates to the
// caller and no partial tables are returned. Unroutable pairs are not
// failures; their cells stay nil.
func ComputeTravelMatrix(
	ctx context.Context,
	provider ports.TableProvider,
	profile string,
	origins []domain.Coordinates,
	destinations []domain.Coordinates,
) (*domain.TravelMatrices, error) {
	if len(origins) == 0 {
		return nil, errors.New("compute travel matrix: origins must be non-empty")
	}
	if len(destinations) == 0 {
		return nil, errors.New("compute travel matrix: destinations must be non-empty")
	}

	raw, err := provider.TableMatrix(ctx, profile, origins, destinations)
	if err != nil {
		return nil, fmt.Errorf("compute travel matrix: %w", err)
	}

	rowLabels := sequenceLabels("Origin_", len(origins))
	colLabels := sequenceLabels("Dest_", len(destinations))

	return &domain.TravelMatrices{
		DurationsMinutes: domain.Matrix{
			RowLabels: rowLabels,
			ColLabels: colLabels,
			Cells:     scaleCells(raw.DurationsSeconds, 60),
		},
		DistancesKm: domain.Matrix{
			RowLabels: rowLabels,
			ColLabels: colLabels,
			Cells:     scaleCells(raw.DistancesMeters, 1000),
		},
	}, nil
}

// scaleCells divides every cell by divisor, preserving nil (unroutable)
// cells. The input is never mutated.
func scaleCells(cells [][]*float64, divisor float64) [][]*float64 {
	out := make([][]*float64, len(cells))
	for i, row := range cells {
		out[i] = make([]*float64, len(row))
		for j, cell := range row {
			if cell == nil {
				continue
			}
			v := *cell / divisor
			out[i][j] = &v
		}
	}
	return out
}

// sequenceLabels renders prefix_1..prefix_n, matching input order.
func sequenceLabels(prefix string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = prefix + strconv.Itoa(i+1)
	}
	return labels
}
