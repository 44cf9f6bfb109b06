package ports

import (
	"context"

	"travel-time-service/internal/domain"
)

// Raw many-to-many matrices in backend units (seconds, meters).
// Rows follow origin order, columns destination order; a nil cell marks an
// unroutable pair.
type TableResult struct {
	DurationsSeconds [][]*float64
	DistancesMeters  [][]*float64
}

// Raw point-to-point leg in backend units.
type RouteLeg struct {
	DurationSeconds float64
	DistanceMeters  float64
}

// Contract for one batched many-to-many travel lookup.
type TableProvider interface {
	// Return raw duration/distance matrices for origins x destinations.
	// An empty profile selects the provider default.
	TableMatrix(ctx context.Context, profile string, origins, destinations []domain.Coordinates) (TableResult, error)
}

// Contract for one point-to-point travel lookup using the provider's
// fixed transport profile.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination domain.Coordinates) (RouteLeg, error)
}
