package ports

import (
	"context"

	"travel-time-service/internal/domain"
)

// Port: a boundary for loading and persisting OD-pair dataset rows.
type ODPairRepository interface {
	// Retrieve all stored OD pairs in pair_id order.
	ListODPairs(ctx context.Context) ([]*domain.ODPair, error)
	// Persist the result columns of a single computed pair.
	SaveResult(ctx context.Context, pair *domain.ODPair) error
}
