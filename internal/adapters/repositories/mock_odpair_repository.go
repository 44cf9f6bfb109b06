package repositories

import (
	"context"
	"fmt"

	"travel-time-service/internal/domain"
)

// MockODPairRepository keeps OD pairs in memory for tests.
type MockODPairRepository struct {
	Pairs    []*domain.ODPair
	ListErr  error
	SaveErr  error
	SavedIDs []int
}

func (m *MockODPairRepository) ListODPairs(ctx context.Context) ([]*domain.ODPair, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Pairs, nil
}

func (m *MockODPairRepository) SaveResult(ctx context.Context, pair *domain.ODPair) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for _, p := range m.Pairs {
		if p.PairID == pair.PairID {
			m.SavedIDs = append(m.SavedIDs, pair.PairID)
			return nil
		}
	}
	return fmt.Errorf("save od pair result: no stored pair with pair_id=%d", pair.PairID)
}
