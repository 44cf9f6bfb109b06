package services

import (
	"context"
	"fmt"
	"time"

	"travel-time-service/internal/domain"
)

// CalculateODPairs fills the result columns of stored OD pairs in place,
// strictly in slice order with the same soft-failure contract and inter-row
// pause as the generic batch path. Returns the number of pairs for which a
// route was found.
func (c *TravelTimeCalculator) CalculateODPairs(
	ctx context.Context,
	pairs []*domain.ODPair,
	delay time.Duration,
	progress func(processed, total int),
) (int, error) {
	total := len(pairs)
	found := 0

	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			return found, fmt.Errorf("calculate od pairs: pair_id=%d: %w", p.PairID, err)
		}

		p.TravelTimeMinutes = nil
		p.DistanceKm = nil

		if est, ok := c.GetTravelTime(ctx, p.Origin(), p.Destination()); ok {
			minutes, km := est.Minutes, est.Km
			p.TravelTimeMinutes = &minutes
			p.DistanceKm = &km
			found++
		}

		if progress != nil {
			progress(i+1, total)
		}
		if delay > 0 && i+1 < total {
			time.Sleep(delay)
		}
	}

	return found, nil
}
