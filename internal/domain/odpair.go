package domain

// ODPair is one stored origin-destination row of a batch dataset.
// The result columns are nil until a batch run fills them, and stay nil
// when the backend finds no route for the pair.
type ODPair struct {
	PairID            int
	OriginLat         float64
	OriginLon         float64
	DestLat           float64
	DestLon           float64
	TravelTimeMinutes *float64
	DistanceKm        *float64
}

func (p *ODPair) Origin() Coordinates {
	return Coordinates{Lat: p.OriginLat, Lon: p.OriginLon}
}

func (p *ODPair) Destination() Coordinates {
	return Coordinates{Lat: p.DestLat, Lon: p.DestLon}
}
