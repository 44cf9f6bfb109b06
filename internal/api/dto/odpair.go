package dto

type ODPairResponse struct {
	PairID            int      `json:"pair_id"`
	OriginLat         float64  `json:"origin_lat"`
	OriginLon         float64  `json:"origin_lon"`
	DestLat           float64  `json:"dest_lat"`
	DestLon           float64  `json:"dest_lon"`
	TravelTimeMinutes *float64 `json:"travel_time_minutes"`
	DistanceKm        *float64 `json:"distance_km"`
}

type ListODPairsResponse struct {
	ODPairs []ODPairResponse `json:"od_pairs"`
}

type ComputeODPairsResponse struct {
	Processed   int `json:"processed"`
	RoutesFound int `json:"routes_found"`
}
