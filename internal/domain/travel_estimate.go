package domain

// TravelEstimate is a single origin-destination result in user-facing units.
type TravelEstimate struct {
	Minutes float64
	Km      float64
}
