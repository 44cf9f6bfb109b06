package dto

type CoordinateDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MatrixRequest struct {
	Origins      []CoordinateDTO `json:"origins"`
	Destinations []CoordinateDTO `json:"destinations"`
	Profile      string          `json:"profile"`
}

// One labeled table; null cells mark unroutable pairs.
type TableDTO struct {
	RowLabels []string     `json:"row_labels"`
	ColLabels []string     `json:"col_labels"`
	Cells     [][]*float64 `json:"cells"`
}

type MatrixResponse struct {
	DurationsMinutes TableDTO `json:"durations_minutes"`
	DistancesKm      TableDTO `json:"distances_km"`
}
