package dto

type TravelTimeBatchRequest struct {
	Rows           []map[string]any `json:"rows"`
	OriginLatField string           `json:"origin_lat_field"`
	OriginLonField string           `json:"origin_lon_field"`
	DestLatField   string           `json:"dest_lat_field"`
	DestLonField   string           `json:"dest_lon_field"`
	DelaySeconds   float64          `json:"delay_seconds"`
}

type TravelTimeBatchResponse struct {
	Rows        []map[string]any `json:"rows"`
	Processed   int              `json:"processed"`
	RoutesFound int              `json:"routes_found"`
}
