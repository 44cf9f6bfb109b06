package domain

import "strconv"

// Geographic point in floating-point degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// LonLat renders the point in the lon,lat wire order used by OSRM.
// The reversal from the natural lat/lon reading order is an external
// contract and must be preserved exactly.
func (c Coordinates) LonLat() string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// Valid reports whether the point lies inside the WGS84 degree ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
