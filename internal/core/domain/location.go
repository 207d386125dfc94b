package domain

import "math"

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance to other in kilometres
// (haversine formula).
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	dLat := toRadians(other.Lat - c.Lat)
	dLng := toRadians(other.Lng - c.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(c.Lat))*math.Cos(toRadians(other.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
