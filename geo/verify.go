package geo

import "math"

const (
	// ChurchLatitude and ChurchLongitude locate Saint Catherine of Siena,
	// 9200 SW 107th Ave, Miami, FL 33176.
	ChurchLatitude  = 25.68222
	ChurchLongitude = -80.36861
	// RadiusMeters is the clock-in location accuracy threshold.
	RadiusMeters = 100.0
	// EarthRadiusMeters is Earth's mean radius for the Haversine calculation.
	EarthRadiusMeters = 6371e3
)

// DistanceMeters calculates the great-circle distance between two points
// on Earth in meters using the Haversine formula.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// WithinRadius checks if two coordinates are within radius meters of each
// other. Non-finite input never verifies.
func WithinRadius(lat1, lng1, lat2, lng2, radius float64) bool {
	for _, v := range [...]float64{lat1, lng1, lat2, lng2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return DistanceMeters(lat1, lng1, lat2, lng2) <= radius
}

// Verify reports whether the point is within RadiusMeters of the church.
func Verify(lat, lng float64) bool {
	return WithinRadius(lat, lng, ChurchLatitude, ChurchLongitude, RadiusMeters)
}
