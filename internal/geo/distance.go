// Package geo provides pure geographic math helpers.
package geo

import "math"

// EarthRadiusKm is the equatorial radius of the earth in kilometers. The
// haversine distance on this sphere is an approximation; callers should rely
// on monotonic ordering consistency for nearby points, not geodesic
// exactness.
const EarthRadiusKm = 6378.137

// DistanceMeters returns the great-circle distance in meters between two
// WGS84 coordinates, computed with the haversine formula. Identical
// coordinates yield 0.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// Rounding can push a slightly outside [0,1] for antipodal or
	// near-identical points, which would feed Sqrt a negative value.
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c * 1000
}
