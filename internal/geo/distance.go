// Package geo provides great-circle distance computation for opportunity
// matching.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// (longitude, latitude) pairs in decimal degrees. The function is total:
// any numeric input yields a numeric result, out-of-range coordinates are
// not rejected.
func Distance(from, to [2]float64) float64 {
	dLat := toRad(to[1] - from[1])
	dLon := toRad(to[0] - from[0])

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(from[1]))*math.Cos(toRad(to[1]))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
