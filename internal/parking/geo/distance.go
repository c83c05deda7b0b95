// Package geo scores parking lots by distance from a requester.
package geo

import "math"

const (
	EarthRadiusKM = 6371.0

	// AvailabilityWeight is the distance, in km, one free spot is worth.
	AvailabilityWeight = 0.05
)

// Distance returns the great-circle distance in kilometers between two
// coordinates given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

// Score ranks a lot; lower is better.
func Score(distanceKM float64, available int) float64 {
	return distanceKM - AvailabilityWeight*float64(available)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
