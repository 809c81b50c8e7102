package journey

import (
	"journeymap/internal/geo"
	"journeymap/internal/model"
)

// NearestStop returns the stop closest to user by great-circle distance.
// Ties keep the earlier stop. ok is false when stops is empty.
func NearestStop(user geo.Coordinate, stops []model.Stop) (model.Stop, bool) {
	if len(stops) == 0 {
		return model.Stop{}, false
	}
	best := stops[0]
	bestDist := geo.HaversineKm(user, Coordinate(best))
	for _, s := range stops[1:] {
		d := geo.HaversineKm(user, Coordinate(s))
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, true
}

// DistanceMeters returns the great-circle distance from user to s in meters.
func DistanceMeters(user geo.Coordinate, s model.Stop) float64 {
	return geo.HaversineMeters(user, Coordinate(s))
}
