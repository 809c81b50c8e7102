package geo

import "math"

const earthRadiusKm = 6371.0

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	lat1Rad := a.Lat * math.Pi / 180.0
	lat2Rad := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// HaversineMeters returns the great-circle distance between a and b in meters.
func HaversineMeters(a, b Coordinate) float64 {
	return HaversineKm(a, b) * 1000
}

// Bounds is an axis-aligned box. Longitudes do not wrap at the antimeridian.
type Bounds struct {
	SouthWest Coordinate
	NorthEast Coordinate
}

// BoundsOf returns the smallest box containing every coordinate.
// ok is false when coords is empty.
func BoundsOf(coords []Coordinate) (Bounds, bool) {
	if len(coords) == 0 {
		return Bounds{}, false
	}
	b := Bounds{SouthWest: coords[0], NorthEast: coords[0]}
	for _, c := range coords[1:] {
		b.SouthWest.Lat = math.Min(b.SouthWest.Lat, c.Lat)
		b.SouthWest.Lon = math.Min(b.SouthWest.Lon, c.Lon)
		b.NorthEast.Lat = math.Max(b.NorthEast.Lat, c.Lat)
		b.NorthEast.Lon = math.Max(b.NorthEast.Lon, c.Lon)
	}
	return b, true
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Coordinate {
	return Coordinate{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lon: (b.SouthWest.Lon + b.NorthEast.Lon) / 2,
	}
}

// Span returns the latitude and longitude extent of the box in degrees.
func (b Bounds) Span() (latSpan, lonSpan float64) {
	return b.NorthEast.Lat - b.SouthWest.Lat, b.NorthEast.Lon - b.SouthWest.Lon
}

// Contains reports whether c lies inside the box, edges included.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lat >= b.SouthWest.Lat && c.Lat <= b.NorthEast.Lat &&
		c.Lon >= b.SouthWest.Lon && c.Lon <= b.NorthEast.Lon
}
