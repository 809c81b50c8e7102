package model

import "fmt"

// StopType categorizes a stop within a journey.
type StopType int

const (
	StopStart StopType = iota
	StopVisit
	StopFood
	StopPhoto
	StopRest
	StopEnd
)

var stopTypeNames = map[StopType]string{
	StopStart: "start",
	StopVisit: "visit",
	StopFood:  "food",
	StopPhoto: "photo",
	StopRest:  "rest",
	StopEnd:   "end",
}

// String returns the storage name of the stop type.
func (t StopType) String() string {
	if name, ok := stopTypeNames[t]; ok {
		return name
	}
	return "visit"
}

// Label returns the display label of the stop type.
func (t StopType) Label() string {
	switch t {
	case StopStart:
		return "Journey Start"
	case StopFood:
		return "Food Stop"
	case StopPhoto:
		return "Photo Spot"
	case StopRest:
		return "Rest Stop"
	case StopEnd:
		return "Journey End"
	default:
		return "Visit"
	}
}

// Emoji returns the marker emoji of the stop type.
func (t StopType) Emoji() string {
	switch t {
	case StopStart:
		return "🏠"
	case StopFood:
		return "🍽️"
	case StopPhoto:
		return "📸"
	case StopRest:
		return "☕"
	case StopEnd:
		return "🏁"
	default:
		return "📍"
	}
}

// ParseStopType converts a storage name back to a StopType.
// Unknown names map to StopVisit.
func ParseStopType(name string) StopType {
	for t, n := range stopTypeNames {
		if n == name {
			return t
		}
	}
	return StopVisit
}

// Stop represents a single visited place within a journey.
type Stop struct {
	ID                 int64
	Title              string
	Address            string
	Notes              string
	Latitude           float64
	Longitude          float64
	Timestamp          int64 // epoch ms
	Type               StopType
	DistanceFromPrevKm float64
	DurationMins       int

	RestaurantCode string // stable key shared by every visit to the same place
	Image          string // thumbnail URL
	IsPrime        bool
	IsChain        bool
	TotalAmount    string
	DiscountAmount string
}

// Key returns the stable key identifying the physical place.
// Stops without a restaurant code are keyed by title and position.
func (s Stop) Key() string {
	if s.RestaurantCode != "" {
		return s.RestaurantCode
	}
	return fmt.Sprintf("%s@%.5f,%.5f", s.Title, s.Latitude, s.Longitude)
}

// Journey represents an ordered trip composed of stops.
type Journey struct {
	ID              int64
	Name            string
	Description     string
	Stops           []Stop
	TotalDistanceKm float64
	Date            string // display date
	CoverEmoji      string
}

// StopCount returns the number of stops in the journey.
func (j Journey) StopCount() int {
	return len(j.Stops)
}

// TotalDurationMins returns the time spent across all stops.
func (j Journey) TotalDurationMins() int {
	total := 0
	for _, s := range j.Stops {
		total += s.DurationMins
	}
	return total
}

// MapStyle is the base layer of the map.
type MapStyle int

const (
	MapStandard MapStyle = iota
	MapSatellite
	MapTerrain
)

// String returns the display name of the map style.
func (s MapStyle) String() string {
	switch s {
	case MapSatellite:
		return "Satellite"
	case MapTerrain:
		return "Terrain"
	default:
		return "Standard"
	}
}

// Next returns the following style in the cycle standard → terrain → satellite.
func (s MapStyle) Next() MapStyle {
	switch s {
	case MapStandard:
		return MapTerrain
	case MapTerrain:
		return MapSatellite
	default:
		return MapStandard
	}
}
