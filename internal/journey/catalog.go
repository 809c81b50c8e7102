package journey

import (
	"slices"

	"journeymap/internal/geo"
	"journeymap/internal/model"
)

// Catalog is an immutable, ordered set of journeys.
type Catalog struct {
	journeys []model.Journey
}

// New creates a catalog from journeys. Journeys and their stops are copied.
func New(journeys []model.Journey) *Catalog {
	return &Catalog{journeys: cloneJourneys(journeys)}
}

// Journeys returns a copy of the journeys in catalog order.
func (c *Catalog) Journeys() []model.Journey {
	return cloneJourneys(c.journeys)
}

// Len returns the number of journeys.
func (c *Catalog) Len() int {
	return len(c.journeys)
}

// First returns the first journey, if any.
func (c *Catalog) First() (model.Journey, bool) {
	if len(c.journeys) == 0 {
		return model.Journey{}, false
	}
	return Clone(c.journeys[0]), true
}

// Find returns the journey with the given id.
func (c *Catalog) Find(id int64) (model.Journey, bool) {
	for _, j := range c.journeys {
		if j.ID == id {
			return Clone(j), true
		}
	}
	return model.Journey{}, false
}

// UniqueStops returns the first stop of every place across all journeys,
// in catalog order.
func (c *Catalog) UniqueStops() []model.Stop {
	var all []model.Stop
	for _, j := range c.journeys {
		all = append(all, j.Stops...)
	}
	return dedupe(all)
}

// VisitCountMap maps each place key to its number of occurrences
// across all journeys.
func (c *Catalog) VisitCountMap() map[string]int {
	counts := make(map[string]int)
	for _, j := range c.journeys {
		for _, s := range j.Stops {
			counts[s.Key()]++
		}
	}
	return counts
}

// VisitCount returns how many times the place of s appears across all journeys.
func (c *Catalog) VisitCount(s model.Stop) int {
	n := 0
	key := s.Key()
	for _, j := range c.journeys {
		for _, other := range j.Stops {
			if other.Key() == key {
				n++
			}
		}
	}
	return n
}

// UniqueJourneyStops returns the first stop of every place within j.
func UniqueJourneyStops(j model.Journey) []model.Stop {
	return dedupe(j.Stops)
}

// Coordinates returns the positions of the journey's stops in order.
func Coordinates(j model.Journey) []geo.Coordinate {
	coords := make([]geo.Coordinate, len(j.Stops))
	for i, s := range j.Stops {
		coords[i] = Coordinate(s)
	}
	return coords
}

// Coordinate returns the position of s.
func Coordinate(s model.Stop) geo.Coordinate {
	return geo.Coordinate{Lat: s.Latitude, Lon: s.Longitude}
}

// Clone returns a copy of j that shares no stops with it.
func Clone(j model.Journey) model.Journey {
	j.Stops = slices.Clone(j.Stops)
	return j
}

func cloneJourneys(journeys []model.Journey) []model.Journey {
	js := make([]model.Journey, len(journeys))
	for i, j := range journeys {
		js[i] = Clone(j)
	}
	return js
}

func dedupe(stops []model.Stop) []model.Stop {
	seen := make(map[string]bool, len(stops))
	unique := make([]model.Stop, 0, len(stops))
	for _, s := range stops {
		key := s.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, s)
	}
	return unique
}
