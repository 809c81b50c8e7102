package journey

import "journeymap/internal/model"

// Source provides the journey catalog.
type Source interface {
	Journeys() ([]model.Journey, error)
}

// StaticSource serves a fixed list of journeys.
type StaticSource struct {
	journeys []model.Journey
}

// NewStaticSource creates a source backed by journeys.
func NewStaticSource(journeys []model.Journey) *StaticSource {
	return &StaticSource{journeys: journeys}
}

// Journeys returns the fixed journeys.
func (s *StaticSource) Journeys() ([]model.Journey, error) {
	return s.journeys, nil
}

// Load reads src and wraps the result in a Catalog.
func Load(src Source) (*Catalog, error) {
	js, err := src.Journeys()
	if err != nil {
		return nil, err
	}
	return New(js), nil
}
