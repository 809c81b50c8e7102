package db

import (
	"database/sql"

	"go.uber.org/zap"

	"journeymap/internal/model"
)

// CatalogSource serves journeys stored in SQLite.
type CatalogSource struct {
	db     *sql.DB
	seed   []model.Journey
	logger *zap.Logger
}

// NewCatalogSource creates a source over db. When the database is empty
// on first read it is seeded with seed.
func NewCatalogSource(db *sql.DB, seed []model.Journey, logger *zap.Logger) *CatalogSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogSource{db: db, seed: seed, logger: logger}
}

// Journeys returns every stored journey.
func (s *CatalogSource) Journeys() ([]model.Journey, error) {
	if len(s.seed) > 0 {
		seeded, err := SeedIfEmpty(s.db, s.seed)
		if err != nil {
			return nil, err
		}
		if seeded {
			s.logger.Info("seeded journey catalog", zap.Int("journeys", len(s.seed)))
		}
	}

	journeys, err := ListJourneys(s.db)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("journeys loaded", zap.Int("journeys", len(journeys)))
	return journeys, nil
}
