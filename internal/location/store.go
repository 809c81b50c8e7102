package location

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"journeymap/internal/geo"
)

const fileName = "location.json"

// Store persists the user's last known location.
type Store struct {
	path string
}

type record struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SavedAt   time.Time `json:"saved_at"`
}

// NewStore creates a store keeping its file in dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Save records lat/lon as the last known location.
func (s *Store) Save(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("invalid coordinates %.5f, %.5f", lat, lon)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create location dir: %w", err)
	}

	data, err := json.MarshalIndent(record{Latitude: lat, Longitude: lon, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write location: %w", err)
	}
	return nil
}

// Last returns the last saved location. ok is false when none was saved
// or the file is unreadable.
func (s *Store) Last() (geo.Coordinate, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return geo.Coordinate{}, false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: rec.Latitude, Lon: rec.Longitude}, true
}

// Clear removes the saved location.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove location: %w", err)
	}
	return nil
}
