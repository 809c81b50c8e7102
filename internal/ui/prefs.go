package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"journeymap/internal/model"
)

// UIPreferences stores persisted map screen preferences.
type UIPreferences struct {
	MapStyle      string `json:"map_style"`
	StatsExpanded bool   `json:"stats_expanded"`
	LastJourneyID int64  `json:"last_journey_id"`
}

// prefsStore keeps UIPreferences in a JSON file. A zero store persists nothing.
type prefsStore struct {
	path string
}

func newPrefsStore(configDir string) prefsStore {
	if configDir == "" {
		return prefsStore{}
	}
	return prefsStore{path: filepath.Join(configDir, "ui_prefs.json")}
}

func (s prefsStore) load() UIPreferences {
	if s.path == "" {
		return UIPreferences{}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return UIPreferences{}
	}

	var prefs UIPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return UIPreferences{}
	}
	return prefs
}

func (s prefsStore) save(prefs UIPreferences) error {
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create prefs dir: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}

// mapStyleFromPref returns the style named by a saved preference.
func mapStyleFromPref(name string) (model.MapStyle, bool) {
	for _, s := range []model.MapStyle{model.MapStandard, model.MapTerrain, model.MapSatellite} {
		if s.String() == name {
			return s, true
		}
	}
	return model.MapStandard, false
}
