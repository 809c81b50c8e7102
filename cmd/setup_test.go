package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeymap/internal/geo"
	"journeymap/internal/location"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon string
		want     geo.Coordinate
		wantErr  string
	}{
		{name: "valid", lat: "28.4595", lon: "77.0266", want: geo.Coordinate{Lat: 28.4595, Lon: 77.0266}},
		{name: "spaces and negatives", lat: " -33.86 ", lon: "151.2", want: geo.Coordinate{Lat: -33.86, Lon: 151.2}},
		{name: "bad latitude", lat: "north", lon: "1", wantErr: "latitude must be a number"},
		{name: "bad longitude", lat: "1", lon: "", wantErr: "longitude must be a number"},
		{name: "latitude range", lat: "91", lon: "0", wantErr: "between -90 and 90"},
		{name: "longitude range", lat: "0", lon: "-181", wantErr: "between -180 and 180"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCoordinate(tt.lat, tt.lon)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupSettings_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	settings, err := loadSetupSettings(dir)
	require.NoError(t, err)
	assert.False(t, settings.Completed)

	require.NoError(t, saveSetupSettings(dir, SetupSettings{Completed: true, LocationShared: true}))
	settings, err = loadSetupSettings(dir)
	require.NoError(t, err)
	assert.True(t, settings.Completed)
	assert.True(t, settings.LocationShared)
}

func TestShouldRunSetup_SkipsWhenDone(t *testing.T) {
	assert.False(t, shouldRunSetup(SetupSettings{Completed: true}, false))
	assert.False(t, shouldRunSetup(SetupSettings{}, true))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m setupModel, msgs ...tea.Msg) (setupModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(setupModel)
	}
	return m, cmd
}

func TestSetupModel_SavesLocation(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m, _ := step(t, newSetupModel(), runes("y"))
	require.Equal(t, stepCoords, m.step)
	assert.Contains(t, m.View(), "Where are you?")

	m, cmd := step(t, m, runes("28.5"), enter, runes("77.1"), enter)
	require.Equal(t, stepDone, m.step)
	require.NotNil(t, m.location)
	assert.Equal(t, geo.Coordinate{Lat: 28.5, Lon: 77.1}, *m.location)
	assert.True(t, m.settings.Completed)
	assert.True(t, m.settings.LocationShared)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	dir := t.TempDir()
	store := location.NewStore(dir)
	settings, err := finishSetup(dir, store, m)
	require.NoError(t, err)
	assert.True(t, settings.LocationShared)

	got, ok := store.Last()
	require.True(t, ok)
	assert.Equal(t, geo.Coordinate{Lat: 28.5, Lon: 77.1}, got)
}

func TestSetupModel_InvalidInputStays(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m, _ := step(t, newSetupModel(), enter, runes("abc"), enter, runes("1"), enter)
	assert.Equal(t, stepCoords, m.step)
	assert.Equal(t, "latitude must be a number", m.invalid)
	assert.Nil(t, m.location)
	assert.Contains(t, m.View(), "latitude must be a number")
}

func TestSetupModel_Decline(t *testing.T) {
	m, cmd := step(t, newSetupModel(), runes("n"))
	assert.Equal(t, stepDone, m.step)
	assert.Nil(t, m.location)
	assert.True(t, m.settings.Completed)
	assert.False(t, m.settings.LocationShared)
	require.NotNil(t, cmd)

	dir := t.TempDir()
	store := location.NewStore(dir)
	_, err := finishSetup(dir, store, m)
	require.NoError(t, err)
	_, ok := store.Last()
	assert.False(t, ok)

	settings, err := loadSetupSettings(dir)
	require.NoError(t, err)
	assert.True(t, settings.Completed)
}

func TestSetupModel_SkipCoordinates(t *testing.T) {
	m, _ := step(t, newSetupModel(), runes("y"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stepDone, m.step)
	assert.Nil(t, m.location)
	assert.Contains(t, m.View(), "Skipped")
}
