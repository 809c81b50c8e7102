package location

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeymap/internal/geo"
)

func TestStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".journeymap")
	store := NewStore(dir)

	_, ok := store.Last()
	assert.False(t, ok, "nothing saved yet")

	require.NoError(t, store.Save(28.4595, 77.0266))

	got, ok := store.Last()
	require.True(t, ok)
	assert.Equal(t, geo.Coordinate{Lat: 28.4595, Lon: 77.0266}, got)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_Overwrite(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(1, 2))
	require.NoError(t, store.Save(15.5, 73.75))

	got, ok := store.Last()
	require.True(t, ok)
	assert.Equal(t, geo.Coordinate{Lat: 15.5, Lon: 73.75}, got)
}

func TestStore_RejectsInvalidCoordinates(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.Error(t, store.Save(91, 0))
	assert.Error(t, store.Save(0, -181))

	_, ok := store.Last()
	assert.False(t, ok)
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "location.json"), []byte("{not json"), 0600))

	_, ok := NewStore(dir).Last()
	assert.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Clear())
	require.NoError(t, store.Save(1, 1))
	require.NoError(t, store.Clear())

	_, ok := store.Last()
	assert.False(t, ok)
}
