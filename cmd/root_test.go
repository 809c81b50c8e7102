package cmd

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, args ...string) (*Config, locationFlags, error) {
	t.Helper()
	fs := flag.NewFlagSet("journeymap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parse(fs, args, "1.2.3")
}

func TestParse_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, loc, err := parseArgs(t)
	require.NoError(t, err)

	dir := filepath.Join(home, ".journeymap")
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "journeymap.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "journeymap.log"), cfg.LogFile)
	assert.Equal(t, CatalogSQLite, cfg.Catalog)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Thumbnails)
	assert.Equal(t, 64, cfg.ThumbnailCache)
	assert.Equal(t, "1.2.3", cfg.Version)
	assert.False(t, loc.set)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestParse_Environment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOURNEYMAP_CATALOG", "sample")
	t.Setenv("JOURNEYMAP_LOG_LEVEL", "debug")
	t.Setenv("JOURNEYMAP_THUMBNAILS", "false")

	cfg, _, err := parseArgs(t)
	require.NoError(t, err)
	assert.Equal(t, CatalogSample, cfg.Catalog)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Thumbnails)
}

func TestParse_FlagsOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("JOURNEYMAP_CATALOG", "sample")

	db := filepath.Join(dir, "data", "trips.db")
	cfg, _, err := parseArgs(t, "-catalog", "sqlite", "-db", db)
	require.NoError(t, err)
	assert.Equal(t, CatalogSQLite, cfg.Catalog)
	assert.Equal(t, db, cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.ConfigDir)
}

func TestParse_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	env := "JOURNEYMAP_LOG_LEVEL=warn\nJOURNEYMAP_THUMBNAIL_CACHE=8\nUNRELATED=1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0600))

	cfg, _, err := parseArgs(t)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 8, cfg.ThumbnailCache)
}

func TestParse_EnvironmentBeatsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	t.Setenv("JOURNEYMAP_LOG_LEVEL", "error")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JOURNEYMAP_LOG_LEVEL=warn\n"), 0600))

	cfg, _, err := parseArgs(t)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParse_Location(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, loc, err := parseArgs(t, "-lat", "28.5", "-lon", "77.1")
	require.NoError(t, err)
	assert.True(t, loc.set)
	assert.Equal(t, 28.5, loc.lat)
	assert.Equal(t, 77.1, loc.lon)

	_, _, err = parseArgs(t, "-lat", "28.5")
	assert.Error(t, err)

	_, _, err = parseArgs(t, "-lat", "1", "-lon", "2", "-forget-location")
	assert.Error(t, err)

	_, loc, err = parseArgs(t, "-forget-location")
	require.NoError(t, err)
	assert.True(t, loc.forget)
}

func TestParse_UnknownCatalog(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, _, err := parseArgs(t, "-catalog", "postgres")
	assert.ErrorContains(t, err, "unknown catalog")
}

func TestParse_Version(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, _, err := parseArgs(t, "-version")
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
	assert.Empty(t, cfg.ConfigDir)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
