package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"journeymap/internal/location"
)

const (
	CatalogSQLite = "sqlite"
	CatalogSample = "sample"

	envPrefix = "JOURNEYMAP"
)

// Config holds CLI configuration.
type Config struct {
	ConfigDir      string
	DBPath         string
	Catalog        string
	LogLevel       string
	LogFile        string
	Thumbnails     bool
	ThumbnailCache int
	ShowVersion    bool
	Version        string
}

// ParseFlags parses command-line flags and returns configuration.
// Explicit --lat/--lon are saved as the last known location; otherwise the
// first run on a terminal asks for one.
func ParseFlags(version string) (*Config, error) {
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ExitOnError)
	config, loc, err := parse(fs, os.Args[1:], version)
	if err != nil {
		return nil, err
	}
	if config.ShowVersion {
		return config, nil
	}

	store := location.NewStore(config.ConfigDir)
	if loc.forget {
		if err := store.Clear(); err != nil {
			return nil, err
		}
		return config, nil
	}
	if loc.set {
		if err := store.Save(loc.lat, loc.lon); err != nil {
			return nil, fmt.Errorf("failed to save location: %w", err)
		}
		return config, nil
	}

	settings, err := loadSetupSettings(config.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load setup settings: %w", err)
	}

	_, hasLocation := store.Last()
	if shouldRunSetup(settings, hasLocation) {
		if _, err := runSetup(config.ConfigDir, store); err != nil {
			return nil, fmt.Errorf("failed to run setup: %w", err)
		}
	}

	return config, nil
}

// locationFlags holds the location flags. set reports an explicit --lat/--lon pair.
type locationFlags struct {
	lat, lon float64
	set      bool
	forget   bool
}

func parse(fs *flag.FlagSet, args []string, version string) (*Config, locationFlags, error) {
	config := &Config{Version: version}
	var loc locationFlags

	v := viper.New()
	v.SetDefault("catalog", CatalogSQLite)
	v.SetDefault("log-level", "info")
	v.SetDefault("thumbnails", true)
	v.SetDefault("thumbnail-cache", 64)

	// .env files first so env-based defaults work with the flags below.
	for _, path := range []string{".env", ".env.local"} {
		if err := loadDotEnv(v, path); err != nil {
			return nil, loc, err
		}
	}

	// JOURNEYMAP_LOG_LEVEL → log-level
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.StringVar(&config.DBPath, "db", v.GetString("db"), "Path to SQLite database file (default: ~/.journeymap/journeymap.db)")
	fs.StringVar(&config.Catalog, "catalog", v.GetString("catalog"), "Journey catalog: sqlite or sample")
	fs.StringVar(&config.LogLevel, "log-level", v.GetString("log-level"), "Log level: debug, info, warn, error")
	fs.StringVar(&config.LogFile, "log-file", v.GetString("log-file"), "Log file (default: ~/.journeymap/journeymap.log)")
	fs.BoolVar(&config.Thumbnails, "thumbnails", v.GetBool("thumbnails"), "Download stop photos")
	fs.IntVar(&config.ThumbnailCache, "thumbnail-cache", v.GetInt("thumbnail-cache"), "Number of stop photos kept in memory")
	fs.Float64Var(&loc.lat, "lat", 0, "Save this latitude as your location")
	fs.Float64Var(&loc.lon, "lon", 0, "Save this longitude as your location")
	fs.BoolVar(&loc.forget, "forget-location", false, "Delete the saved location")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, loc, err
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if seen["lat"] != seen["lon"] {
		return nil, loc, errors.New("--lat and --lon must be given together")
	}
	loc.set = seen["lat"]
	if loc.set && loc.forget {
		return nil, loc, errors.New("--forget-location cannot be combined with --lat/--lon")
	}

	if config.ShowVersion {
		return config, loc, nil
	}

	switch config.Catalog {
	case CatalogSQLite, CatalogSample:
	default:
		return nil, loc, fmt.Errorf("unknown catalog %q (want %s or %s)", config.Catalog, CatalogSQLite, CatalogSample)
	}

	// Set default paths if not specified
	if config.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, loc, fmt.Errorf("failed to get home directory: %w", err)
		}
		config.ConfigDir = filepath.Join(home, ".journeymap")
		config.DBPath = filepath.Join(config.ConfigDir, "journeymap.db")
	} else {
		config.ConfigDir = filepath.Dir(config.DBPath)
	}
	if err := os.MkdirAll(config.ConfigDir, 0700); err != nil {
		return nil, loc, fmt.Errorf("failed to create config directory: %w", err)
	}

	if config.LogFile == "" {
		config.LogFile = filepath.Join(config.ConfigDir, "journeymap.log")
	}

	return config, loc, nil
}

// loadDotEnv copies JOURNEYMAP_* entries of a dotenv file into v's defaults.
// A missing file is not an error.
func loadDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	prefix := strings.ToLower(envPrefix) + "_"
	for _, k := range env.AllKeys() {
		name, ok := strings.CutPrefix(k, prefix)
		if !ok {
			continue
		}
		v.SetDefault(strings.ReplaceAll(name, "_", "-"), env.Get(k))
	}
	return nil
}
