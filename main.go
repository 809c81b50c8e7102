package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"journeymap/cmd"
	"journeymap/internal/db"
	"journeymap/internal/journey"
	"journeymap/internal/location"
	"journeymap/internal/logging"
	"journeymap/internal/thumb"
	"journeymap/internal/ui"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if config.ShowVersion {
		fmt.Println("journeymap", config.Version)
		return
	}

	logger, err := logging.New(config.LogLevel, config.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var source journey.Source
	switch config.Catalog {
	case cmd.CatalogSample:
		source = journey.NewStaticSource(journey.SampleJourneys())
	default:
		database, err := db.Open(config.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
			os.Exit(1)
		}
		defer database.Close()
		source = db.NewCatalogSource(database, journey.SampleJourneys(), logger)
	}

	opts := ui.Options{
		Source:    source,
		Locations: location.NewStore(config.ConfigDir),
		Logger:    logger,
		ConfigDir: config.ConfigDir,
	}
	if config.Thumbnails {
		fetcher, err := thumb.NewFetcher(config.ThumbnailCache, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Thumbnails = fetcher
	}

	logger.Info("starting journeymap",
		zap.String("version", config.Version),
		zap.String("catalog", config.Catalog),
		zap.Bool("thumbnails", config.Thumbnails),
	)

	// Create and run Bubble Tea app
	p := tea.NewProgram(ui.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
