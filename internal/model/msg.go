package model

import "image"

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// JourneysLoadedMsg is sent when the journey catalog is loaded.
type JourneysLoadedMsg struct {
	Journeys []Journey
}

// LocationLoadedMsg is sent when the last known location is read.
type LocationLoadedMsg struct {
	Latitude  float64
	Longitude float64
	Found     bool
}

// ThumbnailLoadedMsg is sent when a thumbnail fetch completes.
// Image is nil when the fetch failed.
type ThumbnailLoadedMsg struct {
	URL   string
	Image image.Image
}
