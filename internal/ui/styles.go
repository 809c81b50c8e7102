package ui

import (
	"github.com/charmbracelet/lipgloss"

	"journeymap/internal/model"
)

// Color palette
var (
	ColorBase    = lipgloss.Color("#1D221E")
	ColorSurface = lipgloss.Color("#2A332C")
	ColorMuted   = lipgloss.Color("#7E8C80")
	ColorText    = lipgloss.Color("#D6E0D3")
	ColorAccent  = lipgloss.Color("#8FA082")
	ColorGreen   = lipgloss.Color("#a6e3a1")
	ColorRed     = lipgloss.Color("#f38ba8")
	ColorYellow  = lipgloss.Color("#f9e2af")
	ColorBlue    = lipgloss.Color("#89b4fa")
	ColorOrange  = lipgloss.Color("#fab387")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorBase).
				Background(ColorAccent).
				Bold(false)

	NormalRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 2)

	ActivePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 1)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Padding(2, 4)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StopTitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorAccent).
			Padding(0, 1)

	PrimeBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorYellow).
			Padding(0, 1)

	ChainBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorBlue).
			Padding(0, 1)

	SavedStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorSurface)
)

// Map layer styles
var (
	markerStyle         = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorAccent).Bold(true)
	markerPrimeStyle    = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorYellow).Bold(true)
	markerSelectedStyle = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorOrange).Bold(true)
	routeStyle          = lipgloss.NewStyle().Foreground(ColorAccent)
	userStyle           = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
)

// mapTexture describes the background of a map style.
type mapTexture struct {
	glyphs []rune
	style  lipgloss.Style
	every  int // one glyph per this many cells
}

var mapTextures = map[model.MapStyle]mapTexture{
	model.MapStandard: {
		glyphs: []rune{'·'},
		style:  lipgloss.NewStyle().Foreground(ColorSurface),
		every:  7,
	},
	model.MapTerrain: {
		glyphs: []rune{'^', '∽', '·', '⌒'},
		style:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7f5a")),
		every:  5,
	},
	model.MapSatellite: {
		glyphs: []rune{'░', '▒', '░', '▓'},
		style:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4a3f")),
		every:  2,
	},
}
