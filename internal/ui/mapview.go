package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"journeymap/internal/geo"
	"journeymap/internal/model"
	"journeymap/internal/nav"
)

const (
	// cellAspect is the height/width ratio of a terminal cell.
	cellAspect = 2.0
	maxZoom    = 18.0
	// minLonSpan is the narrowest view, so a single place fits at maxZoom.
	minLonSpan = 360.0 / (1 << 18)
	// fitPadding is the fraction of the view kept free around a fitted journey.
	fitPadding = 0.15
	// paddingPixels converts a renderer padding request into a fraction of the view.
	paddingPixels = 1000.0
)

// MapMarker is one physical place drawn on the map.
type MapMarker struct {
	Index    int // position of the first visit within the active journey
	Stop     model.Stop
	Visits   int
	Selected bool
}

// MapLayer is everything drawn over the base texture.
type MapLayer struct {
	Style   model.MapStyle
	Route   []geo.Coordinate
	Markers []MapMarker
	User    *geo.Coordinate
}

type hitBox struct {
	x, y, w int
	index   int
}

// MapView projects coordinates onto a terminal panel and consumes camera requests.
type MapView struct {
	center  geo.Coordinate
	lonSpan float64
	fit     *geo.Bounds
	padding float64

	hits []hitBox
}

// NewMapView creates a map view centered on 0,0.
func NewMapView() *MapView {
	return &MapView{lonSpan: 360 / math.Pow(2, nav.CenterZoom)}
}

// Apply moves the camera.
func (v *MapView) Apply(req nav.CameraRequest) {
	switch req.Kind {
	case nav.CameraCenter:
		zoom := math.Min(req.Zoom, maxZoom)
		v.center = req.Center
		v.lonSpan = 360 / math.Pow(2, zoom)
		v.fit = nil
	case nav.CameraFitBounds:
		b := req.Bounds
		v.fit = &b
		v.center = b.Center()
		v.padding = fitPadding + float64(req.Padding)/paddingPixels
	}
}

// Center returns the camera center.
func (v *MapView) Center() geo.Coordinate {
	return v.center
}

// Zoom returns the effective zoom level for a panel of the given size.
func (v *MapView) Zoom(width, height int) float64 {
	return math.Log2(360 / v.spans(width, height))
}

// spans returns the visible longitude span for the panel size.
func (v *MapView) spans(width, height int) float64 {
	if v.fit == nil {
		return v.lonSpan
	}
	latSpan, lonSpan := v.fit.Span()
	scale := 1 + 2*v.padding

	span := lonSpan * scale
	if width > 0 && height > 0 {
		// Latitude extent converted to the longitude span that shows it.
		fromLat := latSpan * scale * float64(width) / (float64(height) * cellAspect)
		span = math.Max(span, fromLat)
	}
	return math.Max(span, minLonSpan)
}

// Project maps c to a cell of a width x height panel.
func (v *MapView) Project(c geo.Coordinate, width, height int) (x, y int, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	fx, fy := v.project(c, width, height)
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || x >= width || y < 0 || y >= height {
		return x, y, false
	}
	return x, y, true
}

// project returns the panel position of c in fractional cells.
func (v *MapView) project(c geo.Coordinate, width, height int) (fx, fy float64) {
	lonSpan := v.spans(width, height)
	latSpan := lonSpan * float64(height) * cellAspect / float64(width)

	left := v.center.Lon - lonSpan/2
	top := v.center.Lat + latSpan/2

	fx = (c.Lon - left) / lonSpan * float64(width)
	fy = (top - c.Lat) / latSpan * float64(height)
	return fx, fy
}

// HitTest returns the stop index of the marker drawn at x, y during the last render.
func (v *MapView) HitTest(x, y int) (int, bool) {
	// Later markers are drawn on top.
	for i := len(v.hits) - 1; i >= 0; i-- {
		h := v.hits[i]
		if y == h.y && x >= h.x && x < h.x+h.w {
			return h.index, true
		}
	}
	return 0, false
}

const (
	styleTexture = iota
	styleRoute
	styleMarker
	styleMarkerPrime
	styleMarkerSelected
	styleUser
	stylePlain
)

type cell struct {
	r     rune
	style int
}

// Render draws the layer into a width x height panel.
func (v *MapView) Render(width, height int, layer MapLayer) string {
	v.hits = v.hits[:0]
	if width <= 0 || height <= 0 {
		return ""
	}

	texture := mapTextures[layer.Style]
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', style: stylePlain}
			if texture.every > 0 && (x*7+y*13)%texture.every == 0 {
				glyph := texture.glyphs[(x+y)%len(texture.glyphs)]
				grid[y][x] = cell{r: glyph, style: styleTexture}
			}
		}
	}

	v.drawRoute(grid, width, height, layer.Route)

	if layer.User != nil {
		if x, y, ok := v.Project(*layer.User, width, height); ok {
			grid[y][x] = cell{r: '◉', style: styleUser}
		}
	}

	// Selected marker last so it stays visible when places overlap.
	ordered := make([]MapMarker, 0, len(layer.Markers))
	var selected []MapMarker
	for _, mk := range layer.Markers {
		if mk.Selected {
			selected = append(selected, mk)
			continue
		}
		ordered = append(ordered, mk)
	}
	ordered = append(ordered, selected...)

	for _, mk := range ordered {
		x, y, ok := v.Project(geo.Coordinate{Lat: mk.Stop.Latitude, Lon: mk.Stop.Longitude}, width, height)
		if !ok {
			continue
		}
		label := markerLabel(mk)
		runes := []rune(label)
		if x+len(runes) > width {
			x = width - len(runes)
			if x < 0 {
				x = 0
			}
		}
		style := styleMarker
		switch {
		case mk.Selected:
			style = styleMarkerSelected
		case mk.Stop.IsPrime:
			style = styleMarkerPrime
		}
		for i, r := range runes {
			if x+i < width {
				grid[y][x+i] = cell{r: r, style: style}
			}
		}
		v.hits = append(v.hits, hitBox{x: x, y: y, w: len(runes), index: mk.Index})
	}

	return renderGrid(grid, layer.Style)
}

func markerLabel(mk MapMarker) string {
	label := fmt.Sprintf("%d", mk.Index+1)
	if mk.Visits > 1 {
		label += fmt.Sprintf("×%d", mk.Visits)
	}
	return label
}

// drawRoute walks only the part of each leg that lies on the panel.
// Stop markers are drawn over the leg ends afterwards.
func (v *MapView) drawRoute(grid [][]cell, width, height int, route []geo.Coordinate) {
	for i := 1; i < len(route); i++ {
		fx0, fy0 := v.project(route[i-1], width, height)
		fx1, fy1 := v.project(route[i], width, height)
		fx0, fy0, fx1, fy1, ok := clipSegment(fx0, fy0, fx1, fy1, float64(width), float64(height))
		if !ok {
			continue
		}
		x0, y0 := cellIndex(fx0, width), cellIndex(fy0, height)
		x1, y1 := cellIndex(fx1, width), cellIndex(fy1, height)
		steps := max(abs(x1-x0), abs(y1-y0), 1)
		for s := 0; s <= steps; s++ {
			x := x0 + (x1-x0)*s/steps
			y := y0 + (y1-y0)*s/steps
			grid[y][x] = cell{r: '•', style: styleRoute}
		}
	}
}

// clipSegment clips the segment (x0,y0)-(x1,y1) to the box [0,w]x[0,h]
// (Liang-Barsky). ok is false when no part of the segment is inside.
func clipSegment(x0, y0, x1, y1, w, h float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{{-dx, x0}, {dx, w - x0}, {-dy, y0}, {dy, h - y0}}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// cellIndex floors f into [0, n).
func cellIndex(f float64, n int) int {
	return min(max(int(math.Floor(f)), 0), n-1)
}

func renderGrid(grid [][]cell, style model.MapStyle) string {
	styles := map[int]lipgloss.Style{
		styleTexture:        mapTextures[style].style,
		styleRoute:          routeStyle,
		styleMarker:         markerStyle,
		styleMarkerPrime:    markerPrimeStyle,
		styleMarkerSelected: markerSelectedStyle,
		styleUser:           userStyle,
		stylePlain:          lipgloss.NewStyle(),
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				run = append(run, c.r)
			}
			b.WriteString(styles[row[start].style].Render(string(run)))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
