package nav

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"journeymap/internal/geo"
	"journeymap/internal/journey"
	"journeymap/internal/model"
)

const (
	// SettleDelay is how long deferred effects wait for sheet and drawer
	// animations to finish.
	SettleDelay = 300 * time.Millisecond
	// CenterZoom is the zoom level used when centering on a stop.
	CenterZoom = 16.0
	// BoundsPadding is the padding requested around a fitted journey.
	BoundsPadding = 250
)

var (
	ErrUnknownJourney   = errors.New("journey not in catalog")
	ErrNoActiveJourney  = errors.New("no active journey")
	ErrStopNotInJourney = errors.New("stop not in active journey")
)

// CameraKind identifies a camera request.
type CameraKind int

const (
	CameraCenter CameraKind = iota
	CameraFitBounds
)

// CameraRequest is an instruction for the map renderer.
type CameraRequest struct {
	Kind    CameraKind
	Center  geo.Coordinate // CameraCenter
	Zoom    float64        // CameraCenter
	Bounds  geo.Bounds     // CameraFitBounds
	Padding int            // CameraFitBounds
}

// EffectKind identifies a deferred effect.
type EffectKind int

const (
	EffectClearSelection EffectKind = iota
	EffectFitJourney
)

// Deferred is an effect the host must hand back to Fire after Delay.
type Deferred struct {
	Kind  EffectKind
	Delay time.Duration
	seq   uint64
}

// State is a snapshot of the navigation state.
type State struct {
	ActiveJourney   *model.Journey
	SelectedStop    *model.Stop
	SheetVisible    bool
	JourneyListOpen bool
	StatsExpanded   bool
	MapStyle        model.MapStyle
}

// Controller owns the navigation state of the journey map.
// It is not safe for concurrent use; drive it from a single event loop.
type Controller struct {
	catalog *journey.Catalog
	logger  *zap.Logger

	active   *model.Journey
	selected int // index into active.Stops, -1 when nothing is selected

	sheetVisible    bool
	journeyListOpen bool
	statsExpanded   bool
	mapStyle        model.MapStyle

	selectionSeq uint64
	journeySeq   uint64

	camera []CameraRequest
	closed bool
}

// New creates a controller over catalog. The first journey starts active.
func New(catalog *journey.Catalog, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		catalog:  catalog,
		logger:   logger,
		selected: -1,
		mapStyle: model.MapStandard,
	}
	if first, ok := catalog.First(); ok {
		c.active = &first
	}
	return c
}

// Catalog returns the journey catalog.
func (c *Controller) Catalog() *journey.Catalog {
	return c.catalog
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	s := State{
		SheetVisible:    c.sheetVisible,
		JourneyListOpen: c.journeyListOpen,
		StatsExpanded:   c.statsExpanded,
		MapStyle:        c.mapStyle,
	}
	if c.active != nil {
		j := journey.Clone(*c.active)
		s.ActiveJourney = &j
		if c.selected >= 0 {
			stop := c.active.Stops[c.selected]
			s.SelectedStop = &stop
		}
	}
	return s
}

// SelectJourney makes the journey with id active and clears any selection.
// The returned effect fits the camera to the journey once the drawer closes.
func (c *Controller) SelectJourney(id int64) (Deferred, error) {
	j, ok := c.catalog.Find(id)
	if !ok {
		return Deferred{}, ErrUnknownJourney
	}

	c.active = &j
	c.clearSelection()
	c.sheetVisible = false
	c.journeyListOpen = false
	c.journeySeq++

	c.logger.Debug("journey selected", zap.Int64("journey_id", id), zap.Int("stops", j.StopCount()))
	return Deferred{Kind: EffectFitJourney, Delay: SettleDelay, seq: c.journeySeq}, nil
}

// TapStop selects s, which must belong to the active journey, opens the
// sheet and centers the camera on it.
func (c *Controller) TapStop(s model.Stop) error {
	if c.active == nil {
		return ErrNoActiveJourney
	}
	for i, other := range c.active.Stops {
		if other == s {
			c.selectAt(i)
			return nil
		}
	}
	return ErrStopNotInJourney
}

// TapStopAt selects the stop at index i of the active journey.
func (c *Controller) TapStopAt(i int) error {
	if c.active == nil {
		return ErrNoActiveJourney
	}
	if i < 0 || i >= len(c.active.Stops) {
		return ErrStopNotInJourney
	}
	c.selectAt(i)
	return nil
}

// DismissSheet hides the sheet. The returned effect clears the selection
// once the sheet has settled; ok is false when the sheet was not visible.
func (c *Controller) DismissSheet() (Deferred, bool) {
	if !c.sheetVisible {
		return Deferred{}, false
	}
	c.sheetVisible = false
	return Deferred{Kind: EffectClearSelection, Delay: SettleDelay, seq: c.selectionSeq}, true
}

// GoToNextStop selects the stop after the current selection.
func (c *Controller) GoToNextStop() bool {
	if !c.HasNextStop() {
		return false
	}
	c.selectAt(c.selected + 1)
	return true
}

// GoToPrevStop selects the stop before the current selection.
func (c *Controller) GoToPrevStop() bool {
	if !c.HasPrevStop() {
		return false
	}
	c.selectAt(c.selected - 1)
	return true
}

// HasNextStop reports whether a stop follows the current selection.
func (c *Controller) HasNextStop() bool {
	return c.active != nil && c.selected >= 0 && c.selected < len(c.active.Stops)-1
}

// HasPrevStop reports whether a stop precedes the current selection.
func (c *Controller) HasPrevStop() bool {
	return c.active != nil && c.selected > 0
}

// CurrentStopIndex returns the 1-based position of the selected stop,
// or 0 when nothing is selected.
func (c *Controller) CurrentStopIndex() int {
	if c.active == nil || c.selected < 0 {
		return 0
	}
	return c.selected + 1
}

// FitToJourney queues a camera request framing every stop of the active
// journey. It reports false when there is nothing to frame.
func (c *Controller) FitToJourney() bool {
	if c.active == nil {
		return false
	}
	bounds, ok := geo.BoundsOf(journey.Coordinates(*c.active))
	if !ok {
		return false
	}
	c.camera = append(c.camera, CameraRequest{
		Kind:    CameraFitBounds,
		Bounds:  bounds,
		Padding: BoundsPadding,
	})
	return true
}

// ToggleJourneyList opens or closes the journey drawer.
func (c *Controller) ToggleJourneyList() {
	c.journeyListOpen = !c.journeyListOpen
}

// ToggleStats expands or collapses the stats bar.
func (c *Controller) ToggleStats() {
	c.statsExpanded = !c.statsExpanded
}

// CycleMapStyle advances the base layer: standard, terrain, satellite.
func (c *Controller) CycleMapStyle() model.MapStyle {
	c.mapStyle = c.mapStyle.Next()
	return c.mapStyle
}

// Fire applies a deferred effect if it is still current. It reports
// whether the effect changed anything.
func (c *Controller) Fire(d Deferred) bool {
	if c.closed {
		return false
	}
	switch d.Kind {
	case EffectClearSelection:
		if d.seq != c.selectionSeq || c.selected < 0 {
			return false
		}
		c.clearSelection()
		return true
	case EffectFitJourney:
		if d.seq != c.journeySeq {
			c.logger.Debug("stale fit dropped")
			return false
		}
		return c.FitToJourney()
	}
	return false
}

// DrainCamera returns the queued camera requests in order and empties the queue.
func (c *Controller) DrainCamera() []CameraRequest {
	reqs := c.camera
	c.camera = nil
	return reqs
}

// Close turns pending deferred effects into no-ops.
func (c *Controller) Close() {
	c.closed = true
	c.camera = nil
}

func (c *Controller) selectAt(i int) {
	c.selected = i
	c.selectionSeq++
	c.sheetVisible = true

	s := c.active.Stops[i]
	c.camera = append(c.camera, CameraRequest{
		Kind:   CameraCenter,
		Center: journey.Coordinate(s),
		Zoom:   CenterZoom,
	})
	c.logger.Debug("stop selected", zap.Int64("stop_id", s.ID), zap.Int("index", i+1))
}

func (c *Controller) clearSelection() {
	c.selected = -1
	c.selectionSeq++
}
