package ui

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"journeymap/internal/geo"
	"journeymap/internal/journey"
	"journeymap/internal/model"
	"journeymap/internal/nav"
)

const thumbnailTimeout = 10 * time.Second

// LocationSource provides the last known user location.
type LocationSource interface {
	Last() (geo.Coordinate, bool)
}

// ThumbnailFetcher loads stop photos. Fetch returns nil when the photo
// cannot be loaded.
type ThumbnailFetcher interface {
	Fetch(ctx context.Context, url string) image.Image
}

// Options configures the root model.
type Options struct {
	Source     journey.Source
	Locations  LocationSource
	Thumbnails ThumbnailFetcher
	Logger     *zap.Logger
	// ConfigDir holds ui_prefs.json. Empty disables persistence.
	ConfigDir string
}

// Model is the root Bubble Tea model.
type Model struct {
	source    journey.Source
	locations LocationSource
	thumbs    ThumbnailFetcher
	logger    *zap.Logger

	ctrl        *nav.Controller
	visitCounts map[string]int
	user        *geo.Coordinate

	mapView     *MapView
	journeyList *JourneyListModel

	thumbArt    map[string]string
	thumbFailed map[string]bool
	pending     map[string]bool

	spinner  spinner.Model
	spinning bool
	loading  bool

	width  int
	height int

	error         string
	info          string
	showingHelp   bool
	notesExpanded bool

	keys  KeyMap
	store prefsStore
	prefs UIPreferences
	now   func() time.Time
}

// New creates a new root model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	source := opts.Source
	if source == nil {
		source = journey.NewStaticSource(nil)
	}
	store := newPrefsStore(opts.ConfigDir)

	return Model{
		source:      source,
		locations:   opts.Locations,
		thumbs:      opts.Thumbnails,
		logger:      logger,
		mapView:     NewMapView(),
		thumbArt:    make(map[string]string),
		thumbFailed: make(map[string]bool),
		pending:     make(map[string]bool),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorAccent)),
		),
		spinning: true,
		loading:  true,
		keys:     DefaultKeyMap(),
		store:    store,
		prefs:    store.load(),
		now:      time.Now,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadJourneysCmd(m.source), m.spinner.Tick}
	if m.locations != nil {
		cmds = append(cmds, loadLocationCmd(m.locations))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && len(m.pending) == 0 {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case model.JourneysLoadedMsg:
		return m.handleJourneysLoaded(msg)

	case model.LocationLoadedMsg:
		if msg.Found {
			m.user = &geo.Coordinate{Lat: msg.Latitude, Lon: msg.Longitude}
		}
		return m, nil

	case model.ThumbnailLoadedMsg:
		delete(m.pending, msg.URL)
		if msg.Image == nil {
			m.thumbFailed[msg.URL] = true
			return m, nil
		}
		m.thumbArt[msg.URL] = RenderThumbnail(msg.Image, thumbWidth, thumbHeight)
		return m, nil

	case deferredMsg:
		if m.ctrl == nil {
			return m, nil
		}
		if m.ctrl.Fire(msg.effect) {
			if msg.effect.Kind == nav.EffectClearSelection {
				m.notesExpanded = false
			}
			m.syncCamera()
		}
		return m, nil

	case model.ErrorMsg:
		m.loading = false
		m.error = msg.Err.Error()
		m.logger.Error("ui error", zap.Error(msg.Err))
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleJourneysLoaded(msg model.JourneysLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	catalog := journey.New(msg.Journeys)
	m.ctrl = nav.New(catalog, m.logger)
	m.visitCounts = catalog.VisitCountMap()
	m.journeyList = NewJourneyListModel(catalog.Journeys())

	m.restorePrefs()
	m.ctrl.FitToJourney()
	m.syncCamera()

	m.logger.Info("journeys loaded",
		zap.Int("journeys", catalog.Len()),
		zap.Int("places", len(catalog.UniqueStops())),
	)
	return m, nil
}

// restorePrefs reapplies the saved map style, stats state and journey.
func (m *Model) restorePrefs() {
	if style, ok := mapStyleFromPref(m.prefs.MapStyle); ok {
		for i := 0; i < 3 && m.ctrl.State().MapStyle != style; i++ {
			m.ctrl.CycleMapStyle()
		}
	}
	if m.prefs.StatsExpanded {
		m.ctrl.ToggleStats()
	}
	if id := m.prefs.LastJourneyID; id != 0 {
		st := m.ctrl.State()
		if st.ActiveJourney != nil && st.ActiveJourney.ID != id {
			// The fit queued below replaces the deferred one.
			if _, err := m.ctrl.SelectJourney(id); err != nil {
				m.logger.Debug("saved journey not in catalog", zap.Int64("journey_id", id))
			}
		}
	}
}

func (m *Model) persistPrefs() {
	st := m.ctrl.State()
	m.prefs.MapStyle = st.MapStyle.String()
	m.prefs.StatsExpanded = st.StatsExpanded
	if st.ActiveJourney != nil {
		m.prefs.LastJourneyID = st.ActiveJourney.ID
	}
	if err := m.store.save(m.prefs); err != nil {
		m.logger.Warn("failed to save preferences", zap.Error(err))
	}
}

func (m *Model) syncCamera() {
	for _, req := range m.ctrl.DrainCamera() {
		m.mapView.Apply(req)
	}
}

func (m *Model) close() {
	if m.ctrl != nil {
		m.ctrl.Close()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.close()
		return m, tea.Quit
	}

	if m.showingHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Dismiss) {
			m.showingHelp = false
		}
		return m, nil
	}

	m.error = ""
	m.info = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showingHelp = true
		return m, nil
	}

	if m.ctrl == nil {
		return m, nil
	}
	if m.ctrl.State().JourneyListOpen {
		return m.handleDrawerKey(msg)
	}
	return m.handleMapKey(msg)
}

func (m Model) handleDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.journeyList.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.journeyList.MoveUp()
	case key.Matches(msg, m.keys.Top):
		m.journeyList.JumpToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.journeyList.JumpToBottom()
	case key.Matches(msg, m.keys.Select):
		j, ok := m.journeyList.Selected()
		if !ok {
			return m, nil
		}
		return m.selectJourney(j.ID)
	case key.Matches(msg, m.keys.Dismiss, m.keys.Journeys):
		m.ctrl.ToggleJourneyList()
	}
	return m, nil
}

func (m Model) handleMapKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.TapStop):
		n, _ := strconv.Atoi(msg.String())
		if err := m.ctrl.TapStopAt(n - 1); err != nil {
			m.info = fmt.Sprintf("No stop %d in this journey", n)
			return m, nil
		}
		return m.afterSelection()

	case key.Matches(msg, m.keys.Next):
		if m.ctrl.GoToNextStop() {
			return m.afterSelection()
		}

	case key.Matches(msg, m.keys.Prev):
		if m.ctrl.GoToPrevStop() {
			return m.afterSelection()
		}

	case key.Matches(msg, m.keys.Dismiss):
		if d, ok := m.ctrl.DismissSheet(); ok {
			return m, deferCmd(d)
		}

	case key.Matches(msg, m.keys.Journeys):
		m.ctrl.ToggleJourneyList()
		if st := m.ctrl.State(); st.ActiveJourney != nil {
			m.journeyList.FocusJourney(st.ActiveJourney.ID)
		}

	case key.Matches(msg, m.keys.Fit):
		if m.ctrl.FitToJourney() {
			m.syncCamera()
		}

	case key.Matches(msg, m.keys.Style):
		style := m.ctrl.CycleMapStyle()
		m.info = "Map style: " + style.String()
		m.persistPrefs()

	case key.Matches(msg, m.keys.Stats):
		m.ctrl.ToggleStats()
		m.persistPrefs()

	case key.Matches(msg, m.keys.ReadMore):
		if m.ctrl.State().SheetVisible {
			m.notesExpanded = !m.notesExpanded
		}
	}
	return m, nil
}

func (m Model) selectJourney(id int64) (tea.Model, tea.Cmd) {
	d, err := m.ctrl.SelectJourney(id)
	if err != nil {
		m.error = fmt.Sprintf("failed to select journey: %v", err)
		return m, nil
	}
	m.notesExpanded = false
	m.persistPrefs()
	return m, deferCmd(d)
}

func (m Model) afterSelection() (tea.Model, tea.Cmd) {
	m.syncCamera()
	m.notesExpanded = false
	return m, m.fetchSelectedThumbnail()
}

func (m *Model) fetchSelectedThumbnail() tea.Cmd {
	st := m.ctrl.State()
	if st.SelectedStop == nil || m.thumbs == nil {
		return nil
	}
	url := st.SelectedStop.Image
	if url == "" || m.pending[url] || m.thumbFailed[url] {
		return nil
	}
	if _, ok := m.thumbArt[url]; ok {
		return nil
	}

	m.pending[url] = true
	cmd := fetchThumbnailCmd(m.thumbs, url)
	if !m.spinning {
		m.spinning = true
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ctrl == nil || m.showingHelp {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	l := m.layout()
	x, y := msg.X-l.mapX, msg.Y-l.mapY
	if x < 0 || y < 0 || x >= l.mapW || y >= l.mapH {
		return m, nil
	}
	idx, ok := m.mapView.HitTest(x, y)
	if !ok {
		return m, nil
	}
	if err := m.ctrl.TapStopAt(idx); err != nil {
		return m, nil
	}
	return m.afterSelection()
}

// screenLayout is the rendered chrome and the map panel geometry.
type screenLayout struct {
	header  string
	banners string
	bottom  string
	footer  string

	drawerW int
	mapX    int
	mapY    int
	mapW    int
	mapH    int
}

func (m Model) layout() screenLayout {
	st := m.ctrl.State()
	l := screenLayout{
		header:  m.renderHeader(st),
		banners: m.renderBanners(),
		footer:  RenderHelp(m.keys, st.JourneyListOpen, st.SheetVisible, m.width),
	}

	switch {
	case st.SheetVisible && st.SelectedStop != nil:
		l.bottom = m.renderSheet(st)
	case st.ActiveJourney != nil:
		l.bottom = statsBar{journey: *st.ActiveJourney, user: m.user, expanded: st.StatsExpanded}.View(m.width)
	default:
		l.bottom = EmptyStateStyle.Render("No journeys yet.")
	}

	if st.JourneyListOpen {
		l.drawerW = min(40, max(24, m.width/3))
	}
	l.mapX = l.drawerW
	l.mapY = blockHeight(l.header) + blockHeight(l.banners)
	l.mapW = max(0, m.width-l.drawerW)
	l.mapH = max(0, m.height-l.mapY-blockHeight(l.bottom)-blockHeight(l.footer))
	return l
}

func blockHeight(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}

// View renders the model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.keys, m.width, m.height)
	}

	if m.ctrl == nil {
		return m.renderLoading()
	}

	st := m.ctrl.State()
	l := m.layout()

	middle := m.mapView.Render(l.mapW, l.mapH, m.mapLayer(st))
	if l.drawerW > 0 {
		var activeID int64
		if st.ActiveJourney != nil {
			activeID = st.ActiveJourney.ID
		}
		drawer := m.journeyList.View(l.drawerW, l.mapH, activeID)
		middle = lipgloss.JoinHorizontal(lipgloss.Top, drawer, middle)
	}

	parts := []string{l.header}
	if l.banners != "" {
		parts = append(parts, l.banners)
	}
	parts = append(parts, middle, l.bottom, l.footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// mapLayer builds the markers for the active journey. Repeat visits share
// one marker, labelled with the first visit's position.
func (m Model) mapLayer(st nav.State) MapLayer {
	layer := MapLayer{Style: st.MapStyle, User: m.user}
	if st.ActiveJourney == nil {
		return layer
	}
	j := *st.ActiveJourney
	layer.Route = journey.Coordinates(j)

	selectedKey := ""
	if st.SelectedStop != nil {
		selectedKey = st.SelectedStop.Key()
	}

	first := make(map[string]int, len(j.Stops))
	for i, s := range j.Stops {
		if _, ok := first[s.Key()]; !ok {
			first[s.Key()] = i
		}
	}

	for _, s := range journey.UniqueJourneyStops(j) {
		layer.Markers = append(layer.Markers, MapMarker{
			Index:    first[s.Key()],
			Stop:     s,
			Visits:   m.visitCounts[s.Key()],
			Selected: s.Key() == selectedKey,
		})
	}
	return layer
}

func (m Model) renderSheet(st nav.State) string {
	s := *st.SelectedStop
	sheet := stopSheet{
		stop:          s,
		index:         m.ctrl.CurrentStopIndex(),
		total:         st.ActiveJourney.StopCount(),
		visits:        m.visitCounts[s.Key()],
		thumbnail:     m.thumbnailFor(s),
		notesExpanded: m.notesExpanded,
		hasPrev:       m.ctrl.HasPrevStop(),
		hasNext:       m.ctrl.HasNextStop(),
		now:           m.now(),
	}
	if m.user != nil {
		sheet.hasUser = true
		sheet.fromUserM = journey.DistanceMeters(*m.user, s)
	}
	return sheet.View(m.width)
}

func (m Model) thumbnailFor(s model.Stop) string {
	url := s.Image
	if art, ok := m.thumbArt[url]; ok && url != "" {
		return art
	}

	caption := "no photo"
	switch {
	case url == "":
	case m.pending[url]:
		caption = "loading…"
	case m.thumbFailed[url]:
		caption = "photo unavailable"
	}
	return renderThumbnailPlaceholder(caption, thumbWidth, thumbHeight)
}

func (m Model) renderHeader(st nav.State) string {
	left := "  " + HeaderStyle.Render("journeymap")
	if st.ActiveJourney != nil {
		separator := BreadcrumbStyle.Render(" › ")
		name := strings.TrimSpace(st.ActiveJourney.CoverEmoji + " " + st.ActiveJourney.Name)
		left += separator + BreadcrumbActiveStyle.Render(name)
	}

	right := BreadcrumbStyle.Render(st.MapStyle.String())
	if st.ActiveJourney != nil && st.ActiveJourney.Date != "" {
		right += BreadcrumbStyle.Render(" • " + st.ActiveJourney.Date)
	}
	if len(m.pending) > 0 {
		right = m.spinner.View() + " " + right
	}
	right += "  "

	padding := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", padding) + right
}

func (m Model) renderBanners() string {
	var banners []string
	if m.error != "" {
		banners = append(banners, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		banners = append(banners, SuccessStyle.Width(m.width).Render(m.info))
	}
	return strings.Join(banners, "\n")
}

func (m Model) renderLoading() string {
	var body string
	if m.error != "" {
		body = ErrorStyle.Render("Error: "+m.error) + "\n\n" + HelpDescStyle.Render("q to quit")
	} else {
		body = m.spinner.View() + " " + NormalRowStyle.Render("Loading journeys…")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// deferredMsg hands a deferred navigation effect back to the controller.
type deferredMsg struct {
	effect nav.Deferred
}

func deferCmd(d nav.Deferred) tea.Cmd {
	return tea.Tick(d.Delay, func(time.Time) tea.Msg {
		return deferredMsg{effect: d}
	})
}

func loadJourneysCmd(src journey.Source) tea.Cmd {
	return func() tea.Msg {
		journeys, err := src.Journeys()
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load journeys: %w", err)}
		}
		return model.JourneysLoadedMsg{Journeys: journeys}
	}
}

func loadLocationCmd(locations LocationSource) tea.Cmd {
	return func() tea.Msg {
		c, ok := locations.Last()
		return model.LocationLoadedMsg{Latitude: c.Lat, Longitude: c.Lon, Found: ok}
	}
}

func fetchThumbnailCmd(thumbs ThumbnailFetcher, url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), thumbnailTimeout)
		defer cancel()
		return model.ThumbnailLoadedMsg{URL: url, Image: thumbs.Fetch(ctx, url)}
	}
}
