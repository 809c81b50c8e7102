package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"journeymap/internal/geo"
	"journeymap/internal/location"
	"journeymap/internal/ui"
)

// SetupSettings records the outcome of the first-run setup.
type SetupSettings struct {
	Completed      bool `json:"completed"`
	LocationShared bool `json:"location_shared"`
}

func setupPath(configDir string) string {
	return filepath.Join(configDir, "setup.json")
}

func loadSetupSettings(configDir string) (SetupSettings, error) {
	data, err := os.ReadFile(setupPath(configDir))
	if err != nil {
		if os.IsNotExist(err) {
			return SetupSettings{}, nil
		}
		return SetupSettings{}, err
	}

	var settings SetupSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return SetupSettings{}, err
	}
	return settings, nil
}

func saveSetupSettings(configDir string, settings SetupSettings) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(setupPath(configDir), data, 0644)
}

func shouldRunSetup(settings SetupSettings, hasLocation bool) bool {
	if settings.Completed || hasLocation {
		return false
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// parseCoordinate reads a latitude/longitude pair typed by the user.
func parseCoordinate(lat, lon string) (geo.Coordinate, error) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return geo.Coordinate{}, errors.New("latitude must be a number")
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return geo.Coordinate{}, errors.New("longitude must be a number")
	}
	if la < -90 || la > 90 {
		return geo.Coordinate{}, errors.New("latitude must be between -90 and 90")
	}
	if lo < -180 || lo > 180 {
		return geo.Coordinate{}, errors.New("longitude must be between -180 and 180")
	}
	return geo.Coordinate{Lat: la, Lon: lo}, nil
}

type setupStep int

const (
	stepShare setupStep = iota
	stepCoords
	stepDone
)

type setupModel struct {
	step     setupStep
	share    bool
	inputs   [2]textinput.Model // latitude, longitude
	focus    int
	settings SetupSettings
	location *geo.Coordinate
	status   string
	invalid  string
	width    int
	height   int
}

var (
	setupInputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ui.ColorAccent).
			Padding(0, 1)

	setupOptionStyle = lipgloss.NewStyle().
				Foreground(ui.ColorText)

	setupOptionSelected = lipgloss.NewStyle().
				Foreground(ui.ColorAccent).
				Bold(true)
)

func newCoordInput(placeholder, prompt string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 12
	in.Prompt = prompt
	in.TextStyle = lipgloss.NewStyle().Foreground(ui.ColorText)
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(ui.ColorText).Background(ui.ColorAccent)
	return in
}

func newSetupModel() setupModel {
	m := setupModel{
		step:  stepShare,
		share: true,
		inputs: [2]textinput.Model{
			newCoordInput("28.4595", "lat> "),
			newCoordInput("77.0266", "lon> "),
		},
		settings: SetupSettings{Completed: true},
	}
	m.inputs[0].Focus()
	return m
}

func (m setupModel) Init() tea.Cmd { return nil }

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.step {
		case stepShare:
			return m.updateShare(msg)
		case stepCoords:
			return m.updateCoords(msg)
		}
	}
	return m, nil
}

func (m setupModel) updateShare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.share = true
		return m.nextStep()
	case "n", "N":
		m.share = false
		return m.nextStep()
	case "up", "k", "left", "h":
		m.share = true
	case "down", "j", "right", "l":
		m.share = false
	case "enter":
		return m.nextStep()
	case "ctrl+c", "q":
		return m.finish("Setup canceled. Distances from you are hidden.")
	}
	return m, nil
}

func (m setupModel) updateCoords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.setFocus(1 - m.focus)
		return m, nil
	case "enter":
		if m.focus == 0 {
			m.setFocus(1)
			return m, nil
		}
		c, err := parseCoordinate(m.inputs[0].Value(), m.inputs[1].Value())
		if err != nil {
			m.invalid = err.Error()
			return m, nil
		}
		m.location = &c
		m.settings.LocationShared = true
		return m.finish(fmt.Sprintf("Location saved: %.4f, %.4f", c.Lat, c.Lon))
	case "esc":
		return m.finish("Skipped. Distances from you are hidden.")
	case "ctrl+c":
		return m.finish("Setup canceled. Distances from you are hidden.")
	}

	m.invalid = ""
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *setupModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m setupModel) nextStep() (tea.Model, tea.Cmd) {
	if !m.share {
		return m.finish("Distances from you are hidden.")
	}
	m.step = stepCoords
	return m, textinput.Blink
}

func (m setupModel) finish(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.step = stepDone
	return m, tea.Quit
}

func (m setupModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 28
	}

	left := "  " + ui.HeaderStyle.Render("journeymap") + ui.BreadcrumbStyle.Render(" › ") + ui.BreadcrumbActiveStyle.Render("Setup")
	header := ui.TitleStyle.Width(width).Render(left)
	footer := ui.FooterStyle.Width(width).Render(m.footerText())

	contentHeight := max(8, height-lipgloss.Height(header)-lipgloss.Height(footer))
	cardWidth := min(80, width-6)
	card := ui.PanelStyle.Width(cardWidth).Padding(1, 2).Render(m.body(cardWidth))
	content := lipgloss.Place(width, contentHeight, lipgloss.Center, lipgloss.Top, card)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m setupModel) footerText() string {
	switch m.step {
	case stepShare:
		return "↑↓/jk to choose  y/n enter to confirm  q cancel"
	case stepCoords:
		return "tab switch field  enter next/save  esc skip"
	default:
		return "Setup complete"
	}
}

func (m setupModel) body(width int) string {
	switch m.step {
	case stepShare:
		yes := "Show distances from where I am"
		no := "Don't use my location"
		yesLine, noLine := "    "+setupOptionStyle.Render(yes), "  "+setupOptionSelected.Render("→ "+no)
		if m.share {
			yesLine, noLine = "  "+setupOptionSelected.Render("→ "+yes), "    "+setupOptionStyle.Render(no)
		}
		return lipgloss.JoinVertical(
			lipgloss.Left,
			ui.LabelStyle.Render("Measure distances from your location?"),
			"",
			yesLine,
			noLine,
			"",
			ui.HelpDescStyle.Render("Your location is stored only in ~/.journeymap/location.json"),
			ui.HelpDescStyle.Render("Change it any time with --lat/--lon or --forget-location"),
		)
	case stepCoords:
		inputW := max(20, width-14)
		lines := []string{
			ui.LabelStyle.Render("Where are you?"),
			"",
			ui.HelpDescStyle.Render("Decimal degrees, e.g. 28.4595 and 77.0266"),
			"",
			setupInputStyle.Width(inputW).Render(m.inputs[0].View()),
			setupInputStyle.Width(inputW).Render(m.inputs[1].View()),
		}
		if m.invalid != "" {
			lines = append(lines, "", ui.ErrorStyle.Render(m.invalid))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	default:
		status := ui.HelpDescStyle.Render(m.status)
		if m.location != nil {
			status = ui.SuccessStyle.Render(m.status)
		}
		return lipgloss.JoinVertical(lipgloss.Left, ui.LabelStyle.Render("Setup complete"), "", status)
	}
}

func runSetup(configDir string, store *location.Store) (SetupSettings, error) {
	prog := tea.NewProgram(newSetupModel(), tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return SetupSettings{}, fmt.Errorf("setup tui failed: %w", err)
	}
	m, ok := finalModel.(setupModel)
	if !ok {
		return SetupSettings{}, fmt.Errorf("unexpected setup model type")
	}
	return finishSetup(configDir, store, m)
}

// finishSetup persists what the setup screen collected.
func finishSetup(configDir string, store *location.Store, m setupModel) (SetupSettings, error) {
	if m.location != nil {
		if err := store.Save(m.location.Lat, m.location.Lon); err != nil {
			return SetupSettings{}, err
		}
	}
	if err := saveSetupSettings(configDir, m.settings); err != nil {
		return SetupSettings{}, err
	}
	return m.settings, nil
}
