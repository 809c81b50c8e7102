package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"journeymap/internal/model"
	"journeymap/internal/util"
)

// JourneyListModel is the journey drawer.
type JourneyListModel struct {
	journeys       []model.Journey
	cursor         int
	offset         int
	viewportHeight int
}

// NewJourneyListModel creates a drawer over journeys.
func NewJourneyListModel(journeys []model.Journey) *JourneyListModel {
	return &JourneyListModel{journeys: journeys}
}

// Selected returns the journey under the cursor.
func (m *JourneyListModel) Selected() (model.Journey, bool) {
	if m.cursor < 0 || m.cursor >= len(m.journeys) {
		return model.Journey{}, false
	}
	return m.journeys[m.cursor], true
}

// FocusJourney moves the cursor to the journey with id.
func (m *JourneyListModel) FocusJourney(id int64) {
	for i, j := range m.journeys {
		if j.ID == id {
			m.cursor = i
			m.clampOffset()
			return
		}
	}
}

// MoveDown moves the cursor down.
func (m *JourneyListModel) MoveDown() {
	if m.cursor < len(m.journeys)-1 {
		m.cursor++
		m.clampOffset()
	}
}

// MoveUp moves the cursor up.
func (m *JourneyListModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.clampOffset()
	}
}

// JumpToTop jumps to the first journey.
func (m *JourneyListModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last journey.
func (m *JourneyListModel) JumpToBottom() {
	if len(m.journeys) > 0 {
		m.cursor = len(m.journeys) - 1
		m.clampOffset()
	}
}

func (m *JourneyListModel) rowsVisible() int {
	if m.viewportHeight <= 0 {
		return 5
	}
	return m.viewportHeight
}

func (m *JourneyListModel) clampOffset() {
	vh := m.rowsVisible()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

// View renders the drawer. Each journey takes two lines.
func (m *JourneyListModel) View(width, height int, activeID int64) string {
	title := LabelStyle.Render("Journeys") + HelpDescStyle.Render(fmt.Sprintf("  %d", len(m.journeys)))
	if len(m.journeys) == 0 {
		return ActivePanelStyle.Width(width - 2).Height(height - 2).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", EmptyStateStyle.Padding(0).Render("No journeys yet.")),
		)
	}

	inner := width - 4
	m.viewportHeight = max(1, (height-4)/3)
	m.clampOffset()

	var rows []string
	for i := m.offset; i < len(m.journeys) && i < m.offset+m.viewportHeight; i++ {
		j := m.journeys[i]
		marker := "  "
		if j.ID == activeID {
			marker = "● "
		}
		name := util.TruncateString(j.Name, max(4, inner-lipgloss.Width(j.CoverEmoji)-4))
		line1 := marker + j.CoverEmoji + " " + name
		line2 := "   " + util.TruncateString(
			fmt.Sprintf("%d stops • %s • %s", j.StopCount(), util.FormatDistance(j.TotalDistanceKm), j.Date),
			max(4, inner-3),
		)

		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		rows = append(rows,
			style.Width(inner).Render(line1),
			HelpDescStyle.Width(inner).Render(line2),
			"",
		)
	}

	pos := StatusBarStyle.Padding(0).Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.journeys)))
	return ActivePanelStyle.Width(width - 2).Height(height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(rows, "\n"), pos),
	)
}
