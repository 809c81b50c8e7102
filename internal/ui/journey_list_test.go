package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeymap/internal/model"
)

func TestJourneyList_CursorBounds(t *testing.T) {
	l := NewJourneyListModel(testJourneys)

	l.MoveUp()
	j, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), j.ID)

	l.MoveDown()
	l.MoveDown()
	j, _ = l.Selected()
	assert.Equal(t, int64(2), j.ID)

	l.JumpToTop()
	j, _ = l.Selected()
	assert.Equal(t, int64(1), j.ID)

	l.JumpToBottom()
	j, _ = l.Selected()
	assert.Equal(t, int64(2), j.ID)
}

func TestJourneyList_FocusJourney(t *testing.T) {
	l := NewJourneyListModel(testJourneys)

	l.FocusJourney(2)
	j, _ := l.Selected()
	assert.Equal(t, int64(2), j.ID)

	l.FocusJourney(99)
	j, _ = l.Selected()
	assert.Equal(t, int64(2), j.ID, "unknown id leaves the cursor")
}

func TestJourneyList_ScrollsWithCursor(t *testing.T) {
	var journeys []model.Journey
	for i := int64(1); i <= 20; i++ {
		journeys = append(journeys, model.Journey{ID: i, Name: "Trip"})
	}
	l := NewJourneyListModel(journeys)
	l.View(40, 16, 1)

	l.JumpToBottom()
	assert.Equal(t, 19, l.cursor)
	assert.Greater(t, l.offset, 0)
	assert.LessOrEqual(t, l.cursor, l.offset+l.rowsVisible()-1)

	l.JumpToTop()
	assert.Equal(t, 0, l.offset)
}

func TestJourneyList_Empty(t *testing.T) {
	l := NewJourneyListModel(nil)

	_, ok := l.Selected()
	assert.False(t, ok)
	l.MoveDown()
	l.JumpToBottom()
	assert.Contains(t, l.View(40, 10, 0), "No journeys yet")
}

func TestJourneyList_ViewMarksActive(t *testing.T) {
	l := NewJourneyListModel(testJourneys)
	out := l.View(40, 20, 2)

	assert.Contains(t, out, "Old Town")
	assert.Contains(t, out, "● ")
	assert.Contains(t, out, "1/2")
}
