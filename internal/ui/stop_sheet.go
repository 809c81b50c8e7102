package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"journeymap/internal/model"
	"journeymap/internal/util"
)

const notesPreviewLen = 120

// stopSheet holds what the detail sheet shows for the selected stop.
type stopSheet struct {
	stop          model.Stop
	index         int // 1-based
	total         int
	visits        int
	fromUserM     float64
	hasUser       bool
	thumbnail     string
	notesExpanded bool
	hasPrev       bool
	hasNext       bool
	now           time.Time
}

// View renders the sheet.
func (s stopSheet) View(width int) string {
	inner := max(20, width-6)
	st := s.stop

	position := HelpDescStyle.Render(fmt.Sprintf("Stop %d of %d", s.index, s.total))
	badge := BadgeStyle.Render(st.Type.Emoji() + " " + st.Type.Label())
	top := position + "  " + badge
	if st.IsPrime {
		top += " " + PrimeBadgeStyle.Render("★ Prime")
	}
	if st.IsChain {
		top += " " + ChainBadgeStyle.Render("Chain")
	}

	title := StopTitleStyle.Render(util.TruncateString(st.Title, inner))

	var fields []string
	fields = append(fields, renderField("When", util.FormatDateTime(st.Timestamp)))
	fields = append(fields, renderField("Visited", util.FormatAgo(st.Timestamp, s.now)))
	fields = append(fields, renderField("Address", st.Address))
	if st.DistanceFromPrevKm > 0 {
		fields = append(fields, renderField("From previous", util.FormatDistance(st.DistanceFromPrevKm)))
	}
	if st.DurationMins > 0 {
		fields = append(fields, renderField("Time spent", util.FormatDuration(st.DurationMins)))
	}
	if s.hasUser {
		fields = append(fields, renderField("From you", util.FormatMeters(s.fromUserM)))
	}
	fields = append(fields, renderField("Visits", visitCountText(s.visits)))
	if st.TotalAmount != "" {
		amount := st.TotalAmount
		if st.DiscountAmount != "" {
			amount += "  " + SavedStyle.Render("saved "+st.DiscountAmount)
		}
		fields = append(fields, renderField("Total", amount))
	}

	thumbW := thumbWidth
	fieldsW := inner - thumbW - 3
	details := lipgloss.NewStyle().Width(fieldsW).Render(strings.Join(fields, "\n"))

	var middle string
	if fieldsW >= 30 {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, s.thumbnail, "   ", details)
	} else {
		middle = lipgloss.NewStyle().Width(inner).Render(strings.Join(fields, "\n"))
	}

	sections := []string{top, title, middle}

	if notes := s.notes(); notes != "" {
		sections = append(sections, lipgloss.NewStyle().Width(inner).Render(
			LabelStyle.Render("Notes: ")+NormalRowStyle.Render(notes),
		))
	}

	sections = append(sections, s.navHints(inner))

	return PanelStyle.Width(width - 2).Render(strings.Join(sections, "\n"))
}

func (s stopSheet) notes() string {
	notes := strings.TrimSpace(s.stop.Notes)
	if s.notesExpanded || len([]rune(notes)) <= notesPreviewLen {
		return notes
	}
	return util.TruncateString(notes, notesPreviewLen) + HelpDescStyle.Render("  r read more")
}

func (s stopSheet) navHints(width int) string {
	prev := HelpKeyStyle.Render("← p") + " " + HelpDescStyle.Render("prev")
	if !s.hasPrev {
		prev = DisabledStyle.Render("← p prev")
	}
	next := HelpDescStyle.Render("next") + " " + HelpKeyStyle.Render("n →")
	if !s.hasNext {
		next = DisabledStyle.Render("next n →")
	}
	closeHint := HelpKeyStyle.Render("esc") + " " + HelpDescStyle.Render("close")

	gap := max(1, (width-lipgloss.Width(prev)-lipgloss.Width(next)-lipgloss.Width(closeHint))/2)
	return prev + strings.Repeat(" ", gap) + closeHint + strings.Repeat(" ", gap) + next
}

func visitCountText(n int) string {
	switch {
	case n <= 1:
		return "First visit"
	case n == 2:
		return "Visited twice across journeys"
	default:
		return fmt.Sprintf("Visited %s times across journeys", util.FormatCount(n))
	}
}

func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}
