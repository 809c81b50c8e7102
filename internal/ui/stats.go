package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"journeymap/internal/geo"
	"journeymap/internal/journey"
	"journeymap/internal/model"
	"journeymap/internal/util"
)

// statsBar summarizes the active journey.
type statsBar struct {
	journey  model.Journey
	user     *geo.Coordinate
	expanded bool
}

// View renders the stats bar.
func (s statsBar) View(width int) string {
	j := s.journey
	inner := max(20, width-6)

	items := []string{
		statItem("Stops", fmt.Sprintf("%d", j.StopCount())),
		statItem("Distance", util.FormatDistance(j.TotalDistanceKm)),
		statItem("Duration", util.FormatDuration(j.TotalDurationMins())),
		statItem("Date", j.Date),
	}
	summary := strings.Join(items, HelpDescStyle.Render("  │  "))

	lines := []string{
		LabelStyle.Render(j.CoverEmoji+" "+j.Name) + "  " + HelpDescStyle.Render(util.TruncateString(j.Description, max(0, inner-lipgloss.Width(j.Name)-6))),
		summary,
	}

	if s.user != nil {
		if nearest, ok := journey.NearestStop(*s.user, j.Stops); ok {
			dist := util.FormatMeters(journey.DistanceMeters(*s.user, nearest))
			lines = append(lines, HelpDescStyle.Render("Nearest: ")+NormalRowStyle.Render(nearest.Title)+HelpDescStyle.Render(" • "+dist+" away"))
		}
	}

	if s.expanded {
		lines = append(lines, "")
		for i, st := range j.Stops {
			lines = append(lines, stopLine(i, st, inner))
		}
	}

	return PanelStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func statItem(label, value string) string {
	return HelpDescStyle.Render(label+" ") + NormalRowStyle.Bold(true).Render(value)
}

func stopLine(i int, st model.Stop, width int) string {
	line := fmt.Sprintf("%2d. %s %s", i+1, st.Type.Emoji(), st.Title)
	var extras []string
	if st.IsPrime {
		extras = append(extras, "★")
	}
	if st.IsChain {
		extras = append(extras, "chain")
	}
	if st.TotalAmount != "" {
		extras = append(extras, st.TotalAmount)
	}
	if st.DiscountAmount != "" {
		extras = append(extras, "-"+st.DiscountAmount)
	}
	extra := ""
	if len(extras) > 0 {
		extra = "  " + HelpDescStyle.Render(strings.Join(extras, " "))
	}
	return NormalRowStyle.Render(util.TruncateString(line, max(10, width-lipgloss.Width(extra)))) + extra
}
