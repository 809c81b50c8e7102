package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(keys KeyMap, drawerOpen, sheetVisible bool, width int) string {
	switch {
	case drawerOpen:
		return renderHelpLine(bindingHelp(keys.drawerKeys()), width)
	case sheetVisible:
		return renderHelpLine(bindingHelp(keys.sheetKeys()), width)
	default:
		return renderHelpLine(bindingHelp(keys.ShortHelp()), width)
	}
}

func bindingHelp(bindings []key.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, helpKey(h.Key, h.Desc))
	}
	return out
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(keys KeyMap, width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	titles := []string{"Stops", "Journeys", "Map"}
	var sections []string
	for i, group := range keys.FullHelp() {
		title := "More"
		if i < len(titles) {
			title = titles[i]
		}
		items := make([]helpItem, 0, len(group))
		for _, b := range group {
			items = append(items, helpItem{b.Help().Key, b.Help().Desc})
		}
		sections = append(sections, titleSection(title), helpSection(items))
	}
	sections = append(sections, titleSection("Mouse"), helpSection([]helpItem{
		{"click marker", "Open stop"},
	}))

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
