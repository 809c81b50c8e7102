package ui

import (
	"image"
	"strings"

	"github.com/qeesung/image2ascii/convert"
)

const (
	thumbWidth  = 24
	thumbHeight = 8
)

// RenderThumbnail converts a stop photo to colored ASCII art.
func RenderThumbnail(img image.Image, width, height int) string {
	if img == nil {
		return ""
	}

	converter := convert.NewImageConverter()

	opts := convert.DefaultOptions
	opts.FixedWidth = width
	opts.FixedHeight = height
	opts.Colored = true
	opts.Ratio = 0.5

	return strings.TrimRight(converter.Image2ASCIIString(img, &opts), "\n")
}

// renderThumbnailPlaceholder draws an empty frame with a caption.
func renderThumbnailPlaceholder(caption string, width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	inner := width - 2

	lines := make([]string, 0, height)
	lines = append(lines, "┌"+strings.Repeat("─", inner)+"┐")
	mid := (height - 2) / 2
	for i := 0; i < height-2; i++ {
		text := ""
		if i == mid {
			text = caption
		}
		lines = append(lines, "│"+centerText(text, inner)+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")
	return HelpDescStyle.Render(strings.Join(lines, "\n"))
}

func centerText(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	pad := width - len(runes)
	left := pad / 2
	return strings.Repeat(" ", left) + string(runes) + strings.Repeat(" ", pad-left)
}
