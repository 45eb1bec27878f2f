package components

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// ContentWidth returns the inner width used for cards on a frame.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border box at the given content width.
func Card(content string, cw int, border color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}
