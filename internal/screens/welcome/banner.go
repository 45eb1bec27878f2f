package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/ieltsvocab/vocabquiz/internal/ui/theme"
)

const bannerArt = `
 ██╗███████╗██╗  ████████╗███████╗
 ██║██╔════╝██║  ╚══██╔══╝██╔════╝
 ██║█████╗  ██║     ██║   ███████╗
 ██║██╔══╝  ██║     ██║   ╚════██║
 ██║███████╗███████╗██║   ███████║
 ╚═╝╚══════╝╚══════╝╚═╝   ╚══════╝`

const bannerCompact = "I E L T S"

// RenderBanner returns the IELTS banner in the primary color, with a
// compact version for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
