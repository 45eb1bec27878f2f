// Package welcome is the splash screen shown before the category menu.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ieltsvocab/vocabquiz/internal/router"
	"github.com/ieltsvocab/vocabquiz/internal/screen"
	"github.com/ieltsvocab/vocabquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bookEnd      = 400 * time.Millisecond
	bannerEnd    = 1000 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const bookArt = `   ______ ______
 _/      Y      \_
// ~~ ~~ | ~~ ~  \\
// ~ ~~ ~| ~~~ ~~ \\
//________.________\\
'------------------'`

// Letters flip above the book while the banner is drawn.
var pageFrames = []string{"A  b  c", "a  B  c", "a  b  C"}

type tickMsg struct{}

// WelcomeScreen shows a short splash, then replaces itself with the next
// screen on any key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Ready reports whether the splash has finished drawing.
func (w *WelcomeScreen) Ready() bool {
	return w.elapsed >= totalDur
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned || w.Ready() {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		if w.Ready() {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if w.elapsed >= bookEnd {
		frame := pageFrames[w.tickCount%len(pageFrames)]
		if w.Ready() {
			frame = "A  B  C"
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(frame))
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(bookArt))

	if w.elapsed >= bannerEnd {
		sections = append(sections, RenderBanner(width))
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Vocabulary Quiz"))
		sections = append(sections, "")
		sections = append(sections, theme.Subtitle.Render("Build your vocabulary easily"))
	}

	if w.Ready() {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
