// Package mode asks whether the quiz uses the user's own words or a
// generated set.
package mode

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ieltsvocab/vocabquiz/internal/router"
	"github.com/ieltsvocab/vocabquiz/internal/screen"
	"github.com/ieltsvocab/vocabquiz/internal/screens/manual"
	quizscreen "github.com/ieltsvocab/vocabquiz/internal/screens/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/screens/settings"
	"github.com/ieltsvocab/vocabquiz/internal/ui/components"
	"github.com/ieltsvocab/vocabquiz/internal/ui/layout"
	"github.com/ieltsvocab/vocabquiz/internal/ui/theme"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
)

// ModeScreen offers the two quiz modes for a category.
type ModeScreen struct {
	category string
	menu     components.Menu
}

var _ screen.Screen = (*ModeScreen)(nil)

// New creates a ModeScreen for category.
func New(service quizscreen.Service, category string) *ModeScreen {
	items := []components.MenuItem{
		{
			Label:       "Manual Wording",
			Description: "Type at least 3 words you want to practise",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: manual.New(service, category)}
				}
			},
		},
		{
			Label:       "AI Generated",
			Description: "Let the AI pick words for this topic",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: settings.New(service, category)}
				}
			},
		},
	}
	return &ModeScreen{category: category, menu: components.NewMenu(items)}
}

func (m *ModeScreen) Init() tea.Cmd {
	return nil
}

func (m *ModeScreen) Title() string {
	return vocab.DisplayName(m.category)
}

func (m *ModeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *ModeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "How should we build your quiz?"))
	b.WriteString("\n\n")
	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(m.menu.View(), cw, theme.Border)))
	return b.String()
}
