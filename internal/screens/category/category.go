// Package category is the first screen: pick a vocabulary topic.
package category

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ieltsvocab/vocabquiz/internal/router"
	"github.com/ieltsvocab/vocabquiz/internal/screen"
	"github.com/ieltsvocab/vocabquiz/internal/screens/mode"
	quizscreen "github.com/ieltsvocab/vocabquiz/internal/screens/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/ui/components"
	"github.com/ieltsvocab/vocabquiz/internal/ui/layout"
	"github.com/ieltsvocab/vocabquiz/internal/ui/theme"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
)

// CategoryScreen lists the topic categories.
type CategoryScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)

// New creates a CategoryScreen. Choosing a category pushes the mode screen.
func New(service quizscreen.Service) *CategoryScreen {
	cats := vocab.AllCategories()
	items := make([]components.MenuItem, 0, len(cats))
	for _, c := range cats {
		id := c.ID
		items = append(items, components.MenuItem{
			Label:       c.Name,
			Description: c.Description,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: mode.New(service, id)}
				}
			},
		})
	}
	return &CategoryScreen{menu: components.NewMenu(items)}
}

func (c *CategoryScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoryScreen) Title() string {
	return "Choose a Category"
}

func (c *CategoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CategoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "IELTS Vocabulary Quiz"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, "Build your vocabulary easily"))
	b.WriteString("\n\n")
	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(c.menu.View(), cw, theme.Border)))
	return b.String()
}
