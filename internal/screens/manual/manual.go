// Package manual collects the user's own word list for a manual quiz.
package manual

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	quizstate "github.com/ieltsvocab/vocabquiz/internal/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/router"
	"github.com/ieltsvocab/vocabquiz/internal/screen"
	quizscreen "github.com/ieltsvocab/vocabquiz/internal/screens/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/ui/components"
	"github.com/ieltsvocab/vocabquiz/internal/ui/layout"
	"github.com/ieltsvocab/vocabquiz/internal/ui/theme"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
)

const maxWordLength = 40

// ManualScreen is the word entry form.
type ManualScreen struct {
	service  quizscreen.Service
	category string
	words    []string
	input    components.TextInput
	err      string
}

var _ screen.Screen = (*ManualScreen)(nil)
var _ screen.KeyHintProvider = (*ManualScreen)(nil)

// New creates a ManualScreen for category.
func New(service quizscreen.Service, category string) *ManualScreen {
	return &ManualScreen{
		service:  service,
		category: category,
		input:    components.NewTextInput("Type a word and press Enter", maxWordLength),
	}
}

func (m *ManualScreen) Init() tea.Cmd {
	return m.input.Init()
}

func (m *ManualScreen) Title() string {
	return "Manual Word Entry"
}

func (m *ManualScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Add word"},
		{Key: "Ctrl+D", Description: "Remove last"},
		{Key: "Tab", Description: "Generate Quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

// Words returns the words entered so far.
func (m *ManualScreen) Words() []string {
	return append([]string(nil), m.words...)
}

func (m *ManualScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			m.addWord()
			return m, nil
		case "ctrl+d":
			if len(m.words) > 0 {
				m.words = m.words[:len(m.words)-1]
			}
			return m, nil
		case "tab":
			return m, m.start()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ManualScreen) addWord() {
	word := strings.TrimSpace(m.input.Value())
	if word == "" {
		return
	}
	m.words = append(m.words, word)
	m.input.Reset()
	m.err = ""
}

func (m *ManualScreen) start() tea.Cmd {
	// A word still sitting in the input counts.
	m.addWord()

	setup := quizstate.Setup{
		Mode:     questiongen.ModeManual,
		Category: m.category,
		Words:    m.Words(),
	}
	if err := setup.Validate(); err != nil {
		if errors.Is(err, quizstate.ErrTooFewWords) {
			m.err = fmt.Sprintf("Please add at least %d words to generate a quiz", quizstate.MinManualWords)
		} else {
			m.err = err.Error()
		}
		return nil
	}

	q := quizscreen.New(m.service, setup)
	return func() tea.Msg { return router.PushScreenMsg{Screen: q} }
}

func (m *ManualScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "Enter the words you want to practise"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, "Category: "+vocab.DisplayName(m.category)))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(m.input.View())
	card.WriteString("\n\n")
	if len(m.words) == 0 {
		card.WriteString(theme.Hint.Render("No words yet."))
	}
	for i, w := range m.words {
		if i > 0 {
			card.WriteString("\n")
		}
		card.WriteString(theme.Body.Render(fmt.Sprintf("%2d. %s", i+1, w)))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(card.String(), cw, theme.Border)))
	b.WriteString("\n\n")

	count := fmt.Sprintf("%d word(s) added. Enter at least %d words to generate a quiz.", len(m.words), quizstate.MinManualWords)
	b.WriteString(layout.Centered(width, theme.Hint, count))
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error), m.err))
	}
	return b.String()
}
