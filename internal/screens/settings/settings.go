// Package settings is the AI quiz settings form.
package settings

import (
	"fmt"
	"strconv"
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

// field is one row of the form. Each row cycles through a fixed list of
// choices and writes the chosen one into Settings.
type field struct {
	label   string
	choices []string
	index   int
	apply   func(s *questiongen.Settings, i int)
}

func (f field) value() string {
	return f.choices[f.index]
}

// SettingsScreen lets the user tune an AI generated quiz.
type SettingsScreen struct {
	service  quizscreen.Service
	category string
	fields   []field
	cursor   int // len(fields) is the start button
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen preset to the default settings.
func New(service quizscreen.Service, category string) *SettingsScreen {
	d := questiongen.DefaultSettings()
	fields := []field{
		{
			label:   "Questions Limit",
			choices: intLabels(questiongen.QuestionLimitChoices, func(n int) string { return fmt.Sprintf("%d Questions", n) }),
			index:   indexOf(questiongen.QuestionLimitChoices, d.QuestionLimit),
			apply:   func(s *questiongen.Settings, i int) { s.QuestionLimit = questiongen.QuestionLimitChoices[i] },
		},
		{
			label:   "Difficulty Level",
			choices: []string{"Easy", "Medium", "Hard", "Mixed"},
			index:   indexOf(questiongen.DifficultyChoices, d.DifficultyLevel),
			apply:   func(s *questiongen.Settings, i int) { s.DifficultyLevel = questiongen.DifficultyChoices[i] },
		},
		{
			label: "Attempts (Chances)",
			choices: intLabels(questiongen.AttemptChoices, func(n int) string {
				if n == 1 {
					return "1 Attempt"
				}
				return strconv.Itoa(n) + " Attempts"
			}),
			index: indexOf(questiongen.AttemptChoices, d.Attempts),
			apply: func(s *questiongen.Settings, i int) { s.Attempts = questiongen.AttemptChoices[i] },
		},
		{
			label:   "Question Type",
			choices: []string{"Multiple Choice", "True & False", "Mixed"},
			index:   indexOf(questiongen.QuestionTypeChoices, d.QuestionType),
			apply:   func(s *questiongen.Settings, i int) { s.QuestionType = questiongen.QuestionTypeChoices[i] },
		},
		{
			label:   "Time Limit",
			choices: intLabels(questiongen.TimeLimitChoices, timeLabel),
			index:   indexOf(questiongen.TimeLimitChoices, d.TimeLimit),
			apply:   func(s *questiongen.Settings, i int) { s.TimeLimit = questiongen.TimeLimitChoices[i] },
		},
	}
	return &SettingsScreen{service: service, category: category, fields: fields}
}

func intLabels(values []int, label func(int) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = label(v)
	}
	return out
}

func indexOf[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return 0
}

func timeLabel(seconds int) string {
	switch {
	case seconds%60 != 0:
		return fmt.Sprintf("%d seconds", seconds)
	case seconds == 60:
		return "1 minute"
	default:
		return fmt.Sprintf("%d minutes", seconds/60)
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Quiz Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Setting"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start Quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

// Settings returns the settings currently selected in the form.
func (s *SettingsScreen) Settings() questiongen.Settings {
	st := questiongen.DefaultSettings()
	for _, f := range s.fields {
		f.apply(&st, f.index)
	}
	return st
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.fields) {
			s.cursor++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter":
		return s, s.start()
	}
	return s, nil
}

func (s *SettingsScreen) cycle(delta int) {
	if s.cursor >= len(s.fields) {
		return
	}
	f := &s.fields[s.cursor]
	n := len(f.choices)
	f.index = ((f.index+delta)%n + n) % n
}

func (s *SettingsScreen) start() tea.Cmd {
	setup := quizstate.Setup{
		Mode:     questiongen.ModeAI,
		Category: s.category,
		Settings: s.Settings(),
	}
	q := quizscreen.New(s.service, setup)
	return func() tea.Msg { return router.PushScreenMsg{Screen: q} }
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "AI Quiz Settings"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, "Category: "+vocab.DisplayName(s.category)))
	b.WriteString("\n\n")

	var rows strings.Builder
	for i, f := range s.fields {
		label := fmt.Sprintf("%-20s", f.label)
		value := "‹ " + f.value() + " ›"
		if i == s.cursor {
			rows.WriteString(theme.Selected.Render("▸ " + label + value))
		} else {
			rows.WriteString(theme.Unselected.Render("  " + label + value))
		}
		rows.WriteString("\n")
	}
	rows.WriteString("\n")
	if s.cursor == len(s.fields) {
		rows.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("▸ Start Quiz"))
	} else {
		rows.WriteString(theme.Unselected.Render("  Start Quiz"))
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(rows.String(), cw, theme.Border)))
	return b.String()
}
