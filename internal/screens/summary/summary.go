package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ieltsvocab/vocabquiz/internal/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/router"
	"github.com/ieltsvocab/vocabquiz/internal/screen"
	"github.com/ieltsvocab/vocabquiz/internal/ui/components"
	"github.com/ieltsvocab/vocabquiz/internal/ui/layout"
	"github.com/ieltsvocab/vocabquiz/internal/ui/theme"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
)

// SummaryScreen shows the end-of-quiz results.
type SummaryScreen struct {
	summary  quiz.Summary
	viewport viewport.Model
	width    int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeCapturer = (*SummaryScreen)(nil)

// New creates a SummaryScreen.
func New(summary quiz.Summary) *SummaryScreen {
	return &SummaryScreen{
		summary:  summary,
		viewport: viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

// CapturesEscape keeps Esc from popping back into the finished quiz.
func (s *SummaryScreen) CapturesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "New quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	if width != s.width || s.viewport.Height() != height {
		s.width = width
		s.viewport.SetWidth(width)
		s.viewport.SetHeight(height)
		s.viewport.SetContent(s.render(width))
	}
	return s.viewport.View()
}

func (s *SummaryScreen) render(width int) string {
	sum := s.summary
	cw := components.ContentWidth(width)
	var b strings.Builder

	headColor := theme.Primary
	if sum.Passed {
		headColor = theme.Success
	}
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(headColor).Bold(true), sum.Headline()))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, sum.Message()))
	b.WriteString("\n\n")

	scores := fmt.Sprintf("Question Points  %d\nSentence Points  %d\n\nTotal Score      %d",
		sum.Score, sum.SentencePoints, sum.Total)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(scores, min(cw, 36), headColor)))
	b.WriteString("\n\n")

	details := []string{
		fmt.Sprintf("Category: %s", vocab.DisplayName(sum.Category)),
		fmt.Sprintf("Correct answers: %d of %d", sum.Correct, sum.TotalQuestions),
		fmt.Sprintf("Time used: %s", layout.FormatClock(sum.TimeUsed)),
	}
	if r := sum.EndReason.String(); r != "" {
		details = append(details, "Finished: "+r)
	}
	b.WriteString(layout.Centered(width, theme.Hint, strings.Join(details, "\n")))
	b.WriteString("\n")
	if sum.Fallback {
		b.WriteString(layout.Centered(width, theme.Warning, "Questions came from the offline word list."))
		b.WriteString("\n")
	}

	if len(sum.Sentences) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Title, "Your Sentences"))
		b.WriteString("\n\n")
		for _, us := range sum.Sentences {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(renderSentence(us), cw, theme.Border)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderSentence(us quiz.UserSentence) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Word: " + us.Word))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Your sentence:"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%q", us.Sentence)))
	if us.Enhanced != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("AI enhanced:"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%q", us.Enhanced)))
	}
	if us.Analysis != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Analysis:"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(us.Analysis))
	}
	return b.String()
}
