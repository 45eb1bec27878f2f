package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizstate "github.com/ieltsvocab/vocabquiz/internal/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/ui/components"
	"github.com/ieltsvocab/vocabquiz/internal/ui/layout"
	"github.com/ieltsvocab/vocabquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	switch s.state.Phase {
	case quizstate.PhaseLoading:
		return s.renderLoading(width)
	case quizstate.PhaseInProgress:
		return s.renderQuestion(width)
	}
	return layout.Centered(width, theme.Subtitle, "\n\n\nQuiz complete.")
}

func (s *QuizScreen) renderLoading(width int) string {
	text := "Generating your quiz..."
	if s.state.Setup.Mode.IsManual() {
		text = "Generating AI questions from your words..."
	}
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Text), s.spinner.View()+" "+text))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Hint, "This may take a few seconds"))
	return b.String()
}

func (s *QuizScreen) renderQuestion(width int) string {
	st := s.state
	q, ok := st.CurrentQuestion()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	progress := components.ProgressBar{
		Label:       fmt.Sprintf("Question %d of %d", st.Current+1, len(st.Questions)),
		Percent:     st.Progress(),
		ShowPercent: true,
		Width:       cw,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), q.Question))
	b.WriteString("\n\n")

	if st.Input == quizstate.InputSentence {
		b.WriteString(s.renderSentenceEntry(width, cw))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Hint, fmt.Sprintf("Attempts: %d/%d", st.Attempts, st.MaxAttempts)))
	}

	if s.notice != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.noticeBad {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, style, s.notice))
	}

	if s.last != nil && st.Input == quizstate.InputAnswering && s.last.Enhanced != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(renderLastFeedback(*s.last), cw, theme.Border)))
	}
	return b.String()
}

func (s *QuizScreen) renderSentenceEntry(width, cw int) string {
	var b strings.Builder
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		fmt.Sprintf("Great job! Now write a sentence using %q", s.state.CurrentCorrectAnswer)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(s.input.View(), cw, theme.Primary)))
	if s.submitting {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Hint, s.spinner.View()+" Submitting..."))
	}
	return b.String()
}

func renderLastFeedback(us quizstate.UserSentence) string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Feedback on %q", us.Word)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(us.Enhanced))
	if us.Analysis != "" {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(us.Analysis))
	}
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "End quiz early?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, "You will see your results so far."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, end quiz"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}
