// Package quiz is the screen where questions are answered.
package quiz

import (
	"context"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	quizstate "github.com/ieltsvocab/vocabquiz/internal/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/router"
	"github.com/ieltsvocab/vocabquiz/internal/screen"
	"github.com/ieltsvocab/vocabquiz/internal/screens/summary"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
	"github.com/ieltsvocab/vocabquiz/internal/ui/components"
	"github.com/ieltsvocab/vocabquiz/internal/ui/layout"
)

// Service fetches questions and sentence feedback. Both calls must not
// fail: degraded results are reported through the return values.
type Service interface {
	GenerateQuestions(ctx context.Context, req questiongen.Request) *questiongen.Result
	AnalyzeSentence(ctx context.Context, req sentence.Request) sentence.Analysis
}

// QuizScreen implements screen.Screen for a running quiz.
type QuizScreen struct {
	service Service
	state   quizstate.State

	options components.OptionList
	input   components.TextInput
	spinner spinner.Model

	submitting  bool // waiting for sentence feedback
	confirmQuit bool
	finished    bool
	notice      string
	noticeBad   bool
	last        *quizstate.UserSentence
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeCapturer = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for setup. The setup must already be valid.
func New(service Service, setup quizstate.Setup) *QuizScreen {
	return &QuizScreen{
		service: service,
		state:   quizstate.NewState(setup),
		input:   components.NewTextInput("Write your sentence here...", 300),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.loadQuestions(),
		s.spinner.Tick,
	)
}

// Setup returns the setup the quiz was started with.
func (s *QuizScreen) Setup() quizstate.Setup {
	return s.state.Setup
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the countdown and running score in the header.
func (s *QuizScreen) Status() string {
	if s.state.Phase != quizstate.PhaseInProgress {
		return ""
	}
	return "⏱ " + layout.FormatClock(s.state.TimeLeft) + "   ★ " + strconv.Itoa(s.state.TotalScore())
}

func (s *QuizScreen) CapturesEscape() bool {
	return !s.finished
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.Phase == quizstate.PhaseLoading:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case s.state.Input == quizstate.InputSentence:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit (+3 points)"},
			{Key: "Tab", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if msg.session != s.state.SessionID {
			return s, nil
		}
		return s.handleLoaded(msg)

	case analysisDoneMsg:
		if msg.session != s.state.SessionID {
			return s, nil
		}
		return s.handleAnalysis(msg)

	case timerTickMsg:
		if msg.session != s.state.SessionID {
			return s, nil
		}
		return s.handleTick()

	case spinner.TickMsg:
		if s.state.Phase != quizstate.PhaseLoading && !s.submitting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Input == quizstate.InputSentence && !s.submitting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) loadQuestions() tea.Cmd {
	session, step := s.state.SessionID, s.state.Step
	req := s.state.Setup.Request()
	return func() tea.Msg {
		return questionsLoadedMsg{session: session, step: step, result: s.service.GenerateQuestions(context.Background(), req)}
	}
}

func (s *QuizScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	s.state = quizstate.Reduce(s.state, quizstate.QuestionsLoaded{
		Step:      msg.step,
		Questions: msg.result.Questions,
		Fallback:  msg.result.Fallback,
	})
	if s.state.Phase == quizstate.PhaseLoading {
		return s, nil
	}
	if s.state.Fallback {
		s.setNotice("Failed to generate AI questions. Using fallback questions.", true)
	}
	if s.state.Done() {
		return s, s.finish()
	}
	s.resetOptions()
	return s, s.tickCmd()
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.state.Phase != quizstate.PhaseInProgress {
		return s, nil
	}
	s.state = quizstate.Reduce(s.state, quizstate.Tick{})
	if s.state.Done() {
		return s, s.finish()
	}
	return s, s.tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.finish()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		if s.state.Phase == quizstate.PhaseLoading {
			s.finished = true
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.confirmQuit = true
		return s, nil
	}

	if s.state.Phase != quizstate.PhaseInProgress {
		return s, nil
	}
	if s.state.Input == quizstate.InputSentence {
		return s.handleSentenceKey(msg)
	}

	switch key {
	case "up", "k":
		s.options.Up()
	case "down", "j":
		s.options.Down()
	case "enter":
		if opt, ok := s.options.Current(); ok {
			return s.answer(opt)
		}
	default:
		if i, ok := components.IndexForKey(key); ok {
			if opt, ok := s.options.At(i); ok {
				return s.answer(opt)
			}
		}
	}
	return s, nil
}

func (s *QuizScreen) answer(option string) (screen.Screen, tea.Cmd) {
	before := s.state
	s.state = quizstate.Reduce(s.state, quizstate.AnswerSelected{Option: option})
	if s.state.Step == before.Step {
		return s, nil
	}

	if s.state.Score > before.Score {
		s.setNotice("Correct! +5 points", false)
		s.input.Reset()
		return s, s.input.Init()
	}

	s.setNotice("Incorrect! Option removed", true)
	if s.state.Done() {
		return s, s.finish()
	}
	s.resetOptions()
	return s, nil
}

func (s *QuizScreen) handleSentenceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.submitting {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(s.input.Value())
		if text == "" {
			s.setNotice("Write a sentence first, or press Tab to skip.", true)
			return s, nil
		}
		s.submitting = true
		return s, tea.Batch(s.analyze(text), s.spinner.Tick)
	case "tab":
		s.state = quizstate.Reduce(s.state, quizstate.SentenceSkipped{})
		s.notice = ""
		if s.state.Done() {
			return s, s.finish()
		}
		s.resetOptions()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) analyze(text string) tea.Cmd {
	session, step := s.state.SessionID, s.state.Step
	req := sentence.Request{Word: s.state.CurrentCorrectAnswer, UserSentence: text}
	return func() tea.Msg {
		return analysisDoneMsg{
			session:  session,
			step:     step,
			sentence: text,
			analysis: s.service.AnalyzeSentence(context.Background(), req),
		}
	}
}

func (s *QuizScreen) handleAnalysis(msg analysisDoneMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	before := s.state
	s.state = quizstate.Reduce(s.state, quizstate.SentenceSubmitted{
		Step:     msg.step,
		Sentence: msg.sentence,
		Enhanced: msg.analysis.EnhancedSentence,
		Analysis: msg.analysis.Analysis,
	})
	if s.state.Step == before.Step {
		return s, nil
	}

	s.setNotice("Great sentence! +3 points", false)
	last := s.state.UserSentences[len(s.state.UserSentences)-1]
	s.last = &last
	if s.state.Done() {
		return s, s.finish()
	}
	s.resetOptions()
	return s, nil
}

// finish hands over to the summary exactly once.
func (s *QuizScreen) finish() tea.Cmd {
	if s.finished {
		return nil
	}
	s.finished = true
	sum := quizstate.BuildSummary(s.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *QuizScreen) resetOptions() {
	s.options = components.NewOptionList(s.state.RemainingOptions())
}

func (s *QuizScreen) setNotice(text string, bad bool) {
	s.notice = text
	s.noticeBad = bad
}

func (s *QuizScreen) tickCmd() tea.Cmd {
	session := s.state.SessionID
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{session: session}
	})
}
