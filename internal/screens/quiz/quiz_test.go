package quiz

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	quizstate "github.com/ieltsvocab/vocabquiz/internal/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/router"
	"github.com/ieltsvocab/vocabquiz/internal/screen"
	"github.com/ieltsvocab/vocabquiz/internal/screens/summary"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
)

type fakeService struct {
	mu        sync.Mutex
	questions []questiongen.Question
	fallback  bool
	analysis  sentence.Analysis
	requests  []questiongen.Request
	analyzed  []sentence.Request
}

func (f *fakeService) GenerateQuestions(_ context.Context, req questiongen.Request) *questiongen.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return &questiongen.Result{Questions: f.questions, Fallback: f.fallback}
}

func (f *fakeService) AnalyzeSentence(_ context.Context, req sentence.Request) sentence.Analysis {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyzed = append(f.analyzed, req)
	return f.analysis
}

func testQuestions(n int) []questiongen.Question {
	qs := make([]questiongen.Question, n)
	for i := range qs {
		w := fmt.Sprintf("word%d", i+1)
		qs[i] = questiongen.Question{
			ID: i + 1, Word: w, Question: "Meaning of " + w + "?",
			Options: []string{"alpha", w, "beta", "gamma"}, CorrectAnswer: w,
		}
	}
	return qs
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func aiSetup(attempts, seconds int) quizstate.Setup {
	st := questiongen.DefaultSettings()
	st.Attempts = attempts
	st.TimeLimit = seconds
	return quizstate.Setup{Mode: questiongen.ModeAI, Category: "travel", Settings: st}
}

// started returns a screen with its question set already delivered.
func started(t *testing.T, svc *fakeService, setup quizstate.Setup) *QuizScreen {
	t.Helper()
	s := New(svc, setup)
	msg := s.loadQuestions()()
	scr, cmd := s.Update(msg)
	require.NotNil(t, cmd, "countdown starts once questions arrive")
	qs := scr.(*QuizScreen)
	require.Equal(t, quizstate.PhaseInProgress, qs.state.Phase)
	return qs
}

func tickOf(s *QuizScreen) timerTickMsg {
	return timerTickMsg{session: s.state.SessionID}
}

func update(t *testing.T, s *QuizScreen, msg tea.Msg) (*QuizScreen, tea.Cmd) {
	t.Helper()
	scr, cmd := s.Update(msg)
	return scr.(*QuizScreen), cmd
}

// collect runs cmd and any batched commands, returning their messages.
// Only use it on commands that do not sleep.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func summaryFrom(t *testing.T, cmd tea.Cmd) *summary.SummaryScreen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected a ReplaceScreenMsg")
	sum, ok := msg.Screen.(*summary.SummaryScreen)
	require.True(t, ok)
	return sum
}

func TestQuizScreen_LoadingView(t *testing.T) {
	s := New(&fakeService{}, aiSetup(3, 60))
	assert.Contains(t, s.View(80, 24), "Generating your quiz...")
	assert.Equal(t, "Quiz", s.Title())
	assert.Empty(t, s.Status())
}

func TestQuizScreen_RequestFromSetup(t *testing.T) {
	svc := &fakeService{questions: testQuestions(1)}
	started(t, svc, quizstate.Setup{Mode: questiongen.ModeManual, Words: []string{"visa", " ", "bond", "care"}})
	require.Len(t, svc.requests, 1)
	assert.Equal(t, []string{"visa", "bond", "care"}, svc.requests[0].Words)
}

func TestQuizScreen_CorrectAnswerAndSentence(t *testing.T) {
	svc := &fakeService{
		questions: testQuestions(2),
		analysis:  sentence.Analysis{EnhancedSentence: "An improved word1 sentence.", Analysis: "Nice."},
	}
	s := started(t, svc, aiSetup(3, 60))
	assert.Contains(t, s.View(100, 30), "Meaning of word1?")

	s, _ = update(t, s, keyPress('2'))
	assert.Equal(t, quizstate.InputSentence, s.state.Input)
	assert.Equal(t, 5, s.state.Score)
	assert.Contains(t, s.View(100, 30), `Now write a sentence using "word1"`)

	s.input.SetValue("  I used word1 well.  ")
	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	assert.True(t, s.submitting)

	var done *analysisDoneMsg
	for _, m := range collect(cmd) {
		if d, ok := m.(analysisDoneMsg); ok {
			done = &d
		}
	}
	require.NotNil(t, done)
	assert.Equal(t, "word1", svc.analyzed[0].Word)
	assert.Equal(t, "I used word1 well.", svc.analyzed[0].UserSentence)

	s, _ = update(t, s, *done)
	assert.False(t, s.submitting)
	assert.Equal(t, 8, s.state.TotalScore())
	assert.Equal(t, 1, s.state.Current)
	require.NotNil(t, s.last)
	view := s.View(100, 40)
	assert.Contains(t, view, "An improved word1 sentence.")
	assert.Contains(t, s.Status(), "★ 8")
}

func TestQuizScreen_BlankSentenceRejected(t *testing.T) {
	s := started(t, &fakeService{questions: testQuestions(2)}, aiSetup(3, 60))
	s, _ = update(t, s, keyPress('b'))
	require.Equal(t, quizstate.InputSentence, s.state.Input)

	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.False(t, s.submitting)
	assert.Contains(t, s.notice, "Tab to skip")
}

func TestQuizScreen_WrongAnswerThenSkip(t *testing.T) {
	s := started(t, &fakeService{questions: testQuestions(2)}, aiSetup(3, 60))

	s, _ = update(t, s, keyPress('1'))
	assert.Equal(t, 1, s.state.Attempts)
	assert.Equal(t, []string{"word1", "beta", "gamma"}, s.options.Options)
	assert.Equal(t, "Incorrect! Option removed", s.notice)

	s, _ = update(t, s, specialKey(tea.KeyEnter))
	require.Equal(t, quizstate.InputSentence, s.state.Input)

	s, _ = update(t, s, specialKey(tea.KeyTab))
	assert.Equal(t, 1, s.state.Current)
	assert.Equal(t, 1, s.state.Attempts, "skip keeps attempts")
	assert.Len(t, s.options.Options, 4)
}

func TestQuizScreen_OutOfAttempts(t *testing.T) {
	s := started(t, &fakeService{questions: testQuestions(3)}, aiSetup(1, 60))

	_, cmd := update(t, s, keyPress('1'))
	sum := summaryFrom(t, cmd)
	assert.Contains(t, sum.View(100, 80), "out of attempts")
}

func TestQuizScreen_TimerEndsQuiz(t *testing.T) {
	s := started(t, &fakeService{questions: testQuestions(5)}, aiSetup(3, 3))

	s, cmd := update(t, s, tickOf(s))
	assert.NotNil(t, cmd, "tick re-armed")
	assert.Equal(t, 2, s.state.TimeLeft)
	s, _ = update(t, s, tickOf(s))

	s, cmd = update(t, s, tickOf(s))
	assert.True(t, s.state.Done())
	summaryFrom(t, cmd)

	// Ticks after completion are not re-armed.
	_, cmd = update(t, s, tickOf(s))
	assert.Nil(t, cmd)
}

func TestQuizScreen_StaleAnalysisDropped(t *testing.T) {
	s := started(t, &fakeService{questions: testQuestions(2)}, aiSetup(3, 60))
	s, _ = update(t, s, keyPress('2'))
	stale := analysisDoneMsg{session: s.state.SessionID, step: s.state.Step - 1, sentence: "late"}

	s, cmd := update(t, s, stale)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.state.SentencePoints)
	assert.Equal(t, quizstate.InputSentence, s.state.Input)
}

func TestQuizScreen_OtherSessionIgnored(t *testing.T) {
	svc := &fakeService{questions: testQuestions(2)}
	old := New(svc, aiSetup(3, 60))
	late := old.loadQuestions()()

	s := New(svc, aiSetup(3, 60))
	s, cmd := update(t, s, late)
	assert.Nil(t, cmd)
	assert.Equal(t, quizstate.PhaseLoading, s.state.Phase)

	s, cmd = update(t, s, timerTickMsg{session: old.state.SessionID})
	assert.Nil(t, cmd)
}

func TestQuizScreen_FallbackNotice(t *testing.T) {
	s := started(t, &fakeService{questions: testQuestions(1), fallback: true}, aiSetup(3, 60))
	assert.Contains(t, s.View(100, 30), "Using fallback questions")
}

func TestQuizScreen_EmptySetGoesToSummary(t *testing.T) {
	s := New(&fakeService{}, aiSetup(3, 60))
	_, cmd := update(t, s, s.loadQuestions()())
	summaryFrom(t, cmd)
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s := started(t, &fakeService{questions: testQuestions(2)}, aiSetup(3, 60))
	assert.True(t, s.CapturesEscape())

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	s = scr.(*QuizScreen)
	require.True(t, s.confirmQuit)
	assert.Contains(t, s.View(80, 24), "End quiz early?")

	s, _ = update(t, s, keyPress('n'))
	assert.False(t, s.confirmQuit)

	s, _ = update(t, s, specialKey(tea.KeyEscape))
	s, cmd := update(t, s, keyPress('y'))
	summaryFrom(t, cmd)
	assert.False(t, s.CapturesEscape())
}

func TestQuizScreen_EscWhileLoadingPops(t *testing.T) {
	s := New(&fakeService{}, aiSetup(3, 60))
	_, cmd := update(t, s, specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := started(t, &fakeService{questions: testQuestions(1)}, aiSetup(3, 60))
	assert.Equal(t, "1-4", s.KeyHints()[1].Key)

	s, _ = update(t, s, keyPress('2'))
	assert.Equal(t, "Tab", s.KeyHints()[1].Key)
}
