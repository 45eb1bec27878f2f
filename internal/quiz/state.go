// Package quiz holds the quiz progress state machine. State changes only
// through Reduce, which is pure: the same state and event always yield the
// same next state and the input is never modified.
package quiz

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
)

// Scoring rules.
const (
	CorrectAnswerPoints = 5
	SentenceBonusPoints = 3
	PassingScore        = 50
)

// Manual mode ignores the settings screen and always uses these.
const (
	ManualMaxAttempts = 3
	ManualTimeLimit   = 60
	MinManualWords    = 3
)

// Phase is the top-level quiz phase.
type Phase int

const (
	PhaseLoading    Phase = iota // Waiting for the question set
	PhaseInProgress              // Questions being answered
	PhaseComplete                // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseInProgress:
		return "in-progress"
	case PhaseComplete:
		return "complete"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// InputMode is the sub-mode while a quiz is in progress.
type InputMode int

const (
	InputAnswering InputMode = iota // Picking an option
	InputSentence                   // Writing a sentence with the correct word
)

// EndReason records why a quiz completed.
type EndReason int

const (
	EndNone EndReason = iota
	EndFinished
	EndOutOfAttempts
	EndTimeUp
)

func (r EndReason) String() string {
	switch r {
	case EndFinished:
		return "all questions answered"
	case EndOutOfAttempts:
		return "out of attempts"
	case EndTimeUp:
		return "time is up"
	}
	return ""
}

// UserSentence is a sentence the learner wrote for a correctly answered word.
type UserSentence struct {
	Word     string `json:"word"`
	Sentence string `json:"userSentence"`
	Enhanced string `json:"aiEnhanced,omitempty"`
	Analysis string `json:"analysis,omitempty"`
}

// ErrTooFewWords is returned by Setup.Validate for short manual word lists.
var ErrTooFewWords = fmt.Errorf("please enter at least %d words", MinManualWords)

// Setup is what the setup screens hand to the quiz: mode, category, the
// manual word list and the settings.
type Setup struct {
	Mode     questiongen.Mode
	Category string
	Words    []string
	Settings questiongen.Settings
}

// Validate checks that a manual setup has enough words.
func (s Setup) Validate() error {
	if s.Mode.IsManual() && len(questiongen.CleanWords(s.Words)) < MinManualWords {
		return ErrTooFewWords
	}
	return nil
}

// Request builds the generate-questions request for this setup.
func (s Setup) Request() questiongen.Request {
	req := questiongen.Request{
		Category: vocab.NormalizeCategory(s.Category),
		Mode:     s.Mode,
	}
	if s.Mode.IsManual() {
		req.Words = questiongen.CleanWords(s.Words)
	} else {
		settings := s.Settings.Normalize()
		req.Settings = &settings
	}
	return req
}

// limits returns the attempt budget and time limit for the setup.
func (s Setup) limits() (attempts, seconds int) {
	if s.Mode.IsManual() {
		return ManualMaxAttempts, ManualTimeLimit
	}
	settings := s.Settings.Normalize()
	return settings.Attempts, settings.TimeLimit
}

// State is the full quiz progress state.
type State struct {
	Setup     Setup
	SessionID string

	Phase     Phase
	Input     InputMode
	EndReason EndReason

	Questions []questiongen.Question
	Fallback  bool

	Current        int
	Score          int
	SentencePoints int
	Attempts       int
	MaxAttempts    int
	TimeLeft       int
	TotalTime      int

	// UsedOptions are the wrong options already tried on the current question.
	UsedOptions []string

	// CurrentCorrectAnswer is the word awaiting a sentence.
	CurrentCorrectAnswer string

	UserSentences []UserSentence

	// Step counts applied transitions, except timer ticks that leave the
	// quiz running. Asynchronous results carry the Step they were issued
	// at and are dropped when it has moved on.
	Step uint64
}

// NewState starts a quiz in the loading phase.
func NewState(setup Setup) State {
	attempts, seconds := setup.limits()
	return State{
		Setup:       setup,
		SessionID:   uuid.NewString(),
		Phase:       PhaseLoading,
		MaxAttempts: attempts,
		TimeLeft:    seconds,
		TotalTime:   seconds,
	}
}

// CurrentQuestion returns the active question, if any.
func (s State) CurrentQuestion() (questiongen.Question, bool) {
	if s.Phase != PhaseInProgress || s.Current < 0 || s.Current >= len(s.Questions) {
		return questiongen.Question{}, false
	}
	return s.Questions[s.Current], true
}

// RemainingOptions returns the current question's options minus the ones
// already tried.
func (s State) RemainingOptions() []string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		if !s.isUsed(o) {
			out = append(out, o)
		}
	}
	return out
}

func (s State) isUsed(opt string) bool {
	for _, u := range s.UsedOptions {
		if u == opt {
			return true
		}
	}
	return false
}

// TotalScore is the answer score plus sentence bonus points.
func (s State) TotalScore() int {
	return s.Score + s.SentencePoints
}

// Progress is the position of the current question in the set, counting
// the current one as reached, in [0, 1].
func (s State) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return min(float64(s.Current+1)/float64(len(s.Questions)), 1)
}

// Done reports whether the quiz has completed.
func (s State) Done() bool {
	return s.Phase == PhaseComplete
}
