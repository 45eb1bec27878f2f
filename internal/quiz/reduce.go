package quiz

import (
	"slices"
	"strings"

	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
)

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// QuestionsLoaded delivers the question set requested at Step.
type QuestionsLoaded struct {
	Step      uint64
	Questions []questiongen.Question
	Fallback  bool
}

// AnswerSelected is the learner picking an option.
type AnswerSelected struct {
	Option string
}

// SentenceSubmitted carries a sentence and its analysis. Step is the state
// step at which the learner submitted. Enhanced and Analysis are empty when
// analysis failed.
type SentenceSubmitted struct {
	Step     uint64
	Sentence string
	Enhanced string
	Analysis string
}

// SentenceSkipped moves on without a sentence.
type SentenceSkipped struct{}

// Tick is one elapsed second.
type Tick struct{}

func (QuestionsLoaded) isEvent()   {}
func (AnswerSelected) isEvent()    {}
func (SentenceSubmitted) isEvent() {}
func (SentenceSkipped) isEvent()   {}
func (Tick) isEvent()              {}

// Reduce applies e to s and returns the next state. Events that do not
// apply to the current phase, or that carry a stale step, return s
// unchanged.
func Reduce(s State, e Event) State {
	if s.Phase == PhaseComplete {
		return s
	}

	switch ev := e.(type) {
	case QuestionsLoaded:
		return s.loadQuestions(ev)
	case AnswerSelected:
		return s.selectAnswer(ev)
	case SentenceSubmitted:
		return s.submitSentence(ev)
	case SentenceSkipped:
		if s.Phase != PhaseInProgress || s.Input != InputSentence {
			return s
		}
		return s.advance(false)
	case Tick:
		return s.tick()
	}
	return s
}

func (s State) loadQuestions(ev QuestionsLoaded) State {
	if s.Phase != PhaseLoading || ev.Step != s.Step {
		return s
	}
	s.Questions = slices.Clone(ev.Questions)
	s.Fallback = ev.Fallback
	s.Current = 0
	s.Input = InputAnswering
	s.Step++
	if len(s.Questions) == 0 {
		return s.complete(EndFinished)
	}
	s.Phase = PhaseInProgress
	return s
}

func (s State) selectAnswer(ev AnswerSelected) State {
	if s.Phase != PhaseInProgress || s.Input != InputAnswering {
		return s
	}
	q, ok := s.CurrentQuestion()
	if !ok || !q.HasOption(ev.Option) || s.isUsed(ev.Option) {
		return s
	}

	s.Step++
	if ev.Option == q.CorrectAnswer {
		s.Score += CorrectAnswerPoints
		s.Input = InputSentence
		s.CurrentCorrectAnswer = q.CorrectAnswer
		return s
	}

	s.Attempts++
	s.UsedOptions = append(slices.Clone(s.UsedOptions), ev.Option)
	if s.Attempts >= s.MaxAttempts {
		return s.complete(EndOutOfAttempts)
	}
	return s
}

func (s State) submitSentence(ev SentenceSubmitted) State {
	if s.Phase != PhaseInProgress || s.Input != InputSentence || ev.Step != s.Step {
		return s
	}
	sentence := strings.TrimSpace(ev.Sentence)
	if sentence == "" {
		return s
	}
	s.SentencePoints += SentenceBonusPoints
	s.UserSentences = append(slices.Clone(s.UserSentences), UserSentence{
		Word:     s.CurrentCorrectAnswer,
		Sentence: sentence,
		Enhanced: ev.Enhanced,
		Analysis: ev.Analysis,
	})
	return s.advance(true)
}

// advance moves to the next question or completes the quiz. Attempts carry
// over unless resetAttempts is set.
func (s State) advance(resetAttempts bool) State {
	s.Step++
	s.UsedOptions = nil
	s.CurrentCorrectAnswer = ""
	s.Input = InputAnswering
	if s.Current+1 >= len(s.Questions) {
		return s.complete(EndFinished)
	}
	s.Current++
	if resetAttempts {
		s.Attempts = 0
	}
	return s
}

func (s State) tick() State {
	if s.Phase != PhaseInProgress || s.TimeLeft <= 0 {
		return s
	}
	s.TimeLeft--
	if s.TimeLeft == 0 {
		s.Step++
		return s.complete(EndTimeUp)
	}
	return s
}

func (s State) complete(reason EndReason) State {
	s.Phase = PhaseComplete
	s.EndReason = reason
	return s
}
