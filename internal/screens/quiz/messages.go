package quiz

import (
	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
)

// Every message carries the session id of the quiz that issued it, so a
// result from an abandoned quiz never lands in a newer one.

// questionsLoadedMsg carries the question set requested at step.
type questionsLoadedMsg struct {
	session string
	step    uint64
	result  *questiongen.Result
}

// analysisDoneMsg carries sentence feedback for a submission made at step.
type analysisDoneMsg struct {
	session  string
	step     uint64
	sentence string
	analysis sentence.Analysis
}

// timerTickMsg is sent every second while the quiz runs.
type timerTickMsg struct {
	session string
}
