package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieltsvocab/vocabquiz/internal/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/router"
)

func sampleSummary(total int) quiz.Summary {
	return quiz.Summary{
		Category:       "travel",
		TotalQuestions: 10,
		Correct:        total / 5,
		Score:          total,
		Total:          total,
		Passed:         total >= quiz.PassingScore,
		TimeUsed:       42,
		EndReason:      quiz.EndTimeUp,
		Sentences: []quiz.UserSentence{
			{Word: "visa", Sentence: "I need a visa.", Enhanced: "I need to apply for a visa.", Analysis: "Good."},
			{Word: "luggage", Sentence: "My luggage is heavy."},
		},
	}
}

func TestSummaryScreen_ViewPassed(t *testing.T) {
	s := New(sampleSummary(50))
	view := s.View(100, 60)

	assert.Contains(t, view, "Congratulations!")
	assert.Contains(t, view, "Travel & Holidays")
	assert.Contains(t, view, "0:42")
	assert.Contains(t, view, "time is up")
	assert.Contains(t, view, "Word: visa")
	assert.Contains(t, view, "I need to apply for a visa.")
	assert.Contains(t, view, "Word: luggage")
}

func TestSummaryScreen_ViewFailed(t *testing.T) {
	sum := sampleSummary(20)
	sum.Fallback = true
	view := New(sum).View(100, 60)

	assert.Contains(t, view, "Great Job!")
	assert.Contains(t, view, "offline word list")
}

func TestSummaryScreen_EnterReturnsHome(t *testing.T) {
	s := New(sampleSummary(10))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopToRootMsg)
	assert.True(t, ok)
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(sampleSummary(10))
	assert.Equal(t, "Results", s.Title())
	assert.NotEmpty(t, s.KeyHints())
}
