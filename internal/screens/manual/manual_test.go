package manual

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/router"
	quizscreen "github.com/ieltsvocab/vocabquiz/internal/screens/quiz"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
)

type nopService struct{}

func (nopService) GenerateQuestions(context.Context, questiongen.Request) *questiongen.Result {
	return &questiongen.Result{}
}

func (nopService) AnalyzeSentence(context.Context, sentence.Request) sentence.Analysis {
	return sentence.Analysis{}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func addWord(m *ManualScreen, w string) {
	m.input.SetValue(w)
	m.Update(enter())
}

func TestManualScreen_AddAndRemove(t *testing.T) {
	m := New(nopService{}, "travel")
	addWord(m, "  visa ")
	addWord(m, "   ")
	addWord(m, "luggage")
	assert.Equal(t, []string{"visa", "luggage"}, m.Words())
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(100, 30), "2. luggage")

	m.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	assert.Equal(t, []string{"visa"}, m.Words())
}

func TestManualScreen_NeedsThreeWords(t *testing.T) {
	m := New(nopService{}, "travel")
	addWord(m, "visa")
	addWord(m, "luggage")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(100, 30), "Please add at least 3 words to generate a quiz")
}

func TestManualScreen_StartsQuiz(t *testing.T) {
	m := New(nopService{}, "travel")
	addWord(m, "visa")
	addWord(m, "luggage")
	// The word still in the input is included.
	m.input.SetValue("passport")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	q, ok := push.Screen.(*quizscreen.QuizScreen)
	require.True(t, ok)

	setup := q.Setup()
	assert.Equal(t, questiongen.ModeManual, setup.Mode)
	assert.Equal(t, "travel", setup.Category)
	assert.Equal(t, []string{"visa", "luggage", "passport"}, setup.Words)
}
