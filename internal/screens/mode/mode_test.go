package mode

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/router"
	"github.com/ieltsvocab/vocabquiz/internal/screens/manual"
	"github.com/ieltsvocab/vocabquiz/internal/screens/settings"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
)

type nopService struct{}

func (nopService) GenerateQuestions(context.Context, questiongen.Request) *questiongen.Result {
	return &questiongen.Result{}
}

func (nopService) AnalyzeSentence(context.Context, sentence.Request) sentence.Analysis {
	return sentence.Analysis{}
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return msg.Screen
}

func TestModeScreen_Manual(t *testing.T) {
	m := New(nopService{}, "travel")
	assert.Equal(t, "Travel & Holidays", m.Title())
	assert.Contains(t, m.View(100, 30), "Manual Wording")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok := pushed(t, cmd).(*manual.ManualScreen)
	assert.True(t, ok)
}

func TestModeScreen_AI(t *testing.T) {
	m := New(nopService{}, "travel")
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok := pushed(t, cmd).(*settings.SettingsScreen)
	assert.True(t, ok)
}
