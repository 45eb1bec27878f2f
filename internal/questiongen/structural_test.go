package questiongen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() Question {
	return Question{
		ID:            1,
		Word:          "itinerary",
		Question:      "Which word means a planned route for a journey?",
		Options:       []string{"itinerary", "visa", "luggage", "receipt"},
		CorrectAnswer: "itinerary",
		Explanation:   "An itinerary lists the places you will visit.",
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantMsg string
	}{
		{"valid", func(q *Question) {}, ""},
		{"empty explanation allowed", func(q *Question) { q.Explanation = "" }, ""},
		{"empty word", func(q *Question) { q.Word = "  " }, "word is empty"},
		{"empty question", func(q *Question) { q.Question = "" }, "question is empty"},
		{"long question", func(q *Question) { q.Question = strings.Repeat("a", 501) }, "exceeds 500"},
		{"long explanation", func(q *Question) { q.Explanation = strings.Repeat("a", 1001) }, "exceeds 1000"},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, "exactly 4"},
		{"five options", func(q *Question) { q.Options = append(q.Options, "bond") }, "exactly 4"},
		{"blank option", func(q *Question) { q.Options[2] = " " }, "option is empty"},
		{"duplicate option", func(q *Question) { q.Options[3] = "visa" }, "duplicate option"},
		{"answer missing", func(q *Question) { q.CorrectAnswer = "passport" }, "not one of the options"},
		{"answer case differs", func(q *Question) { q.CorrectAnswer = "Itinerary" }, "not one of the options"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			q.Options = append([]string(nil), q.Options...)
			tt.mutate(&q)

			err := v.Validate(&q, Request{})
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			if assert.NotNil(t, err) {
				assert.Contains(t, err.Message, tt.wantMsg)
				assert.Contains(t, err.Error(), `validator "structural"`)
			}
		})
	}
}

func TestSettingsNormalize(t *testing.T) {
	assert.Equal(t, DefaultSettings(), Settings{}.Normalize())
	assert.Equal(t, DefaultSettings(), Settings{QuestionLimit: -1, Attempts: -3, TimeLimit: -60, DifficultyLevel: " "}.Normalize())

	custom := Settings{QuestionLimit: 30, DifficultyLevel: "easy", Attempts: 1, QuestionType: "true-false", TimeLimit: 300}
	assert.Equal(t, custom, custom.Normalize())

	assert.Equal(t, DefaultSettings(), Request{}.EffectiveSettings())
	assert.Equal(t, 20, Request{Settings: &Settings{QuestionLimit: 20}}.EffectiveSettings().QuestionLimit)
}

func TestMode(t *testing.T) {
	assert.True(t, ModeManual.IsManual())
	assert.False(t, ModeAI.IsManual())
	assert.False(t, Mode("").IsManual())
	assert.False(t, Mode("Manual").IsManual())
}
