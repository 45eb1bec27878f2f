package questiongen

import (
	"fmt"

	"github.com/ieltsvocab/vocabquiz/internal/vocab"
)

// FallbackFromWords builds one question per word, in order, with ids 1..n.
func FallbackFromWords(s *vocab.Sampler, words []string) []Question {
	questions := make([]Question, 0, len(words))
	for i, w := range words {
		questions = append(questions, Question{
			ID:            i + 1,
			Word:          w,
			Question:      fmt.Sprintf(`What is the meaning of "%s"?`, w),
			Options:       s.Options(w),
			CorrectAnswer: w,
			Explanation:   fmt.Sprintf(`The correct answer is "%s"`, w),
		})
	}
	return questions
}

// FallbackForCategory builds questions from the first min(count, n) words
// of the category's list. Unknown categories use the general list.
func FallbackForCategory(s *vocab.Sampler, category string, count int) []Question {
	words := vocab.WordsFor(category)
	if count < len(words) {
		words = words[:max(count, 0)]
	}
	return FallbackFromWords(s, words)
}

// Fallback builds the local question set for req.
func Fallback(s *vocab.Sampler, req Request) []Question {
	if req.Mode.IsManual() {
		return FallbackFromWords(s, CleanWords(req.Words))
	}
	return FallbackForCategory(s, req.Category, req.EffectiveSettings().QuestionLimit)
}
