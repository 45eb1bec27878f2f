package questiongen

import (
	"fmt"
	"strings"
)

const manualSystemPrompt = `You are an expert IELTS vocabulary tutor. Generate high-quality vocabulary questions based on specific words provided by the user. Always return valid JSON format.`

const aiSystemPrompt = `You are an expert IELTS vocabulary tutor. Generate high-quality vocabulary questions that help students prepare for the IELTS exam. Always return valid JSON format.`

const jsonFormat = `Return the response in this exact JSON format:
{
  "questions": [
    {
      "id": 1,
      "word": "example_word",
      "question": "What is the meaning of 'example_word'?",
      "options": ["option A", "option B", "option C", "option D"],
      "correctAnswer": "option A",
      "explanation": "Brief explanation of the correct answer"
    }
  ]
}
The correctAnswer must be copied exactly from options. Do not wrap the JSON in markdown.`

// buildManualMessage asks for one question per supplied word.
func buildManualMessage(words []string, category string) string {
	list := strings.Join(words, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d IELTS vocabulary quiz questions based on these specific words: %s for the category %q.\n\n", len(words), list, category)
	b.WriteString("Requirements:\n")
	b.WriteString("- Create questions that test understanding of each word\n")
	b.WriteString("- Each question should have 4 multiple choice options (A, B, C, D)\n")
	b.WriteString("- Include the correct answer\n")
	b.WriteString("- Make questions appropriate for IELTS vocabulary level\n")
	b.WriteString("- Focus on the specific words provided by the user\n")
	b.WriteString("- Questions can be about definitions, synonyms, usage, or context\n\n")
	b.WriteString(jsonFormat)
	fmt.Fprintf(&b, "\n\nWords: %s\nCategory: %s", list, category)
	return b.String()
}

// buildAIMessage asks for a category-driven question set.
func buildAIMessage(category string, s Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d IELTS vocabulary quiz questions for the category %q with %s difficulty level.\n\n", s.QuestionLimit, category, s.DifficultyLevel)
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Question type: %s\n", s.QuestionType)
	b.WriteString("- Each question should have 4 multiple choice options (A, B, C, D)\n")
	if strings.Contains(s.QuestionType, "true-false") {
		b.WriteString("- True-false questions state a claim about the word and still use exactly 4 options: \"True\", \"False\", \"Not given\", \"Partly true\"\n")
	}
	b.WriteString("- Include the correct answer\n")
	b.WriteString("- Make questions appropriate for IELTS vocabulary level\n")
	fmt.Fprintf(&b, "- Focus on words commonly used in %s context\n\n", category)
	b.WriteString(jsonFormat)
	fmt.Fprintf(&b, "\n\nCategory: %s\nDifficulty: %s\nQuestion Type: %s", category, s.DifficultyLevel, s.QuestionType)
	return b.String()
}
