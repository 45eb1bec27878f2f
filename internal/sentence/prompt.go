package sentence

import (
	"fmt"
	"strings"

	"github.com/ieltsvocab/vocabquiz/internal/llm"
)

const systemPrompt = `You are an expert IELTS tutor. Analyze user sentences and provide helpful feedback to improve their English skills. Always return valid JSON format.`

// FeedbackSchema is the JSON contract for a sentence analysis.
var FeedbackSchema = &llm.Schema{
	Name:        "sentence-feedback",
	Description: "An improved sentence and a short critique",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"enhancedSentence": map[string]any{
				"type":        "string",
				"description": "The improved sentence with better grammar and vocabulary",
			},
			"analysis": map[string]any{
				"type":        "string",
				"description": "Brief analysis of mistakes and suggestions for improvement",
			},
		},
		"required":             []any{"enhancedSentence", "analysis"},
		"additionalProperties": false,
	},
}

func buildUserMessage(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this sentence that uses the word %q: %q\n\n", req.Word, req.UserSentence)
	b.WriteString("Please provide:\n")
	b.WriteString("1. An enhanced version of the sentence (improve grammar, vocabulary, and IELTS-level English)\n")
	b.WriteString("2. A brief analysis of any mistakes or areas for improvement\n")
	fmt.Fprintf(&b, "3. Suggestions for better usage of the word %q\n\n", req.Word)
	b.WriteString(`Return the response in this exact JSON format:
{
  "enhancedSentence": "The improved sentence with better grammar and vocabulary",
  "analysis": "Brief analysis of mistakes and suggestions for improvement"
}`)
	b.WriteString("\n\nFocus on IELTS-level English and help the user improve their vocabulary usage.")
	return b.String()
}
