package questiongen

import "github.com/ieltsvocab/vocabquiz/internal/llm"

// QuestionSetSchema is the JSON contract the model must fill. The option
// count is enforced by StructuralValidator since strict structured output
// modes reject array length keywords. id and explanation are nullable:
// strict modes still send them, plain JSON replies may leave them out.
var QuestionSetSchema = &llm.Schema{
	Name:        "vocab-questions",
	Description: "A set of IELTS vocabulary multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        []any{"integer", "null"},
							"description": "1-based position of the question",
						},
						"word": map[string]any{
							"type":        "string",
							"description": "The vocabulary word being tested",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct option, copied verbatim from options",
						},
						"explanation": map[string]any{
							"type":        []any{"string", "null"},
							"description": "Brief explanation of the correct answer",
						},
					},
					"required":             []any{"id", "word", "question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
