package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
		{"json fence", "```json\n{\"questions\":[]}\n```", `{"questions":[]}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around object", "Here you go:\n{\"enhancedSentence\":\"x\"}\nHope it helps!", `{"enhancedSentence":"x"}`},
		{"array", "Result: [1,2,3].", `[1,2,3]`},
		{"not json", "sorry, I cannot help", "sorry, I cannot help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSON(json.RawMessage(tt.in))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
