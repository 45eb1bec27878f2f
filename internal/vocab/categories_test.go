package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllCategories(t *testing.T) {
	cats := AllCategories()
	assert.Len(t, cats, 8)
	for _, c := range cats {
		assert.Len(t, c.Words, 10, "category %s", c.ID)
		assert.NotEmpty(t, c.Name)
	}
	assert.Equal(t, "general", cats[len(cats)-1].ID)
}

func TestWordsFor(t *testing.T) {
	tests := []struct {
		id    string
		first string
	}{
		{"travel", "itinerary"},
		{"health", "wellness"},
		{"unknown", "vocabulary"},
		{"", "vocabulary"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			words := WordsFor(tt.id)
			assert.Equal(t, tt.first, words[0])
		})
	}
}

func TestWordsFor_ReturnsCopy(t *testing.T) {
	words := WordsFor("travel")
	words[0] = "changed"
	assert.Equal(t, "itinerary", WordsFor("travel")[0])
}

func TestNormalizeAndDisplay(t *testing.T) {
	assert.Equal(t, "general", NormalizeCategory(""))
	assert.Equal(t, "cooking", NormalizeCategory("cooking"))
	assert.Equal(t, "Work & Career", DisplayName("work"))
	assert.Equal(t, "Cooking", DisplayName("cooking"))
	assert.Equal(t, "General", DisplayName(""))
}
