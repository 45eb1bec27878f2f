package vocab

import "strings"

// Category is a vocabulary topic bucket.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Words       []string `json:"-"`
}

// DefaultCategory is used when no category, or an unknown one, is given.
const DefaultCategory = "general"

var categories = []Category{
	{
		ID:          "travel",
		Name:        "Travel & Holidays",
		Description: "Essential vocabulary for travel and tourism",
		Words:       []string{"itinerary", "accommodation", "destination", "sightseeing", "passport", "visa", "boarding", "departure", "arrival", "luggage"},
	},
	{
		ID:          "friends",
		Name:        "Friends & Relationships",
		Description: "Vocabulary for social interactions",
		Words:       []string{"companionship", "loyalty", "trust", "bond", "friendship", "relationship", "connection", "support", "understanding", "care"},
	},
	{
		ID:          "education",
		Name:        "Education",
		Description: "Academic and educational terms",
		Words:       []string{"academic", "curriculum", "scholarship", "graduation", "lecture", "assignment", "research", "thesis", "semester", "faculty"},
	},
	{
		ID:          "home",
		Name:        "Home & Family",
		Description: "Family and household vocabulary",
		Words:       []string{"household", "furniture", "appliance", "maintenance", "renovation", "decoration", "comfort", "cozy", "spacious", "modern"},
	},
	{
		ID:          "shopping",
		Name:        "Shopping & Consumerism",
		Description: "Shopping and consumer vocabulary",
		Words:       []string{"purchase", "discount", "bargain", "receipt", "refund", "exchange", "delivery", "payment", "brand", "quality"},
	},
	{
		ID:          "health",
		Name:        "Health & Fitness",
		Description: "Health and medical terminology",
		Words:       []string{"wellness", "nutrition", "exercise", "medicine", "treatment", "recovery", "prevention", "symptoms", "diagnosis", "therapy"},
	},
	{
		ID:          "work",
		Name:        "Work & Career",
		Description: "Professional and workplace vocabulary",
		Words:       []string{"profession", "career", "promotion", "colleague", "deadline", "meeting", "project", "responsibility", "achievement", "leadership"},
	},
	{
		ID:          "general",
		Name:        "General Vocabulary",
		Description: "Mixed vocabulary for all topics",
		Words:       []string{"vocabulary", "language", "communication", "expression", "knowledge", "learning", "practice", "improvement", "confidence", "success"},
	},
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// GetCategory looks up a category by id.
func GetCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// WordsFor returns a copy of the word list for a category, falling back to
// the general list for unknown ids.
func WordsFor(id string) []string {
	c, ok := GetCategory(id)
	if !ok {
		c, _ = GetCategory(DefaultCategory)
	}
	out := make([]string, len(c.Words))
	copy(out, c.Words)
	return out
}

// NormalizeCategory maps an empty id to the default category. Unknown ids are
// kept as-is so prompts still carry the user's topic.
func NormalizeCategory(id string) string {
	if id == "" {
		return DefaultCategory
	}
	return id
}

// DisplayName returns the category's display name, or a title-cased id for
// unknown categories.
func DisplayName(id string) string {
	if c, ok := GetCategory(id); ok {
		return c.Name
	}
	if id == "" {
		return "General"
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
