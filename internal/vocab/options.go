package vocab

import (
	"math/rand/v2"
	"sync"
	"time"
)

// OptionCount is the number of answer options on every question.
const OptionCount = 4

// distractorPool is the fixed vocabulary the fallback samples wrong options from.
var distractorPool = []string{
	"accommodation", "achievement", "appliance", "assignment", "bargain", "boarding", "bond", "brand",
	"care", "career", "colleague", "comfort", "communication", "companionship", "confidence", "connection",
	"cozy", "curriculum", "deadline", "decoration", "delivery", "departure", "destination", "diagnosis",
	"discount", "exchange", "exercise", "expression", "faculty", "friendship", "furniture", "graduation",
	"household", "improvement", "itinerary", "knowledge", "language", "leadership", "learning", "lecture",
	"luggage", "loyalty", "maintenance", "medicine", "meeting", "modern", "nutrition", "passport",
	"payment", "practice", "prevention", "profession", "project", "promotion", "purchase", "quality",
	"receipt", "recovery", "refund", "relationship", "renovation", "research", "responsibility", "scholarship",
	"semester", "sightseeing", "spacious", "success", "support", "symptoms", "therapy", "thesis",
	"treatment", "trust", "understanding", "visa", "vocabulary", "wellness",
}

// Pool returns a copy of the distractor pool.
func Pool() []string {
	out := make([]string, len(distractorPool))
	copy(out, distractorPool)
	return out
}

// GenerateOptions builds the answer options for word: three distinct words
// drawn uniformly without replacement from the pool (excluding word), plus
// word itself, in uniformly shuffled order.
func GenerateOptions(r *rand.Rand, word string) []string {
	candidates := make([]string, 0, len(distractorPool))
	for _, w := range distractorPool {
		if w != word {
			candidates = append(candidates, w)
		}
	}

	options := make([]string, 0, OptionCount)
	options = append(options, word)
	for i := 0; i < OptionCount-1 && len(candidates) > 0; i++ {
		j := r.IntN(len(candidates))
		options = append(options, candidates[j])
		candidates[j] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}

	Shuffle(r, options)
	return options
}

// Shuffle permutes s in place with Fisher-Yates.
func Shuffle[T any](r *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Sampler serializes access to a single random source so it can be shared
// by concurrent request handlers.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler wraps r. A nil r gets a time-seeded source.
func NewSampler(r *rand.Rand) *Sampler {
	if r == nil {
		seed := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Sampler{rng: r}
}

// NewSeededSampler returns a Sampler whose output is fully determined by seed.
func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(rand.New(rand.NewPCG(seed, 0)))
}

// Options is the locked form of GenerateOptions.
func (s *Sampler) Options(word string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GenerateOptions(s.rng, word)
}
