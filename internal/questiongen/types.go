package questiongen

import "strings"

// Question is a single multiple-choice vocabulary question. It is
// immutable once handed to a quiz.
type Question struct {
	ID            int      `json:"id"`
	Word          string   `json:"word"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// HasOption reports whether opt is one of the question's options.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// Mode selects how the question set is sourced.
type Mode string

const (
	// ModeManual builds one question per user-supplied word.
	ModeManual Mode = "manual"

	// ModeAI asks the model for questions on a category. Any value other
	// than "manual" is treated as AI mode.
	ModeAI Mode = "ai"
)

// IsManual reports whether m selects manual mode.
func (m Mode) IsManual() bool { return m == ModeManual }

// Settings are the user-chosen quiz parameters, read once at quiz start.
type Settings struct {
	QuestionLimit   int    `json:"questionLimit"`
	DifficultyLevel string `json:"difficultyLevel"`
	Attempts        int    `json:"attempts"`
	QuestionType    string `json:"questionType"`
	TimeLimit       int    `json:"timeLimit"`
}

// Defaults and offered values for Settings.
const (
	DefaultQuestionLimit = 10
	DefaultDifficulty    = "medium"
	DefaultAttempts      = 3
	DefaultQuestionType  = "multiple-choice"
	DefaultTimeLimit     = 60
)

var (
	QuestionLimitChoices = []int{10, 20, 30}
	DifficultyChoices    = []string{"easy", "medium", "hard", "easy, medium, and hard"}
	AttemptChoices       = []int{1, 2, 3}
	QuestionTypeChoices  = []string{"multiple-choice", "true-false", "multiple-choice and true-false"}
	TimeLimitChoices     = []int{30, 60, 300}
)

// DefaultSettings returns the settings used when the user changes nothing.
func DefaultSettings() Settings {
	return Settings{
		QuestionLimit:   DefaultQuestionLimit,
		DifficultyLevel: DefaultDifficulty,
		Attempts:        DefaultAttempts,
		QuestionType:    DefaultQuestionType,
		TimeLimit:       DefaultTimeLimit,
	}
}

// Normalize replaces zero, negative or blank fields with the defaults.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()
	if s.QuestionLimit <= 0 {
		s.QuestionLimit = d.QuestionLimit
	}
	if strings.TrimSpace(s.DifficultyLevel) == "" {
		s.DifficultyLevel = d.DifficultyLevel
	}
	if s.Attempts <= 0 {
		s.Attempts = d.Attempts
	}
	if strings.TrimSpace(s.QuestionType) == "" {
		s.QuestionType = d.QuestionType
	}
	if s.TimeLimit <= 0 {
		s.TimeLimit = d.TimeLimit
	}
	return s
}

// Request is the body of a generate-questions call.
type Request struct {
	Category string    `json:"category"`
	Settings *Settings `json:"settings,omitempty"`
	Words    []string  `json:"words,omitempty"`
	Mode     Mode      `json:"mode"`
}

// EffectiveSettings returns the request's settings with defaults applied.
func (r Request) EffectiveSettings() Settings {
	if r.Settings == nil {
		return DefaultSettings()
	}
	return r.Settings.Normalize()
}

// CleanWords trims every word and drops blanks, preserving order.
func CleanWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Result is the outcome of a generate call. Questions always follows the
// same schema whether it came from the model or the fallback.
type Result struct {
	Questions []Question `json:"questions"`

	// Fallback is set when the locally generated set replaced the model's.
	Fallback bool `json:"-"`

	// Cause records why the fallback was used, for logging.
	Cause error `json:"-"`
}
