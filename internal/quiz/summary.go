package quiz

// Summary is the end-of-quiz report.
type Summary struct {
	SessionID      string
	Category       string
	Fallback       bool
	EndReason      EndReason
	TotalQuestions int
	Correct        int
	Score          int
	SentencePoints int
	Total          int
	Passed         bool
	TimeUsed       int
	Sentences      []UserSentence
}

// BuildSummary derives the summary from a state. It may be called on an
// unfinished state, e.g. when the learner quits early.
func BuildSummary(s State) Summary {
	total := s.TotalScore()
	return Summary{
		SessionID:      s.SessionID,
		Category:       s.Setup.Request().Category,
		Fallback:       s.Fallback,
		EndReason:      s.EndReason,
		TotalQuestions: len(s.Questions),
		Correct:        s.Score / CorrectAnswerPoints,
		Score:          s.Score,
		SentencePoints: s.SentencePoints,
		Total:          total,
		Passed:         total >= PassingScore,
		TimeUsed:       s.TotalTime - s.TimeLeft,
		Sentences:      s.UserSentences,
	}
}

// Headline and Message are the results screen banner.
func (s Summary) Headline() string {
	if s.Passed {
		return "Congratulations!"
	}
	return "Great Job!"
}

func (s Summary) Message() string {
	if s.Passed {
		return "You've successfully completed the quiz with an excellent score!"
	}
	return "You're doing great! Keep practicing to improve your score."
}
