package quiz

import "github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"

// GradedAnswer is the verdict for one answered question.
type GradedAnswer struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	CorrectOption string `json:"correct_option"`
	// UserOption is the text of the chosen option, or nil when the
	// answer index was out of range.
	UserOption  *string `json:"user_option"`
	Explanation string  `json:"explanation"`
}

// Grade checks an answer against the question key. It is pure: no
// clock, no randomness, no I/O.
func Grade(q questionbank.Question, userAnswer int) GradedAnswer {
	graded := GradedAnswer{
		Correct:       userAnswer == q.CorrectAnswer,
		CorrectAnswer: q.CorrectAnswer,
		CorrectOption: q.Options[q.CorrectAnswer],
		Explanation:   q.Explanation,
	}

	if userAnswer >= 0 && userAnswer < len(q.Options) {
		opt := q.Options[userAnswer]
		graded.UserOption = &opt
	}

	return graded
}
