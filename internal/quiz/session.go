package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"
)

// AnsweredQuestion pairs a question with the learner's graded answer.
type AnsweredQuestion struct {
	Question   questionbank.Question `json:"question"`
	UserAnswer int                   `json:"user_answer"`
	IsCorrect  bool                  `json:"is_correct"`
}

// Session is one quiz run over a sampled set of questions.
type Session struct {
	ID        string                `json:"id"`
	VideoID   string                `json:"video_id"`
	Questions []questionbank.Question `json:"questions"`
	Answers   []AnsweredQuestion    `json:"answers"`
	StartedAt time.Time             `json:"started_at"`

	cursor int
}

// NewSession samples questions from the pool and starts a session.
// A nil rng gets a time-seeded one.
func NewSession(rng *rand.Rand, videoID string, pool []questionbank.Question, count int, topics []string) (*Session, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	selected := Sample(rng, pool, count, topics)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no questions available for session")
	}

	return &Session{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		Questions: selected,
		StartedAt: time.Now(),
	}, nil
}

// Current returns the question awaiting an answer, or false when the
// session is complete.
func (s *Session) Current() (questionbank.Question, bool) {
	if s.cursor >= len(s.Questions) {
		return questionbank.Question{}, false
	}
	return s.Questions[s.cursor], true
}

// Progress reports the 1-based position and total question count.
func (s *Session) Progress() (current, total int) {
	pos := s.cursor + 1
	if pos > len(s.Questions) {
		pos = len(s.Questions)
	}
	return pos, len(s.Questions)
}

// Answer grades the current question, records the result, and advances.
func (s *Session) Answer(userAnswer int) (GradedAnswer, error) {
	q, ok := s.Current()
	if !ok {
		return GradedAnswer{}, fmt.Errorf("session already complete")
	}

	graded := Grade(q, userAnswer)
	s.Answers = append(s.Answers, AnsweredQuestion{
		Question:   q,
		UserAnswer: userAnswer,
		IsCorrect:  graded.Correct,
	})
	s.cursor++

	return graded, nil
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.cursor >= len(s.Questions)
}

// Score returns correct count, total answered, and percentage.
func (s *Session) Score() (correct, total int, percentage float64) {
	total = len(s.Answers)
	for _, a := range s.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	if total > 0 {
		percentage = float64(correct) / float64(total) * 100
	}
	return correct, total, percentage
}
