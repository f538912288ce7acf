// Package questionbank generates and validates multiple-choice question pools.
package questionbank

import "fmt"

// Difficulty is a question tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Tiers lists the difficulties in generation order.
var Tiers = []Difficulty{Easy, Medium, Hard}

// UncategorizedTopic is assigned to questions whose topic tag does not
// match any topic from the notes.
const UncategorizedTopic = "Uncategorized"

// OptionCount is the number of choices every question carries.
const OptionCount = 4

// Question is one multiple-choice question.
type Question struct {
	Text          string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correct_answer"`
	Explanation   string     `json:"explanation"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
}

// Validate checks the structural invariants a usable question must hold.
func (q *Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("question has %d options, want %d", len(q.Options), OptionCount)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
		return fmt.Errorf("correct_answer %d out of range [0,%d)", q.CorrectAnswer, OptionCount)
	}
	switch q.Difficulty {
	case Easy, Medium, Hard:
	default:
		return fmt.Errorf("unknown difficulty %q", q.Difficulty)
	}
	return nil
}

// SplitCounts divides a question budget across the three tiers.
// Easy and medium each get total/3; hard takes the remainder so the
// parts always sum to total.
func SplitCounts(total int) map[Difficulty]int {
	if total < 0 {
		total = 0
	}
	third := total / 3
	return map[Difficulty]int{
		Easy:   third,
		Medium: third,
		Hard:   total - 2*third,
	}
}
