// Package quiz runs quiz sessions: sampling questions, grading answers,
// and collecting results.
package quiz

import (
	"math/rand"
	"slices"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"
)

// DefaultSessionSize is the standard number of questions per session.
const DefaultSessionSize = 15

// Sample picks count random questions from the pool without replacement.
//
// When topics are given, only matching questions are candidates; a filter
// that matches nothing falls back to the whole pool so a session always
// has material. Asking for more questions than exist returns everything,
// shuffled.
func Sample(rng *rand.Rand, pool []questionbank.Question, count int, topics []string) []questionbank.Question {
	if count <= 0 || len(pool) == 0 {
		return nil
	}

	available := pool
	if len(topics) > 0 {
		var filtered []questionbank.Question
		for _, q := range pool {
			if slices.Contains(topics, q.Topic) {
				filtered = append(filtered, q)
			}
		}
		if len(filtered) > 0 {
			available = filtered
		}
	}

	n := min(count, len(available))
	perm := rng.Perm(len(available))

	selected := make([]questionbank.Question, n)
	for i := range n {
		selected[i] = available[perm[i]]
	}
	return selected
}
