// Package performance summarizes quiz results by topic.
package performance

import (
	"fmt"
	"sort"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/quiz"
)

// Status labels how well a topic went.
type Status string

const (
	StatusStrong      Status = "Strong"
	StatusNeedsReview Status = "Needs Review"
	StatusWeak        Status = "Weak"
)

// Thresholds for status bands and weak-topic detection, in percent.
const (
	StrongThreshold = 80
	WeakThreshold   = 60
)

// TopicStat is one topic's aggregate result.
type TopicStat struct {
	Topic      string  `json:"topic"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Status     Status  `json:"status"`
}

// Score renders the stat as "correct/total".
func (s TopicStat) Score() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}

// Aggregate folds answered questions into per-topic stats. Topics appear
// in first-seen order, which keeps output stable across runs of the same
// session.
func Aggregate(answers []quiz.AnsweredQuestion) []TopicStat {
	index := make(map[string]int)
	var stats []TopicStat

	for _, a := range answers {
		topic := a.Question.Topic
		i, ok := index[topic]
		if !ok {
			i = len(stats)
			index[topic] = i
			stats = append(stats, TopicStat{Topic: topic})
		}
		stats[i].Total++
		if a.IsCorrect {
			stats[i].Correct++
		}
	}

	for i := range stats {
		s := &stats[i]
		s.Percentage = float64(s.Correct) / float64(s.Total) * 100
		s.Status = statusFor(s.Percentage)
	}

	return stats
}

func statusFor(pct float64) Status {
	switch {
	case pct >= StrongThreshold:
		return StatusStrong
	case pct >= WeakThreshold:
		return StatusNeedsReview
	default:
		return StatusWeak
	}
}

// WeakTopics returns the stats strictly below threshold percent, weakest
// first. Ties keep their Aggregate order. A topic at exactly the
// threshold is not weak.
func WeakTopics(stats []TopicStat, threshold float64) []TopicStat {
	var weak []TopicStat
	for _, s := range stats {
		if s.Percentage < threshold {
			weak = append(weak, s)
		}
	}

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Percentage < weak[j].Percentage
	})

	return weak
}
