package performance

import (
	"math/rand"
	"testing"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/quiz"
)

func answered(topic string, correct bool) quiz.AnsweredQuestion {
	return quiz.AnsweredQuestion{
		Question: questionbank.Question{
			Topic:   topic,
			Options: []string{"a", "b", "c", "d"},
		},
		IsCorrect: correct,
	}
}

func TestAggregate(t *testing.T) {
	answers := []quiz.AnsweredQuestion{
		answered("Pointers", true),
		answered("Pointers", true),
		answered("Slices", false),
		answered("Pointers", false),
		answered("Slices", true),
		answered("Maps", false),
	}

	stats := Aggregate(answers)
	if len(stats) != 3 {
		t.Fatalf("Aggregate() returned %d topics, want 3", len(stats))
	}

	// First-seen order.
	wantOrder := []string{"Pointers", "Slices", "Maps"}
	for i, want := range wantOrder {
		if stats[i].Topic != want {
			t.Errorf("stats[%d].Topic = %q, want %q", i, stats[i].Topic, want)
		}
	}

	pointers := stats[0]
	if pointers.Correct != 2 || pointers.Total != 3 {
		t.Errorf("Pointers = %s, want 2/3", pointers.Score())
	}
	if pointers.Percentage < 66.6 || pointers.Percentage > 66.7 {
		t.Errorf("Pointers percentage = %v", pointers.Percentage)
	}
	if pointers.Status != StatusNeedsReview {
		t.Errorf("Pointers status = %q, want Needs Review", pointers.Status)
	}

	if maps := stats[2]; maps.Status != StatusWeak || maps.Percentage != 0 {
		t.Errorf("Maps = %+v, want Weak at 0%%", maps)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	base := []quiz.AnsweredQuestion{
		answered("Pointers", true),
		answered("Slices", false),
		answered("Pointers", false),
		answered("Maps", true),
		answered("Slices", true),
		answered("Pointers", true),
	}

	want := make(map[string]TopicStat)
	for _, s := range Aggregate(base) {
		want[s.Topic] = s
	}

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		shuffled := append([]quiz.AnsweredQuestion(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		for _, s := range Aggregate(shuffled) {
			w, ok := want[s.Topic]
			if !ok {
				t.Fatalf("trial %d produced unknown topic %q", trial, s.Topic)
			}
			if s.Correct != w.Correct || s.Total != w.Total ||
				s.Percentage != w.Percentage || s.Status != w.Status {
				t.Fatalf("trial %d: %s = %+v, want %+v regardless of answer order",
					trial, s.Topic, s, w)
			}
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	if stats := Aggregate(nil); len(stats) != 0 {
		t.Errorf("Aggregate(nil) = %v, want empty", stats)
	}
}

func TestStatusBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want Status
	}{
		{100, StatusStrong},
		{80, StatusStrong},
		{79.9, StatusNeedsReview},
		{60, StatusNeedsReview},
		{59.9, StatusWeak},
		{0, StatusWeak},
	}
	for _, tt := range tests {
		if got := statusFor(tt.pct); got != tt.want {
			t.Errorf("statusFor(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestWeakTopicsSortedAscending(t *testing.T) {
	stats := []TopicStat{
		{Topic: "A", Percentage: 50},
		{Topic: "B", Percentage: 20},
		{Topic: "C", Percentage: 60},
		{Topic: "D", Percentage: 40},
	}

	weak := WeakTopics(stats, WeakThreshold)
	if len(weak) != 3 {
		t.Fatalf("WeakTopics() returned %d, want 3 (60%% is not weak)", len(weak))
	}

	wantOrder := []string{"B", "D", "A"}
	for i, want := range wantOrder {
		if weak[i].Topic != want {
			t.Errorf("weak[%d] = %q, want %q", i, weak[i].Topic, want)
		}
	}
}

func TestWeakTopicsStableTies(t *testing.T) {
	stats := []TopicStat{
		{Topic: "First", Percentage: 33},
		{Topic: "Second", Percentage: 33},
	}

	weak := WeakTopics(stats, WeakThreshold)
	if weak[0].Topic != "First" || weak[1].Topic != "Second" {
		t.Errorf("tied topics reordered: %v", weak)
	}
}

func TestFullSessionAggregation(t *testing.T) {
	// 15 answers, 9 correct: overall 60% with topic totals summing to 15.
	var answers []quiz.AnsweredQuestion
	add := func(topic string, correct, wrong int) {
		for range correct {
			answers = append(answers, answered(topic, true))
		}
		for range wrong {
			answers = append(answers, answered(topic, false))
		}
	}
	add("Alpha", 5, 0) // 100% Strong
	add("Beta", 3, 2)  // 60%  Needs Review
	add("Gamma", 1, 4) // 20%  Weak

	stats := Aggregate(answers)

	totalQuestions, totalCorrect := 0, 0
	for _, s := range stats {
		totalQuestions += s.Total
		totalCorrect += s.Correct
	}
	if totalQuestions != 15 {
		t.Errorf("topic totals sum to %d, want 15", totalQuestions)
	}
	if totalCorrect != 9 {
		t.Errorf("correct sum = %d, want 9", totalCorrect)
	}

	weak := WeakTopics(stats, WeakThreshold)
	if len(weak) != 1 || weak[0].Topic != "Gamma" {
		t.Errorf("WeakTopics() = %v, want only Gamma", weak)
	}
}
