package notes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/llm"
)

const validNotesJSON = `{
	"summary": "The lecture introduces machine learning and its three major approaches.",
	"key_concepts": ["Supervised Learning", "Unsupervised Learning", "Neural Networks"],
	"topics": [
		{"name": "Supervised Learning", "description": "Learning from labeled data", "keywords": ["regression", "classification"]},
		{"name": "Unsupervised Learning", "description": "Learning from unlabeled data"}
	],
	"detailed_notes": "## Supervised Learning\n- uses labeled data"
}`

func longTranscript() string {
	return strings.Repeat("Machine learning is the study of algorithms that improve with data. ", 10)
}

func TestSynthesizeSuccess(t *testing.T) {
	mock := llm.NewMockProvider("test-model")
	mock.Enqueue(validNotesJSON)

	s := NewSynthesizer(mock, DefaultConfig())

	got, _, err := s.Synthesize(context.Background(), longTranscript())
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(got.Topics) != 2 {
		t.Errorf("topics = %d, want 2", len(got.Topics))
	}
	if got.Topics[0].Name != "Supervised Learning" {
		t.Errorf("first topic = %q", got.Topics[0].Name)
	}
	if len(got.KeyConcepts) != 3 {
		t.Errorf("key concepts = %d, want 3", len(got.KeyConcepts))
	}

	reqs := mock.Requests()
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(reqs))
	}
	if reqs[0].Temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", reqs[0].Temperature)
	}
	if reqs[0].MaxTokens != 4000 {
		t.Errorf("max tokens = %d, want 4000", reqs[0].MaxTokens)
	}
	if !strings.Contains(reqs[0].Messages[0].Content, "TRANSCRIPT:") {
		t.Errorf("user message missing transcript block")
	}
}

func TestSynthesizeTooShort(t *testing.T) {
	mock := llm.NewMockProvider("test-model")
	s := NewSynthesizer(mock, DefaultConfig())

	_, _, err := s.Synthesize(context.Background(), "way too short")
	if !errors.Is(err, ErrTranscriptTooShort) {
		t.Fatalf("Synthesize() error = %v, want ErrTranscriptTooShort", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestSynthesizeMalformedPreservesRaw(t *testing.T) {
	mock := llm.NewMockProvider("test-model")
	mock.EnqueueError(&llm.ErrInvalidResponse{
		Content: []byte(`{"summary": "only a summary"}`),
		Err:     errors.New("missing required fields"),
	})

	s := NewSynthesizer(mock, DefaultConfig())

	_, _, err := s.Synthesize(context.Background(), longTranscript())
	var malformed *MalformedNotesError
	if !errors.As(err, &malformed) {
		t.Fatalf("Synthesize() error = %v, want *MalformedNotesError", err)
	}
	if !strings.Contains(malformed.Raw, "only a summary") {
		t.Errorf("raw response not preserved: %q", malformed.Raw)
	}
}

func TestTopicNames(t *testing.T) {
	n := &StudyNotes{Topics: []Topic{{Name: "A"}, {Name: "B"}}}
	got := n.TopicNames()
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("TopicNames() = %v", got)
	}
}

func TestFormatMarkdown(t *testing.T) {
	n := &StudyNotes{
		Summary:     "Overview.",
		KeyConcepts: []string{"Concept A", "Concept B"},
		Topics: []Topic{
			{Name: "Topic One", Description: "First theme", Keywords: []string{"k1", "k2"}},
			{Name: "Topic Two", Description: "Second theme"},
		},
		DetailedNotes: "## Section\n- point",
	}

	md := FormatMarkdown(n)

	for _, want := range []string{
		"# Lecture Notes",
		"## Summary\nOverview.",
		"- Concept A",
		"### 1. Topic One",
		"**Keywords:** k1, k2",
		"### 2. Topic Two",
		"## Detailed Notes",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "Topic Two\nSecond theme\n**Keywords:**") {
		t.Errorf("keywords line rendered for topic without keywords")
	}
}
