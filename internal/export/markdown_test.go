package export

import (
	"strings"
	"testing"
	"time"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/cache"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/notes"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"
)

func guideEntry() *cache.Entry {
	return &cache.Entry{
		VideoID:   "dQw4w9WgXcQ",
		Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Notes: &notes.StudyNotes{
			Summary:       "A lecture summary.",
			KeyConcepts:   []string{"concept"},
			Topics:        []notes.Topic{{Name: "Topic A", Description: "desc"}},
			DetailedNotes: "## Details",
		},
		Questions: []questionbank.Question{
			{
				Text:          "Hard one?",
				Options:       []string{"w", "x", "y", "z"},
				CorrectAnswer: 3,
				Explanation:   "z is right",
				Topic:         "Topic A",
				Difficulty:    questionbank.Hard,
			},
			{
				Text:          "Easy one?",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: 0,
				Explanation:   "a is right",
				Topic:         "Topic A",
				Difficulty:    questionbank.Easy,
			},
		},
	}
}

func TestStudyGuideNotesOnly(t *testing.T) {
	var sb strings.Builder
	if err := StudyGuide(&sb, guideEntry(), Options{}); err != nil {
		t.Fatalf("StudyGuide() error = %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "# Lecture Notes") {
		t.Errorf("missing notes header")
	}
	if strings.Contains(out, "# Question Bank") {
		t.Errorf("questions included without IncludeQuestions")
	}
	if !strings.Contains(out, "dQw4w9WgXcQ") || !strings.Contains(out, "2026-03-01") {
		t.Errorf("missing footer metadata:\n%s", out)
	}
}

func TestStudyGuideWithQuestionsAndAnswers(t *testing.T) {
	var sb strings.Builder
	err := StudyGuide(&sb, guideEntry(), Options{IncludeQuestions: true, IncludeAnswers: true})
	if err != nil {
		t.Fatalf("StudyGuide() error = %v", err)
	}

	out := sb.String()
	easyIdx := strings.Index(out, "## Easy")
	hardIdx := strings.Index(out, "## Hard")
	if easyIdx < 0 || hardIdx < 0 {
		t.Fatalf("missing tier sections:\n%s", out)
	}
	if easyIdx > hardIdx {
		t.Errorf("easy section should precede hard")
	}
	if !strings.Contains(out, "**Answer:** D) z. z is right") {
		t.Errorf("missing answer key:\n%s", out)
	}
}

func TestStudyGuideVideoTitle(t *testing.T) {
	entry := guideEntry()
	entry.Title = "Concurrency Lecture 3"
	entry.Author = "Some Channel"

	var sb strings.Builder
	if err := StudyGuide(&sb, entry, Options{}); err != nil {
		t.Fatalf("StudyGuide() error = %v", err)
	}

	out := sb.String()
	if !strings.HasPrefix(out, "# Concurrency Lecture 3\n") {
		t.Errorf("guide does not open with the video title:\n%s", out)
	}
	if !strings.Contains(out, "*Some Channel*") {
		t.Errorf("missing channel line")
	}
}

func TestStudyGuideNoNotes(t *testing.T) {
	entry := guideEntry()
	entry.Notes = nil
	if err := StudyGuide(&strings.Builder{}, entry, Options{}); err == nil {
		t.Fatalf("StudyGuide() = nil error, want failure without notes")
	}
}
