package cache

import (
	"os"
	"testing"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/notes"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"
)

func testEntry() *Entry {
	return &Entry{
		VideoID:    "dQw4w9WgXcQ",
		Transcript: "a transcript",
		Notes: &notes.StudyNotes{
			Summary:     "summary",
			KeyConcepts: []string{"a", "b"},
			Topics:      []notes.Topic{{Name: "T1", Description: "d"}},
		},
		Questions: []questionbank.Question{
			{
				Text:          "q1",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: 1,
				Explanation:   "e",
				Topic:         "T1",
				Difficulty:    questionbank.Easy,
			},
		},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	entry := testEntry()
	if c.Exists(entry.VideoID) {
		t.Fatalf("Exists() = true before save")
	}

	if err := c.Save(entry); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !c.Exists(entry.VideoID) {
		t.Fatalf("Exists() = false after save")
	}
	if entry.Timestamp.IsZero() {
		t.Errorf("Save() did not stamp the entry")
	}

	got, err := c.Load(entry.VideoID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Transcript != entry.Transcript {
		t.Errorf("transcript = %q", got.Transcript)
	}
	if got.Notes.Summary != "summary" {
		t.Errorf("notes summary = %q", got.Notes.Summary)
	}
	if len(got.Questions) != 1 || got.Questions[0].Text != "q1" {
		t.Errorf("questions = %+v", got.Questions)
	}
}

func TestCacheLoadMissing(t *testing.T) {
	c, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Load("missing-vid"); !os.IsNotExist(err) {
		t.Fatalf("Load() error = %v, want not-exist", err)
	}
}

func TestCacheListAndRemove(t *testing.T) {
	c, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"aaaaaaaaaaa", "bbbbbbbbbbb"} {
		e := testEntry()
		e.VideoID = id
		if err := c.Save(e); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := c.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("List() = %v, want 2 entries", ids)
	}

	if err := c.Remove("aaaaaaaaaaa"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if c.Exists("aaaaaaaaaaa") {
		t.Errorf("entry still exists after Remove()")
	}
}

func TestDefaultDirEnvOverride(t *testing.T) {
	t.Setenv("LECTERN_CACHE_DIR", "/tmp/custom-cache")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/custom-cache" {
		t.Errorf("DefaultDir() = %q", dir)
	}
}
