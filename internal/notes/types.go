// Package notes turns raw lecture transcripts into structured study notes.
package notes

import (
	"errors"
	"fmt"
)

// StudyNotes is the structured output of a synthesis run.
type StudyNotes struct {
	// Summary is a 3-4 sentence overview of the whole lecture.
	Summary string `json:"summary"`

	// KeyConcepts lists the 5-10 most important terms.
	KeyConcepts []string `json:"key_concepts"`

	// Topics are the major themes; quiz questions are tagged with these.
	Topics []Topic `json:"topics"`

	// DetailedNotes is the full markdown writeup.
	DetailedNotes string `json:"detailed_notes"`
}

// Topic is one major theme covered by the lecture.
type Topic struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
}

// TopicNames returns the topic names in document order.
func (n *StudyNotes) TopicNames() []string {
	names := make([]string, len(n.Topics))
	for i, t := range n.Topics {
		names[i] = t.Name
	}
	return names
}

// MinTranscriptChars is the shortest transcript worth sending to a model.
const MinTranscriptChars = 100

// ErrTranscriptTooShort is returned before any model call when the input
// cannot yield meaningful notes.
var ErrTranscriptTooShort = errors.New("transcript is too short to generate meaningful notes")

// MalformedNotesError reports model output that could not be decoded into
// StudyNotes. Raw preserves the response text so nothing is lost.
type MalformedNotesError struct {
	Raw string
	Err error
}

func (e *MalformedNotesError) Error() string {
	return fmt.Sprintf("failed to parse notes response: %v", e.Err)
}

func (e *MalformedNotesError) Unwrap() error {
	return e.Err
}
