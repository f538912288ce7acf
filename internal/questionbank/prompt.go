package questionbank

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/notes"
)

// maxNotesContext caps how much of the detailed notes goes into the
// prompt; summaries and topics carry the rest of the signal.
const maxNotesContext = 2000

const systemPrompt = `You are an expert quiz creator. You generate multiple-choice questions from lecture notes.

Rules:
- Each question has exactly 4 options with exactly one correct answer.
- correct_answer is the index (0-3) of the correct option.
- Explanations are clear and educational.
- Each question's topic must match one of the topic names from the notes.
- Spread questions across different topics.
- Distractors should reflect plausible misunderstandings, not random values.
- Respond with a JSON array only, no other text.`

var tierInstructions = map[Difficulty]string{
	Easy:   "Focus on basic definitions, facts, and direct recall from the lecture.",
	Medium: "Focus on understanding concepts and their relationships.",
	Hard:   "Focus on application, analysis, and critical thinking.",
}

// buildUserMessage assembles the generation request for one tier.
func buildUserMessage(n *notes.StudyNotes, tier Difficulty, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d multiple-choice questions based on these lecture notes.\n\n", count)

	b.WriteString("LECTURE SUMMARY:\n")
	b.WriteString(n.Summary)

	b.WriteString("\n\nKEY CONCEPTS:\n")
	b.WriteString(strings.Join(n.KeyConcepts, ", "))

	b.WriteString("\n\nTOPICS COVERED:\n")
	for _, t := range n.Topics {
		fmt.Fprintf(&b, "- %s: %s\n", t.Name, t.Description)
	}

	b.WriteString("\nDETAILED CONTENT:\n")
	b.WriteString(truncate(n.DetailedNotes, maxNotesContext))

	fmt.Fprintf(&b, "\n\nDIFFICULTY LEVEL: %s\n", strings.ToUpper(string(tier)))
	b.WriteString(tierInstructions[tier])
	fmt.Fprintf(&b, "\nTag every question with \"difficulty\": %q.", string(tier))

	return b.String()
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
