// Package export renders generated study material to shareable files.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/cache"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/notes"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"
)

// Options controls what the study guide includes.
type Options struct {
	// IncludeQuestions appends the full question bank after the notes.
	IncludeQuestions bool
	// IncludeAnswers prints the answer key under each question.
	IncludeAnswers bool
}

// StudyGuide writes a markdown study guide for one cached video.
func StudyGuide(w io.Writer, entry *cache.Entry, opts Options) error {
	if entry.Notes == nil {
		return fmt.Errorf("entry %s has no notes", entry.VideoID)
	}

	var b strings.Builder
	if entry.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", entry.Title)
		if entry.Author != "" {
			fmt.Fprintf(&b, "*%s*\n\n", entry.Author)
		}
	}
	b.WriteString(notes.FormatMarkdown(entry.Notes))

	if opts.IncludeQuestions && len(entry.Questions) > 0 {
		b.WriteString("\n---\n\n# Question Bank\n")
		writeQuestions(&b, entry.Questions, opts.IncludeAnswers)
	}

	fmt.Fprintf(&b, "\n---\n*Generated from video %s on %s*\n",
		entry.VideoID, entry.Timestamp.Format("2006-01-02"))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeQuestions(b *strings.Builder, questions []questionbank.Question, answers bool) {
	optionLabels := []string{"A", "B", "C", "D"}

	for _, tier := range questionbank.Tiers {
		first := true
		num := 0
		for _, q := range questions {
			if q.Difficulty != tier {
				continue
			}
			if first {
				fmt.Fprintf(b, "\n## %s\n", titleCase(string(tier)))
				first = false
			}
			num++
			fmt.Fprintf(b, "\n%d. %s *(%s)*\n", num, q.Text, q.Topic)
			for i, opt := range q.Options {
				fmt.Fprintf(b, "   - %s) %s\n", optionLabels[i], opt)
			}
			if answers {
				fmt.Fprintf(b, "\n   **Answer:** %s) %s. %s\n",
					optionLabels[q.CorrectAnswer], q.Options[q.CorrectAnswer], q.Explanation)
			}
		}
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
