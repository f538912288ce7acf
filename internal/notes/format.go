package notes

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders notes as a readable markdown document.
func FormatMarkdown(n *StudyNotes) string {
	var b strings.Builder

	b.WriteString("# Lecture Notes\n\n")
	b.WriteString("## Summary\n")
	b.WriteString(n.Summary)
	b.WriteString("\n\n## Key Concepts\n")
	for _, c := range n.KeyConcepts {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	b.WriteString("\n## Topics Covered\n")
	for i, t := range n.Topics {
		fmt.Fprintf(&b, "\n### %d. %s\n", i+1, t.Name)
		b.WriteString(t.Description)
		b.WriteByte('\n')
		if len(t.Keywords) > 0 {
			fmt.Fprintf(&b, "**Keywords:** %s\n", strings.Join(t.Keywords, ", "))
		}
	}

	b.WriteString("\n---\n\n## Detailed Notes\n\n")
	b.WriteString(n.DetailedNotes)
	b.WriteByte('\n')

	return b.String()
}
