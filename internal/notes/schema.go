package notes

import "github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/llm"

// NotesSchema defines the JSON schema for structured notes responses.
var NotesSchema = &llm.Schema{
	Name:        "study-notes",
	Description: "Structured study notes synthesized from a lecture transcript",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "A 3-4 sentence overview of the entire lecture",
			},
			"key_concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "The 5-10 most important concepts or terms",
			},
			"topics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Topic name, used later to categorize quiz questions",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Brief description of this topic",
						},
						"keywords": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
						},
					},
					"required": []any{"name", "description"},
				},
				"description": "The 5-8 major topics covered by the lecture",
			},
			"detailed_notes": map[string]any{
				"type":        "string",
				"description": "Comprehensive notes in markdown with sections, subsections, and bullet points",
			},
		},
		"required": []any{"summary", "key_concepts", "topics", "detailed_notes"},
	},
}
