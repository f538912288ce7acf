package questionbank

import "github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/llm"

var questionItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question prompt shown to the learner",
		},
		"options": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "string",
			},
			"description": "Exactly 4 answer options",
		},
		"correct_answer": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"maximum":     3,
			"description": "Index of the correct option",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the correct answer is correct",
		},
		"topic": map[string]any{
			"type":        "string",
			"description": "Topic name from the lecture notes",
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
	},
	"required": []any{"question", "options", "correct_answer", "explanation", "topic", "difficulty"},
}

// QuestionsSchema defines the JSON schema for question batch responses.
// Models occasionally return a bare object instead of a one-element
// array; both shapes validate and decodeBatch normalizes them.
var QuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A batch of multiple-choice questions derived from lecture notes",
	Definition: map[string]any{
		"anyOf": []any{
			map[string]any{
				"type":  "array",
				"items": questionItemSchema,
			},
			questionItemSchema,
		},
	},
}
