package interview

import "github.com/dev-hari-haran/Way-to-Industry/internal/llm"

// QuestionSetSchema defines the JSON schema for LLM interview question
// generation responses.
var QuestionSetSchema = &llm.Schema{
	Name:        "interview-questions",
	Description: "A mock interview question set: 3 multiple-choice and 2 coding questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"minItems":    QuestionsPerSession,
				"maxItems":    QuestionsPerSession,
				"description": "Exactly 5 questions: the first 3 of type MCQ, the last 2 of type CODE",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Unique question number, 1 through 5",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"MCQ", "CODE"},
							"description": "MCQ for multiple choice, CODE for a short coding challenge",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the candidate, plain text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for MCQ. Empty array for CODE.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "For MCQ: the exact text of the correct option. Empty for CODE.",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short nudge for CODE questions. Empty for MCQ.",
						},
					},
					"required":             []any{"id", "type", "question", "options", "correct_answer", "hint"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
