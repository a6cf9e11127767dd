package advice

import "github.com/abhisek/coursefit/internal/llm"

// maxPicks bounds the picks a response may contain.
const maxPicks = 3

// AdviceSchema is the structured output requested from the model.
var AdviceSchema = &llm.Schema{
	Name:        "course-advice",
	Description: "Counselor notes on a student's ranked university courses",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentences on where the student stands",
			},
			"picks": map[string]any{
				"type":     "array",
				"maxItems": maxPicks,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"courseId": map[string]any{
							"type":        "string",
							"description": "ID of one of the listed courses",
						},
						"rationale": map[string]any{
							"type":        "string",
							"description": "Why this course suits the student (1-2 sentences)",
						},
					},
					"required":             []any{"courseId", "rationale"},
					"additionalProperties": false,
				},
			},
			"nextSteps": map[string]any{
				"type":        "array",
				"description": "Concrete actions before applying",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required":             []any{"summary", "picks", "nextSteps"},
		"additionalProperties": false,
	},
}
