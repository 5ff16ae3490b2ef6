package content

import "github.com/junyong1111/cs-slack-bot/internal/llm"

// questionProperties is the shared shape of one generated question.
var questionProperties = map[string]any{
	"type": map[string]any{
		"type":        "string",
		"enum":        []any{"boolean", "choice", "free"},
		"description": "boolean for O/X, choice for 4-option multiple choice, free for short written answers",
	},
	"question": map[string]any{
		"type":        "string",
		"description": "The question prompt shown to the learner",
	},
	"options": map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Exactly 4 options for choice questions. Empty array otherwise.",
	},
	"answer": map[string]any{
		"type":        "string",
		"description": "The correct answer. Boolean: O or X. Choice: the text of the correct option. Free: a short reference answer.",
	},
	"level": map[string]any{
		"type":        "string",
		"enum":        []any{"beginner", "intermediate", "advanced", ""},
		"description": "The difficulty this question probes. Empty when not applicable.",
	},
	"topic": map[string]any{
		"type":        "string",
		"description": "The sub-concept this question covers",
	},
}

// ExplanationSchema is the response shape for topic explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "topic-explanation",
	Description: "A learner-level explanation of a CS topic with its key concept tags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "The explanation text, plain language with concrete examples",
			},
			"tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "5-7 key concept keywords, most fundamental first",
			},
		},
		"required":             []any{"explanation", "tags"},
		"additionalProperties": false,
	},
}

// QuestionListSchema is the response shape for level tests and quizzes.
var QuestionListSchema = &llm.Schema{
	Name:        "question-list",
	Description: "An ordered list of graded study questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"properties":           questionProperties,
					"required":             []any{"type", "question", "options", "answer", "level", "topic"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// SubtopicListSchema is the response shape for topic roadmaps.
var SubtopicListSchema = &llm.Schema{
	Name:        "subtopic-list",
	Description: "Sub-concepts of a CS topic in study-priority order",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subtopics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					},
					"required":             []any{"title", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"subtopics"},
		"additionalProperties": false,
	},
}

// InterviewSchema is the response shape for interview question sets.
// Each item carries either a basic or an advanced question; followups
// extend a basic question.
var InterviewSchema = &llm.Schema{
	Name:        "interview-questions",
	Description: "Mock interview questions with model answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"basic": map[string]any{
							"type":        "string",
							"description": "A core-concept question. Empty if this item is advanced.",
						},
						"advanced": map[string]any{
							"type":        "string",
							"description": "A hard applied question. Empty if this item is basic.",
						},
						"followup": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Deeper follow-up questions for a basic item. Empty array otherwise.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "A model answer summary",
						},
					},
					"required":             []any{"basic", "advanced", "followup", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
