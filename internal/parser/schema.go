package parser

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Shapes the model is asked to produce. Only the envelope and the fields the
// API exposes are constrained; extra keys are ignored.
var (
	summarySchema = jsonschema.MustCompileString("summary.json", `{
		"type": "object",
		"required": ["content"],
		"properties": {
			"content": {"type": "string"},
			"tags": {"type": "array", "items": {"type": "string"}}
		}
	}`)

	quizSchema = jsonschema.MustCompileString("quiz.json", `{
		"type": "object",
		"required": ["questions"],
		"properties": {
			"questions": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["question", "options", "correct_answer"],
					"properties": {
						"question": {"type": "string"},
						"options": {"type": "array", "items": {"type": "string"}},
						"correct_answer": {"type": "string"},
						"explanation": {"type": ["string", "null"]}
					}
				}
			}
		}
	}`)

	flashcardSchema = jsonschema.MustCompileString("flashcards.json", `{
		"type": "object",
		"required": ["flashcards"],
		"properties": {
			"flashcards": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["front", "back"],
					"properties": {
						"front": {"type": "string"},
						"back": {"type": "string"},
						"category": {"type": ["string", "null"]}
					}
				}
			}
		}
	}`)
)
