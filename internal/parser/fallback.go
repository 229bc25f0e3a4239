package parser

import "quizforge/internal/domain"

// DefaultTopics is returned when topics cannot be obtained from the model.
var DefaultTopics = []string{"general"}

// FallbackSummary wraps the unparsed reply as the summary body.
func FallbackSummary(raw string) domain.Summary {
	return domain.Summary{
		Content: raw,
		Tags:    []string{"general", "summary"},
	}
}

// FallbackQuiz is the single placeholder question used when the reply could
// not be parsed.
func FallbackQuiz() domain.Quiz {
	return domain.Quiz{
		Questions: []domain.QuizQuestion{{
			Question:      "Based on the content provided, what was the main topic discussed?",
			Options:       []string{"Topic A", "Topic B", "Topic C", "Topic D"},
			CorrectAnswer: "Topic A",
			Explanation:   "This question requires manual review as AI parsing failed.",
		}},
	}
}

// FallbackFlashcards is the single placeholder card used when the reply
// could not be parsed.
func FallbackFlashcards(subject string) domain.FlashcardSet {
	return domain.FlashcardSet{
		Flashcards: []domain.Flashcard{{
			Front:    "Main topic",
			Back:     "Based on the content provided, this requires manual review as AI parsing failed.",
			Category: subject,
		}},
	}
}
