package service

import (
	"strings"

	"quizforge/internal/domain"
)

// Score thresholds driving adaptive difficulty
const (
	easyBelowScore = 60
	hardAboveScore = 90
)

type feedbackBand struct {
	minScore   float64
	feedback   string
	suggestion string
}

// Ordered from the highest band down; the last band catches everything.
var feedbackBands = []feedbackBand{
	{90, "Excellent work! You've mastered this material.", "Consider trying a harder difficulty level."},
	{70, "Good job! You have a solid understanding.", "Review the areas you missed and try again."},
	{50, "You're getting there! Keep studying.", "Consider reviewing the material again or trying an easier difficulty."},
	{0, "Don't worry, this is part of learning!", "Try reviewing the summary again and attempt an easier quiz."},
}

// CheckAnswers grades a quiz attempt. Answers match when they are equal
// after trimming whitespace and ignoring case.
func CheckAnswers(userAnswers, correctAnswers []string) (*domain.AnswerCheckResult, error) {
	if len(userAnswers) != len(correctAnswers) {
		return nil, domain.NewAnswerCountMismatchError(len(userAnswers), len(correctAnswers))
	}
	if len(correctAnswers) == 0 {
		return nil, domain.NewValidationError("at least one answer is required")
	}

	correct := 0
	for i := range correctAnswers {
		if normalizeAnswer(userAnswers[i]) == normalizeAnswer(correctAnswers[i]) {
			correct++
		}
	}

	total := len(correctAnswers)
	score := float64(correct) / float64(total) * 100

	band := feedbackBands[len(feedbackBands)-1]
	for _, b := range feedbackBands {
		if score >= b.minScore {
			band = b
			break
		}
	}

	return &domain.AnswerCheckResult{
		Score:        score,
		CorrectCount: correct,
		Total:        total,
		Feedback:     band.feedback,
		Suggestion:   band.suggestion,
		Passed:       score >= domain.PassingScore,
	}, nil
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AdjustDifficulty picks the quiz difficulty from the previous score: below
// 60 forces easy, above 90 forces hard, anything else keeps the request.
func AdjustDifficulty(requested domain.Difficulty, previousScore *int) domain.Difficulty {
	if previousScore == nil {
		return requested
	}
	switch {
	case *previousScore < easyBelowScore:
		return domain.DifficultyEasy
	case *previousScore > hardAboveScore:
		return domain.DifficultyHard
	default:
		return requested
	}
}
