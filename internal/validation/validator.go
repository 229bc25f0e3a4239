package validation

import (
	"path/filepath"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
)

// Bounds for requested item counts
const (
	MinItems = 1
	MaxItems = 50
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUploadFilename accepts only names ending in .pdf, in any case.
func (v *Validator) ValidateUploadFilename(filename string) error {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return domain.NewInvalidFileTypeError(filename)
	}
	return nil
}

// ValidateSummaryRequest validates the summary request and maps it to the domain
func (v *Validator) ValidateSummaryRequest(req dto.SummaryRequest) (domain.SummaryRequest, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	errors = append(errors, requireText("text_content", req.TextContent)...)
	summaryType, errs := parseChoice("summary_type", req.SummaryType, domain.ParseSummaryType, domain.SummaryTypes)
	errors = append(errors, errs...)

	return domain.SummaryRequest{
		Content: req.TextContent,
		Type:    summaryType,
		Subject: strings.TrimSpace(req.Subject),
	}, errors
}

// ValidateQuizRequest validates the quiz request and maps it to the domain.
// The requested difficulty is validated even when previous_score later
// overrides it.
func (v *Validator) ValidateQuizRequest(req dto.QuizRequest) (domain.QuizRequest, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	errors = append(errors, requireText("text_content", req.TextContent)...)
	errors = append(errors, checkCount("num_questions", req.NumQuestions)...)
	errors = append(errors, requireText("subject", req.Subject)...)
	difficulty, errs := parseChoice("difficulty", req.Difficulty, domain.ParseDifficulty, domain.Difficulties)
	errors = append(errors, errs...)

	if req.PreviousScore != nil && (*req.PreviousScore < 0 || *req.PreviousScore > 100) {
		errors = append(errors, domain.NewOutOfRangeError("previous_score", *req.PreviousScore, 0, 100))
	}

	return domain.QuizRequest{
		Content:      req.TextContent,
		NumQuestions: req.NumQuestions,
		Subject:      strings.TrimSpace(req.Subject),
		Difficulty:   difficulty,
	}, errors
}

// ValidateFlashcardRequest validates the flashcard request and maps it to the domain
func (v *Validator) ValidateFlashcardRequest(req dto.FlashcardRequest) (domain.FlashcardRequest, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	errors = append(errors, requireText("text_content", req.TextContent)...)
	errors = append(errors, checkCount("num_cards", req.NumCards)...)
	errors = append(errors, requireText("subject", req.Subject)...)
	cardType, errs := parseChoice("card_type", req.CardType, domain.ParseCardType, domain.CardTypes)
	errors = append(errors, errs...)

	return domain.FlashcardRequest{
		Content:  req.TextContent,
		NumCards: req.NumCards,
		Subject:  strings.TrimSpace(req.Subject),
		CardType: cardType,
	}, errors
}

// ValidateCheckAnswersRequest validates the answer arrays. Length equality is
// checked by the grader.
func (v *Validator) ValidateCheckAnswersRequest(req dto.CheckAnswersRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.UserAnswers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("user_answers"))
	}
	if len(req.CorrectAnswers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("correct_answers"))
	}

	return errors
}

// ValidateTopicsRequest validates the topic extraction request
func (v *Validator) ValidateTopicsRequest(req dto.TopicsRequest) domain.ValidationErrors {
	return requireText("text_content", req.TextContent)
}

// Helper functions for validation

func requireText(field, value string) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	return nil
}

func checkCount(field string, n int) domain.ValidationErrors {
	if n < MinItems || n > MaxItems {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, n, MinItems, MaxItems)}
	}
	return nil
}

// parseChoice validates an enumerated field against its allowed values.
func parseChoice[T ~string](field, value string, parse func(string) (T, error), allowed []T) (T, domain.ValidationErrors) {
	var zero T
	value = strings.TrimSpace(value)
	if value == "" {
		return zero, domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}

	parsed, err := parse(value)
	if err != nil {
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		return zero, domain.ValidationErrors{domain.NewInvalidChoiceError(field, value, names)}
	}
	return parsed, nil
}
