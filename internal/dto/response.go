package dto

import (
	"quizforge/internal/domain"
	"quizforge/internal/util"
)

// MessageResponse is returned by GET /
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// UploadResponse represents the text extracted from an uploaded PDF
// @Description Extracted PDF text
type UploadResponse struct {
	Filename    string `json:"filename"`
	TextContent string `json:"text_content"`
	WordCount   int    `json:"word_count"`
}

// SummaryResponse represents a generated summary
// @Description Generated summary
type SummaryResponse struct {
	Summary     string   `json:"summary"`
	Tags        []string `json:"tags"`
	SummaryType string   `json:"summary_type"`
	WordCount   int      `json:"word_count"` // words in the summary, not the source
}

// QuizResponse represents a generated quiz
// @Description Generated quiz
type QuizResponse struct {
	Questions      []domain.QuizQuestion `json:"questions"`
	TotalQuestions int                   `json:"total_questions"`
	Difficulty     string                `json:"difficulty"` // difficulty actually used
	Subject        string                `json:"subject"`
	EstimatedTime  int                   `json:"estimated_time"` // minutes
}

// FlashcardResponse represents a generated flashcard set
// @Description Generated flashcards
type FlashcardResponse struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
	TotalCards int                `json:"total_cards"`
	Subject    string             `json:"subject"`
	CardType   string             `json:"card_type"`
}

// AnswerCheckResponse represents the grading of a quiz attempt
// @Description Answer check result
type AnswerCheckResponse struct {
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	Feedback       string  `json:"feedback"`
	Suggestion     string  `json:"suggestion"`
	Passed         bool    `json:"passed"`
}

// TopicsResponse lists the key topics of a text
type TopicsResponse struct {
	Topics []string `json:"topics"`
}

// StudySetResponse bundles a summary and a quiz for the same text
type StudySetResponse struct {
	Summary SummaryResponse `json:"summary"`
	Quiz    QuizResponse    `json:"quiz"`
}

// MinutesPerQuestion drives QuizResponse.EstimatedTime
const MinutesPerQuestion = 2

// NewSummaryResponse builds the public summary shape.
func NewSummaryResponse(summary *domain.Summary, summaryType domain.SummaryType) SummaryResponse {
	return SummaryResponse{
		Summary:     summary.Content,
		Tags:        summary.Tags,
		SummaryType: string(summaryType),
		WordCount:   util.WordCount(summary.Content),
	}
}

// NewQuizResponse builds the public quiz shape.
func NewQuizResponse(quiz *domain.Quiz, difficulty domain.Difficulty, subject string) QuizResponse {
	return QuizResponse{
		Questions:      quiz.Questions,
		TotalQuestions: len(quiz.Questions),
		Difficulty:     string(difficulty),
		Subject:        subject,
		EstimatedTime:  len(quiz.Questions) * MinutesPerQuestion,
	}
}

// NewAnswerCheckResponse builds the public grading shape.
func NewAnswerCheckResponse(res *domain.AnswerCheckResult) AnswerCheckResponse {
	return AnswerCheckResponse{
		Score:          res.Score,
		CorrectAnswers: res.CorrectCount,
		TotalQuestions: res.Total,
		Feedback:       res.Feedback,
		Suggestion:     res.Suggestion,
		Passed:         res.Passed,
	}
}
