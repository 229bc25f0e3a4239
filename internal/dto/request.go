package dto

// SummaryRequest is the body of POST /generate-summary
// @Description Request body for summary generation
type SummaryRequest struct {
	TextContent string `json:"text_content" form:"text_content"`
	SummaryType string `json:"summary_type" form:"summary_type"`
	Subject     string `json:"subject" form:"subject"`
}

// QuizRequest is the body of POST /generate-quiz
// @Description Request body for quiz generation
type QuizRequest struct {
	TextContent   string `json:"text_content" form:"text_content"`
	NumQuestions  int    `json:"num_questions" form:"num_questions"`
	Subject       string `json:"subject" form:"subject"`
	Difficulty    string `json:"difficulty" form:"difficulty"`
	PreviousScore *int   `json:"previous_score,omitempty" form:"previous_score"`
}

// FlashcardRequest is the body of POST /generate-flashcards
// @Description Request body for flashcard generation
type FlashcardRequest struct {
	TextContent string `json:"text_content" form:"text_content"`
	NumCards    int    `json:"num_cards" form:"num_cards"`
	Subject     string `json:"subject" form:"subject"`
	CardType    string `json:"card_type" form:"card_type"`
}

// CheckAnswersRequest is the body of POST /check-answers. In form bodies
// both fields are repeated keys.
// @Description Request body for answer checking
type CheckAnswersRequest struct {
	UserAnswers    []string `json:"user_answers" form:"user_answers"`
	CorrectAnswers []string `json:"correct_answers" form:"correct_answers"`
}

// TopicsRequest is the body of POST /extract-topics
type TopicsRequest struct {
	TextContent string `json:"text_content" form:"text_content"`
}

// StudySetRequest is the body of POST /generate-study-set
// @Description Request body for a combined summary and quiz
type StudySetRequest struct {
	TextContent   string `json:"text_content" form:"text_content"`
	SummaryType   string `json:"summary_type" form:"summary_type"`
	NumQuestions  int    `json:"num_questions" form:"num_questions"`
	Subject       string `json:"subject" form:"subject"`
	Difficulty    string `json:"difficulty" form:"difficulty"`
	PreviousScore *int   `json:"previous_score,omitempty" form:"previous_score"`
}

// SummaryPart extracts the summary half of the request.
func (r StudySetRequest) SummaryPart() SummaryRequest {
	return SummaryRequest{
		TextContent: r.TextContent,
		SummaryType: r.SummaryType,
		Subject:     r.Subject,
	}
}

// QuizPart extracts the quiz half of the request.
func (r StudySetRequest) QuizPart() QuizRequest {
	return QuizRequest{
		TextContent:   r.TextContent,
		NumQuestions:  r.NumQuestions,
		Subject:       r.Subject,
		Difficulty:    r.Difficulty,
		PreviousScore: r.PreviousScore,
	}
}
