package validation

import (
	"testing"

	"quizforge/internal/domain"
	"quizforge/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldCodes(errs domain.ValidationErrors) map[string]domain.ErrorCode {
	codes := make(map[string]domain.ErrorCode, len(errs))
	for _, e := range errs {
		codes[e.Field] = e.Code
	}
	return codes
}

func TestValidator_ValidateUploadFilename(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateUploadFilename("notes.pdf"))
	assert.NoError(t, v.ValidateUploadFilename("NOTES.PDF"))

	for _, name := range []string{"notes.docx", "notes", "pdf", "notes.pdf.txt"} {
		err := v.ValidateUploadFilename(name)
		require.Error(t, err, name)
		domainErr, ok := err.(*domain.DomainError)
		require.True(t, ok)
		assert.Equal(t, domain.CodeInvalidFileType, domainErr.Code)
		assert.Equal(t, "Only PDF files are allowed", domainErr.Message)
	}
}

func TestValidator_ValidateSummaryRequest(t *testing.T) {
	v := NewValidator()

	req, errs := v.ValidateSummaryRequest(dto.SummaryRequest{
		TextContent: "Cells divide.",
		SummaryType: "detailed",
		Subject:     " biology ",
	})
	assert.Empty(t, errs)
	assert.Equal(t, domain.SummaryDetailed, req.Type)
	assert.Equal(t, "biology", req.Subject)

	_, errs = v.ValidateSummaryRequest(dto.SummaryRequest{SummaryType: "poem"})
	codes := fieldCodes(errs)
	assert.Equal(t, domain.CodeMissingField, codes["text_content"])
	assert.Equal(t, domain.CodeInvalidFormat, codes["summary_type"])
	assert.Contains(t, errs.Error(), "short, bullet_points, detailed")
}

func TestValidator_ValidateQuizRequest(t *testing.T) {
	v := NewValidator()
	score := 120

	tests := []struct {
		name       string
		req        dto.QuizRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  dto.QuizRequest{TextContent: "t", NumQuestions: 5, Subject: "math", Difficulty: "hard"},
		},
		{
			name:       "missing everything",
			req:        dto.QuizRequest{},
			wantFields: []string{"text_content", "num_questions", "subject", "difficulty"},
		},
		{
			name:       "too many questions",
			req:        dto.QuizRequest{TextContent: "t", NumQuestions: 51, Subject: "math", Difficulty: "easy"},
			wantFields: []string{"num_questions"},
		},
		{
			name:       "unknown difficulty",
			req:        dto.QuizRequest{TextContent: "t", NumQuestions: 3, Subject: "math", Difficulty: "extreme"},
			wantFields: []string{"difficulty"},
		},
		{
			name:       "score out of range",
			req:        dto.QuizRequest{TextContent: "t", NumQuestions: 3, Subject: "math", Difficulty: "easy", PreviousScore: &score},
			wantFields: []string{"previous_score"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := v.ValidateQuizRequest(tt.req)
			codes := fieldCodes(errs)
			assert.Len(t, codes, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, codes, f)
			}
		})
	}
}

func TestValidator_ValidateFlashcardRequest(t *testing.T) {
	v := NewValidator()

	req, errs := v.ValidateFlashcardRequest(dto.FlashcardRequest{
		TextContent: "t", NumCards: 10, Subject: "history", CardType: "mixed",
	})
	assert.Empty(t, errs)
	assert.Equal(t, domain.CardMixed, req.CardType)
	assert.Equal(t, 10, req.NumCards)

	_, errs = v.ValidateFlashcardRequest(dto.FlashcardRequest{
		TextContent: "t", NumCards: 0, Subject: "history", CardType: "trivia",
	})
	codes := fieldCodes(errs)
	assert.Equal(t, domain.CodeOutOfRange, codes["num_cards"])
	assert.Equal(t, domain.CodeInvalidFormat, codes["card_type"])
}

func TestValidator_ValidateCheckAnswersRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateCheckAnswersRequest(dto.CheckAnswersRequest{
		UserAnswers: []string{"a"}, CorrectAnswers: []string{"a", "b"},
	}))

	codes := fieldCodes(v.ValidateCheckAnswersRequest(dto.CheckAnswersRequest{}))
	assert.Contains(t, codes, "user_answers")
	assert.Contains(t, codes, "correct_answers")
}

func TestValidator_ValidateTopicsRequest(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateTopicsRequest(dto.TopicsRequest{TextContent: "text"}))
	assert.Len(t, v.ValidateTopicsRequest(dto.TopicsRequest{TextContent: "   "}), 1)
}
