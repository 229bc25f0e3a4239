package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quizforge/internal/domain"
	"quizforge/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// userPrompt matches a message list whose user message contains fragment.
func userPrompt(fragment string) interface{} {
	return mock.MatchedBy(func(msgs []domain.ChatMessage) bool {
		return len(msgs) == 2 &&
			msgs[0].Role == domain.RoleSystem &&
			msgs[1].Role == domain.RoleUser &&
			strings.Contains(msgs[1].Content, fragment)
	})
}

func TestGenerateSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("parses model JSON", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, userPrompt("bullet-point summary")).
			Return(`<think>plan</think>{"content":"- Plants make sugar","tags":["biology","plants"]}`, nil).Once()

		svc := NewStudyService(llm, zap.NewNop())
		summary, err := svc.GenerateSummary(ctx, domain.SummaryRequest{
			Content: "Photosynthesis converts light into chemical energy.",
			Type:    domain.SummaryBulletPoints,
		})

		require.NoError(t, err)
		assert.Equal(t, "- Plants make sugar", summary.Content)
		assert.Equal(t, []string{"biology", "plants"}, summary.Tags)
		llm.AssertExpectations(t)
	})

	t.Run("falls back to raw reply", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, mock.Anything).Return("Plants make sugar from light.", nil).Once()
		before := testutil.ToFloat64(metrics.ParseFallbackTotal.WithLabelValues("summary"))

		svc := NewStudyService(llm, zap.NewNop())
		summary, err := svc.GenerateSummary(ctx, domain.SummaryRequest{Content: "text", Type: domain.SummaryShort})

		require.NoError(t, err)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.ParseFallbackTotal.WithLabelValues("summary")))
		assert.Equal(t, "Plants make sugar from light.", summary.Content)
		assert.Equal(t, []string{"general", "summary"}, summary.Tags)
	})

	t.Run("propagates LLM failure", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, mock.Anything).
			Return("", domain.NewLLMRequestError(errors.New("status 503"))).Once()

		svc := NewStudyService(llm, zap.NewNop())
		summary, err := svc.GenerateSummary(ctx, domain.SummaryRequest{Content: "text", Type: domain.SummaryShort})

		assert.Nil(t, summary)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeLLMRequest, domainErr.Code)
	})

	t.Run("rejects unknown type before calling the model", func(t *testing.T) {
		llm := new(MockChatCompleter)

		svc := NewStudyService(llm, nil)
		_, err := svc.GenerateSummary(ctx, domain.SummaryRequest{Content: "text", Type: "poem"})

		require.Error(t, err)
		llm.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	})
}

func TestGenerateQuiz(t *testing.T) {
	ctx := context.Background()
	reply := `Sure! {"questions":[
		{"question":"Q1","options":["A","B","C","D"],"correct_answer":"A","explanation":"e1"},
		{"question":"Q2","options":["A","B","C","D"],"correct_answer":"B","explanation":"e2"},
		{"question":"Q3","options":["A","B","C","D"],"correct_answer":"C","explanation":"e3"}
	]}`

	t.Run("clamps to requested count", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, userPrompt("with 2 multiple-choice questions")).Return(reply, nil).Once()

		svc := NewStudyService(llm, zap.NewNop())
		quiz, err := svc.GenerateQuiz(ctx, domain.QuizRequest{
			Content:      "text",
			NumQuestions: 2,
			Difficulty:   domain.DifficultyMedium,
		})

		require.NoError(t, err)
		require.Len(t, quiz.Questions, 2)
		assert.Equal(t, "Q1", quiz.Questions[0].Question)
		assert.Equal(t, "B", quiz.Questions[1].CorrectAnswer)
		llm.AssertExpectations(t)
	})

	t.Run("fallback quiz on unparseable reply", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, mock.Anything).Return("I cannot do that.", nil).Once()

		svc := NewStudyService(llm, zap.NewNop())
		quiz, err := svc.GenerateQuiz(ctx, domain.QuizRequest{Content: "text", NumQuestions: 5, Difficulty: domain.DifficultyEasy})

		require.NoError(t, err)
		require.Len(t, quiz.Questions, 1)
		assert.Equal(t, "Topic A", quiz.Questions[0].CorrectAnswer)
		assert.Len(t, quiz.Questions[0].Options, 4)
	})
}

func TestGenerateFlashcards(t *testing.T) {
	ctx := context.Background()

	t.Run("parses cards", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, mock.Anything).
			Return(`{"flashcards":[{"front":"ATP","back":"Energy currency","category":"biology"}]}`, nil).Once()

		svc := NewStudyService(llm, zap.NewNop())
		set, err := svc.GenerateFlashcards(ctx, domain.FlashcardRequest{
			Content:  "text",
			NumCards: 10,
			Subject:  "biology",
			CardType: domain.CardMixed,
		})

		require.NoError(t, err)
		require.Len(t, set.Flashcards, 1)
		assert.Equal(t, "ATP", set.Flashcards[0].Front)
	})

	t.Run("fallback card carries subject", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, mock.Anything).Return(`{"flashcards": "nope"}`, nil).Once()

		svc := NewStudyService(llm, zap.NewNop())
		set, err := svc.GenerateFlashcards(ctx, domain.FlashcardRequest{
			Content:  "text",
			NumCards: 3,
			Subject:  "chemistry",
			CardType: domain.CardFact,
		})

		require.NoError(t, err)
		require.Len(t, set.Flashcards, 1)
		assert.Equal(t, "Main topic", set.Flashcards[0].Front)
		assert.Equal(t, "chemistry", set.Flashcards[0].Category)
	})
}

func TestExtractTopics(t *testing.T) {
	ctx := context.Background()

	t.Run("splits and caps topics", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, userPrompt("Topics:")).Return("a, b, c, d, e, f, g, h, i, j", nil).Once()

		topics := NewStudyService(llm, zap.NewNop()).ExtractTopics(ctx, "text")
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, topics)
	})

	t.Run("defaults on LLM failure", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", ctx, mock.Anything).Return("", errors.New("boom")).Once()

		topics := NewStudyService(llm, zap.NewNop()).ExtractTopics(ctx, "text")
		assert.Equal(t, []string{"general"}, topics)
	})
}

func TestGenerateStudySet(t *testing.T) {
	ctx := context.Background()
	summaryReq := domain.SummaryRequest{Content: "text", Type: domain.SummaryShort}
	quizReq := domain.QuizRequest{Content: "text", NumQuestions: 1, Difficulty: domain.DifficultyHard}

	t.Run("returns both parts", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", mock.Anything, userPrompt("concise summary")).
			Return(`{"content":"Short","tags":["t"]}`, nil).Once()
		llm.On("Complete", mock.Anything, userPrompt("multiple-choice")).
			Return(`{"questions":[{"question":"Q","options":["A","B","C","D"],"correct_answer":"D","explanation":null}]}`, nil).Once()

		set, err := NewStudyService(llm, zap.NewNop()).GenerateStudySet(ctx, summaryReq, quizReq)

		require.NoError(t, err)
		assert.Equal(t, "Short", set.Summary.Content)
		require.Len(t, set.Quiz.Questions, 1)
		assert.Equal(t, "D", set.Quiz.Questions[0].CorrectAnswer)
		llm.AssertExpectations(t)
	})

	t.Run("fails when either part fails", func(t *testing.T) {
		llm := new(MockChatCompleter)
		llm.On("Complete", mock.Anything, userPrompt("concise summary")).
			Return(`{"content":"Short","tags":[]}`, nil).Maybe()
		llm.On("Complete", mock.Anything, userPrompt("multiple-choice")).
			Return("", domain.NewLLMRequestError(errors.New("timeout"))).Once()

		set, err := NewStudyService(llm, zap.NewNop()).GenerateStudySet(ctx, summaryReq, quizReq)

		assert.Nil(t, set)
		assert.Error(t, err)
	})
}
