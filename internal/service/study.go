package service

import (
	"context"

	"quizforge/internal/domain"
	"quizforge/internal/metrics"
	"quizforge/internal/parser"
	"quizforge/internal/prompt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StudyService generates study material from text through the LLM
type StudyService interface {
	GenerateSummary(ctx context.Context, req domain.SummaryRequest) (*domain.Summary, error)
	GenerateQuiz(ctx context.Context, req domain.QuizRequest) (*domain.Quiz, error)
	GenerateFlashcards(ctx context.Context, req domain.FlashcardRequest) (*domain.FlashcardSet, error)
	ExtractTopics(ctx context.Context, content string) []string
	GenerateStudySet(ctx context.Context, summaryReq domain.SummaryRequest, quizReq domain.QuizRequest) (*StudySet, error)
}

// StudySet bundles a summary and a quiz generated from the same content
type StudySet struct {
	Summary *domain.Summary
	Quiz    *domain.Quiz
}

// studyService implements StudyService
type studyService struct {
	llm    domain.ChatCompleter
	logger *zap.Logger
}

// NewStudyService creates a new instance of studyService
func NewStudyService(llm domain.ChatCompleter, logger *zap.Logger) StudyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &studyService{
		llm:    llm,
		logger: logger,
	}
}

// GenerateSummary implements StudyService
func (s *studyService) GenerateSummary(ctx context.Context, req domain.SummaryRequest) (*domain.Summary, error) {
	msgs, err := prompt.Summary(req)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	raw, err := s.llm.Complete(ctx, msgs)
	if err != nil {
		return nil, err
	}

	res := parser.ParseSummary(raw)
	s.logDegraded("summary", res.Degraded, res.Reason, raw)
	return &res.Value, nil
}

// GenerateQuiz implements StudyService
func (s *studyService) GenerateQuiz(ctx context.Context, req domain.QuizRequest) (*domain.Quiz, error) {
	msgs, err := prompt.Quiz(req)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	raw, err := s.llm.Complete(ctx, msgs)
	if err != nil {
		return nil, err
	}

	res := parser.ParseQuiz(raw, req.NumQuestions)
	s.logDegraded("quiz", res.Degraded, res.Reason, raw)
	return &res.Value, nil
}

// GenerateFlashcards implements StudyService
func (s *studyService) GenerateFlashcards(ctx context.Context, req domain.FlashcardRequest) (*domain.FlashcardSet, error) {
	msgs, err := prompt.Flashcards(req)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	raw, err := s.llm.Complete(ctx, msgs)
	if err != nil {
		return nil, err
	}

	res := parser.ParseFlashcards(raw, req.NumCards, req.Subject)
	s.logDegraded("flashcards", res.Degraded, res.Reason, raw)
	return &res.Value, nil
}

// ExtractTopics implements StudyService. It never fails: an LLM error
// yields parser.DefaultTopics.
func (s *studyService) ExtractTopics(ctx context.Context, content string) []string {
	raw, err := s.llm.Complete(ctx, prompt.Topics(content))
	if err != nil {
		s.logger.Warn("Topic extraction failed, using default topics", zap.Error(err))
		return append([]string(nil), parser.DefaultTopics...)
	}
	return parser.ParseTopics(raw)
}

// GenerateStudySet implements StudyService. The summary and quiz requests run
// concurrently; the first error cancels the other call.
func (s *studyService) GenerateStudySet(ctx context.Context, summaryReq domain.SummaryRequest, quizReq domain.QuizRequest) (*StudySet, error) {
	set := &StudySet{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.GenerateSummary(gctx, summaryReq)
		if err != nil {
			return err
		}
		set.Summary = summary
		return nil
	})
	g.Go(func() error {
		quiz, err := s.GenerateQuiz(gctx, quizReq)
		if err != nil {
			return err
		}
		set.Quiz = quiz
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *studyService) logDegraded(kind string, degraded bool, reason error, raw string) {
	if !degraded {
		return
	}
	metrics.ParseFallbackTotal.WithLabelValues(kind).Inc()
	s.logger.Warn("LLM reply could not be parsed, returning fallback payload",
		zap.String("kind", kind),
		zap.Error(reason),
		zap.String("raw_response", raw[:min(200, len(raw))]))
}
