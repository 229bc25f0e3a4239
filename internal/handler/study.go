package handler

import (
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/service"
	"quizforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// StudyHandler handles study material generation and answer checking
type StudyHandler struct {
	study     service.StudyService
	validator *validation.Validator
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(study service.StudyService) *StudyHandler {
	return &StudyHandler{
		study:     study,
		validator: validation.NewValidator(),
	}
}

// bind parses a form, multipart or JSON body into out.
func bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewValidationError("Invalid request body: " + err.Error())
	}
	return nil
}

// GenerateSummary godoc
// @Summary Generate a summary
// @Description Summarizes text in the requested style
// @Tags study
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param text_content formData string true "Source text"
// @Param summary_type formData string true "short, bullet_points or detailed"
// @Param subject formData string false "Subject area"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-summary [post]
func (h *StudyHandler) GenerateSummary(c *fiber.Ctx) error {
	var req dto.SummaryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	summaryReq, errs := h.validator.ValidateSummaryRequest(req)
	if len(errs) > 0 {
		return errs
	}

	summary, err := h.study.GenerateSummary(c.UserContext(), summaryReq)
	if err != nil {
		return pipelineError("generating summary", err)
	}

	return c.JSON(dto.NewSummaryResponse(summary, summaryReq.Type))
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Builds a multiple-choice quiz. A previous score below 60 forces easy, above 90 forces hard.
// @Tags study
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param text_content formData string true "Source text"
// @Param num_questions formData int true "Number of questions"
// @Param subject formData string true "Subject area"
// @Param difficulty formData string true "easy, medium or hard"
// @Param previous_score formData int false "Score of the previous attempt"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-quiz [post]
func (h *StudyHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	quizReq, errs := h.validator.ValidateQuizRequest(req)
	if len(errs) > 0 {
		return errs
	}
	quizReq.Difficulty = service.AdjustDifficulty(quizReq.Difficulty, req.PreviousScore)

	quiz, err := h.study.GenerateQuiz(c.UserContext(), quizReq)
	if err != nil {
		return pipelineError("generating quiz", err)
	}

	return c.JSON(dto.NewQuizResponse(quiz, quizReq.Difficulty, quizReq.Subject))
}

// GenerateFlashcards godoc
// @Summary Generate flashcards
// @Tags study
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param text_content formData string true "Source text"
// @Param num_cards formData int true "Number of cards"
// @Param subject formData string true "Subject area"
// @Param card_type formData string true "definition, concept, fact or mixed"
// @Success 200 {object} dto.FlashcardResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-flashcards [post]
func (h *StudyHandler) GenerateFlashcards(c *fiber.Ctx) error {
	var req dto.FlashcardRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cardReq, errs := h.validator.ValidateFlashcardRequest(req)
	if len(errs) > 0 {
		return errs
	}

	set, err := h.study.GenerateFlashcards(c.UserContext(), cardReq)
	if err != nil {
		return pipelineError("generating flashcards", err)
	}

	return c.JSON(dto.FlashcardResponse{
		Flashcards: set.Flashcards,
		TotalCards: len(set.Flashcards),
		Subject:    cardReq.Subject,
		CardType:   string(cardReq.CardType),
	})
}

// CheckAnswers godoc
// @Summary Grade a quiz attempt
// @Description Compares answers pairwise, ignoring case and surrounding whitespace
// @Tags study
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param user_answers formData []string true "User answers" collectionFormat(multi)
// @Param correct_answers formData []string true "Correct answers" collectionFormat(multi)
// @Success 200 {object} dto.AnswerCheckResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /check-answers [post]
func (h *StudyHandler) CheckAnswers(c *fiber.Ctx) error {
	var req dto.CheckAnswersRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCheckAnswersRequest(req); len(errs) > 0 {
		return errs
	}

	result, err := service.CheckAnswers(req.UserAnswers, req.CorrectAnswers)
	if err != nil {
		return pipelineError("checking answers", err)
	}

	return c.JSON(dto.NewAnswerCheckResponse(result))
}

// ExtractTopics godoc
// @Summary Extract key topics
// @Description Returns up to 8 topics. Falls back to ["general"] when the model is unavailable.
// @Tags study
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param text_content formData string true "Source text"
// @Success 200 {object} dto.TopicsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /extract-topics [post]
func (h *StudyHandler) ExtractTopics(c *fiber.Ctx) error {
	var req dto.TopicsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateTopicsRequest(req); len(errs) > 0 {
		return errs
	}

	return c.JSON(dto.TopicsResponse{
		Topics: h.study.ExtractTopics(c.UserContext(), req.TextContent),
	})
}

// GenerateStudySet godoc
// @Summary Generate a summary and a quiz together
// @Tags study
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param text_content formData string true "Source text"
// @Param summary_type formData string true "short, bullet_points or detailed"
// @Param num_questions formData int true "Number of questions"
// @Param subject formData string true "Subject area"
// @Param difficulty formData string true "easy, medium or hard"
// @Param previous_score formData int false "Score of the previous attempt"
// @Success 200 {object} dto.StudySetResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-study-set [post]
func (h *StudyHandler) GenerateStudySet(c *fiber.Ctx) error {
	var req dto.StudySetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	summaryReq, errs := h.validator.ValidateSummaryRequest(req.SummaryPart())
	quizReq, quizErrs := h.validator.ValidateQuizRequest(req.QuizPart())
	errs = append(errs, dedupe(errs, quizErrs)...)
	if len(errs) > 0 {
		return errs
	}
	quizReq.Difficulty = service.AdjustDifficulty(quizReq.Difficulty, req.PreviousScore)

	set, err := h.study.GenerateStudySet(c.UserContext(), summaryReq, quizReq)
	if err != nil {
		return pipelineError("generating study set", err)
	}

	return c.JSON(dto.StudySetResponse{
		Summary: dto.NewSummaryResponse(set.Summary, summaryReq.Type),
		Quiz:    dto.NewQuizResponse(set.Quiz, quizReq.Difficulty, quizReq.Subject),
	})
}

// dedupe returns the errors in extra whose field is not already in seen.
func dedupe(seen, extra domain.ValidationErrors) domain.ValidationErrors {
	fields := make(map[string]struct{}, len(seen))
	for _, e := range seen {
		fields[e.Field] = struct{}{}
	}
	var out domain.ValidationErrors
	for _, e := range extra {
		if _, ok := fields[e.Field]; !ok {
			out = append(out, e)
		}
	}
	return out
}
