package handler

import (
	"os"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/service"
	"quizforge/internal/util"
	"quizforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DocumentHandler handles PDF uploads
type DocumentHandler struct {
	documents service.DocumentService
	validator *validation.Validator
	uploadDir string
}

// NewDocumentHandler creates a new DocumentHandler instance. Uploads are
// staged in uploadDir, which must exist.
func NewDocumentHandler(documents service.DocumentService, uploadDir string) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		validator: validation.NewValidator(),
		uploadDir: uploadDir,
	}
}

// UploadPDF godoc
// @Summary Extract text from a PDF
// @Description Uploads a PDF and returns its text content with a word count
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /upload-pdf [post]
func (h *DocumentHandler) UploadPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}
	if err := h.validator.ValidateUploadFilename(file.Filename); err != nil {
		return err
	}

	path := util.TempFilePath(h.uploadDir, ".pdf")
	if err := c.SaveFile(file, path); err != nil {
		_ = os.Remove(path)
		return pipelineError("processing PDF", err)
	}

	text, err := h.documents.ExtractUploadedPDF(c.UserContext(), path)
	if err != nil {
		return pipelineError("processing PDF", err)
	}

	logger.Get().Info("PDF processed",
		zap.String("filename", file.Filename),
		zap.Int64("size", file.Size),
	)

	return c.JSON(dto.UploadResponse{
		Filename:    file.Filename,
		TextContent: text,
		WordCount:   util.WordCount(text),
	})
}
