package service

import (
	"context"
	"os"

	"quizforge/internal/domain"

	"go.uber.org/zap"
)

// DocumentService turns uploaded files into plain text
type DocumentService interface {
	// ExtractUploadedPDF extracts the text of the PDF stored at path. The file
	// is removed before returning, whether extraction succeeded or not.
	ExtractUploadedPDF(ctx context.Context, path string) (string, error)
}

type documentService struct {
	extractor domain.TextExtractor
	logger    *zap.Logger
}

// NewDocumentService creates a new instance of documentService
func NewDocumentService(extractor domain.TextExtractor, logger *zap.Logger) DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &documentService{
		extractor: extractor,
		logger:    logger,
	}
}

func (s *documentService) ExtractUploadedPDF(ctx context.Context, path string) (string, error) {
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove uploaded file", zap.String("path", path), zap.Error(err))
		}
	}()

	text, err := s.extractor.ExtractText(ctx, path)
	if err != nil {
		s.logger.Error("PDF extraction failed", zap.String("path", path), zap.Error(err))
		return "", err
	}
	return text, nil
}
