package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tempUpload(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	return path
}

func TestExtractUploadedPDF_RemovesFileOnSuccess(t *testing.T) {
	ctx := context.Background()
	path := tempUpload(t)

	extractor := new(MockTextExtractor)
	extractor.On("ExtractText", ctx, path).Return("Chapter 1", nil).Once()

	text, err := NewDocumentService(extractor, zap.NewNop()).ExtractUploadedPDF(ctx, path)

	require.NoError(t, err)
	assert.Equal(t, "Chapter 1", text)
	assert.NoFileExists(t, path)
	extractor.AssertExpectations(t)
}

func TestExtractUploadedPDF_RemovesFileOnFailure(t *testing.T) {
	ctx := context.Background()
	path := tempUpload(t)

	extractor := new(MockTextExtractor)
	extractor.On("ExtractText", ctx, path).
		Return("", domain.NewExtractionError(errors.New("malformed xref"))).Once()

	text, err := NewDocumentService(extractor, nil).ExtractUploadedPDF(ctx, path)

	assert.Empty(t, text)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeExtraction, domainErr.Code)
	assert.NoFileExists(t, path)
}
