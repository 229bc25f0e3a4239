package document

import (
	"context"
	"fmt"
	"strings"

	"quizforge/internal/domain"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Extractor reads the text layer of PDF files on disk
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates a new Extractor
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// ExtractText concatenates the plain text of every page in page order and
// returns it trimmed. A document without a text layer yields "".
func (e *Extractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	// The PDF library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = domain.NewExtractionError(fmt.Errorf("malformed PDF: %v", r))
		}
	}()

	f, r, err := pdf.Open(path)
	if f != nil {
		defer f.Close()
	}
	if err != nil {
		return "", domain.NewExtractionError(err)
	}

	var sb strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", domain.NewExtractionError(err)
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", domain.NewExtractionError(fmt.Errorf("page %d: %w", i, err))
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}

	text = strings.TrimSpace(sb.String())
	e.logger.Debug("Extracted PDF text",
		zap.Int("pages", numPages),
		zap.Int("chars", len(text)))
	return text, nil
}

// Static assertion to ensure Extractor implements TextExtractor
var _ domain.TextExtractor = (*Extractor)(nil)
