package service

import (
	"context"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockChatCompleter ---
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, msgs []domain.ChatMessage) (string, error) {
	args := m.Called(ctx, msgs)
	return args.String(0), args.Error(1)
}

// --- MockTextExtractor ---
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}
