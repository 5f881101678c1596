package mocks

import (
	"context"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// MockChatService implements domain.ChatService interface for testing
type MockChatService struct {
	ReplyFunc func(ctx context.Context, message string) (string, error)
}

// NewMockChatService creates a new MockChatService with default behaviors
func NewMockChatService() *MockChatService {
	return &MockChatService{}
}

// Reply returns the assistant's reply
func (m *MockChatService) Reply(ctx context.Context, message string) (string, error) {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, message)
	}
	// Default behavior: canned reply
	return "mock reply", nil
}

// Compile-time interface compliance verification
var _ domain.ChatService = (*MockChatService)(nil)
