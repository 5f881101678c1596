package mocks

import (
	"context"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// MockContactService implements domain.ContactService interface for testing
type MockContactService struct {
	SubmitFunc       func(ctx context.Context, user *domain.User, subject, message string) (*domain.ContactMessage, error)
	MyMessagesFunc   func(ctx context.Context, userID uint) ([]domain.ContactMessage, error)
	AllFunc          func(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactMessageView, int64, error)
	StatsFunc        func(ctx context.Context) (*domain.ContactStats, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status string) error
	ReplyFunc        func(ctx context.Context, id uint, reply string, adminID uint) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

// NewMockContactService creates a new MockContactService with default behaviors
func NewMockContactService() *MockContactService {
	return &MockContactService{}
}

// Submit stores a new message
func (m *MockContactService) Submit(ctx context.Context, user *domain.User, subject, message string) (*domain.ContactMessage, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, user, subject, message)
	}
	return &domain.ContactMessage{ID: 1, UserID: user.ID, Subject: subject, Message: message, Status: domain.ContactStatusNew}, nil
}

// MyMessages lists the caller's messages
func (m *MockContactService) MyMessages(ctx context.Context, userID uint) ([]domain.ContactMessage, error) {
	if m.MyMessagesFunc != nil {
		return m.MyMessagesFunc(ctx, userID)
	}
	return nil, nil
}

// All lists messages across users
func (m *MockContactService) All(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactMessageView, int64, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx, filter)
	}
	return nil, 0, nil
}

// Stats returns per-status counts
func (m *MockContactService) Stats(ctx context.Context) (*domain.ContactStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &domain.ContactStats{}, nil
}

// UpdateStatus changes a message's status
func (m *MockContactService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

// Reply records an admin reply
func (m *MockContactService) Reply(ctx context.Context, id uint, reply string, adminID uint) error {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, id, reply, adminID)
	}
	return nil
}

// Delete removes a message
func (m *MockContactService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ContactService = (*MockContactService)(nil)
