package mocks

import (
	"context"
	"time"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// MockContactRepository implements domain.ContactRepository interface for testing
type MockContactRepository struct {
	AddFunc          func(ctx context.Context, msg *domain.ContactMessage) error
	ListByUserFunc   func(ctx context.Context, userID uint) ([]domain.ContactMessage, error)
	ListFunc         func(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactMessageView, int64, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.ContactMessage, error)
	StatsFunc        func(ctx context.Context) (*domain.ContactStats, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status string) error
	ReplyFunc        func(ctx context.Context, id uint, reply string, adminID uint, at time.Time) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

// NewMockContactRepository creates a new MockContactRepository with default behaviors
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

// Add stores a new message
func (m *MockContactRepository) Add(ctx context.Context, msg *domain.ContactMessage) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, msg)
	}
	// Default behavior: success
	return nil
}

// ListByUser lists a user's messages
func (m *MockContactRepository) ListByUser(ctx context.Context, userID uint) ([]domain.ContactMessage, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: empty inbox
	return nil, nil
}

// List lists messages across users
func (m *MockContactRepository) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactMessageView, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty inbox
	return nil, 0, nil
}

// FindByID finds a message by id
func (m *MockContactRepository) FindByID(ctx context.Context, id uint) (*domain.ContactMessage, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrMessageNotFound
}

// Stats returns per-status counts
func (m *MockContactRepository) Stats(ctx context.Context) (*domain.ContactStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &domain.ContactStats{}, nil
}

// UpdateStatus changes a message's status
func (m *MockContactRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	// Default behavior: success
	return nil
}

// Reply records an admin reply
func (m *MockContactRepository) Reply(ctx context.Context, id uint, reply string, adminID uint, at time.Time) error {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, id, reply, adminID, at)
	}
	// Default behavior: success
	return nil
}

// Delete removes a message
func (m *MockContactRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ContactRepository = (*MockContactRepository)(nil)
