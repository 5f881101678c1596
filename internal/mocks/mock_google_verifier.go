package mocks

import (
	"context"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// MockGoogleVerifier implements domain.GoogleVerifier interface for testing
type MockGoogleVerifier struct {
	VerifyFunc func(ctx context.Context, idToken string) (*domain.GoogleClaims, error)
}

// NewMockGoogleVerifier creates a new MockGoogleVerifier with default behaviors
func NewMockGoogleVerifier() *MockGoogleVerifier {
	return &MockGoogleVerifier{}
}

// Verify validates a Google ID token
func (m *MockGoogleVerifier) Verify(ctx context.Context, idToken string) (*domain.GoogleClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, idToken)
	}
	// Default behavior: reject, federation must be opted into per test
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.GoogleVerifier = (*MockGoogleVerifier)(nil)
