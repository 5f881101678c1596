package mocks

import (
	"context"
	"time"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc     func(ctx context.Context, user *domain.User, flow domain.OTPFlow) (string, error)
	CanResendFunc func(ctx context.Context, email string, flow domain.OTPFlow) (bool, int64, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue stamps a fixed code on the account credential
func (m *MockOTPService) Issue(ctx context.Context, user *domain.User, flow domain.OTPFlow) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, user, flow)
	}
	// Default behavior: deterministic code with a real expiry
	user.OTP(flow).Issue("123456", time.Now(), domain.OTPTTL)
	return "123456", nil
}

// CanResend reports whether the resend window allows a fresh code
func (m *MockOTPService) CanResend(ctx context.Context, email string, flow domain.OTPFlow) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email, flow)
	}
	// Default behavior: no throttle
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
