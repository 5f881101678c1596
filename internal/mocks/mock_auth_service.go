package mocks

import (
	"context"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignupFunc         func(ctx context.Context, name, email, phone, password string) (*domain.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	SendOTPFunc        func(ctx context.Context, email string) error
	VerifyOTPFunc      func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, email, code, newPassword string) error
	GoogleAuthFunc     func(ctx context.Context, idToken string) (*domain.AuthResult, bool, error)
	GetProfileFunc     func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Signup registers a new user
func (m *MockAuthService) Signup(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, phone, password)
	}
	return &domain.User{ID: 1, Name: name, Email: email, Phone: phone, Role: "user"}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// SendOTP issues a verification code
func (m *MockAuthService) SendOTP(ctx context.Context, email string) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(ctx, email)
	}
	return nil
}

// VerifyOTP verifies a code and logs in
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	return nil, domain.ErrOTPInvalid
}

// ForgotPassword starts the reset flow
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

// ResetPassword completes the reset flow
func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	return nil
}

// GoogleAuth signs in with a federated identity
func (m *MockAuthService) GoogleAuth(ctx context.Context, idToken string) (*domain.AuthResult, bool, error) {
	if m.GoogleAuthFunc != nil {
		return m.GoogleAuthFunc(ctx, idToken)
	}
	return nil, false, domain.ErrTokenInvalid
}

// GetProfile returns a user's profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
