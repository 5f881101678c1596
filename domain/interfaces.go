package domain

import (
	"context"
	"time"
)

// UserRepository defines account data access operations. Lookups return
// ErrUserNotFound when no record matches; Create returns
// ErrDuplicateIdentity on a uniqueness collision.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// ContactRepository defines contact-message data access operations.
type ContactRepository interface {
	Add(ctx context.Context, msg *ContactMessage) error
	ListByUser(ctx context.Context, userID uint) ([]ContactMessage, error)
	List(ctx context.Context, filter ContactFilter) ([]ContactMessageView, int64, error)
	FindByID(ctx context.Context, id uint) (*ContactMessage, error)
	Stats(ctx context.Context) (*ContactStats, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Reply(ctx context.Context, id uint, reply string, adminID uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
}

// AuthService defines the authentication business logic.
type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	GoogleAuth(ctx context.Context, idToken string) (*AuthResult, bool, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
}

// OTPService generates attempt-limited secrets and enforces the resend
// window. It stamps the credential on the account; persisting the account
// and delivering the code stay with the caller.
type OTPService interface {
	Issue(ctx context.Context, user *User, flow OTPFlow) (string, error)
	CanResend(ctx context.Context, email string, flow OTPFlow) (bool, int64, error)
}

// ContactService defines the contact-inbox business logic.
type ContactService interface {
	Submit(ctx context.Context, user *User, subject, message string) (*ContactMessage, error)
	MyMessages(ctx context.Context, userID uint) ([]ContactMessage, error)
	All(ctx context.Context, filter ContactFilter) ([]ContactMessageView, int64, error)
	Stats(ctx context.Context) (*ContactStats, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Reply(ctx context.Context, id uint, reply string, adminID uint) error
	Delete(ctx context.Context, id uint) error
}

// ChatService proxies a conversation turn to the remote model. The remote is
// opaque; failures surface as ErrDependencyFailure.
type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations.
type TokenService interface {
	Generate(userID uint, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines outbound delivery channels. Delivery is
// best-effort relative to the primary state transition.
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, message string) error
}

// GoogleVerifier validates a Google ID token against the provider's
// introspection endpoint and fails closed.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleClaims, error)
}

// PolicyService defines authorization policy operations.
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// TokenClaims represents session token claims.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer abstracts the Casbin enforcer for testing.
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
