package domain

import (
	"strings"
	"time"
)

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
)

// User represents an account in the system. It is the aggregate root for
// both OTP credential state and the contact-message inbox.
type User struct {
	ID           uint
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	Provider     AuthProvider
	GoogleID     string
	IsActive     bool
	IsVerified   bool
	LastLogin    *time.Time

	// One independent attempt-limited secret per flow.
	Verification OTPCredential
	Reset        OTPCredential

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail lowercases and trims an email address. Account lookups are
// case-insensitive; every path that touches the store goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// OTP returns the credential state for the given flow.
func (u *User) OTP(flow OTPFlow) *OTPCredential {
	if flow == FlowReset {
		return &u.Reset
	}
	return &u.Verification
}

// PublicUser is the only account shape serialized to external callers.
// It must never grow a hash, OTP, counter, or lock field.
type PublicUser struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	Role       string       `json:"role"`
	Provider   AuthProvider `json:"auth_provider"`
	IsVerified bool         `json:"is_verified"`
	LastLogin  *time.Time   `json:"last_login,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Public projects the account for external serialization.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		Provider:   u.Provider,
		IsVerified: u.IsVerified,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
}

// AuthResult represents a successful authentication outcome.
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// GoogleClaims is the identity assertion returned by Google's
// token-introspection endpoint, trusted verbatim after verification.
type GoogleClaims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// Contact message lifecycle states.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ValidContactStatus reports whether s is a known lifecycle state.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

// ContactMessage is append-only from the account holder's side; status and
// reply fields are mutated only by admins.
type ContactMessage struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	AdminReply string     `json:"admin_reply,omitempty"`
	RepliedAt  *time.Time `json:"replied_at,omitempty"`
	RepliedBy  *uint      `json:"replied_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ContactMessageView is a message joined with its owner, for the admin inbox.
type ContactMessageView struct {
	ContactMessage
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// ContactFilter narrows the admin inbox listing.
type ContactFilter struct {
	Status string
	Page   int
	Limit  int
}

// ContactStats counts messages per lifecycle state.
type ContactStats struct {
	New      int64 `json:"new"`
	Read     int64 `json:"read"`
	Replied  int64 `json:"replied"`
	Archived int64 `json:"archived"`
	Total    int64 `json:"total"`
}
