package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Person@Example.COM", "person@example.com"},
		{"  person@example.com  ", "person@example.com"},
		{"person@example.com", "person@example.com"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.expected {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestUser_OTP(t *testing.T) {
	user := &User{}
	user.OTP(FlowVerification).Code = "111111"
	user.OTP(FlowReset).Code = "222222"

	if user.Verification.Code != "111111" {
		t.Errorf("expected verification code set, got %q", user.Verification.Code)
	}
	if user.Reset.Code != "222222" {
		t.Errorf("expected reset code set, got %q", user.Reset.Code)
	}
}

func TestUser_PublicOmitsSecrets(t *testing.T) {
	now := time.Now()
	expiry := now.Add(OTPTTL)
	user := &User{
		ID:           7,
		Name:         "Person",
		Email:        "person@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         "user",
		Provider:     ProviderEmail,
		IsVerified:   true,
		Verification: OTPCredential{Code: "123456", ExpiresAt: &expiry, FailedAttempts: 2},
		Reset:        OTPCredential{LockedUntil: &expiry},
	}

	payload, err := json.Marshal(user.Public())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(payload)
	for _, leaked := range []string{"secret", "123456", "password", "attempts", "locked"} {
		if strings.Contains(strings.ToLower(body), leaked) {
			t.Errorf("public payload leaks %q: %s", leaked, body)
		}
	}
	if !strings.Contains(body, `"email":"person@example.com"`) {
		t.Errorf("public payload missing email: %s", body)
	}
}
