package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/aryan1752/GovBridge-AI/domain"
)

func newTestOTPService(t *testing.T, resendWindow time.Duration) (*OTPServiceImpl, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewOTPService(client, DefaultOTPConfig(resendWindow)).(*OTPServiceImpl)
	return svc, mr
}

func TestOTPServiceImpl_Issue(t *testing.T) {
	svc, _ := newTestOTPService(t, time.Minute)
	user := &domain.User{Email: "person@example.com"}

	code, err := svc.Issue(context.Background(), user, domain.FlowVerification)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if len(code) != domain.OTPLength {
		t.Errorf("expected %d-digit code, got %q", domain.OTPLength, code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("expected numeric code, got %q", code)
		}
	}
	if user.Verification.Code != code {
		t.Errorf("expected code stamped on credential, got %q", user.Verification.Code)
	}
	if user.Verification.ExpiresAt == nil {
		t.Error("expected expiry stamped on credential")
	}
}

func TestOTPServiceImpl_IssueResetsCounter(t *testing.T) {
	svc, _ := newTestOTPService(t, 0)
	user := &domain.User{Email: "person@example.com"}
	user.Verification.FailedAttempts = 3

	if _, err := svc.Issue(context.Background(), user, domain.FlowVerification); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if user.Verification.FailedAttempts != 0 {
		t.Errorf("expected counter reset on issue, got %d", user.Verification.FailedAttempts)
	}
}

func TestOTPServiceImpl_ResendThrottle(t *testing.T) {
	svc, mr := newTestOTPService(t, time.Minute)
	user := &domain.User{Email: "person@example.com"}
	ctx := context.Background()

	if _, err := svc.Issue(ctx, user, domain.FlowVerification); err != nil {
		t.Fatalf("first issue: %v", err)
	}

	_, err := svc.Issue(ctx, user, domain.FlowVerification)
	if !errors.Is(err, domain.ErrOTPResendLimit) {
		t.Fatalf("expected resend limit error, got %v", err)
	}

	// The two flows throttle independently.
	if _, err := svc.Issue(ctx, user, domain.FlowReset); err != nil {
		t.Fatalf("reset flow should not share the throttle: %v", err)
	}

	mr.FastForward(time.Minute + time.Second)
	if _, err := svc.Issue(ctx, user, domain.FlowVerification); err != nil {
		t.Fatalf("issue after window: %v", err)
	}
}

func TestOTPServiceImpl_CanResendNormalizesEmail(t *testing.T) {
	svc, _ := newTestOTPService(t, time.Minute)
	ctx := context.Background()

	user := &domain.User{Email: "person@example.com"}
	if _, err := svc.Issue(ctx, user, domain.FlowVerification); err != nil {
		t.Fatalf("issue: %v", err)
	}

	ok, wait, err := svc.CanResend(ctx, "  Person@Example.COM ", domain.FlowVerification)
	if err != nil {
		t.Fatalf("can resend: %v", err)
	}
	if ok {
		t.Error("expected throttle to apply across email spellings")
	}
	if wait <= 0 {
		t.Errorf("expected positive wait, got %d", wait)
	}
}

func TestOTPServiceImpl_NilRedisDisablesThrottle(t *testing.T) {
	svc := NewOTPService(nil, DefaultOTPConfig(time.Minute)).(*OTPServiceImpl)
	user := &domain.User{Email: "person@example.com"}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Issue(ctx, user, domain.FlowVerification); err != nil {
			t.Fatalf("issue %d: %v", i, err)
		}
	}
}
