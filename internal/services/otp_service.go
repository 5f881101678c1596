package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// OTPServiceImpl implements domain.OTPService. Codes and lockout state live
// on the account record; Redis only backs the resend throttle, so a nil
// client simply disables throttling.
type OTPServiceImpl struct {
	redisClient *redis.Client
	config      OTPConfig
	now         func() time.Time
}

// OTPConfig carries the tunable OTP parameters. Lock durations are fixed
// per flow in the domain layer.
type OTPConfig struct {
	Length       int
	TTL          time.Duration
	ResendWindow time.Duration
}

// DefaultOTPConfig mirrors the domain constants.
func DefaultOTPConfig(resendWindow time.Duration) OTPConfig {
	return OTPConfig{
		Length:       domain.OTPLength,
		TTL:          domain.OTPTTL,
		ResendWindow: resendWindow,
	}
}

// NewOTPService creates a new OTP service.
func NewOTPService(redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		redisClient: redisClient,
		config:      config,
		now:         time.Now,
	}
}

// Issue implements domain.OTPService. It generates a fresh code and stamps
// the user's credential for the flow, overwriting any prior code and
// zeroing the failure counter. The caller persists the account and delivers
// the code; delivery failure does not roll back issuance.
func (s *OTPServiceImpl) Issue(ctx context.Context, user *domain.User, flow domain.OTPFlow) (string, error) {
	if canResend, waitTime, err := s.CanResend(ctx, user.Email, flow); err != nil {
		return "", err
	} else if !canResend {
		return "", fmt.Errorf("%w: wait %d seconds", domain.ErrOTPResendLimit, waitTime)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	user.OTP(flow).Issue(code, s.now(), s.config.TTL)

	if s.redisClient != nil && s.config.ResendWindow > 0 {
		key := s.resendKey(user.Email, flow)
		if err := s.redisClient.Set(ctx, key, 1, s.config.ResendWindow).Err(); err != nil {
			return "", fmt.Errorf("failed to set resend throttle: %w", err)
		}
	}

	return code, nil
}

// CanResend implements domain.OTPService with Redis-based throttling.
func (s *OTPServiceImpl) CanResend(ctx context.Context, email string, flow domain.OTPFlow) (bool, int64, error) {
	if s.redisClient == nil || s.config.ResendWindow <= 0 {
		return true, 0, nil
	}

	ttl, err := s.redisClient.TTL(ctx, s.resendKey(email, flow)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// TTL <= 0 means the key is absent or expired.
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, int64(ttl.Seconds()), nil
}

func (s *OTPServiceImpl) resendKey(email string, flow domain.OTPFlow) string {
	return fmt.Sprintf("otp:res:%s:%s", flow.Label(), domain.NormalizeEmail(email))
}

// generateSecureCode generates a cryptographically secure numeric code.
// Leading zeros are allowed.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
