package domain

import (
	"errors"
	"fmt"
	"time"
)

// Account errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateIdentity = errors.New("account with this identity already exists")
	ErrUserDeactivated   = errors.New("account has been deactivated")
	ErrWrongProvider     = errors.New("account uses a different sign-in provider")
	ErrIdentityConflict  = errors.New("email is bound to a different federated identity")
)

// Contact errors
var (
	ErrMessageNotFound      = errors.New("contact message not found")
	ErrInvalidContactStatus = errors.New("invalid contact message status")
)

// OTP errors
var (
	ErrOTPNotFound     = errors.New("no otp on record")
	ErrOTPExpired      = errors.New("otp has expired")
	ErrOTPInvalid      = errors.New("invalid otp code")
	ErrTooManyAttempts = errors.New("too many failed attempts")
	ErrOTPResendLimit  = errors.New("otp resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Boundary errors
var (
	ErrUnauthorized      = errors.New("unauthorized access")
	ErrDependencyFailure = errors.New("upstream dependency unavailable")
)

// LockedError reports a lockout together with the remaining lock duration.
// errors.Is(err, ErrTooManyAttempts) holds for it.
type LockedError struct {
	Flow             OTPFlow
	Until            time.Time
	RemainingMinutes int
}

// NewLockedError builds a LockedError from the credential's lock deadline.
func NewLockedError(flow OTPFlow, until time.Time, now time.Time) *LockedError {
	cred := OTPCredential{LockedUntil: &until}
	return &LockedError{
		Flow:             flow,
		Until:            until,
		RemainingMinutes: cred.RemainingLockMinutes(now),
	}
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("too many failed %s attempts, try again in %d minutes", e.Flow.Label(), e.RemainingMinutes)
}

func (e *LockedError) Is(target error) bool {
	return target == ErrTooManyAttempts
}
