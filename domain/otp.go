package domain

import (
	"time"
)

// OTPFlow selects one of the two independent OTP subsystems. Both share the
// same code format, TTL and attempt budget; only the lock duration differs.
type OTPFlow int

const (
	FlowVerification OTPFlow = iota
	FlowReset
)

// Shared OTP parameters.
const (
	OTPLength      = 6
	OTPTTL         = 10 * time.Minute
	OTPMaxAttempts = 5

	verificationLock = 15 * time.Minute
	resetLock        = 30 * time.Minute
)

// Label returns the flow name used in keys and log fields.
func (f OTPFlow) Label() string {
	if f == FlowReset {
		return "reset"
	}
	return "verification"
}

// LockDuration returns how long the flow stays locked after the attempt
// budget is exhausted.
func (f OTPFlow) LockDuration() time.Duration {
	if f == FlowReset {
		return resetLock
	}
	return verificationLock
}

// OTPStatus is the outcome of checking a supplied code against stored state.
type OTPStatus int

const (
	OTPValid OTPStatus = iota
	OTPNotFound
	OTPExpired
	OTPMismatch
)

// Err maps a failed status to its sentinel error. Callers treat all three
// failures identically for attempt counting but surface distinct messages.
func (s OTPStatus) Err() error {
	switch s {
	case OTPNotFound:
		return ErrOTPNotFound
	case OTPExpired:
		return ErrOTPExpired
	case OTPMismatch:
		return ErrOTPInvalid
	}
	return nil
}

// OTPCredential is an attempt-limited, time-boxed secret. The account embeds
// one per flow; all transitions go through the methods below so the two
// flows cannot drift apart semantically.
type OTPCredential struct {
	Code           string     `json:"-"`
	ExpiresAt      *time.Time `json:"-"`
	FailedAttempts int        `json:"-"`
	LockedUntil    *time.Time `json:"-"`
}

// Locked reports whether the flow is currently locked out.
func (c *OTPCredential) Locked(now time.Time) bool {
	return c.LockedUntil != nil && now.Before(*c.LockedUntil)
}

// RemainingLockMinutes returns the lock time left, rounded up to whole
// minutes. Zero when not locked.
func (c *OTPCredential) RemainingLockMinutes(now time.Time) int {
	if !c.Locked(now) {
		return 0
	}
	remaining := c.LockedUntil.Sub(now)
	minutes := int(remaining / time.Minute)
	if remaining%time.Minute != 0 {
		minutes++
	}
	return minutes
}

// Issue installs a fresh code, overwriting any prior one, and resets the
// failure counter for this flow only.
func (c *OTPCredential) Issue(code string, now time.Time, ttl time.Duration) {
	expiry := now.Add(ttl)
	c.Code = code
	c.ExpiresAt = &expiry
	c.FailedAttempts = 0
}

// Verify checks the supplied code against stored state. Exact string
// equality, no normalization. It does not mutate the credential; callers
// record the outcome via ClearOnSuccess or RegisterFailure.
func (c *OTPCredential) Verify(supplied string, now time.Time) OTPStatus {
	if c.Code == "" || c.ExpiresAt == nil {
		return OTPNotFound
	}
	if now.After(*c.ExpiresAt) {
		return OTPExpired
	}
	if c.Code != supplied {
		return OTPMismatch
	}
	return OTPValid
}

// ClearOnSuccess discards the secret and clears counter and lock after a
// successful verification.
func (c *OTPCredential) ClearOnSuccess() {
	c.Code = ""
	c.ExpiresAt = nil
	c.FailedAttempts = 0
	c.LockedUntil = nil
}

// RegisterFailure increments the failure counter. Reaching the attempt
// budget locks the flow for the given duration and discards the secret, so
// the locked-out code cannot be replayed after the lock lifts. Returns true
// when the lock was just triggered.
func (c *OTPCredential) RegisterFailure(now time.Time, lockFor time.Duration) bool {
	c.FailedAttempts++
	if c.FailedAttempts < OTPMaxAttempts {
		return false
	}
	until := now.Add(lockFor)
	c.LockedUntil = &until
	c.Code = ""
	c.ExpiresAt = nil
	return true
}

// ReconcileLock lazily clears a lapsed lock and resets the counter. Every
// account-lookup path must call this before evaluating lock state; it makes
// lock expiry observable without a background sweeper. Returns true when
// state changed and needs persisting.
func (c *OTPCredential) ReconcileLock(now time.Time) bool {
	if c.LockedUntil == nil || now.Before(*c.LockedUntil) {
		return false
	}
	c.LockedUntil = nil
	c.FailedAttempts = 0
	return true
}
