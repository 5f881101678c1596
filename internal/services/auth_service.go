package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aryan1752/GovBridge-AI/domain"
	"github.com/aryan1752/GovBridge-AI/internal/infrastructure/auth"
	"github.com/aryan1752/GovBridge-AI/internal/infrastructure/notifications"
)

// AuthServiceImpl implements domain.AuthService. It owns the account
// security state machine: credential checks, the two OTP flows and their
// lockouts, federation resolution, and session issuance.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	notifySvc   domain.NotificationService
	verifier    domain.GoogleVerifier
	audit       domain.AuditLogger
	log         *logrus.Logger
	tokenTTL    time.Duration
	now         func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	notifySvc domain.NotificationService,
	verifier domain.GoogleVerifier,
	audit domain.AuditLogger,
	log *logrus.Logger,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		notifySvc:   notifySvc,
		verifier:    verifier,
		audit:       audit,
		log:         log,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

// Signup implements domain.AuthService. The account is created unverified
// and a verification OTP is issued immediately; email delivery failure does
// not roll back either state change.
func (s *AuthServiceImpl) Signup(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateIdentity
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if phone != "" {
		if _, err := s.userRepo.FindByPhone(ctx, phone); err == nil {
			return nil, domain.ErrDuplicateIdentity
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
		Role:         "user",
		Provider:     domain.ProviderEmail,
		IsActive:     true,
		IsVerified:   false,
	}

	code, err := s.otpSvc.Issue(ctx, user, domain.FlowVerification)
	if err != nil {
		return nil, fmt.Errorf("failed to issue OTP: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.UserRegisteredEvent, user.ID).WithEmail(email))
	s.deliverOTP(user, domain.FlowVerification, code)

	return user, nil
}

// Login implements domain.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.Provider != domain.ProviderEmail {
		return nil, domain.ErrWrongProvider
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent, user.ID).
			WithEmail(user.Email).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrUserDeactivated
	}

	return s.completeLogin(ctx, user)
}

// SendOTP implements domain.AuthService. While the verification flow is
// locked, requests are rejected without touching the attempt budget.
func (s *AuthServiceImpl) SendOTP(ctx context.Context, email string) error {
	user, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return err
	}

	now := s.now()
	if cred := user.OTP(domain.FlowVerification); cred.Locked(now) {
		return domain.NewLockedError(domain.FlowVerification, *cred.LockedUntil, now)
	}

	code, err := s.otpSvc.Issue(ctx, user, domain.FlowVerification)
	if err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.OTPIssuedEvent, user.ID).
		WithEmail(user.Email).WithFlow(domain.FlowVerification))
	s.deliverOTP(user, domain.FlowVerification, code)

	return nil
}

// VerifyOTP implements domain.AuthService. A successful verification marks
// the account verified and logs the user in.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	user, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.verifyFlow(ctx, user, domain.FlowVerification, code); err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.OTP(domain.FlowVerification).ClearOnSuccess()

	s.audit.LogEvent(domain.NewAuditEvent(domain.OTPVerifiedEvent, user.ID).
		WithEmail(user.Email).WithFlow(domain.FlowVerification))

	return s.completeLogin(ctx, user)
}

// ForgotPassword implements domain.AuthService. Callers mask ErrUserNotFound
// so the endpoint does not reveal whether an account exists.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.Provider != domain.ProviderEmail {
		return domain.ErrWrongProvider
	}

	now := s.now()
	if cred := user.OTP(domain.FlowReset); cred.Locked(now) {
		return domain.NewLockedError(domain.FlowReset, *cred.LockedUntil, now)
	}

	code, err := s.otpSvc.Issue(ctx, user, domain.FlowReset)
	if err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.OTPIssuedEvent, user.ID).
		WithEmail(user.Email).WithFlow(domain.FlowReset))
	s.deliverOTP(user, domain.FlowReset, code)

	return nil
}

// ResetPassword implements domain.AuthService.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.verifyFlow(ctx, user, domain.FlowReset, code); err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashedPassword
	user.OTP(domain.FlowReset).ClearOnSuccess()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.OTPVerifiedEvent, user.ID).
		WithEmail(user.Email).WithFlow(domain.FlowReset))

	return nil
}

// GoogleAuth implements domain.AuthService. The bool result reports whether
// a new account was created (signup) rather than logged in.
func (s *AuthServiceImpl) GoogleAuth(ctx context.Context, idToken string) (*domain.AuthResult, bool, error) {
	claims, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, false, err
	}

	email := domain.NormalizeEmail(claims.Email)
	existing, err := s.findFederated(ctx, email, claims.Subject)
	if err != nil {
		return nil, false, err
	}

	switch domain.ResolveFederation(existing, *claims) {
	case domain.FederationCreate:
		user, err := s.createFederated(ctx, email, claims)
		if err != nil {
			return nil, false, err
		}
		result, err := s.completeLogin(ctx, user)
		return result, true, err

	case domain.FederationLink:
		existing.GoogleID = claims.Subject
		existing.Provider = domain.ProviderGoogle
		existing.IsVerified = true
		s.audit.LogEvent(domain.NewAuditEvent(domain.FederationLinkEvent, existing.ID).WithEmail(existing.Email))
		result, err := s.completeLogin(ctx, existing)
		return result, false, err

	case domain.FederationConflict:
		s.audit.LogEvent(domain.NewAuditEvent(domain.FederationConflictEvent, existing.ID).
			WithEmail(existing.Email).WithError(domain.ErrIdentityConflict))
		return nil, false, domain.ErrIdentityConflict

	default: // FederationLogin
		result, err := s.completeLogin(ctx, existing)
		return result, false, err
	}
}

// GetProfile implements domain.AuthService.
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.reconcileLocks(ctx, user)
	return user, nil
}

// lookupByEmail loads an account and reconciles lapsed locks, the explicit
// cleanup required on every account-lookup path.
func (s *AuthServiceImpl) lookupByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	s.reconcileLocks(ctx, user)
	return user, nil
}

// reconcileLocks clears lapsed locks for both flows and persists the change.
// Persistence failure is tolerated: the in-memory state is already
// reconciled, so the current request still observes the unlock.
func (s *AuthServiceImpl) reconcileLocks(ctx context.Context, user *domain.User) {
	now := s.now()
	verificationUnlocked := user.Verification.ReconcileLock(now)
	resetUnlocked := user.Reset.ReconcileLock(now)
	if !verificationUnlocked && !resetUnlocked {
		return
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to persist lock reconciliation")
		return
	}
	s.audit.LogEvent(domain.NewAuditEvent(domain.AccountUnlockedEvent, user.ID).WithEmail(user.Email))
}

// verifyFlow applies the shared OTP verification contract for a flow:
// reject while locked without consuming budget, otherwise count every
// failure, and trip the lock at the attempt limit.
func (s *AuthServiceImpl) verifyFlow(ctx context.Context, user *domain.User, flow domain.OTPFlow, code string) error {
	now := s.now()
	cred := user.OTP(flow)

	if cred.Locked(now) {
		return domain.NewLockedError(flow, *cred.LockedUntil, now)
	}

	status := cred.Verify(code, now)
	if status == domain.OTPValid {
		return nil
	}

	locked := cred.RegisterFailure(now, flow.LockDuration())
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.OTPFailureEvent, user.ID).
		WithEmail(user.Email).WithFlow(flow).WithError(status.Err()))

	if locked {
		s.audit.LogEvent(domain.NewAuditEvent(domain.AccountLockedEvent, user.ID).
			WithEmail(user.Email).WithFlow(flow))
		return domain.NewLockedError(flow, *cred.LockedUntil, now)
	}
	return status.Err()
}

// completeLogin updates last login, persists the account and issues a
// session token.
func (s *AuthServiceImpl) completeLogin(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	now := s.now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginEvent, user.ID).WithEmail(user.Email))

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// findFederated looks up an account by email or by subject id; either match
// qualifies. nil means no account matched.
func (s *AuthServiceImpl) findFederated(ctx context.Context, email, subject string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		s.reconcileLocks(ctx, user)
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user, err = s.userRepo.FindByGoogleID(ctx, subject)
	if err == nil {
		s.reconcileLocks(ctx, user)
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return nil, nil
}

// createFederated creates a pre-verified account for a first-time federated
// identity. The password slot is filled with a random unusable credential.
func (s *AuthServiceImpl) createFederated(ctx context.Context, email string, claims *domain.GoogleClaims) (*domain.User, error) {
	randomPassword, err := auth.RandomPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder credential: %w", err)
	}
	hashedPassword, err := s.passwordSvc.Hash(randomPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder credential: %w", err)
	}

	name := claims.Name
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         "user",
		Provider:     domain.ProviderGoogle,
		GoogleID:     claims.Subject,
		IsActive:     true,
		IsVerified:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.FederationSignupEvent, user.ID).WithEmail(email))
	return user, nil
}

// deliverOTP sends the code by email, best-effort. The OTP is already
// persisted; a delivery failure leaves a valid code whose delivery is
// uncertain, which callers accept.
func (s *AuthServiceImpl) deliverOTP(user *domain.User, flow domain.OTPFlow, code string) {
	subject, body := notifications.BuildOTPEmail(flow, code)
	if err := s.notifySvc.SendEmail(user.Email, subject, body); err != nil {
		s.audit.LogEvent(domain.NewAuditEvent(domain.NotificationFailedEvent, user.ID).
			WithEmail(user.Email).WithFlow(flow).WithError(err))
	}

	if user.Phone == "" {
		return
	}
	sms := fmt.Sprintf("Your %s code is %s. It expires in %d minutes.",
		flow.Label(), code, int(domain.OTPTTL.Minutes()))
	if err := s.notifySvc.SendSMS(user.Phone, sms); err != nil {
		s.audit.LogEvent(domain.NewAuditEvent(domain.NotificationFailedEvent, user.ID).
			WithEmail(user.Email).WithFlow(flow).WithMetadata("channel", "sms").WithError(err))
	}
}
