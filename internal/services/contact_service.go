package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aryan1752/GovBridge-AI/domain"
	"github.com/aryan1752/GovBridge-AI/internal/infrastructure/notifications"
)

// ContactServiceImpl implements domain.ContactService.
type ContactServiceImpl struct {
	contactRepo domain.ContactRepository
	userRepo    domain.UserRepository
	notifySvc   domain.NotificationService
	log         *logrus.Logger
	inboxEmail  string
	now         func() time.Time
}

// NewContactService creates a new contact service. inboxEmail is the site
// mailbox that receives a copy of each submission; empty disables the copy.
func NewContactService(
	contactRepo domain.ContactRepository,
	userRepo domain.UserRepository,
	notifySvc domain.NotificationService,
	log *logrus.Logger,
	inboxEmail string,
) domain.ContactService {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		userRepo:    userRepo,
		notifySvc:   notifySvc,
		log:         log,
		inboxEmail:  inboxEmail,
		now:         time.Now,
	}
}

// Submit stores a contact message and forwards a copy to the site inbox.
// Forwarding is best-effort; the stored message is the source of truth.
func (s *ContactServiceImpl) Submit(ctx context.Context, user *domain.User, subject, message string) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		UserID:  user.ID,
		Subject: subject,
		Message: message,
		Status:  domain.ContactStatusNew,
	}
	if err := s.contactRepo.Add(ctx, msg); err != nil {
		return nil, err
	}

	if s.inboxEmail != "" {
		emailSubject, body := notifications.BuildContactEmail(user.Name, user.Email, subject, message)
		if err := s.notifySvc.SendEmail(s.inboxEmail, emailSubject, body); err != nil {
			s.log.WithError(err).WithField("message_id", msg.ID).Warn("failed to forward contact message")
		}
	}

	return msg, nil
}

// MyMessages returns the caller's own messages, newest first.
func (s *ContactServiceImpl) MyMessages(ctx context.Context, userID uint) ([]domain.ContactMessage, error) {
	return s.contactRepo.ListByUser(ctx, userID)
}

// All returns a filtered page of messages with submitter details attached.
func (s *ContactServiceImpl) All(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactMessageView, int64, error) {
	return s.contactRepo.List(ctx, filter)
}

// Stats returns per-status message counts.
func (s *ContactServiceImpl) Stats(ctx context.Context) (*domain.ContactStats, error) {
	return s.contactRepo.Stats(ctx)
}

// UpdateStatus moves a message to a new workflow status.
func (s *ContactServiceImpl) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidContactStatus(status) {
		return domain.ErrInvalidContactStatus
	}
	return s.contactRepo.UpdateStatus(ctx, id, status)
}

// Reply records an admin reply and emails it to the submitter. The reply is
// persisted even when the email cannot be delivered.
func (s *ContactServiceImpl) Reply(ctx context.Context, id uint, reply string, adminID uint) error {
	msg, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.contactRepo.Reply(ctx, id, reply, adminID, s.now()); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, msg.UserID)
	if err != nil {
		s.log.WithError(err).WithField("message_id", id).Warn("failed to load submitter for reply email")
		return nil
	}

	emailSubject, body := notifications.BuildReplyEmail(msg.Subject, reply)
	if err := s.notifySvc.SendEmail(user.Email, emailSubject, body); err != nil {
		s.log.WithError(err).WithField("message_id", id).Warn("failed to send reply email")
	}
	return nil
}

// Delete removes a message.
func (s *ContactServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.contactRepo.Delete(ctx, id)
}
