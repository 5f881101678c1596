package notifications

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// MailerConfig holds SMTP settings. An empty Host switches the service into
// log-only mode, matching how unconfigured environments behave.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// MailerService implements domain.NotificationService. Email goes out over
// SMTP; SMS is delegated to the Twilio sender when one is configured.
type MailerService struct {
	config MailerConfig
	sms    *TwilioSender
	log    *logrus.Logger
}

// NewMailerService creates the outbound notification service.
func NewMailerService(config MailerConfig, sms *TwilioSender, log *logrus.Logger) domain.NotificationService {
	return &MailerService{config: config, sms: sms, log: log}
}

// SendEmail implements domain.NotificationService.
func (m *MailerService) SendEmail(to, subject, body string) error {
	if m.config.Host == "" {
		m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("mock email")
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.config.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendSMS implements domain.NotificationService.
func (m *MailerService) SendSMS(to, message string) error {
	if m.sms == nil {
		m.log.WithField("to", to).Info("mock sms")
		return nil
	}
	return m.sms.Send(to, message)
}
