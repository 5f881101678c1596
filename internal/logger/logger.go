package logger

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// New creates the application logger with JSON output for structured
// ingestion. Unknown levels fall back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	return log
}

// AuditLogger writes domain audit events through logrus.
type AuditLogger struct {
	log *logrus.Logger
}

// NewAuditLogger wraps a logrus logger as a domain.AuditLogger.
func NewAuditLogger(log *logrus.Logger) *AuditLogger {
	return &AuditLogger{log: log}
}

// LogEvent implements domain.AuditLogger.
func (a *AuditLogger) LogEvent(event *domain.AuditEvent) {
	fields := logrus.Fields{
		"event_type": event.EventType,
		"success":    event.Success,
	}
	if event.UserID != 0 {
		fields["user_id"] = event.UserID
	}
	if event.Email != "" {
		fields["email"] = event.Email
	}
	if event.Flow != "" {
		fields["flow"] = event.Flow
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	entry := a.log.WithFields(fields)
	if !event.Success {
		if event.ErrorMsg != "" {
			entry = entry.WithField("error", event.ErrorMsg)
		}
		entry.Warn(string(event.EventType))
		return
	}
	entry.Info(string(event.EventType))
}

var _ domain.AuditLogger = (*AuditLogger)(nil)
