package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Account lifecycle events
	UserRegisteredEvent   AuditEventType = "USER_REGISTERED"
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"

	// OTP events
	OTPIssuedEvent       AuditEventType = "OTP_ISSUED"
	OTPVerifiedEvent     AuditEventType = "OTP_VERIFIED"
	OTPFailureEvent      AuditEventType = "OTP_VERIFICATION_FAILED"
	AccountLockedEvent   AuditEventType = "ACCOUNT_LOCKED"
	AccountUnlockedEvent AuditEventType = "ACCOUNT_UNLOCKED"

	// Federation events
	FederationSignupEvent   AuditEventType = "FEDERATION_SIGNUP"
	FederationLinkEvent     AuditEventType = "FEDERATION_LINKED"
	FederationConflictEvent AuditEventType = "FEDERATION_CONFLICT"

	// Delivery events
	NotificationFailedEvent AuditEventType = "NOTIFICATION_FAILED"
)

// AuditEvent represents a security-relevant state transition.
type AuditEvent struct {
	EventType AuditEventType         `json:"event_type"`
	UserID    uint                   `json:"user_id,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Flow      string                 `json:"flow,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	ErrorMsg  string                 `json:"error_msg,omitempty"`
	Success   bool                   `json:"success"`
}

// AuditLogger records audit events. Delivery is best-effort; audit failures
// never abort the operation being audited.
type AuditLogger interface {
	LogEvent(event *AuditEvent)
}

// NewAuditEvent creates an audit event with common fields populated.
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError marks the event failed and records the cause.
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field.
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithFlow tags the event with an OTP flow label.
func (e *AuditEvent) WithFlow(flow OTPFlow) *AuditEvent {
	e.Flow = flow.Label()
	return e
}

// WithMetadata adds metadata to the event.
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}
