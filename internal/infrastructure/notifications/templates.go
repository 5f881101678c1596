package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/aryan1752/GovBridge-AI/domain"
)

const otpEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">{{.Heading}}</h2>
  <p>{{.Intro}}</p>
  <div style="background: #f3f4f6; padding: 20px; text-align: center; font-size: 32px; font-weight: bold; letter-spacing: 5px; margin: 20px 0;">
    {{.Code}}
  </div>
  <p>This code will expire in {{.Minutes}} minutes.</p>
  <p style="color: #666; font-size: 12px;">{{.Footer}}</p>
</div>`

const contactEmailTemplate = `<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong><br>{{.Message}}</p>`

const replyEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">We replied to your message</h2>
  <p><strong>Your subject:</strong> {{.Subject}}</p>
  <p>{{.Reply}}</p>
</div>`

var (
	otpTmpl     = template.Must(template.New("otp").Parse(otpEmailTemplate))
	contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))
	replyTmpl   = template.Must(template.New("reply").Parse(replyEmailTemplate))
)

// BuildOTPEmail renders subject and body for an OTP delivery in the given
// flow.
func BuildOTPEmail(flow domain.OTPFlow, code string) (subject, body string) {
	data := struct {
		Heading string
		Intro   string
		Code    string
		Minutes int
		Footer  string
	}{
		Code:    code,
		Minutes: int(domain.OTPTTL.Minutes()),
	}

	if flow == domain.FlowReset {
		subject = "Reset Your NyayBharat Password"
		data.Heading = "Reset Your Password"
		data.Intro = "You requested to reset your password. Use this code:"
		data.Footer = "If you didn't request this, please secure your account immediately."
	} else {
		subject = "Verify Your NyayBharat Account"
		data.Heading = "Welcome to NyayBharat!"
		data.Intro = "Your verification code is:"
		data.Footer = "If you didn't request this code, please ignore this email."
	}

	var buf bytes.Buffer
	if err := otpTmpl.Execute(&buf, data); err != nil {
		// The template is static; a render failure means a programming error.
		return subject, fmt.Sprintf("Your code is %s", code)
	}
	return subject, buf.String()
}

// BuildContactEmail renders the notification sent to the site inbox when a
// user submits a contact message.
func BuildContactEmail(name, email, subject, message string) (mailSubject, body string) {
	mailSubject = fmt.Sprintf("New Contact Message: %s", subject)

	var buf bytes.Buffer
	data := struct{ Name, Email, Subject, Message string }{name, email, subject, message}
	if err := contactTmpl.Execute(&buf, data); err != nil {
		return mailSubject, message
	}
	return mailSubject, buf.String()
}

// BuildReplyEmail renders the notification sent to a user when an admin
// replies to their contact message.
func BuildReplyEmail(subject, reply string) (mailSubject, body string) {
	mailSubject = fmt.Sprintf("Re: %s", subject)

	var buf bytes.Buffer
	data := struct{ Subject, Reply string }{subject, reply}
	if err := replyTmpl.Execute(&buf, data); err != nil {
		return mailSubject, reply
	}
	return mailSubject, buf.String()
}
