package notifications

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aryan1752/GovBridge-AI/domain"
)

func TestBuildOTPEmail(t *testing.T) {
	t.Run("verification flow", func(t *testing.T) {
		subject, body := BuildOTPEmail(domain.FlowVerification, "042137")
		assert.Contains(t, subject, "Verify")
		assert.Contains(t, body, "042137")
		assert.Contains(t, body, "10 minutes")
	})

	t.Run("reset flow", func(t *testing.T) {
		subject, body := BuildOTPEmail(domain.FlowReset, "654321")
		assert.Contains(t, subject, "Reset")
		assert.Contains(t, body, "654321")
	})
}

func TestBuildContactEmail_EscapesUserContent(t *testing.T) {
	_, body := BuildContactEmail("Person", "person@example.com", "Hi", `<script>alert(1)</script>`)
	assert.False(t, strings.Contains(body, "<script>"), "user content must be escaped: %s", body)
}

func TestBuildReplyEmail(t *testing.T) {
	subject, body := BuildReplyEmail("Original subject", "Our answer")
	assert.Equal(t, "Re: Original subject", subject)
	assert.Contains(t, body, "Our answer")
}
