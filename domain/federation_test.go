package domain

import "testing"

func TestResolveFederation(t *testing.T) {
	claims := GoogleClaims{Subject: "google-sub-1", Email: "person@example.com", Name: "Person"}

	tests := []struct {
		name     string
		existing *User
		expected FederationDecision
	}{
		{
			name:     "no account creates",
			existing: nil,
			expected: FederationCreate,
		},
		{
			name: "email account links",
			existing: &User{
				Email:    "person@example.com",
				Provider: ProviderEmail,
			},
			expected: FederationLink,
		},
		{
			name: "matching google account logs in",
			existing: &User{
				Email:    "person@example.com",
				Provider: ProviderGoogle,
				GoogleID: "google-sub-1",
			},
			expected: FederationLogin,
		},
		{
			name: "different subject conflicts",
			existing: &User{
				Email:    "person@example.com",
				Provider: ProviderGoogle,
				GoogleID: "google-sub-other",
			},
			expected: FederationConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveFederation(tt.existing, claims); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
