package domain

// FederationDecision is the explicit transition chosen when reconciling a
// verified third-party assertion against local account state. The provider
// switch is one-directional: email accounts can be upgraded to google, a
// federated account never downgrades back to email/password.
type FederationDecision int

const (
	// FederationCreate: no local account matched; create a pre-verified one.
	FederationCreate FederationDecision = iota
	// FederationLink: email/password account with no subject id; record the
	// subject id, switch provider to google, mark verified, then log in.
	FederationLink
	// FederationLogin: already linked with the same subject id.
	FederationLogin
	// FederationConflict: the account carries a different subject id.
	FederationConflict
)

// ResolveFederation enumerates the link-or-create cases for a Google
// assertion. existing is nil when neither email nor subject id matched.
func ResolveFederation(existing *User, claims GoogleClaims) FederationDecision {
	switch {
	case existing == nil:
		return FederationCreate
	case existing.GoogleID == "" && existing.Provider == ProviderEmail:
		return FederationLink
	case existing.GoogleID != "" && existing.GoogleID != claims.Subject:
		return FederationConflict
	default:
		return FederationLogin
	}
}
