package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// DefaultTokenInfoURL is Google's ID-token introspection endpoint.
const DefaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifierImpl implements domain.GoogleVerifier against the tokeninfo
// endpoint. The endpoint's response is trusted verbatim; any transport
// failure or missing subject id fails the federation attempt closed.
type GoogleVerifierImpl struct {
	endpoint string
	client   *http.Client
}

// NewGoogleVerifier creates a verifier. endpoint may be empty to use the
// production Google endpoint; tests point it at a local server.
func NewGoogleVerifier(endpoint string) domain.GoogleVerifier {
	if endpoint == "" {
		endpoint = DefaultTokenInfoURL
	}
	return &GoogleVerifierImpl{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify implements domain.GoogleVerifier.
func (g *GoogleVerifierImpl) Verify(ctx context.Context, idToken string) (*domain.GoogleClaims, error) {
	reqURL := g.endpoint + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDependencyFailure, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDependencyFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Google answers non-200 for invalid or expired ID tokens.
		return nil, domain.ErrTokenInvalid
	}

	var claims domain.GoogleClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDependencyFailure, err)
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &claims, nil
}
