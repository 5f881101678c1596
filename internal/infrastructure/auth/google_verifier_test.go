package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryan1752/GovBridge-AI/domain"
)

func TestGoogleVerifier_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id_token") {
		case "good-token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"sub":"google-sub-1","email":"person@example.com","name":"Person"}`))
		case "no-subject":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"email":"person@example.com"}`))
		case "broken-body":
			w.Write([]byte(`{`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer server.Close()

	verifier := NewGoogleVerifier(server.URL)

	t.Run("valid token", func(t *testing.T) {
		claims, err := verifier.Verify(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "google-sub-1", claims.Subject)
		assert.Equal(t, "person@example.com", claims.Email)
		assert.Equal(t, "Person", claims.Name)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := verifier.Verify(context.Background(), "bad-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("missing subject fails closed", func(t *testing.T) {
		_, err := verifier.Verify(context.Background(), "no-subject")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("malformed body is a dependency failure", func(t *testing.T) {
		_, err := verifier.Verify(context.Background(), "broken-body")
		assert.ErrorIs(t, err, domain.ErrDependencyFailure)
	})

	t.Run("unreachable endpoint is a dependency failure", func(t *testing.T) {
		down := NewGoogleVerifier("http://127.0.0.1:1")
		_, err := down.Verify(context.Background(), "good-token")
		assert.ErrorIs(t, err, domain.ErrDependencyFailure)
	})
}
