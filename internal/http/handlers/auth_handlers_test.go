package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryan1752/GovBridge-AI/domain"
	"github.com/aryan1752/GovBridge-AI/internal/mocks"
)

func newAuthRouter(authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(authSvc)

	r := gin.New()
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/google", h.GoogleAuth)
	r.POST("/api/auth/verify-otp", h.VerifyOTP)
	r.POST("/api/auth/forgot-password", h.ForgotPassword)
	r.GET("/api/auth/me", func(c *gin.Context) {
		c.Set("user_id", uint(1))
		h.Me(c)
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_Signup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r := newAuthRouter(mocks.NewMockAuthService())
		w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
			"name": "Person", "email": "person@example.com", "password": "password123",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("binding failure", func(t *testing.T) {
		r := newAuthRouter(mocks.NewMockAuthService())
		w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
			"name": "Person", "email": "not-an-email", "password": "password123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		r := newAuthRouter(mocks.NewMockAuthService())
		w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
			"name": "Person", "email": "person@example.com", "password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate identity", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.SignupFunc = func(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
			return nil, domain.ErrDuplicateIdentity
		}
		r := newAuthRouter(svc)
		w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
			"name": "Person", "email": "person@example.com", "password": "password123",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandlers_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return &domain.AuthResult{User: &domain.User{ID: 1, Email: email}, Token: "tok", ExpiresIn: 3600}, nil
		}
		r := newAuthRouter(svc)
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
			"email": "person@example.com", "password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
		// Sensitive account state must never serialize.
		assert.NotContains(t, w.Body.String(), "password")
		assert.NotContains(t, w.Body.String(), "otp")
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrUserNotFound
		}
		r := newAuthRouter(svc)
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
			"email": "ghost@example.com", "password": "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrUserDeactivated
		}
		r := newAuthRouter(svc)
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
			"email": "person@example.com", "password": "password123",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	t.Run("invalid code", func(t *testing.T) {
		r := newAuthRouter(mocks.NewMockAuthService())
		w := doJSON(t, r, http.MethodPost, "/api/auth/verify-otp", gin.H{
			"email": "person@example.com", "code": "123456",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("locked returns 429 with remaining minutes", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.VerifyOTPFunc = func(ctx context.Context, email, code string) (*domain.AuthResult, error) {
			now := time.Now()
			return nil, domain.NewLockedError(domain.FlowVerification, now.Add(15*time.Minute), now)
		}
		r := newAuthRouter(svc)
		w := doJSON(t, r, http.MethodPost, "/api/auth/verify-otp", gin.H{
			"email": "person@example.com", "code": "123456",
		})

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), `"retry_after_mins":15`)
	})

	t.Run("code must be six digits", func(t *testing.T) {
		r := newAuthRouter(mocks.NewMockAuthService())
		w := doJSON(t, r, http.MethodPost, "/api/auth/verify-otp", gin.H{
			"email": "person@example.com", "code": "1234",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlers_ForgotPassword_MasksUnknownEmail(t *testing.T) {
	svc := mocks.NewMockAuthService()
	svc.ForgotPasswordFunc = func(ctx context.Context, email string) error {
		return domain.ErrUserNotFound
	}
	r := newAuthRouter(svc)
	w := doJSON(t, r, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": "ghost@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandlers_GoogleAuth(t *testing.T) {
	t.Run("existing account returns 200", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.GoogleAuthFunc = func(ctx context.Context, idToken string) (*domain.AuthResult, bool, error) {
			return &domain.AuthResult{User: &domain.User{ID: 1}, Token: "tok"}, false, nil
		}
		r := newAuthRouter(svc)
		w := doJSON(t, r, http.MethodPost, "/api/auth/google", gin.H{"id_token": "good"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("new account returns 201", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.GoogleAuthFunc = func(ctx context.Context, idToken string) (*domain.AuthResult, bool, error) {
			return &domain.AuthResult{User: &domain.User{ID: 1}, Token: "tok"}, true, nil
		}
		r := newAuthRouter(svc)
		w := doJSON(t, r, http.MethodPost, "/api/auth/google", gin.H{"id_token": "good"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("conflict returns 403", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.GoogleAuthFunc = func(ctx context.Context, idToken string) (*domain.AuthResult, bool, error) {
			return nil, false, domain.ErrIdentityConflict
		}
		r := newAuthRouter(svc)
		w := doJSON(t, r, http.MethodPost, "/api/auth/google", gin.H{"id_token": "good"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandlers_Me(t *testing.T) {
	svc := mocks.NewMockAuthService()
	svc.GetProfileFunc = func(ctx context.Context, userID uint) (*domain.User, error) {
		return &domain.User{ID: userID, Email: "person@example.com", PasswordHash: "$2a$10$secret"}, nil
	}
	r := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "person@example.com")
	assert.NotContains(t, w.Body.String(), "secret")
}
