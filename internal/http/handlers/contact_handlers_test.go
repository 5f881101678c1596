package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/aryan1752/GovBridge-AI/domain"
	"github.com/aryan1752/GovBridge-AI/internal/mocks"
)

func newContactRouter(contactSvc domain.ContactService, authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContactHandlers(contactSvc, authSvc)

	r := gin.New()
	asUser := func(c *gin.Context) { c.Set("user_id", uint(2)) }
	r.POST("/api/contact", asUser, h.Submit)
	r.GET("/api/contact/my-messages", asUser, h.MyMessages)
	r.GET("/api/contact/all", asUser, h.All)
	r.PATCH("/api/contact/:id/status", asUser, h.UpdateStatus)
	r.POST("/api/contact/:id/reply", asUser, h.Reply)
	return r
}

func TestContactHandlers_Submit(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.GetProfileFunc = func(ctx context.Context, userID uint) (*domain.User, error) {
		return &domain.User{ID: userID, Name: "Person", Email: "person@example.com"}, nil
	}
	r := newContactRouter(mocks.NewMockContactService(), authSvc)

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"subject": "Need help", "message": "Some question",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Need help")
}

func TestContactHandlers_SubmitValidation(t *testing.T) {
	r := newContactRouter(mocks.NewMockContactService(), mocks.NewMockAuthService())

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{"subject": "No message"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandlers_AllRejectsUnknownStatus(t *testing.T) {
	r := newContactRouter(mocks.NewMockContactService(), mocks.NewMockAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/contact/all?status=bogus", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandlers_UpdateStatus(t *testing.T) {
	t.Run("unknown message", func(t *testing.T) {
		contactSvc := mocks.NewMockContactService()
		contactSvc.UpdateStatusFunc = func(ctx context.Context, id uint, status string) error {
			return domain.ErrMessageNotFound
		}
		r := newContactRouter(contactSvc, mocks.NewMockAuthService())

		w := doJSON(t, r, http.MethodPatch, "/api/contact/99/status", gin.H{"status": "read"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		r := newContactRouter(mocks.NewMockContactService(), mocks.NewMockAuthService())
		w := doJSON(t, r, http.MethodPatch, "/api/contact/abc/status", gin.H{"status": "read"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactHandlers_ReplyUsesCallerAsAdmin(t *testing.T) {
	var gotAdmin uint
	contactSvc := mocks.NewMockContactService()
	contactSvc.ReplyFunc = func(ctx context.Context, id uint, reply string, adminID uint) error {
		gotAdmin = adminID
		return nil
	}
	r := newContactRouter(contactSvc, mocks.NewMockAuthService())

	w := doJSON(t, r, http.MethodPost, "/api/contact/5/reply", gin.H{"reply": "Answer"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), gotAdmin)
}
