package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/aryan1752/GovBridge-AI/internal/http/handlers"
	"github.com/aryan1752/GovBridge-AI/internal/http/middleware"
)

// BuildRouter wires the HTTP surface. Everything under /api except the auth
// entry points requires a valid token plus a live account; admin routes
// additionally pass the casbin role policy.
func BuildRouter(
	ah *handlers.AuthHandlers,
	ch *handlers.ContactHandlers,
	bh *handlers.ChatHandlers,
	ph *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/google", ah.GoogleAuth)
	auth.POST("/send-otp", ah.SendOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)

	authed := api.Group("/").Use(jwtmw.WithJWT())
	authed.GET("/auth/me", ah.Me)
	authed.POST("/auth/logout", ah.Logout)
	authed.POST("/contact", ch.Submit)
	authed.GET("/contact/my-messages", ch.MyMessages)
	authed.POST("/chatbot", bh.Chat)

	adm := api.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/contact/all", ch.All)
	adm.GET("/contact/stats", ch.Stats)
	adm.PATCH("/contact/:id/status", ch.UpdateStatus)
	adm.POST("/contact/:id/reply", ch.Reply)
	adm.DELETE("/contact/:id", ch.Delete)

	policies := api.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	policies.GET("/policies", ph.List)
	policies.POST("/policies", ph.Add)
	policies.DELETE("/policies", ph.Remove)

	return r
}
