package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aryan1752/GovBridge-AI/internal/config"
	httpx "github.com/aryan1752/GovBridge-AI/internal/http"
	"github.com/aryan1752/GovBridge-AI/internal/http/handlers"
	"github.com/aryan1752/GovBridge-AI/internal/http/middleware"
)

// Run builds the container, seeds authorization policies and serves HTTP
// until the listener fails.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	contactH := handlers.NewContactHandlers(c.ContactSvc, c.AuthSvc)
	chatH := handlers.NewChatHandlers(c.ChatSvc)
	policyH := handlers.NewPolicyHandlers(c.PolicySvc)

	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.UserRepo)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(authH, contactH, chatH, policyH, jwtMW, casbinMW)

	seedPolicies(c)

	addr := ":" + cfg.Port
	c.Log.WithField("addr", addr).Info("listening")
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on an empty policy store.
func seedPolicies(c *Container) {
	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	c.Casbin.E.AddPolicy("role_admin", "/api/contact/*", "(GET|POST|PATCH|DELETE)")
	c.Casbin.E.AddPolicy("role_admin", "/api/admin/*", "(GET|POST|DELETE)")
	if err := c.Casbin.E.SavePolicy(); err != nil {
		c.Log.WithError(err).Warn("failed to persist seeded policies")
		return
	}
	c.Log.Info("casbin: seeded default policies")
}
