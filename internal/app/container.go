package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/aryan1752/GovBridge-AI/domain"
	"github.com/aryan1752/GovBridge-AI/internal/config"
	"github.com/aryan1752/GovBridge-AI/internal/infrastructure/ai"
	"github.com/aryan1752/GovBridge-AI/internal/infrastructure/auth"
	"github.com/aryan1752/GovBridge-AI/internal/infrastructure/database"
	"github.com/aryan1752/GovBridge-AI/internal/infrastructure/notifications"
	"github.com/aryan1752/GovBridge-AI/internal/infrastructure/repositories"
	"github.com/aryan1752/GovBridge-AI/internal/logger"
	"github.com/aryan1752/GovBridge-AI/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService
	Log         *logrus.Logger

	// Repositories
	UserRepo    domain.UserRepository
	ContactRepo domain.ContactRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	GoogleVerifier  domain.GoogleVerifier
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	ContactSvc      domain.ContactService
	ChatSvc         domain.ChatService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Log:    logger.New(cfg.LogLevel),
	}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initRedis()
	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.ContactRepo = repositories.NewContactRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.GoogleVerifier = auth.NewGoogleVerifier("")

	sms := notifications.NewTwilioSender(c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioFrom)
	c.NotificationSvc = notifications.NewMailerService(notifications.MailerConfig{
		Host:     c.Config.SMTPHost,
		Port:     c.Config.SMTPPort,
		Username: c.Config.SMTPUsername,
		Password: c.Config.SMTPPassword,
		From:     c.Config.SMTPFrom,
	}, sms, c.Log)

	audit := logger.NewAuditLogger(c.Log)

	c.OTPSvc = services.NewOTPService(c.RedisClient, services.DefaultOTPConfig(c.Config.OTPResendWindow))
	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.NotificationSvc,
		c.GoogleVerifier,
		audit,
		c.Log,
		c.Config.TokenTTL,
	)
	c.ContactSvc = services.NewContactService(c.ContactRepo, c.UserRepo, c.NotificationSvc, c.Log, c.Config.ContactInbox)
	c.ChatSvc = ai.NewOpenAIClient(c.Config.ChatBaseURL, c.Config.ChatAPIKey, c.Config.ChatModel)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
