package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags). The two
// OTP credentials are embedded with distinct column prefixes so each flow
// keeps independent state on the same row.
type DBUser struct {
	ID           uint       `gorm:"primaryKey"`
	Name         string     `gorm:"size:50"`
	Email        string     `gorm:"uniqueIndex;size:255"`
	Phone        *string    `gorm:"uniqueIndex;size:32"`
	PasswordHash string     `gorm:"column:password"`
	Role         string     `gorm:"index;size:16"`
	Provider     string     `gorm:"size:16"`
	GoogleID     *string    `gorm:"uniqueIndex;size:64"`
	IsActive     bool       `gorm:"index"`
	IsVerified   bool
	LastLogin    *time.Time

	Verification domain.OTPCredential `gorm:"embedded;embeddedPrefix:otp_"`
	Reset        domain.OTPCredential `gorm:"embedded;embeddedPrefix:reset_"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. Uniqueness collisions on email,
// phone or google id surface as ErrDuplicateIdentity.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateIdentity
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", domain.NormalizeEmail(email))
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByGoogleID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.findOne(ctx, "google_id = ?", googleID)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository. Save writes the full row, which
// covers clearing OTP fields back to their zero values.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	dbUser.CreatedAt = user.CreatedAt
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateIdentity
		}
		return err
	}
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// domainToDB converts domain user to database user. Empty phone and google
// id map to NULL so the sparse unique indexes tolerate absence.
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	dbUser := &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Provider:     string(user.Provider),
		IsActive:     user.IsActive,
		IsVerified:   user.IsVerified,
		LastLogin:    user.LastLogin,
		Verification: user.Verification,
		Reset:        user.Reset,
	}
	if user.Phone != "" {
		phone := user.Phone
		dbUser.Phone = &phone
	}
	if user.GoogleID != "" {
		googleID := user.GoogleID
		dbUser.GoogleID = &googleID
	}
	return dbUser
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	user := &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         dbUser.Role,
		Provider:     domain.AuthProvider(dbUser.Provider),
		IsActive:     dbUser.IsActive,
		IsVerified:   dbUser.IsVerified,
		LastLogin:    dbUser.LastLogin,
		Verification: dbUser.Verification,
		Reset:        dbUser.Reset,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
	if dbUser.Phone != nil {
		user.Phone = *dbUser.Phone
	}
	if dbUser.GoogleID != nil {
		user.GoogleID = *dbUser.GoogleID
	}
	return user
}
