package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// ContactRepositoryImpl implements domain.ContactRepository using GORM
type ContactRepositoryImpl struct {
	db *gorm.DB
}

// DBContactMessage represents the database model for ContactMessage.
type DBContactMessage struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index"`
	Subject    string `gorm:"size:200"`
	Message    string `gorm:"size:2000"`
	Status     string `gorm:"index;size:16"`
	AdminReply string
	RepliedAt  *time.Time
	RepliedBy  *uint
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBContactMessage) TableName() string {
	return "contact_messages"
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

// Add implements domain.ContactRepository
func (r *ContactRepositoryImpl) Add(ctx context.Context, msg *domain.ContactMessage) error {
	dbMsg := r.domainToDB(msg)
	if err := r.db.WithContext(ctx).Create(dbMsg).Error; err != nil {
		return err
	}
	msg.ID = dbMsg.ID
	msg.CreatedAt = dbMsg.CreatedAt
	msg.UpdatedAt = dbMsg.UpdatedAt
	return nil
}

// ListByUser implements domain.ContactRepository, newest first.
func (r *ContactRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.ContactMessage, error) {
	var dbMsgs []DBContactMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbMsgs).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]domain.ContactMessage, 0, len(dbMsgs))
	for i := range dbMsgs {
		msgs = append(msgs, *r.dbToDomain(&dbMsgs[i]))
	}
	return msgs, nil
}

// contactRow is the joined projection scanned for the admin inbox.
type contactRow struct {
	DBContactMessage
	UserName  string
	UserEmail string
}

// List implements domain.ContactRepository with optional status filter and
// offset pagination.
func (r *ContactRepositoryImpl) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactMessageView, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&DBContactMessage{}).
		Joins("JOIN users ON users.id = contact_messages.user_id")
	if filter.Status != "" {
		query = query.Where("contact_messages.status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var rows []contactRow
	err := query.
		Select("contact_messages.*, users.name AS user_name, users.email AS user_email").
		Order("contact_messages.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]domain.ContactMessageView, 0, len(rows))
	for i := range rows {
		views = append(views, domain.ContactMessageView{
			ContactMessage: *r.dbToDomain(&rows[i].DBContactMessage),
			UserName:       rows[i].UserName,
			UserEmail:      rows[i].UserEmail,
		})
	}
	return views, total, nil
}

// FindByID implements domain.ContactRepository
func (r *ContactRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.ContactMessage, error) {
	var dbMsg DBContactMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbMsg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbMsg), nil
}

// Stats implements domain.ContactRepository
func (r *ContactRepositoryImpl) Stats(ctx context.Context) (*domain.ContactStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&DBContactMessage{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &domain.ContactStats{}
	for _, row := range rows {
		switch row.Status {
		case domain.ContactStatusNew:
			stats.New = row.Count
		case domain.ContactStatusRead:
			stats.Read = row.Count
		case domain.ContactStatusReplied:
			stats.Replied = row.Count
		case domain.ContactStatusArchived:
			stats.Archived = row.Count
		}
		stats.Total += row.Count
	}
	return stats, nil
}

// UpdateStatus implements domain.ContactRepository
func (r *ContactRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&DBContactMessage{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// Reply implements domain.ContactRepository
func (r *ContactRepositoryImpl) Reply(ctx context.Context, id uint, reply string, adminID uint, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&DBContactMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      domain.ContactStatusReplied,
			"admin_reply": reply,
			"replied_at":  at,
			"replied_by":  adminID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// Delete implements domain.ContactRepository
func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *ContactRepositoryImpl) domainToDB(msg *domain.ContactMessage) *DBContactMessage {
	return &DBContactMessage{
		ID:         msg.ID,
		UserID:     msg.UserID,
		Subject:    msg.Subject,
		Message:    msg.Message,
		Status:     msg.Status,
		AdminReply: msg.AdminReply,
		RepliedAt:  msg.RepliedAt,
		RepliedBy:  msg.RepliedBy,
	}
}

func (r *ContactRepositoryImpl) dbToDomain(dbMsg *DBContactMessage) *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:         dbMsg.ID,
		UserID:     dbMsg.UserID,
		Subject:    dbMsg.Subject,
		Message:    dbMsg.Message,
		Status:     dbMsg.Status,
		AdminReply: dbMsg.AdminReply,
		RepliedAt:  dbMsg.RepliedAt,
		RepliedBy:  dbMsg.RepliedBy,
		CreatedAt:  dbMsg.CreatedAt,
		UpdatedAt:  dbMsg.UpdatedAt,
	}
}
