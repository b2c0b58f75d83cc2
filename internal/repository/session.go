package repository

import (
	"context"
	"time"

	"mission-control-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	return conn(ctx, r.db).Create(session).Error
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := conn(ctx, r.db).First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetByFacilitator retrieves all sessions run by a facilitator with pagination
func (r *SessionRepository) GetByFacilitator(ctx context.Context, facilitatorID string, limit, offset int) ([]models.Session, int64, error) {
	var sessions []models.Session
	var total int64

	query := conn(ctx, r.db).Model(&models.Session{}).Where("facilitator_id = ?", facilitatorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&sessions).Error
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// Archive marks a session archived. Archiving twice keeps the first timestamp.
func (r *SessionRepository) Archive(ctx context.Context, id uuid.UUID, at time.Time) error {
	return conn(ctx, r.db).Model(&models.Session{}).
		Where("id = ? AND status = ?", id, models.SessionStatusActive).
		Updates(map[string]interface{}{
			"status":      models.SessionStatusArchived,
			"archived_at": at,
			"updated_at":  at,
		}).Error
}
