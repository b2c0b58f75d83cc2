package repository

import (
	"context"
	"time"

	"mission-control-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminActionRepository handles the facilitator audit trail. Rows are never updated or deleted.
type AdminActionRepository struct {
	db *gorm.DB
}

// NewAdminActionRepository creates a new admin action repository
func NewAdminActionRepository(db *gorm.DB) *AdminActionRepository {
	return &AdminActionRepository{db: db}
}

// Create appends an audit entry
func (r *AdminActionRepository) Create(ctx context.Context, action *models.AdminAction) error {
	return conn(ctx, r.db).Create(action).Error
}

// GetByTeamID retrieves the newest audit entries of a team
func (r *AdminActionRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID, limit int) ([]models.AdminAction, error) {
	var actions []models.AdminAction
	err := conn(ctx, r.db).Where("team_id = ?", teamID).Order("created_at DESC").Limit(limit).Find(&actions).Error
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// TeamEventRepository handles the team timeline. Rows are never updated or deleted.
type TeamEventRepository struct {
	db *gorm.DB
}

// NewTeamEventRepository creates a new team event repository
func NewTeamEventRepository(db *gorm.DB) *TeamEventRepository {
	return &TeamEventRepository{db: db}
}

// Create appends a timeline event
func (r *TeamEventRepository) Create(ctx context.Context, event *models.TeamEvent) error {
	return conn(ctx, r.db).Create(event).Error
}

// GetByTeamID retrieves the newest events of a team
func (r *TeamEventRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID, limit int) ([]models.TeamEvent, error) {
	var events []models.TeamEvent
	err := conn(ctx, r.db).Where("team_id = ?", teamID).Order("created_at DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetRecentBySession retrieves events of one type in a session created at or after since,
// excluding the given team, newest first
func (r *TeamEventRepository) GetRecentBySession(ctx context.Context, sessionID uuid.UUID, eventType models.TeamEventType, since time.Time, excludeTeamID uuid.UUID) ([]models.TeamEvent, error) {
	var events []models.TeamEvent
	err := conn(ctx, r.db).
		Where("session_id = ? AND type = ? AND created_at >= ? AND team_id <> ?", sessionID, eventType, since, excludeTeamID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
