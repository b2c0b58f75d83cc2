package repository

import (
	"context"
	"time"

	"mission-control-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Create creates a new participant
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	return conn(ctx, r.db).Create(participant).Error
}

// GetByID retrieves a participant by ID
func (r *ParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Participant, error) {
	var participant models.Participant
	err := conn(ctx, r.db).First(&participant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetByTeamID retrieves all participants of a team
func (r *ParticipantRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.Participant, error) {
	var participants []models.Participant
	err := conn(ctx, r.db).Where("team_id = ?", teamID).Order("display_name ASC").Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

// Touch refreshes the participant's activity timestamp
func (r *ParticipantRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	return conn(ctx, r.db).Model(&models.Participant{}).
		Where("id = ?", id).
		UpdateColumn("last_seen_at", at).Error
}

// CountActiveBySession returns, per team, the number of participants seen at or after since
func (r *ParticipantRepository) CountActiveBySession(ctx context.Context, sessionID uuid.UUID, since time.Time) (map[uuid.UUID]int, error) {
	type row struct {
		TeamID uuid.UUID
		Active int
	}
	var rows []row
	err := conn(ctx, r.db).Model(&models.Participant{}).
		Select("team_id, COUNT(*) AS active").
		Where("session_id = ? AND last_seen_at >= ?", sessionID, since).
		Group("team_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.TeamID] = r.Active
	}
	return counts, nil
}
