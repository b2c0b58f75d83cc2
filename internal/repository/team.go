package repository

import (
	"context"

	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return conn(ctx, r.db).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := conn(ctx, r.db).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetBySessionID retrieves all teams of a session ordered by name
func (r *TeamRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := conn(ctx, r.db).Where("session_id = ?", sessionID).Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetLeaderboard retrieves the teams of a session ranked by score, then earliest completion.
// Teams that have not completed sort after completed ones.
func (r *TeamRepository) GetLeaderboard(ctx context.Context, sessionID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := conn(ctx, r.db).
		Where("session_id = ?", sessionID).
		Order("score DESC").
		Order("completed_at ASC NULLS LAST").
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// UpdateState writes the team's progression fields only if the stored state version
// still equals expectedVersion. On success team.StateVersion is expectedVersion+1.
func (r *TeamRepository) UpdateState(ctx context.Context, team *models.Team, expectedVersion int64) error {
	next := expectedVersion + 1
	res := conn(ctx, r.db).Model(&models.Team{}).
		Where("id = ? AND state_version = ?", team.ID, expectedVersion).
		Updates(map[string]interface{}{
			"mission_index":             team.MissionIndex,
			"score":                     team.Score,
			"trait_capital_flexibility": team.Traits.CapitalFlexibility,
			"trait_star_power":          team.Traits.StarPower,
			"trait_data_trust":          team.Traits.DataTrust,
			"trait_culture":             team.Traits.Culture,
			"trait_risk_heat":           team.Traits.RiskHeat,
			"badges":                    team.Badges,
			"round_phase":               team.RoundPhase,
			"round_mission_id":          team.RoundMissionID,
			"round_id":                  team.RoundID,
			"claim_code":                team.ClaimCode,
			"completed_at":              team.CompletedAt,
			"last_progress_at":          team.LastProgressAt,
			"state_version":             next,
			"updated_at":                gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrStateVersionConflict
	}
	team.StateVersion = next
	return nil
}

// LockState takes a row lock on the team for the enclosing transaction and returns
// its current state version. Vote upserts wait on this lock.
func (r *TeamRepository) LockState(ctx context.Context, id uuid.UUID) (int64, error) {
	var team models.Team
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "state_version").
		First(&team, "id = ?", id).Error
	if err != nil {
		return 0, err
	}
	return team.StateVersion, nil
}

// Delete deletes a team
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&models.Team{}, "id = ?", id).Error
}
