package repository

import (
	"context"

	"mission-control-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoundResultRepository handles database operations for intermediate round results
type RoundResultRepository struct {
	db *gorm.DB
}

// NewRoundResultRepository creates a new round result repository
func NewRoundResultRepository(db *gorm.DB) *RoundResultRepository {
	return &RoundResultRepository{db: db}
}

// Create creates a round result. A second result for the same round is a unique violation.
func (r *RoundResultRepository) Create(ctx context.Context, result *models.RoundResult) error {
	return conn(ctx, r.db).Create(result).Error
}

// GetByMission retrieves the recorded rounds of a team's mission in creation order
func (r *RoundResultRepository) GetByMission(ctx context.Context, teamID uuid.UUID, missionID string) ([]models.RoundResult, error) {
	var results []models.RoundResult
	err := conn(ctx, r.db).
		Where("team_id = ? AND mission_id = ?", teamID, missionID).
		Order("created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteUnresolvedByMission removes round results of a mission that has no outcome yet
func (r *RoundResultRepository) DeleteUnresolvedByMission(ctx context.Context, teamID uuid.UUID, missionID string) error {
	return conn(ctx, r.db).
		Where("team_id = ? AND mission_id = ?", teamID, missionID).
		Where("NOT EXISTS (SELECT 1 FROM mission_outcomes mo WHERE mo.team_id = round_results.team_id AND mo.mission_id = round_results.mission_id)").
		Delete(&models.RoundResult{}).Error
}

// DeleteByTeam removes every round result of a team
func (r *RoundResultRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return conn(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.RoundResult{}).Error
}

// MissionOutcomeRepository handles database operations for mission outcomes
type MissionOutcomeRepository struct {
	db *gorm.DB
}

// NewMissionOutcomeRepository creates a new mission outcome repository
func NewMissionOutcomeRepository(db *gorm.DB) *MissionOutcomeRepository {
	return &MissionOutcomeRepository{db: db}
}

// Create creates a mission outcome. The (team, mission) unique index rejects a second one.
func (r *MissionOutcomeRepository) Create(ctx context.Context, outcome *models.MissionOutcome) error {
	return conn(ctx, r.db).Create(outcome).Error
}

// GetByTeamAndMission retrieves the outcome of one mission for a team
func (r *MissionOutcomeRepository) GetByTeamAndMission(ctx context.Context, teamID uuid.UUID, missionID string) (*models.MissionOutcome, error) {
	var outcome models.MissionOutcome
	err := conn(ctx, r.db).First(&outcome, "team_id = ? AND mission_id = ?", teamID, missionID).Error
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

// GetByTeamID retrieves all outcomes of a team in mission order
func (r *MissionOutcomeRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.MissionOutcome, error) {
	var outcomes []models.MissionOutcome
	err := conn(ctx, r.db).Where("team_id = ?", teamID).Order("mission_index ASC").Find(&outcomes).Error
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

// DeleteByTeam removes every outcome of a team
func (r *MissionOutcomeRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return conn(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.MissionOutcome{}).Error
}
