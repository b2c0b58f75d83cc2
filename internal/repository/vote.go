package repository

import (
	"context"

	"mission-control-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteRepository handles database operations for votes
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// UpsertIfRoundOpen inserts the vote, or overwrites the participant's previous choice for the
// same round, only while the team's round state is open on that round. It reports whether a row was written.
// The team row is share-locked, so a vote racing a resolve waits for it and then sees the round closed.
func (r *VoteRepository) UpsertIfRoundOpen(ctx context.Context, vote *models.Vote) (bool, error) {
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	res := conn(ctx, r.db).Exec(`
INSERT INTO votes (id, created_at, updated_at, team_id, mission_id, round_id, participant_id, option_index)
SELECT ?, NOW(), NOW(), ?, ?, ?, ?, ?
WHERE EXISTS (
	SELECT 1 FROM teams t
	WHERE t.id = ? AND t.round_phase = ? AND t.round_mission_id = ? AND t.round_id = ?
	FOR SHARE
)
ON CONFLICT (team_id, mission_id, round_id, participant_id)
DO UPDATE SET option_index = EXCLUDED.option_index, updated_at = EXCLUDED.updated_at`,
		vote.ID, vote.TeamID, vote.MissionID, vote.RoundID, vote.ParticipantID, vote.OptionIndex,
		vote.TeamID, models.RoundPhaseOpen, vote.MissionID, vote.RoundID,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetByParticipant retrieves one participant's vote for a round
func (r *VoteRepository) GetByParticipant(ctx context.Context, teamID uuid.UUID, missionID, roundID string, participantID uuid.UUID) (*models.Vote, error) {
	var vote models.Vote
	err := conn(ctx, r.db).First(&vote,
		"team_id = ? AND mission_id = ? AND round_id = ? AND participant_id = ?",
		teamID, missionID, roundID, participantID).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// GetByRound retrieves every vote for one round of a team
func (r *VoteRepository) GetByRound(ctx context.Context, teamID uuid.UUID, missionID, roundID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := conn(ctx, r.db).
		Where("team_id = ? AND mission_id = ? AND round_id = ?", teamID, missionID, roundID).
		Order("created_at ASC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

// CountByOption returns option index to vote count for one round
func (r *VoteRepository) CountByOption(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (map[int]int, error) {
	type row struct {
		OptionIndex int
		Votes       int
	}
	var rows []row
	err := conn(ctx, r.db).Model(&models.Vote{}).
		Select("option_index, COUNT(*) AS votes").
		Where("team_id = ? AND mission_id = ? AND round_id = ?", teamID, missionID, roundID).
		Group("option_index").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int, len(rows))
	for _, r := range rows {
		counts[r.OptionIndex] = r.Votes
	}
	return counts, nil
}

// DeleteByRound removes all votes of one round and returns how many were removed
func (r *VoteRepository) DeleteByRound(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (int64, error) {
	res := conn(ctx, r.db).
		Where("team_id = ? AND mission_id = ? AND round_id = ?", teamID, missionID, roundID).
		Delete(&models.Vote{})
	return res.RowsAffected, res.Error
}

// DeleteUnresolvedByMission removes votes of a mission that has no outcome yet
func (r *VoteRepository) DeleteUnresolvedByMission(ctx context.Context, teamID uuid.UUID, missionID string) error {
	return conn(ctx, r.db).
		Where("team_id = ? AND mission_id = ?", teamID, missionID).
		Where("NOT EXISTS (SELECT 1 FROM mission_outcomes mo WHERE mo.team_id = votes.team_id AND mo.mission_id = votes.mission_id)").
		Delete(&models.Vote{}).Error
}

// DeleteByTeam removes every vote of a team
func (r *VoteRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return conn(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.Vote{}).Error
}
