package repository

import (
	"context"
	"time"

	"mission-control-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompletionSubmissionRepository handles database operations for completion submissions
type CompletionSubmissionRepository struct {
	db *gorm.DB
}

// NewCompletionSubmissionRepository creates a new completion submission repository
func NewCompletionSubmissionRepository(db *gorm.DB) *CompletionSubmissionRepository {
	return &CompletionSubmissionRepository{db: db}
}

// Create creates a submission. A second submission by the same participant is a unique violation.
func (r *CompletionSubmissionRepository) Create(ctx context.Context, submission *models.CompletionSubmission) error {
	return conn(ctx, r.db).Create(submission).Error
}

// GetByParticipantID retrieves the submission of a participant
func (r *CompletionSubmissionRepository) GetByParticipantID(ctx context.Context, participantID uuid.UUID) (*models.CompletionSubmission, error) {
	var submission models.CompletionSubmission
	err := conn(ctx, r.db).First(&submission, "participant_id = ?", participantID).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByTeamID retrieves all submissions of a team
func (r *CompletionSubmissionRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.CompletionSubmission, error) {
	var submissions []models.CompletionSubmission
	err := conn(ctx, r.db).Where("team_id = ?", teamID).Order("created_at ASC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// DeleteByTeam removes every submission of a team
func (r *CompletionSubmissionRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return conn(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.CompletionSubmission{}).Error
}

// ConceptAttemptRepository handles comprehension check counters
type ConceptAttemptRepository struct {
	db *gorm.DB
}

// NewConceptAttemptRepository creates a new concept attempt repository
func NewConceptAttemptRepository(db *gorm.DB) *ConceptAttemptRepository {
	return &ConceptAttemptRepository{db: db}
}

// RecordAttempt increments the attempt counter for (participant, concept) in one statement
// and returns the stored row. passedAt is kept from the first passing attempt.
func (r *ConceptAttemptRepository) RecordAttempt(ctx context.Context, participantID uuid.UUID, conceptID string, correct int, passed bool, at time.Time) (*models.ConceptAttempt, error) {
	attempt := models.ConceptAttempt{
		ParticipantID: participantID,
		ConceptID:     conceptID,
		Attempts:      1,
		LastCorrect:   correct,
	}
	if passed {
		attempt.PassedAt = &at
	}
	err := conn(ctx, r.db).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "participant_id"}, {Name: "concept_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"attempts":     gorm.Expr("concept_attempts.attempts + 1"),
				"last_correct": correct,
				"passed_at":    gorm.Expr("COALESCE(concept_attempts.passed_at, EXCLUDED.passed_at)"),
				"updated_at":   at,
			}),
		},
		clause.Returning{},
	).Create(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// GetByParticipantID retrieves all attempt counters of a participant
func (r *ConceptAttemptRepository) GetByParticipantID(ctx context.Context, participantID uuid.UUID) ([]models.ConceptAttempt, error) {
	var attempts []models.ConceptAttempt
	err := conn(ctx, r.db).Where("participant_id = ?", participantID).Order("concept_id ASC").Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
