package service

import (
	"context"
	"errors"
	"fmt"

	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/logger"
	"mission-control-backend/internal/progression"
	"mission-control-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService records participants' terminal completion artifacts
type SubmissionService struct {
	repos     Repositories
	catalog   catalog.MissionCatalog
	validator *validator.Validate
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(repos Repositories, missions catalog.MissionCatalog, validator *validator.Validate) *SubmissionService {
	return &SubmissionService{repos: repos, catalog: missions, validator: validator}
}

// SubmitCompletionRequest is a participant's completion submission
type SubmitCompletionRequest struct {
	ParticipantID uuid.UUID `json:"-" validate:"required"`
	Reflection    string    `json:"reflection" validate:"max=2000"`
}

// SubmissionResponse carries the participant claim code
type SubmissionResponse struct {
	Submission       *models.CompletionSubmission `json:"submission"`
	AlreadySubmitted bool                         `json:"already_submitted"`
}

// SubmitCompletion mints the participant claim code once. A repeat returns the stored submission.
func (s *SubmissionService) SubmitCompletion(ctx context.Context, req *SubmitCompletionRequest) (*SubmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if prior, err := s.prior(ctx, req.ParticipantID); err != nil || prior != nil {
		if err != nil {
			return nil, err
		}
		return &SubmissionResponse{Submission: prior, AlreadySubmitted: true}, nil
	}

	participant, err := s.repos.Participants.GetByID(ctx, req.ParticipantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}
	team, err := getTeam(ctx, s.repos, participant.TeamID)
	if err != nil {
		return nil, err
	}
	if !team.IsComplete() {
		return nil, apperrors.ErrTeamNotComplete
	}

	submission := &models.CompletionSubmission{
		ParticipantID: participant.ID,
		TeamID:        team.ID,
		TeamClaimCode: *team.ClaimCode,
		ClaimCode:     progression.ParticipantClaimCode(*team.ClaimCode, participant.ID.String()),
		Reflection:    req.Reflection,
	}
	if err := s.repos.Submissions.Create(ctx, submission); err != nil {
		if repository.IsUniqueViolation(err) {
			prior, perr := s.prior(ctx, req.ParticipantID)
			if perr != nil {
				return nil, perr
			}
			if prior != nil {
				return &SubmissionResponse{Submission: prior, AlreadySubmitted: true}, nil
			}
		}
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":        team.ID,
		"participant_id": participant.ID,
	}).Info("completion submitted")
	return &SubmissionResponse{Submission: submission}, nil
}

// GetSubmission returns the participant's submission
func (s *SubmissionService) GetSubmission(ctx context.Context, participantID uuid.UUID) (*models.CompletionSubmission, error) {
	prior, err := s.prior(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, apperrors.ErrSubmissionNotFound
	}
	return prior, nil
}

// ListTeamSubmissions returns every submission of a team
func (s *SubmissionService) ListTeamSubmissions(ctx context.Context, teamID uuid.UUID) ([]models.CompletionSubmission, error) {
	if _, err := getTeam(ctx, s.repos, teamID); err != nil {
		return nil, err
	}
	submissions, err := s.repos.Submissions.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

func (s *SubmissionService) prior(ctx context.Context, participantID uuid.UUID) (*models.CompletionSubmission, error) {
	prior, err := s.repos.Submissions.GetByParticipantID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return prior, nil
}
