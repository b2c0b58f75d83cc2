package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/logger"
	"mission-control-backend/internal/progression"
	"mission-control-backend/internal/telemetry"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// VoteService records participant choices into the vote ledger
type VoteService struct {
	repos     Repositories
	catalog   catalog.MissionCatalog
	settings  Settings
	validator *validator.Validate
	now       Clock
}

// NewVoteService creates a new vote service
func NewVoteService(repos Repositories, missions catalog.MissionCatalog, settings Settings, validator *validator.Validate) *VoteService {
	return &VoteService{
		repos:     repos,
		catalog:   missions,
		settings:  settings,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock replaces the time source
func (s *VoteService) WithClock(clock Clock) *VoteService {
	s.now = clock
	return s
}

// CastVoteRequest is one participant's choice for a round
type CastVoteRequest struct {
	TeamID        uuid.UUID `json:"-"`
	ParticipantID uuid.UUID `json:"-"`
	MissionID     string    `json:"mission_id" validate:"required,max=64"`
	RoundID       string    `json:"round_id" validate:"required,max=64"`
	OptionIndex   int       `json:"option_index"`
}

// VoteResponse is the accepted vote with the round's current tally
type VoteResponse struct {
	MissionID    string            `json:"mission_id"`
	RoundID      string            `json:"round_id"`
	OptionIndex  int               `json:"option_index"`
	Tally        progression.Tally `json:"tally"`
	StateVersion int64             `json:"state_version"`
}

// RoundVotes is the facilitator view of a round's ballots
type RoundVotes struct {
	MissionID string            `json:"mission_id"`
	RoundID   string            `json:"round_id"`
	Votes     []models.Vote     `json:"votes"`
	Tally     progression.Tally `json:"tally"`
}

// CastVote records or overwrites the participant's choice. Voting on the next expected round
// opens it first; an already open round is not touched.
func (s *VoteService) CastVote(ctx context.Context, req *CastVoteRequest) (*VoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	ctx, span := telemetry.StartSpan(ctx, "votes.CastVote",
		attribute.String("team_id", req.TeamID.String()),
		attribute.String("round_id", req.RoundID),
	)

	resp, err := s.castVote(ctx, req)
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":      req.TeamID,
		"operation":    "cast_vote",
		"mission_id":   req.MissionID,
		"round_id":     req.RoundID,
		"option_index": req.OptionIndex,
	}).Debug("vote recorded")
	return resp, nil
}

func (s *VoteService) castVote(ctx context.Context, req *CastVoteRequest) (*VoteResponse, error) {
	participant, err := s.repos.Participants.GetByID(ctx, req.ParticipantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}
	if participant.TeamID != req.TeamID {
		return nil, apperrors.ErrParticipantNotInTeam
	}

	mission, err := s.catalog.MissionByID(req.MissionID)
	if err != nil {
		return nil, err
	}
	round, err := mission.Round(req.RoundID)
	if err != nil {
		return nil, err
	}
	if req.OptionIndex < 0 || req.OptionIndex >= round.OptionCount() {
		return nil, apperrors.NewInvalidOptionError(req.OptionIndex, round.OptionCount())
	}

	var team *models.Team
	err = retryOnConflict(ctx, s.settings, nil, func() error {
		t, err := getMutableTeam(ctx, s.repos, req.TeamID)
		if err != nil {
			return err
		}
		if t.HasOpenRound(req.MissionID, req.RoundID) {
			team = t
			return nil
		}
		if t.CurrentRound().Phase == models.RoundPhaseOpen {
			return apperrors.ErrRoundNotCurrent
		}
		m, err := currentMission(ctx, s.repos, s.catalog, t, req.MissionID)
		if err != nil {
			return err
		}
		if err := s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return openRoundTx(ctx, s.repos, t, m, req.RoundID, s.now())
		}); err != nil {
			if errors.Is(err, apperrors.ErrRoundAlreadyOpen) {
				return apperrors.ErrStateVersionConflict
			}
			return err
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	written, err := s.repos.Votes.UpsertIfRoundOpen(ctx, &models.Vote{
		TeamID:        req.TeamID,
		MissionID:     req.MissionID,
		RoundID:       req.RoundID,
		ParticipantID: req.ParticipantID,
		OptionIndex:   req.OptionIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}
	if !written {
		// The round closed between the state read and the write.
		latest, err := getTeam(ctx, s.repos, req.TeamID)
		if err != nil {
			return nil, err
		}
		if latest.CurrentRound().Phase == models.RoundPhaseOpen {
			return nil, apperrors.ErrRoundNotCurrent
		}
		return nil, apperrors.ErrNoOpenRound
	}

	if err := s.repos.Participants.Touch(ctx, req.ParticipantID, s.now()); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to refresh participant presence")
	}

	tally, err := loadTally(ctx, s.repos, req.TeamID, req.MissionID, round)
	if err != nil {
		return nil, err
	}
	return &VoteResponse{
		MissionID:    req.MissionID,
		RoundID:      req.RoundID,
		OptionIndex:  req.OptionIndex,
		Tally:        tally,
		StateVersion: team.StateVersion,
	}, nil
}

// Tally returns the per-option counts of one round
func (s *VoteService) Tally(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (*progression.Tally, error) {
	if _, err := getTeam(ctx, s.repos, teamID); err != nil {
		return nil, err
	}
	round, err := s.round(missionID, roundID)
	if err != nil {
		return nil, err
	}
	tally, err := loadTally(ctx, s.repos, teamID, missionID, round)
	if err != nil {
		return nil, err
	}
	return &tally, nil
}

// ListVotes returns every ballot of one round
func (s *VoteService) ListVotes(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (*RoundVotes, error) {
	if _, err := getTeam(ctx, s.repos, teamID); err != nil {
		return nil, err
	}
	round, err := s.round(missionID, roundID)
	if err != nil {
		return nil, err
	}
	votes, err := s.repos.Votes.GetByRound(ctx, teamID, missionID, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	tally := progression.NewTally(round.OptionCount())
	for _, v := range votes {
		if v.OptionIndex >= 0 && v.OptionIndex < len(tally.Counts) {
			tally.Counts[v.OptionIndex]++
			tally.Voters++
		}
	}
	return &RoundVotes{MissionID: missionID, RoundID: roundID, Votes: votes, Tally: tally}, nil
}

// MyVote returns the participant's current ballot for a round
func (s *VoteService) MyVote(ctx context.Context, teamID, participantID uuid.UUID, missionID, roundID string) (*models.Vote, error) {
	vote, err := s.repos.Votes.GetByParticipant(ctx, teamID, missionID, roundID, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("vote")
		}
		return nil, fmt.Errorf("failed to load vote: %w", err)
	}
	return vote, nil
}

func (s *VoteService) round(missionID, roundID string) (*catalog.Round, error) {
	m, err := s.catalog.MissionByID(missionID)
	if err != nil {
		return nil, err
	}
	return m.Round(roundID)
}
