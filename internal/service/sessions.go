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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SessionService handles sessions, teams and participant seating
type SessionService struct {
	repos     Repositories
	catalog   catalog.MissionCatalog
	validator *validator.Validate
	now       Clock
}

// NewSessionService creates a new session service
func NewSessionService(repos Repositories, missions catalog.MissionCatalog, validator *validator.Validate) *SessionService {
	return &SessionService{
		repos:     repos,
		catalog:   missions,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock replaces the time source
func (s *SessionService) WithClock(clock Clock) *SessionService {
	s.now = clock
	return s
}

// CreateSessionRequest represents the request to create a session
type CreateSessionRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	FacilitatorID string `json:"-" validate:"required,max=64"`
}

// CreateTeamRequest represents the request to create a team in a session
type CreateTeamRequest struct {
	SessionID uuid.UUID `json:"-" validate:"required"`
	Name      string    `json:"name" validate:"required,min=1,max=60"`
	Color     string    `json:"color" validate:"max=20"`
}

// RegisterParticipantRequest seats a participant in a team
type RegisterParticipantRequest struct {
	TeamID      uuid.UUID `json:"-" validate:"required"`
	DisplayName string    `json:"display_name" validate:"required,min=1,max=60"`
}

// SessionResponse represents a session with its teams
type SessionResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	FacilitatorID string               `json:"facilitator_id"`
	Status        models.SessionStatus `json:"status"`
	ArchivedAt    *time.Time           `json:"archived_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	Teams         []TeamState          `json:"teams,omitempty"`
}

// SessionListResponse represents a paginated list of sessions
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

func newSessionResponse(session *models.Session) SessionResponse {
	return SessionResponse{
		ID:            session.ID,
		Name:          session.Name,
		FacilitatorID: session.FacilitatorID,
		Status:        session.Status,
		ArchivedAt:    session.ArchivedAt,
		CreatedAt:     session.CreatedAt,
	}
}

// CreateSession creates a new active session owned by the facilitator
func (s *SessionService) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	session := &models.Session{
		Name:          req.Name,
		FacilitatorID: req.FacilitatorID,
		Status:        models.SessionStatusActive,
	}
	if err := s.repos.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	logger.WithContext(ctx).WithField("session_id", session.ID).Info("session created")
	resp := newSessionResponse(session)
	return &resp, nil
}

// GetSession returns a session with the state of every team
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	teams, err := s.repos.Teams.GetBySessionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	resp := newSessionResponse(session)
	resp.Teams = make([]TeamState, 0, len(teams))
	for i := range teams {
		resp.Teams = append(resp.Teams, *newTeamState(&teams[i], s.catalog))
	}
	return &resp, nil
}

// ListSessions returns the facilitator's sessions, newest first
func (s *SessionService) ListSessions(ctx context.Context, facilitatorID string, limit, offset int) (*SessionListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	sessions, total, err := s.repos.Sessions.GetByFacilitator(ctx, facilitatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	out := make([]SessionResponse, len(sessions))
	for i := range sessions {
		out[i] = newSessionResponse(&sessions[i])
	}
	return &SessionListResponse{Sessions: out, Total: total, Limit: limit, Offset: offset}, nil
}

// ArchiveSession closes a session to further team mutations
func (s *SessionService) ArchiveSession(ctx context.Context, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsArchived() {
		return nil, apperrors.ErrSessionArchived
	}
	if err := s.repos.Sessions.Archive(ctx, id, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionArchived
		}
		return nil, fmt.Errorf("failed to archive session: %w", err)
	}
	logger.WithContext(ctx).WithField("session_id", id).Info("session archived")
	session, err = s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := newSessionResponse(session)
	return &resp, nil
}

// CreateTeam adds a team at mission 0 to an active session
func (s *SessionService) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamState, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.IsArchived() {
		return nil, apperrors.ErrSessionArchived
	}
	team := &models.Team{
		SessionID:      req.SessionID,
		Name:           req.Name,
		Color:          req.Color,
		Badges:         datatypes.JSONSlice[string]{},
		RoundPhase:     models.RoundPhaseIdle,
		LastProgressAt: s.now(),
	}
	if err := s.repos.Teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"session_id": req.SessionID,
		"team_id":    team.ID,
	}).Info("team created")
	return newTeamState(team, s.catalog), nil
}

// ListTeams returns the state of every team in a session
func (s *SessionService) ListTeams(ctx context.Context, sessionID uuid.UUID) ([]TeamState, error) {
	if _, err := s.getSession(ctx, sessionID); err != nil {
		return nil, err
	}
	teams, err := s.repos.Teams.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	out := make([]TeamState, len(teams))
	for i := range teams {
		out[i] = *newTeamState(&teams[i], s.catalog)
	}
	return out, nil
}

// RegisterParticipant seats a new participant in a team of an active session
func (s *SessionService) RegisterParticipant(ctx context.Context, req *RegisterParticipantRequest) (*models.Participant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	team, err := getMutableTeam(ctx, s.repos, req.TeamID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	participant := &models.Participant{
		SessionID:   team.SessionID,
		TeamID:      team.ID,
		DisplayName: req.DisplayName,
		LastSeenAt:  &now,
	}
	err = s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Participants.Create(ctx, participant); err != nil {
			return fmt.Errorf("failed to create participant: %w", err)
		}
		return appendEvent(ctx, s.repos, team, models.TeamEventStudentJoined, map[string]interface{}{
			"participant_id": participant.ID,
			"display_name":   participant.DisplayName,
		})
	})
	if err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":        team.ID,
		"participant_id": participant.ID,
	}).Info("participant joined")
	return participant, nil
}

// GetParticipant returns a participant by id
func (s *SessionService) GetParticipant(ctx context.Context, id uuid.UUID) (*models.Participant, error) {
	participant, err := s.repos.Participants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}
	return participant, nil
}

// ListParticipants returns the participants seated in a team
func (s *SessionService) ListParticipants(ctx context.Context, teamID uuid.UUID) ([]models.Participant, error) {
	if _, err := getTeam(ctx, s.repos, teamID); err != nil {
		return nil, err
	}
	participants, err := s.repos.Participants.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// TouchParticipant refreshes the participant's activity timestamp
func (s *SessionService) TouchParticipant(ctx context.Context, id uuid.UUID) error {
	if err := s.repos.Participants.Touch(ctx, id, s.now()); err != nil {
		return fmt.Errorf("failed to refresh participant: %w", err)
	}
	return nil
}

func (s *SessionService) getSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session, err := s.repos.Sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}
