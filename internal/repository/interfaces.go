package repository

import (
	"context"
	"time"

	"mission-control-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TxManagerInterface defines the interface for running work in one transaction
type TxManagerInterface interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	GetByFacilitator(ctx context.Context, facilitatorID string, limit, offset int) ([]models.Session, int64, error)
	Archive(ctx context.Context, id uuid.UUID, at time.Time) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.Team, error)
	GetLeaderboard(ctx context.Context, sessionID uuid.UUID) ([]models.Team, error)
	UpdateState(ctx context.Context, team *models.Team, expectedVersion int64) error
	LockState(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ParticipantRepositoryInterface defines the interface for participant repository operations
type ParticipantRepositoryInterface interface {
	Create(ctx context.Context, participant *models.Participant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Participant, error)
	GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.Participant, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
	CountActiveBySession(ctx context.Context, sessionID uuid.UUID, since time.Time) (map[uuid.UUID]int, error)
}

// VoteRepositoryInterface defines the interface for vote ledger operations
type VoteRepositoryInterface interface {
	UpsertIfRoundOpen(ctx context.Context, vote *models.Vote) (bool, error)
	GetByParticipant(ctx context.Context, teamID uuid.UUID, missionID, roundID string, participantID uuid.UUID) (*models.Vote, error)
	GetByRound(ctx context.Context, teamID uuid.UUID, missionID, roundID string) ([]models.Vote, error)
	CountByOption(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (map[int]int, error)
	DeleteByRound(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (int64, error)
	DeleteUnresolvedByMission(ctx context.Context, teamID uuid.UUID, missionID string) error
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

// RoundResultRepositoryInterface defines the interface for intermediate round result operations
type RoundResultRepositoryInterface interface {
	Create(ctx context.Context, result *models.RoundResult) error
	GetByMission(ctx context.Context, teamID uuid.UUID, missionID string) ([]models.RoundResult, error)
	DeleteUnresolvedByMission(ctx context.Context, teamID uuid.UUID, missionID string) error
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

// MissionOutcomeRepositoryInterface defines the interface for mission outcome operations
type MissionOutcomeRepositoryInterface interface {
	Create(ctx context.Context, outcome *models.MissionOutcome) error
	GetByTeamAndMission(ctx context.Context, teamID uuid.UUID, missionID string) (*models.MissionOutcome, error)
	GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.MissionOutcome, error)
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

// AdminActionRepositoryInterface defines the interface for the facilitator audit trail
type AdminActionRepositoryInterface interface {
	Create(ctx context.Context, action *models.AdminAction) error
	GetByTeamID(ctx context.Context, teamID uuid.UUID, limit int) ([]models.AdminAction, error)
}

// TeamEventRepositoryInterface defines the interface for team timeline operations
type TeamEventRepositoryInterface interface {
	Create(ctx context.Context, event *models.TeamEvent) error
	GetByTeamID(ctx context.Context, teamID uuid.UUID, limit int) ([]models.TeamEvent, error)
	GetRecentBySession(ctx context.Context, sessionID uuid.UUID, eventType models.TeamEventType, since time.Time, excludeTeamID uuid.UUID) ([]models.TeamEvent, error)
}

// CompletionSubmissionRepositoryInterface defines the interface for completion submission operations
type CompletionSubmissionRepositoryInterface interface {
	Create(ctx context.Context, submission *models.CompletionSubmission) error
	GetByParticipantID(ctx context.Context, participantID uuid.UUID) (*models.CompletionSubmission, error)
	GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.CompletionSubmission, error)
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

// ConceptAttemptRepositoryInterface defines the interface for comprehension check counters
type ConceptAttemptRepositoryInterface interface {
	RecordAttempt(ctx context.Context, participantID uuid.UUID, conceptID string, correct int, passed bool, at time.Time) (*models.ConceptAttempt, error)
	GetByParticipantID(ctx context.Context, participantID uuid.UUID) ([]models.ConceptAttempt, error)
}
