package service

import (
	"context"

	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/database/models"
	"mission-control-backend/internal/progression"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SessionServiceInterface defines the interface for session service
type SessionServiceInterface interface {
	CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionResponse, error)
	ListSessions(ctx context.Context, facilitatorID string, limit, offset int) (*SessionListResponse, error)
	ArchiveSession(ctx context.Context, id uuid.UUID) (*SessionResponse, error)
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamState, error)
	ListTeams(ctx context.Context, sessionID uuid.UUID) ([]TeamState, error)
	RegisterParticipant(ctx context.Context, req *RegisterParticipantRequest) (*models.Participant, error)
	GetParticipant(ctx context.Context, id uuid.UUID) (*models.Participant, error)
	ListParticipants(ctx context.Context, teamID uuid.UUID) ([]models.Participant, error)
	TouchParticipant(ctx context.Context, id uuid.UUID) error
}

// VoteServiceInterface defines the interface for the vote ledger
type VoteServiceInterface interface {
	CastVote(ctx context.Context, req *CastVoteRequest) (*VoteResponse, error)
	Tally(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (*progression.Tally, error)
	ListVotes(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (*RoundVotes, error)
	MyVote(ctx context.Context, teamID, participantID uuid.UUID, missionID, roundID string) (*models.Vote, error)
}

// ProgressionServiceInterface defines the interface for the team progression state machine
type ProgressionServiceInterface interface {
	GetTeamState(ctx context.Context, teamID uuid.UUID) (*TeamState, error)
	OpenRound(ctx context.Context, req *OpenRoundRequest) (*TeamState, error)
	ResolveRound(ctx context.Context, req *ResolveRoundRequest, actor string) (*ResolveResult, error)
	ForceResolve(ctx context.Context, req *ForceResolveRequest, actor string) (*ResolveResult, error)
	ClearRoundVotes(ctx context.Context, req *ClearRoundVotesRequest, actor string) (*ClearVotesResult, error)
	JumpMission(ctx context.Context, req *JumpMissionRequest, actor string) (*TeamState, error)
	ResetTeam(ctx context.Context, req *ResetTeamRequest, actor string) (*TeamState, error)
}

// SubmissionServiceInterface defines the interface for completion submissions
type SubmissionServiceInterface interface {
	SubmitCompletion(ctx context.Context, req *SubmitCompletionRequest) (*SubmissionResponse, error)
	GetSubmission(ctx context.Context, participantID uuid.UUID) (*models.CompletionSubmission, error)
	ListTeamSubmissions(ctx context.Context, teamID uuid.UUID) ([]models.CompletionSubmission, error)
}

// ConceptServiceInterface defines the interface for comprehension checks
type ConceptServiceInterface interface {
	GetConcept(ctx context.Context, id string) (*catalog.Concept, error)
	SubmitConceptCheck(ctx context.Context, req *ConceptCheckRequest) (*ConceptCheckResult, error)
	ListAttempts(ctx context.Context, participantID uuid.UUID) ([]models.ConceptAttempt, error)
}

// ProjectionServiceInterface defines the interface for observer read models
type ProjectionServiceInterface interface {
	Leaderboard(ctx context.Context, sessionID uuid.UUID) ([]LeaderboardEntry, error)
	FacilitatorFeed(ctx context.Context, sessionID uuid.UUID) ([]FeedEntry, error)
	RivalFeed(ctx context.Context, teamID uuid.UUID) ([]RivalNotice, error)
	TeamEvents(ctx context.Context, teamID uuid.UUID, limit int) ([]models.TeamEvent, error)
	AdminActions(ctx context.Context, teamID uuid.UUID, limit int) ([]models.AdminAction, error)
	MissionOutcomes(ctx context.Context, teamID uuid.UUID) ([]models.MissionOutcome, error)
}

var (
	_ SessionServiceInterface     = (*SessionService)(nil)
	_ VoteServiceInterface        = (*VoteService)(nil)
	_ ProgressionServiceInterface = (*ProgressionService)(nil)
	_ SubmissionServiceInterface  = (*SubmissionService)(nil)
	_ ConceptServiceInterface     = (*ConceptService)(nil)
	_ ProjectionServiceInterface  = (*ProjectionService)(nil)
)
