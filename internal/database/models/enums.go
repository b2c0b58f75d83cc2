package models

// SessionStatus defines the lifecycle of a classroom session
type SessionStatus string

const (
	SessionStatusActive   SessionStatus = "active"
	SessionStatusArchived SessionStatus = "archived"
)

// RoundPhase tags the round-state variant stored on a team
type RoundPhase string

const (
	RoundPhaseIdle     RoundPhase = "idle"
	RoundPhaseOpen     RoundPhase = "open"
	RoundPhaseResolved RoundPhase = "resolved"
)

// AdminActionType enumerates facilitator interventions recorded in the audit trail
type AdminActionType string

const (
	AdminActionForceResolve    AdminActionType = "force-resolve"
	AdminActionClearRoundVotes AdminActionType = "clear-round-votes"
	AdminActionJumpMission     AdminActionType = "jump-mission"
	AdminActionResetTeam       AdminActionType = "reset-team"
)

// TeamEventType enumerates timeline entries shown in observer feeds
type TeamEventType string

const (
	TeamEventStudentJoined    TeamEventType = "student_joined"
	TeamEventRoundOpened      TeamEventType = "round_opened"
	TeamEventRoundResolved    TeamEventType = "round_resolved"
	TeamEventMissionCompleted TeamEventType = "mission_completed"
	TeamEventVotesCleared     TeamEventType = "votes_cleared"
	TeamEventMissionJumped    TeamEventType = "mission_jumped"
	TeamEventTeamReset        TeamEventType = "team_reset"
	TeamEventTeamCompleted    TeamEventType = "team_completed"
)

// IsValid checks if the SessionStatus is valid
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusArchived:
		return true
	}
	return false
}

// IsValid checks if the RoundPhase is valid
func (p RoundPhase) IsValid() bool {
	switch p {
	case RoundPhaseIdle, RoundPhaseOpen, RoundPhaseResolved:
		return true
	}
	return false
}

// IsValid checks if the AdminActionType is valid
func (a AdminActionType) IsValid() bool {
	switch a {
	case AdminActionForceResolve, AdminActionClearRoundVotes, AdminActionJumpMission, AdminActionResetTeam:
		return true
	}
	return false
}
