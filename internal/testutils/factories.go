package testutils

import (
	"time"

	"mission-control-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates an active test Session with default values
func (f *SessionFactory) Create() *models.Session {
	return &models.Session{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          "Test Session",
		FacilitatorID: "test-facilitator",
		Status:        models.SessionStatusActive,
	}
}

// WithFacilitator sets a custom facilitator for the session
func (f *SessionFactory) WithFacilitator(facilitatorID string) *models.Session {
	session := f.Create()
	session.FacilitatorID = facilitatorID
	return session
}

// Archived creates an archived session
func (f *SessionFactory) Archived() *models.Session {
	session := f.Create()
	now := time.Now()
	session.Status = models.SessionStatusArchived
	session.ArchivedAt = &now
	return session
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team at its first mission with no open round
func (f *TeamFactory) Create(sessionID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SessionID:      sessionID,
		Name:           "Test Team",
		Color:          "red",
		Badges:         datatypes.JSONSlice[string]{},
		RoundPhase:     models.RoundPhaseIdle,
		LastProgressAt: time.Now(),
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(sessionID uuid.UUID, name string) *models.Team {
	team := f.Create(sessionID)
	team.Name = name
	return team
}

// WithScore creates a team with a score and mission index
func (f *TeamFactory) WithScore(sessionID uuid.UUID, name string, score, missionIndex int) *models.Team {
	team := f.WithName(sessionID, name)
	team.Score = score
	team.MissionIndex = missionIndex
	for i := 0; i < missionIndex; i++ {
		team.Badges = append(team.Badges, "badge")
	}
	return team
}

// ParticipantFactory provides methods to create test Participant data
type ParticipantFactory struct{}

// NewParticipantFactory creates a new ParticipantFactory
func NewParticipantFactory() *ParticipantFactory {
	return &ParticipantFactory{}
}

// Create creates a test Participant seated in team
func (f *ParticipantFactory) Create(team *models.Team, displayName string) *models.Participant {
	now := time.Now()
	return &models.Participant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SessionID:   team.SessionID,
		TeamID:      team.ID,
		DisplayName: displayName,
		LastSeenAt:  &now,
	}
}

// VoteFactory provides methods to create test Vote data
type VoteFactory struct{}

// NewVoteFactory creates a new VoteFactory
func NewVoteFactory() *VoteFactory {
	return &VoteFactory{}
}

// Create creates a test Vote
func (f *VoteFactory) Create(teamID, participantID uuid.UUID, missionID, roundID string, optionIndex int) *models.Vote {
	return &models.Vote{
		TeamID:        teamID,
		ParticipantID: participantID,
		MissionID:     missionID,
		RoundID:       roundID,
		OptionIndex:   optionIndex,
	}
}

// FactorySet groups every factory for convenient access in suites
type FactorySet struct {
	Session     *SessionFactory
	Team        *TeamFactory
	Participant *ParticipantFactory
	Vote        *VoteFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Session:     NewSessionFactory(),
		Team:        NewTeamFactory(),
		Participant: NewParticipantFactory(),
		Vote:        NewVoteFactory(),
	}
}
