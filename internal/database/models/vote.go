package models

import (
	"github.com/google/uuid"
)

// Vote is one participant's choice for one round. Unique per (team, mission, round, participant).
type Vote struct {
	BaseModel
	TeamID        uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_ballot,priority:1"`
	MissionID     string    `json:"mission_id" gorm:"size:64;not null;uniqueIndex:idx_votes_ballot,priority:2"`
	RoundID       string    `json:"round_id" gorm:"size:64;not null;uniqueIndex:idx_votes_ballot,priority:3"`
	ParticipantID uuid.UUID `json:"participant_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_ballot,priority:4"`
	OptionIndex   int       `json:"option_index" gorm:"not null" validate:"min=0"`
}

// TableName returns the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
