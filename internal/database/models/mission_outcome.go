package models

import (
	"github.com/google/uuid"
)

// MissionOutcome is created once per (team, mission) when the terminal round resolves.
// Deltas are the sum over every round of the mission.
type MissionOutcome struct {
	RecordModel
	TeamID       uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_mission_outcomes_team_mission,priority:1"`
	MissionID    string    `json:"mission_id" gorm:"size:64;not null;uniqueIndex:idx_mission_outcomes_team_mission,priority:2"`
	MissionIndex int       `json:"mission_index" gorm:"not null"`
	RoundID      string    `json:"round_id" gorm:"size:64;not null"`
	ConceptID    string    `json:"concept_id" gorm:"size:64;not null"`
	StateVersion int64     `json:"state_version" gorm:"not null"`
	ResolutionFields
}

// TableName returns the table name for MissionOutcome
func (MissionOutcome) TableName() string {
	return "mission_outcomes"
}
