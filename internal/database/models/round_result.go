package models

import (
	"github.com/google/uuid"
)

// RoundResult records the outcome of a non-terminal round of a multi-round mission
type RoundResult struct {
	RecordModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_round_results_round,priority:1"`
	MissionID string    `json:"mission_id" gorm:"size:64;not null;uniqueIndex:idx_round_results_round,priority:2"`
	RoundID   string    `json:"round_id" gorm:"size:64;not null;uniqueIndex:idx_round_results_round,priority:3"`
	ResolutionFields
}

// TableName returns the table name for RoundResult
func (RoundResult) TableName() string {
	return "round_results"
}
