package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TeamEvent is an immutable timeline entry used by observer feeds
type TeamEvent struct {
	RecordModel
	SessionID    uuid.UUID      `json:"session_id" gorm:"type:uuid;not null;index:idx_team_events_session_type,priority:1"`
	TeamID       uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index"`
	Type         TeamEventType  `json:"type" gorm:"size:32;not null;index:idx_team_events_session_type,priority:2"`
	StateVersion int64          `json:"state_version" gorm:"not null"`
	Payload      datatypes.JSON `json:"payload" gorm:"type:jsonb"`
}

// TableName returns the table name for TeamEvent
func (TeamEvent) TableName() string {
	return "team_events"
}
