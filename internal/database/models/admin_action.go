package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminActionOutcome is the recorded result of a facilitator intervention
type AdminActionOutcome struct {
	Success      bool   `json:"success"`
	StateVersion int64  `json:"state_version"`
	Error        string `json:"error,omitempty"`
	ErrorKind    string `json:"error_kind,omitempty"`
}

// AdminAction is an immutable audit entry. Failed attempts are recorded too.
type AdminAction struct {
	RecordModel
	TeamID  uuid.UUID                              `json:"team_id" gorm:"type:uuid;not null;index:idx_admin_actions_team_time,priority:1"`
	Actor   string                                 `json:"actor" gorm:"size:64;not null"`
	Action  AdminActionType                        `json:"action" gorm:"size:32;not null;index"`
	Input   datatypes.JSON                         `json:"input" gorm:"type:jsonb"`
	Outcome datatypes.JSONType[AdminActionOutcome] `json:"outcome"`
	Success bool                                   `json:"success" gorm:"not null;index"`
}

// TableName returns the table name for AdminAction
func (AdminAction) TableName() string {
	return "admin_actions"
}
