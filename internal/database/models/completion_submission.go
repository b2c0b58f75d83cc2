package models

import (
	"github.com/google/uuid"
)

// CompletionSubmission is a participant's terminal record. One per participant.
type CompletionSubmission struct {
	RecordModel
	ParticipantID uuid.UUID `json:"participant_id" gorm:"type:uuid;not null;uniqueIndex"`
	TeamID        uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	TeamClaimCode string    `json:"team_claim_code" gorm:"size:40;not null"`
	ClaimCode     string    `json:"claim_code" gorm:"size:60;not null"`
	Reflection    string    `json:"reflection,omitempty" gorm:"type:text" validate:"max=2000"`
}

// TableName returns the table name for CompletionSubmission
func (CompletionSubmission) TableName() string {
	return "completion_submissions"
}
