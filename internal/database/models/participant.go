package models

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a student seated in exactly one team
type Participant struct {
	BaseModel
	SessionID   uuid.UUID  `json:"session_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID      uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	DisplayName string     `json:"display_name" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	LastSeenAt  *time.Time `json:"last_seen_at,omitempty" gorm:"index"`
}

// TableName returns the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// IsActive reports whether the participant was seen within window of now
func (p *Participant) IsActive(now time.Time, window time.Duration) bool {
	return p.LastSeenAt != nil && now.Sub(*p.LastSeenAt) <= window
}
