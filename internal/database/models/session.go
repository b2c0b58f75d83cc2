package models

import "time"

// Session groups the teams of one class run
type Session struct {
	BaseModel
	Name          string        `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	FacilitatorID string        `json:"facilitator_id" gorm:"size:64;not null;index" validate:"required,max=64"`
	Status        SessionStatus `json:"status" gorm:"size:16;not null;default:active"`
	ArchivedAt    *time.Time    `json:"archived_at,omitempty"`

	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:SessionID"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// IsArchived reports whether team mutations are closed for this session
func (s *Session) IsArchived() bool {
	return s.Status == SessionStatusArchived
}
