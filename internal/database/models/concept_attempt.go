package models

import (
	"time"

	"github.com/google/uuid"
)

// ConceptAttempt counts comprehension check attempts per (participant, concept)
type ConceptAttempt struct {
	BaseModel
	ParticipantID uuid.UUID  `json:"participant_id" gorm:"type:uuid;not null;uniqueIndex:idx_concept_attempts_pc,priority:1"`
	ConceptID     string     `json:"concept_id" gorm:"size:64;not null;uniqueIndex:idx_concept_attempts_pc,priority:2"`
	Attempts      int        `json:"attempts" gorm:"not null;default:0"`
	LastCorrect   int        `json:"last_correct" gorm:"not null;default:0"`
	PassedAt      *time.Time `json:"passed_at,omitempty"`
}

// TableName returns the table name for ConceptAttempt
func (ConceptAttempt) TableName() string {
	return "concept_attempts"
}
