package models

import (
	"time"

	"mission-control-backend/internal/traits"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Team is the single source of truth for a group's progression
type Team struct {
	BaseModel
	SessionID    uuid.UUID     `json:"session_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string        `json:"name" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	Color        string        `json:"color" gorm:"size:20" validate:"max=20"`
	MissionIndex int           `json:"mission_index" gorm:"not null;default:0"`
	Score        int           `json:"score" gorm:"not null;default:0"`
	Traits       traits.Vector `json:"traits" gorm:"embedded;embeddedPrefix:trait_"`
	// One entry per mission position below MissionIndex. Jumped-over positions hold "".
	Badges datatypes.JSONSlice[string] `json:"badges" gorm:"not null;default:'[]'"`

	RoundPhase     RoundPhase `json:"round_phase" gorm:"size:10;not null;default:idle"`
	RoundMissionID *string    `json:"round_mission_id,omitempty" gorm:"size:64"`
	RoundID        *string    `json:"round_id,omitempty" gorm:"size:64"`

	ClaimCode      *string    `json:"claim_code,omitempty" gorm:"size:40;uniqueIndex"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	LastProgressAt time.Time  `json:"last_progress_at" gorm:"not null"`
	StateVersion   int64      `json:"state_version" gorm:"not null;default:0"`

	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// RoundState is the tagged round variant carried by a team
type RoundState struct {
	Phase     RoundPhase `json:"phase"`
	MissionID string     `json:"mission_id,omitempty"`
	RoundID   string     `json:"round_id,omitempty"`
}

// CurrentRound returns the team's round state
func (t *Team) CurrentRound() RoundState {
	rs := RoundState{Phase: t.RoundPhase}
	if rs.Phase == "" {
		rs.Phase = RoundPhaseIdle
	}
	if t.RoundMissionID != nil {
		rs.MissionID = *t.RoundMissionID
	}
	if t.RoundID != nil {
		rs.RoundID = *t.RoundID
	}
	return rs
}

// IsComplete reports whether the team has a claim code
func (t *Team) IsComplete() bool {
	return t.CompletedAt != nil && t.ClaimCode != nil
}

// HasOpenRound reports whether the given round is accepting votes
func (t *Team) HasOpenRound(missionID, roundID string) bool {
	rs := t.CurrentRound()
	return rs.Phase == RoundPhaseOpen && rs.MissionID == missionID && rs.RoundID == roundID
}

// OpenRound moves the team into RoundOpen
func (t *Team) OpenRound(missionID, roundID string, now time.Time) {
	t.RoundPhase = RoundPhaseOpen
	t.RoundMissionID = &missionID
	t.RoundID = &roundID
	t.LastProgressAt = now
}

// MarkRoundResolved moves an open non-terminal round into Resolved
func (t *Team) MarkRoundResolved(now time.Time) {
	t.RoundPhase = RoundPhaseResolved
	t.LastProgressAt = now
}

// ClearRound drops any round state and returns the team to Idle
func (t *Team) ClearRound() {
	t.RoundPhase = RoundPhaseIdle
	t.RoundMissionID = nil
	t.RoundID = nil
}

// AdvanceMission applies a mission outcome and moves the pointer forward
func (t *Team) AdvanceMission(scoreDelta int, delta traits.Vector, badge string, now time.Time) {
	t.Score += scoreDelta
	t.Traits = t.Traits.Add(delta)
	t.appendBadge(badge)
	t.ClearRound()
	t.LastProgressAt = now
}

// SkipTo sets the mission pointer directly. Badges are padded or truncated so one slot exists per position.
func (t *Team) SkipTo(index int, now time.Time) {
	badges := append([]string(nil), t.Badges...)
	if index < len(badges) {
		badges = badges[:index]
	}
	for len(badges) < index {
		badges = append(badges, "")
	}
	t.Badges = badges
	t.MissionIndex = index
	t.ClearRound()
	t.LastProgressAt = now
}

// Complete stamps the claim code and completion time
func (t *Team) Complete(claimCode string, now time.Time) {
	t.ClaimCode = &claimCode
	t.CompletedAt = &now
}

// Uncomplete clears the claim code and completion time
func (t *Team) Uncomplete() {
	t.ClaimCode = nil
	t.CompletedAt = nil
}

// ResetProgress rewrites every progression field to its initial value
func (t *Team) ResetProgress(now time.Time) {
	t.MissionIndex = 0
	t.Score = 0
	t.Traits = traits.Vector{}
	t.Badges = datatypes.JSONSlice[string]{}
	t.ClearRound()
	t.Uncomplete()
	t.LastProgressAt = now
}

// EarnedBadges returns badges for resolved missions, skipping jumped-over slots
func (t *Team) EarnedBadges() []string {
	out := make([]string, 0, len(t.Badges))
	for _, b := range t.Badges {
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (t *Team) appendBadge(badge string) {
	badges := append([]string(nil), t.Badges...)
	t.Badges = append(badges, badge)
	t.MissionIndex++
}
