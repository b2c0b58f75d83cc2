package models

import (
	"mission-control-backend/internal/traits"

	"gorm.io/datatypes"
)

// TallySnapshot is the frozen count vector stored with a resolution
type TallySnapshot struct {
	Counts []int `json:"counts"`
	Voters int   `json:"voters"`
}

// ResolutionFields are the columns shared by round results and mission outcomes
type ResolutionFields struct {
	WinningOption int                               `json:"winning_option" gorm:"not null"`
	Narrative     string                            `json:"narrative" gorm:"type:text"`
	ScoreDelta    int                               `json:"score_delta" gorm:"not null;default:0"`
	TraitDelta    traits.Vector                     `json:"trait_delta" gorm:"embedded;embeddedPrefix:delta_"`
	Tally         datatypes.JSONType[TallySnapshot] `json:"tally"`
	Forced        bool                              `json:"forced" gorm:"not null;default:false"`
	ResolvedBy    string                            `json:"resolved_by" gorm:"size:64"`
}
