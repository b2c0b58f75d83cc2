// Package progression contains the pure parts of the mission engine: turning a vote tally
// into an outcome, deriving claim codes and rendering rival flavor text. Nothing here touches storage.
package progression

import (
	"fmt"

	"mission-control-backend/internal/catalog"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/traits"
)

// Tally is a fixed-length count vector over option indices plus the distinct-voter count.
type Tally struct {
	Counts []int `json:"counts"`
	Voters int   `json:"voters"`
}

// NewTally builds a tally with optionCount zeroed slots.
func NewTally(optionCount int) Tally {
	return Tally{Counts: make([]int, optionCount)}
}

// Total returns the sum of all counts.
func (t Tally) Total() int {
	total := 0
	for _, c := range t.Counts {
		total += c
	}
	return total
}

// Resolution is the deterministic result of resolving one round.
type Resolution struct {
	MissionID     string        `json:"mission_id"`
	RoundID       string        `json:"round_id"`
	WinningOption int           `json:"winning_option"`
	Narrative     string        `json:"narrative"`
	ScoreDelta    int           `json:"score_delta"`
	TraitDelta    traits.Vector `json:"trait_delta"`
	ConceptID     string        `json:"concept_id"`
	Tally         Tally         `json:"tally"`
	Forced        bool          `json:"forced"`
}

// WinningOption returns the argmax of counts. Ties go to the lowest index.
func WinningOption(counts []int) (int, error) {
	best, bestCount := -1, 0
	for i, c := range counts {
		if c > bestCount {
			best, bestCount = i, c
		}
	}
	if best < 0 {
		return -1, apperrors.ErrNoVotes
	}
	return best, nil
}

// Resolve computes the outcome of roundID in mission m from tally.
func Resolve(m *catalog.Mission, roundID string, tally Tally) (*Resolution, error) {
	round, err := m.Round(roundID)
	if err != nil {
		return nil, err
	}
	if len(tally.Counts) != round.OptionCount() {
		return nil, fmt.Errorf("tally has %d slots for a %d-option round", len(tally.Counts), round.OptionCount())
	}
	winner, err := WinningOption(tally.Counts)
	if err != nil {
		return nil, err
	}
	return buildResolution(m, round, winner, tally, false), nil
}

// ResolveForced applies a facilitator-chosen option regardless of the tally. An empty tally is allowed.
func ResolveForced(m *catalog.Mission, roundID string, option int, tally Tally) (*Resolution, error) {
	round, err := m.Round(roundID)
	if err != nil {
		return nil, err
	}
	if option < 0 || option >= round.OptionCount() {
		return nil, apperrors.NewInvalidOptionError(option, round.OptionCount())
	}
	if len(tally.Counts) != round.OptionCount() {
		tally = NewTally(round.OptionCount())
	}
	return buildResolution(m, round, option, tally, true), nil
}

func buildResolution(m *catalog.Mission, round *catalog.Round, winner int, tally Tally, forced bool) *Resolution {
	outcome := round.Options[winner].Outcome
	return &Resolution{
		MissionID:     m.ID,
		RoundID:       round.ID,
		WinningOption: winner,
		Narrative:     outcome.Narrative,
		ScoreDelta:    outcome.ScoreDelta,
		TraitDelta:    outcome.Traits,
		ConceptID:     m.ConceptID,
		Tally:         tally,
		Forced:        forced,
	}
}
