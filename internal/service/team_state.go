package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/progression"
	"mission-control-backend/internal/traits"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoundView is a catalog round as shown to players. Outcomes stay hidden until resolution.
type RoundView struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Rival   bool     `json:"rival"`
	Options []string `json:"options"`
}

// MissionView is the mission a team is currently working on
type MissionView struct {
	ID        string     `json:"id"`
	Index     int        `json:"index"`
	Title     string     `json:"title"`
	Briefing  string     `json:"briefing"`
	ConceptID string     `json:"concept_id"`
	Rounds    int        `json:"rounds"`
	NextRound *RoundView `json:"next_round,omitempty"`
}

// TeamState is the read model of a team returned by queries and mutations
type TeamState struct {
	ID             uuid.UUID          `json:"id"`
	SessionID      uuid.UUID          `json:"session_id"`
	Name           string             `json:"name"`
	Color          string             `json:"color"`
	MissionIndex   int                `json:"mission_index"`
	TotalMissions  int                `json:"total_missions"`
	Score          int                `json:"score"`
	Traits         traits.Vector      `json:"traits"`
	Title          traits.Title       `json:"title"`
	Badges         []string           `json:"badges"`
	Round          models.RoundState  `json:"round"`
	OpenRound      *RoundView         `json:"open_round,omitempty"`
	OpenTally      *progression.Tally `json:"open_tally,omitempty"`
	CurrentMission *MissionView       `json:"current_mission,omitempty"`
	Complete       bool               `json:"complete"`
	ClaimCode      *string            `json:"claim_code,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	LastProgressAt time.Time          `json:"last_progress_at"`
	StateVersion   int64              `json:"state_version"`
}

func newRoundView(r *catalog.Round) *RoundView {
	labels := make([]string, len(r.Options))
	for i, o := range r.Options {
		labels[i] = o.Label
	}
	return &RoundView{ID: r.ID, Prompt: r.Prompt, Rival: r.Rival, Options: labels}
}

func newTeamState(team *models.Team, cat catalog.MissionCatalog) *TeamState {
	badges := append([]string{}, team.Badges...)
	state := &TeamState{
		ID:             team.ID,
		SessionID:      team.SessionID,
		Name:           team.Name,
		Color:          team.Color,
		MissionIndex:   team.MissionIndex,
		TotalMissions:  cat.TotalMissions(),
		Score:          team.Score,
		Traits:         team.Traits,
		Title:          traits.Classify(team.Traits),
		Badges:         badges,
		Round:          team.CurrentRound(),
		Complete:       team.IsComplete(),
		ClaimCode:      team.ClaimCode,
		CompletedAt:    team.CompletedAt,
		LastProgressAt: team.LastProgressAt,
		StateVersion:   team.StateVersion,
	}

	if m, err := cat.MissionAt(team.MissionIndex); err == nil {
		view := &MissionView{
			ID:        m.ID,
			Index:     team.MissionIndex,
			Title:     m.Title,
			Briefing:  m.Briefing,
			ConceptID: m.ConceptID,
			Rounds:    len(m.Rounds),
		}
		if next, err := nextRoundToOpen(team, m); err == nil {
			view.NextRound = newRoundView(next)
		}
		state.CurrentMission = view
	}

	if state.Round.Phase == models.RoundPhaseOpen {
		if m, err := cat.MissionByID(state.Round.MissionID); err == nil {
			if r, err := m.Round(state.Round.RoundID); err == nil {
				state.OpenRound = newRoundView(r)
			}
		}
	}
	return state
}

// nextRoundToOpen returns the round a team would open next within mission m
func nextRoundToOpen(team *models.Team, m *catalog.Mission) (*catalog.Round, error) {
	rs := team.CurrentRound()
	switch rs.Phase {
	case models.RoundPhaseOpen:
		return nil, errRoundAlreadyOpen
	case models.RoundPhaseResolved:
		if rs.MissionID == m.ID {
			idx, err := m.RoundIndex(rs.RoundID)
			if err != nil {
				return nil, err
			}
			if idx+1 >= len(m.Rounds) {
				return nil, errNoNextRound
			}
			return &m.Rounds[idx+1], nil
		}
	}
	return &m.Rounds[0], nil
}

var (
	errRoundAlreadyOpen = errors.New("round already open")
	errNoNextRound      = errors.New("mission has no further rounds")
)

// loadTally builds the fixed-length count vector for one round
func loadTally(ctx context.Context, repos Repositories, teamID uuid.UUID, missionID string, round *catalog.Round) (progression.Tally, error) {
	tally := progression.NewTally(round.OptionCount())
	counts, err := repos.Votes.CountByOption(ctx, teamID, missionID, round.ID)
	if err != nil {
		return tally, fmt.Errorf("failed to tally votes: %w", err)
	}
	for idx, c := range counts {
		if idx >= 0 && idx < len(tally.Counts) {
			tally.Counts[idx] = c
			tally.Voters += c
		}
	}
	return tally, nil
}

// missionOutcomeFor returns the recorded outcome of a mission, or nil when there is none
func missionOutcomeFor(ctx context.Context, repos Repositories, teamID uuid.UUID, missionID string) (*models.MissionOutcome, error) {
	outcome, err := repos.Outcomes.GetByTeamAndMission(ctx, teamID, missionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load mission outcome: %w", err)
	}
	return outcome, nil
}

// openRoundTx opens roundID of mission m on team. It must run inside a transaction.
func openRoundTx(ctx context.Context, repos Repositories, team *models.Team, m *catalog.Mission, roundID string, now time.Time) error {
	next, err := nextRoundToOpen(team, m)
	if err != nil {
		if errors.Is(err, errRoundAlreadyOpen) {
			return apperrors.ErrRoundAlreadyOpen
		}
		return apperrors.ErrRoundNotCurrent
	}
	if next.ID != roundID {
		return apperrors.ErrRoundNotCurrent
	}

	observed := team.StateVersion
	team.OpenRound(m.ID, roundID, now)
	if err := repos.Teams.UpdateState(ctx, team, observed); err != nil {
		return err
	}
	return appendEvent(ctx, repos, team, models.TeamEventRoundOpened, map[string]interface{}{
		"mission_id": m.ID,
		"round_id":   roundID,
	})
}
