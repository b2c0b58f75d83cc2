package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/database/models"
	"mission-control-backend/internal/progression"
	"mission-control-backend/internal/traits"

	"github.com/google/uuid"
)

// ProjectionService serves read-only views for observers
type ProjectionService struct {
	repos    Repositories
	catalog  catalog.MissionCatalog
	settings Settings
	now      Clock
}

// NewProjectionService creates a new projection service
func NewProjectionService(repos Repositories, missions catalog.MissionCatalog, settings Settings) *ProjectionService {
	return &ProjectionService{repos: repos, catalog: missions, settings: settings, now: time.Now}
}

// WithClock replaces the time source
func (s *ProjectionService) WithClock(clock Clock) *ProjectionService {
	s.now = clock
	return s
}

// LeaderboardEntry is one ranked team
type LeaderboardEntry struct {
	Rank          int          `json:"rank"`
	TeamID        uuid.UUID    `json:"team_id"`
	Name          string       `json:"name"`
	Color         string       `json:"color"`
	Score         int          `json:"score"`
	MissionIndex  int          `json:"mission_index"`
	TotalMissions int          `json:"total_missions"`
	Title         traits.Title `json:"title"`
	Complete      bool         `json:"complete"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
}

// FeedEntry is the facilitator's live view of one team
type FeedEntry struct {
	Team               *TeamState `json:"team"`
	ActiveParticipants int        `json:"active_participants"`
	SinceProgress      string     `json:"since_progress"`
	Stuck              bool       `json:"stuck"`
}

// RivalNotice announces another team's finished mission
type RivalNotice struct {
	TeamID       uuid.UUID `json:"team_id"`
	TeamName     string    `json:"team_name"`
	MissionID    string    `json:"mission_id"`
	MissionTitle string    `json:"mission_title"`
	Message      string    `json:"message"`
	At           time.Time `json:"at"`
}

// Leaderboard ranks a session's teams by score, earlier completion first on ties
func (s *ProjectionService) Leaderboard(ctx context.Context, sessionID uuid.UUID) ([]LeaderboardEntry, error) {
	teams, err := s.repos.Teams.GetLeaderboard(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	total := s.catalog.TotalMissions()
	entries := make([]LeaderboardEntry, len(teams))
	for i := range teams {
		t := &teams[i]
		entries[i] = LeaderboardEntry{
			Rank:          i + 1,
			TeamID:        t.ID,
			Name:          t.Name,
			Color:         t.Color,
			Score:         t.Score,
			MissionIndex:  t.MissionIndex,
			TotalMissions: total,
			Title:         traits.Classify(t.Traits),
			Complete:      t.IsComplete(),
			CompletedAt:   t.CompletedAt,
		}
	}
	return entries, nil
}

// FacilitatorFeed returns every team of the session with recency and stuck flags
func (s *ProjectionService) FacilitatorFeed(ctx context.Context, sessionID uuid.UUID) ([]FeedEntry, error) {
	now := s.now()
	teams, err := s.repos.Teams.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	active, err := s.repos.Participants.CountActiveBySession(ctx, sessionID, now.Add(-s.settings.ActiveWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count active participants: %w", err)
	}

	feed := make([]FeedEntry, len(teams))
	for i := range teams {
		t := &teams[i]
		idle := now.Sub(t.LastProgressAt)
		feed[i] = FeedEntry{
			Team:               newTeamState(t, s.catalog),
			ActiveParticipants: active[t.ID],
			SinceProgress:      idle.Truncate(time.Second).String(),
			Stuck:              isStuck(t, idle, active[t.ID], s.settings.StuckThreshold),
		}
	}
	return feed, nil
}

func isStuck(team *models.Team, idle time.Duration, active int, threshold time.Duration) bool {
	return !team.IsComplete() && idle > threshold && active > 0
}

// RivalFeed returns other teams' completed missions within the rival window
func (s *ProjectionService) RivalFeed(ctx context.Context, teamID uuid.UUID) ([]RivalNotice, error) {
	team, err := getTeam(ctx, s.repos, teamID)
	if err != nil {
		return nil, err
	}
	since := s.now().Add(-s.settings.RivalWindow)
	events, err := s.repos.Events.GetRecentBySession(ctx, team.SessionID, models.TeamEventMissionCompleted, since, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rival events: %w", err)
	}

	notices := make([]RivalNotice, 0, len(events))
	for _, e := range events {
		var payload struct {
			TeamName     string `json:"team_name"`
			MissionID    string `json:"mission_id"`
			MissionTitle string `json:"mission_title"`
		}
		if len(e.Payload) > 0 {
			if err := json.Unmarshal(e.Payload, &payload); err != nil {
				continue
			}
		}
		notices = append(notices, RivalNotice{
			TeamID:       e.TeamID,
			TeamName:     payload.TeamName,
			MissionID:    payload.MissionID,
			MissionTitle: payload.MissionTitle,
			Message:      progression.RivalMessage(payload.TeamName, payload.MissionTitle),
			At:           e.CreatedAt,
		})
	}
	return notices, nil
}

// TeamEvents returns the team's timeline, newest first
func (s *ProjectionService) TeamEvents(ctx context.Context, teamID uuid.UUID, limit int) ([]models.TeamEvent, error) {
	if _, err := getTeam(ctx, s.repos, teamID); err != nil {
		return nil, err
	}
	events, err := s.repos.Events.GetByTeamID(ctx, teamID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load team events: %w", err)
	}
	return events, nil
}

// AdminActions returns the facilitator audit trail of a team, newest first
func (s *ProjectionService) AdminActions(ctx context.Context, teamID uuid.UUID, limit int) ([]models.AdminAction, error) {
	if _, err := getTeam(ctx, s.repos, teamID); err != nil {
		return nil, err
	}
	actions, err := s.repos.AdminActions.GetByTeamID(ctx, teamID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load admin actions: %w", err)
	}
	return actions, nil
}

// MissionOutcomes returns the recorded outcomes of a team in mission order
func (s *ProjectionService) MissionOutcomes(ctx context.Context, teamID uuid.UUID) ([]models.MissionOutcome, error) {
	if _, err := getTeam(ctx, s.repos, teamID); err != nil {
		return nil, err
	}
	outcomes, err := s.repos.Outcomes.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission outcomes: %w", err)
	}
	return outcomes, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return limit
}
