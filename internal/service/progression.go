package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/logger"
	"mission-control-backend/internal/progression"
	"mission-control-backend/internal/repository"
	"mission-control-backend/internal/telemetry"
	"mission-control-backend/internal/traits"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgressionService owns the team progression state machine
type ProgressionService struct {
	repos     Repositories
	catalog   catalog.MissionCatalog
	settings  Settings
	validator *validator.Validate
	now       Clock
}

// NewProgressionService creates a new progression service
func NewProgressionService(repos Repositories, missions catalog.MissionCatalog, settings Settings, validator *validator.Validate) *ProgressionService {
	return &ProgressionService{
		repos:     repos,
		catalog:   missions,
		settings:  settings,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock replaces the time source
func (s *ProgressionService) WithClock(clock Clock) *ProgressionService {
	s.now = clock
	return s
}

// OpenRoundRequest opens the next round of the team's current mission
type OpenRoundRequest struct {
	TeamID          uuid.UUID `json:"-"`
	MissionID       string    `json:"mission_id" validate:"required,max=64"`
	RoundID         string    `json:"round_id" validate:"required,max=64"`
	ExpectedVersion *int64    `json:"expected_version,omitempty"`
}

// ResolveRoundRequest resolves a round from its vote tally
type ResolveRoundRequest struct {
	TeamID          uuid.UUID `json:"-"`
	MissionID       string    `json:"mission_id" validate:"required,max=64"`
	RoundID         string    `json:"round_id" validate:"required,max=64"`
	ExpectedVersion *int64    `json:"expected_version,omitempty"`
}

// ForceResolveRequest resolves the team's open round on a facilitator's behalf.
// Without an option index the tally decides.
type ForceResolveRequest struct {
	TeamID          uuid.UUID `json:"-"`
	OptionIndex     *int      `json:"option_index,omitempty" validate:"omitempty,min=0"`
	ExpectedVersion *int64    `json:"expected_version,omitempty"`
}

// ClearRoundVotesRequest clears every vote of the team's open round
type ClearRoundVotesRequest struct {
	TeamID          uuid.UUID `json:"-"`
	ExpectedVersion *int64    `json:"expected_version,omitempty"`
}

// JumpMissionRequest moves the team's mission pointer directly
type JumpMissionRequest struct {
	TeamID          uuid.UUID `json:"-"`
	TargetIndex     int       `json:"target_index" validate:"min=0"`
	ExpectedVersion *int64    `json:"expected_version,omitempty"`
}

// ResetTeamRequest returns a team to its initial state
type ResetTeamRequest struct {
	TeamID          uuid.UUID `json:"-"`
	ExpectedVersion *int64    `json:"expected_version,omitempty"`
}

// ResolveResult is the outcome of a resolve call
type ResolveResult struct {
	Resolution       *progression.Resolution `json:"resolution"`
	MissionCompleted bool                    `json:"mission_completed"`
	AlreadyResolved  bool                    `json:"already_resolved"`
	Team             *TeamState              `json:"team"`
}

// ClearVotesResult is the outcome of clearing a round's votes
type ClearVotesResult struct {
	Removed int64      `json:"removed"`
	Team    *TeamState `json:"team"`
}

// GetTeamState returns the current state of a team, including the open round's tally
func (s *ProgressionService) GetTeamState(ctx context.Context, teamID uuid.UUID) (*TeamState, error) {
	team, err := getTeam(ctx, s.repos, teamID)
	if err != nil {
		return nil, err
	}
	state := newTeamState(team, s.catalog)
	if state.Round.Phase == models.RoundPhaseOpen {
		if m, err := s.catalog.MissionByID(state.Round.MissionID); err == nil {
			if r, err := m.Round(state.Round.RoundID); err == nil {
				tally, err := loadTally(ctx, s.repos, team.ID, m.ID, r)
				if err != nil {
					return nil, err
				}
				state.OpenTally = &tally
			}
		}
	}
	return state, nil
}

// OpenRound transitions Idle or Resolved into RoundOpen for the next round of the current mission
func (s *ProgressionService) OpenRound(ctx context.Context, req *OpenRoundRequest) (*TeamState, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	ctx, span := telemetry.StartSpan(ctx, "progression.OpenRound", attribute.String("team_id", req.TeamID.String()))

	var team *models.Team
	err := retryOnConflict(ctx, s.settings, req.ExpectedVersion, func() error {
		t, err := getMutableTeam(ctx, s.repos, req.TeamID)
		if err != nil {
			return err
		}
		if err := checkVersion(t, req.ExpectedVersion); err != nil {
			return err
		}
		m, err := s.currentMission(ctx, t, req.MissionID)
		if err != nil {
			return err
		}
		if _, err := m.Round(req.RoundID); err != nil {
			return err
		}
		if err := s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return openRoundTx(ctx, s.repos, t, m, req.RoundID, s.now())
		}); err != nil {
			return err
		}
		team = t
		return nil
	})
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":       team.ID,
		"operation":     "open_round",
		"mission_id":    req.MissionID,
		"round_id":      req.RoundID,
		"state_version": team.StateVersion,
	}).Info("round opened")
	return newTeamState(team, s.catalog), nil
}

// currentMission returns the mission at the team's pointer and checks it is missionID.
// Missions that already have an outcome can only be replayed through resolve.
func (s *ProgressionService) currentMission(ctx context.Context, team *models.Team, missionID string) (*catalog.Mission, error) {
	return currentMission(ctx, s.repos, s.catalog, team, missionID)
}

func currentMission(ctx context.Context, repos Repositories, cat catalog.MissionCatalog, team *models.Team, missionID string) (*catalog.Mission, error) {
	if team.IsComplete() || team.MissionIndex >= cat.TotalMissions() {
		return nil, apperrors.ErrTeamComplete
	}
	if _, err := cat.MissionByID(missionID); err != nil {
		return nil, err
	}
	m, err := cat.MissionAt(team.MissionIndex)
	if err != nil {
		return nil, err
	}
	if m.ID != missionID {
		return nil, apperrors.ErrRoundNotCurrent
	}
	existing, err := missionOutcomeFor(ctx, repos, team.ID, m.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrMissionAlreadyResolved
	}
	return m, nil
}

// ResolveRound resolves a round from its votes and applies the outcome atomically
func (s *ProgressionService) ResolveRound(ctx context.Context, req *ResolveRoundRequest, actor string) (*ResolveResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.resolve(ctx, resolveInput{
		teamID:    req.TeamID,
		missionID: req.MissionID,
		roundID:   req.RoundID,
		expected:  req.ExpectedVersion,
		actor:     actor,
	})
}

// ForceResolve resolves the team's open round for a facilitator. Every call is audited.
func (s *ProgressionService) ForceResolve(ctx context.Context, req *ForceResolveRequest, actor string) (*ResolveResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	audit := &auditSpec{action: models.AdminActionForceResolve, input: req}
	result, err := s.resolve(ctx, resolveInput{
		teamID:       req.TeamID,
		expected:     req.ExpectedVersion,
		forcedOption: req.OptionIndex,
		actor:        actor,
		audit:        audit,
	})
	if err != nil {
		recordFailedAdminAction(ctx, s.repos, req.TeamID, actor, models.AdminActionForceResolve, req, err)
		return nil, err
	}
	if result.AlreadyResolved && !audit.recorded {
		if err := recordAdminAction(ctx, s.repos, req.TeamID, actor, models.AdminActionForceResolve, req, result.Team.StateVersion, nil); err != nil {
			logger.WithContext(ctx).WithError(err).Error("audit write failed")
		}
	}
	return result, nil
}

type auditSpec struct {
	action   models.AdminActionType
	input    interface{}
	recorded bool
}

type resolveInput struct {
	teamID       uuid.UUID
	missionID    string
	roundID      string
	expected     *int64
	forcedOption *int
	actor        string
	audit        *auditSpec
}

func (s *ProgressionService) resolve(ctx context.Context, in resolveInput) (*ResolveResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "progression.Resolve",
		attribute.String("team_id", in.teamID.String()),
		attribute.Bool("forced", in.forcedOption != nil || in.audit != nil),
	)

	var result *ResolveResult
	err := retryOnConflict(ctx, s.settings, in.expected, func() error {
		r, err := s.resolveOnce(ctx, in)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":          in.teamID,
		"operation":        "resolve_round",
		"mission_id":       result.Resolution.MissionID,
		"round_id":         result.Resolution.RoundID,
		"winning_option":   result.Resolution.WinningOption,
		"already_resolved": result.AlreadyResolved,
		"state_version":    result.Team.StateVersion,
	}).Info("round resolved")
	return result, nil
}

func (s *ProgressionService) resolveOnce(ctx context.Context, in resolveInput) (*ResolveResult, error) {
	if in.audit != nil {
		in.audit.recorded = false
	}
	team, err := getMutableTeam(ctx, s.repos, in.teamID)
	if err != nil {
		return nil, err
	}

	missionID, roundID := in.missionID, in.roundID
	if missionID == "" {
		rs := team.CurrentRound()
		if rs.Phase != models.RoundPhaseOpen {
			return nil, apperrors.ErrNoOpenRound
		}
		missionID, roundID = rs.MissionID, rs.RoundID
	}

	mission, err := s.catalog.MissionByID(missionID)
	if err != nil {
		return nil, err
	}
	if _, err := mission.Round(roundID); err != nil {
		return nil, err
	}
	missionIndex, err := s.catalog.IndexOf(missionID)
	if err != nil {
		return nil, err
	}
	terminal := mission.IsTerminalRound(roundID)

	// Settled rounds answer before the version check so a losing racer still gets the result.
	if terminal {
		existing, err := missionOutcomeFor(ctx, s.repos, team.ID, missionID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if team.MissionIndex == missionIndex {
				if err := checkVersion(team, in.expected); err != nil {
					return nil, err
				}
				return s.replayOutcome(ctx, team, mission, existing, in)
			}
			return s.settled(team, resolutionFromRecord(missionID, existing.RoundID, existing.ConceptID, existing.ResolutionFields), true), nil
		}
	} else {
		prior, err := s.roundResult(ctx, team.ID, missionID, roundID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			return s.settled(team, resolutionFromRecord(missionID, roundID, mission.ConceptID, prior.ResolutionFields), false), nil
		}
	}

	if err := checkVersion(team, in.expected); err != nil {
		return nil, err
	}
	if !team.HasOpenRound(missionID, roundID) {
		switch {
		case team.IsComplete():
			return nil, apperrors.ErrTeamComplete
		case team.MissionIndex != missionIndex, team.CurrentRound().Phase == models.RoundPhaseOpen:
			return nil, apperrors.ErrRoundNotCurrent
		default:
			return nil, apperrors.ErrNoOpenRound
		}
	}

	observed := team.StateVersion
	now := s.now()
	var res *progression.Resolution
	completed := false

	err = s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := lockTeam(ctx, s.repos, team.ID, observed); err != nil {
			return err
		}
		round, err := mission.Round(roundID)
		if err != nil {
			return err
		}
		tally, err := loadTally(ctx, s.repos, team.ID, missionID, round)
		if err != nil {
			return err
		}
		if in.forcedOption != nil {
			res, err = progression.ResolveForced(mission, roundID, *in.forcedOption, tally)
		} else {
			res, err = progression.Resolve(mission, roundID, tally)
		}
		if err != nil {
			return err
		}
		res.Forced = in.audit != nil
		fields := resolutionFields(res, in.actor)

		if !terminal {
			if err := s.repos.RoundResults.Create(ctx, &models.RoundResult{
				TeamID:           team.ID,
				MissionID:        missionID,
				RoundID:          roundID,
				ResolutionFields: fields,
			}); err != nil {
				return err
			}
			team.MarkRoundResolved(now)
			if err := s.repos.Teams.UpdateState(ctx, team, observed); err != nil {
				return err
			}
			if err := appendEvent(ctx, s.repos, team, models.TeamEventRoundResolved, map[string]interface{}{
				"mission_id":     missionID,
				"round_id":       roundID,
				"winning_option": res.WinningOption,
				"forced":         res.Forced,
			}); err != nil {
				return err
			}
			return s.auditInTx(ctx, team, in)
		}

		// Terminal round: fold earlier rounds of the mission into the mission-level deltas.
		prior, err := s.repos.RoundResults.GetByMission(ctx, team.ID, missionID)
		if err != nil {
			return fmt.Errorf("failed to load round results: %w", err)
		}
		scoreDelta, traitDelta := res.ScoreDelta, res.TraitDelta
		for _, p := range prior {
			if p.RoundID == roundID {
				continue
			}
			scoreDelta += p.ScoreDelta
			traitDelta = traitDelta.Add(p.TraitDelta)
		}
		fields.ScoreDelta = scoreDelta
		fields.TraitDelta = traitDelta

		if err := s.repos.Outcomes.Create(ctx, &models.MissionOutcome{
			TeamID:           team.ID,
			MissionID:        missionID,
			MissionIndex:     missionIndex,
			RoundID:          roundID,
			ConceptID:        mission.ConceptID,
			StateVersion:     observed + 1,
			ResolutionFields: fields,
		}); err != nil {
			return err
		}

		team.AdvanceMission(scoreDelta, traitDelta, mission.ConceptID, now)
		if completed, err = s.completeIfFinished(ctx, team, now); err != nil {
			return err
		}
		if err := s.repos.Teams.UpdateState(ctx, team, observed); err != nil {
			return err
		}
		if err := s.appendMissionCompleted(ctx, team, mission, res.WinningOption, scoreDelta, res.Forced, false); err != nil {
			return err
		}
		if completed {
			if err := appendEvent(ctx, s.repos, team, models.TeamEventTeamCompleted, map[string]interface{}{
				"claim_code": *team.ClaimCode,
			}); err != nil {
				return err
			}
		}
		res.ScoreDelta = scoreDelta
		res.TraitDelta = traitDelta
		return s.auditInTx(ctx, team, in)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return s.settledAfterRace(ctx, in.teamID, mission, roundID, terminal)
		}
		return nil, err
	}

	return &ResolveResult{
		Resolution:       res,
		MissionCompleted: terminal,
		Team:             newTeamState(team, s.catalog),
	}, nil
}

// replayOutcome advances a rewound team past a mission whose outcome already exists.
// The recorded badge is re-appended but no delta is applied a second time.
func (s *ProgressionService) replayOutcome(ctx context.Context, team *models.Team, mission *catalog.Mission, existing *models.MissionOutcome, in resolveInput) (*ResolveResult, error) {
	observed := team.StateVersion
	now := s.now()
	err := s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := lockTeam(ctx, s.repos, team.ID, observed); err != nil {
			return err
		}
		if err := s.repos.Votes.DeleteUnresolvedByMission(ctx, team.ID, mission.ID); err != nil {
			return err
		}
		team.AdvanceMission(0, traits.Vector{}, existing.ConceptID, now)
		completed, err := s.completeIfFinished(ctx, team, now)
		if err != nil {
			return err
		}
		if err := s.repos.Teams.UpdateState(ctx, team, observed); err != nil {
			return err
		}
		if err := s.appendMissionCompleted(ctx, team, mission, existing.WinningOption, existing.ScoreDelta, existing.Forced, true); err != nil {
			return err
		}
		if completed {
			if err := appendEvent(ctx, s.repos, team, models.TeamEventTeamCompleted, map[string]interface{}{
				"claim_code": *team.ClaimCode,
			}); err != nil {
				return err
			}
		}
		return s.auditInTx(ctx, team, in)
	})
	if err != nil {
		return nil, err
	}
	return &ResolveResult{
		Resolution:       resolutionFromRecord(mission.ID, existing.RoundID, existing.ConceptID, existing.ResolutionFields),
		MissionCompleted: true,
		AlreadyResolved:  true,
		Team:             newTeamState(team, s.catalog),
	}, nil
}

func (s *ProgressionService) auditInTx(ctx context.Context, team *models.Team, in resolveInput) error {
	if in.audit == nil {
		return nil
	}
	if err := recordAdminAction(ctx, s.repos, team.ID, in.actor, in.audit.action, in.audit.input, team.StateVersion, nil); err != nil {
		return err
	}
	in.audit.recorded = true
	return nil
}

func (s *ProgressionService) appendMissionCompleted(ctx context.Context, team *models.Team, mission *catalog.Mission, option, scoreDelta int, forced, replay bool) error {
	return appendEvent(ctx, s.repos, team, models.TeamEventMissionCompleted, map[string]interface{}{
		"mission_id":     mission.ID,
		"mission_title":  mission.Title,
		"team_name":      team.Name,
		"concept_id":     mission.ConceptID,
		"winning_option": option,
		"score_delta":    scoreDelta,
		"forced":         forced,
		"replay":         replay,
	})
}

// completeIfFinished stamps the claim code when the pointer reaches the end. The code is
// hashed from the recorded mission outcomes, not the badge slots, so a team rewound by a
// jump gets the same code back when it finishes again.
func (s *ProgressionService) completeIfFinished(ctx context.Context, team *models.Team, now time.Time) (bool, error) {
	if team.MissionIndex < s.catalog.TotalMissions() || team.IsComplete() {
		return false, nil
	}
	outcomes, err := s.repos.Outcomes.GetByTeamID(ctx, team.ID)
	if err != nil {
		return false, fmt.Errorf("failed to load mission outcomes: %w", err)
	}
	concepts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		concepts = append(concepts, o.ConceptID)
	}
	team.Complete(progression.TeamClaimCode(s.settings.ClaimCodePrefix, team.ID.String(), concepts), now)
	return true, nil
}

func (s *ProgressionService) roundResult(ctx context.Context, teamID uuid.UUID, missionID, roundID string) (*models.RoundResult, error) {
	results, err := s.repos.RoundResults.GetByMission(ctx, teamID, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load round results: %w", err)
	}
	for i := range results {
		if results[i].RoundID == roundID {
			return &results[i], nil
		}
	}
	return nil, nil
}

func (s *ProgressionService) settled(team *models.Team, res *progression.Resolution, missionCompleted bool) *ResolveResult {
	return &ResolveResult{
		Resolution:       res,
		MissionCompleted: missionCompleted,
		AlreadyResolved:  true,
		Team:             newTeamState(team, s.catalog),
	}
}

// settledAfterRace reads back the record a concurrent resolver created first
func (s *ProgressionService) settledAfterRace(ctx context.Context, teamID uuid.UUID, mission *catalog.Mission, roundID string, terminal bool) (*ResolveResult, error) {
	team, err := getTeam(ctx, s.repos, teamID)
	if err != nil {
		return nil, err
	}
	if terminal {
		existing, err := s.repos.Outcomes.GetByTeamAndMission(ctx, teamID, mission.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStateVersionConflict
			}
			return nil, fmt.Errorf("failed to load mission outcome: %w", err)
		}
		return s.settled(team, resolutionFromRecord(mission.ID, existing.RoundID, existing.ConceptID, existing.ResolutionFields), true), nil
	}
	prior, err := s.roundResult(ctx, teamID, mission.ID, roundID)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, apperrors.ErrStateVersionConflict
	}
	return s.settled(team, resolutionFromRecord(mission.ID, roundID, mission.ConceptID, prior.ResolutionFields), false), nil
}

func resolutionFields(res *progression.Resolution, actor string) models.ResolutionFields {
	return models.ResolutionFields{
		WinningOption: res.WinningOption,
		Narrative:     res.Narrative,
		ScoreDelta:    res.ScoreDelta,
		TraitDelta:    res.TraitDelta,
		Tally:         datatypes.NewJSONType(models.TallySnapshot{Counts: res.Tally.Counts, Voters: res.Tally.Voters}),
		Forced:        res.Forced,
		ResolvedBy:    actor,
	}
}

func resolutionFromRecord(missionID, roundID, conceptID string, f models.ResolutionFields) *progression.Resolution {
	snap := f.Tally.Data()
	return &progression.Resolution{
		MissionID:     missionID,
		RoundID:       roundID,
		WinningOption: f.WinningOption,
		Narrative:     f.Narrative,
		ScoreDelta:    f.ScoreDelta,
		TraitDelta:    f.TraitDelta,
		ConceptID:     conceptID,
		Tally:         progression.Tally{Counts: snap.Counts, Voters: snap.Voters},
		Forced:        f.Forced,
	}
}

// ClearRoundVotes deletes every vote of the open round. The attempt is audited whether or not it succeeds.
func (s *ProgressionService) ClearRoundVotes(ctx context.Context, req *ClearRoundVotesRequest, actor string) (*ClearVotesResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "progression.ClearRoundVotes", attribute.String("team_id", req.TeamID.String()))

	var result *ClearVotesResult
	err := retryOnConflict(ctx, s.settings, req.ExpectedVersion, func() error {
		team, err := getMutableTeam(ctx, s.repos, req.TeamID)
		if err != nil {
			return err
		}
		if err := checkVersion(team, req.ExpectedVersion); err != nil {
			return err
		}
		rs := team.CurrentRound()
		if rs.Phase != models.RoundPhaseOpen {
			return apperrors.ErrNoOpenRound
		}

		observed := team.StateVersion
		return s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := lockTeam(ctx, s.repos, team.ID, observed); err != nil {
				return err
			}
			removed, err := s.repos.Votes.DeleteByRound(ctx, team.ID, rs.MissionID, rs.RoundID)
			if err != nil {
				return fmt.Errorf("failed to delete votes: %w", err)
			}
			team.LastProgressAt = s.now()
			if err := s.repos.Teams.UpdateState(ctx, team, observed); err != nil {
				return err
			}
			if err := appendEvent(ctx, s.repos, team, models.TeamEventVotesCleared, map[string]interface{}{
				"mission_id": rs.MissionID,
				"round_id":   rs.RoundID,
				"removed":    removed,
			}); err != nil {
				return err
			}
			if err := recordAdminAction(ctx, s.repos, team.ID, actor, models.AdminActionClearRoundVotes, req, team.StateVersion, nil); err != nil {
				return err
			}
			result = &ClearVotesResult{Removed: removed, Team: newTeamState(team, s.catalog)}
			return nil
		})
	})
	telemetry.EndSpan(span, err)
	if err != nil {
		recordFailedAdminAction(ctx, s.repos, req.TeamID, actor, models.AdminActionClearRoundVotes, req, err)
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"team_id":   req.TeamID,
			"operation": "clear_round_votes",
			"kind":      apperrors.KindOf(err),
		}).Warnf("clear round votes rejected: %v", err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":       req.TeamID,
		"operation":     "clear_round_votes",
		"removed":       result.Removed,
		"state_version": result.Team.StateVersion,
	}).Info("round votes cleared")
	return result, nil
}

// JumpMission sets the mission pointer directly. Skipped missions earn nothing and
// unresolved round state of the abandoned mission is discarded.
func (s *ProgressionService) JumpMission(ctx context.Context, req *JumpMissionRequest, actor string) (*TeamState, error) {
	ctx, span := telemetry.StartSpan(ctx, "progression.JumpMission",
		attribute.String("team_id", req.TeamID.String()),
		attribute.Int("target_index", req.TargetIndex),
	)

	var state *TeamState
	err := func() error {
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("target_index", err.Error())
		}
		return retryOnConflict(ctx, s.settings, req.ExpectedVersion, func() error {
			team, err := getMutableTeam(ctx, s.repos, req.TeamID)
			if err != nil {
				return err
			}
			if err := checkVersion(team, req.ExpectedVersion); err != nil {
				return err
			}
			total := s.catalog.TotalMissions()
			if req.TargetIndex > total {
				return apperrors.ErrMissionIndexInvalid
			}

			observed := team.StateVersion
			from := team.MissionIndex
			abandoned := team.CurrentRound().MissionID
			now := s.now()
			return s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
				if err := lockTeam(ctx, s.repos, team.ID, observed); err != nil {
					return err
				}
				if abandoned != "" {
					if err := s.repos.Votes.DeleteUnresolvedByMission(ctx, team.ID, abandoned); err != nil {
						return fmt.Errorf("failed to discard votes: %w", err)
					}
					if err := s.repos.RoundResults.DeleteUnresolvedByMission(ctx, team.ID, abandoned); err != nil {
						return fmt.Errorf("failed to discard round results: %w", err)
					}
				}
				team.SkipTo(req.TargetIndex, now)
				if team.MissionIndex < total {
					team.Uncomplete()
				} else if _, err := s.completeIfFinished(ctx, team, now); err != nil {
					return err
				}
				if err := s.repos.Teams.UpdateState(ctx, team, observed); err != nil {
					return err
				}
				if err := appendEvent(ctx, s.repos, team, models.TeamEventMissionJumped, map[string]interface{}{
					"from_index":        from,
					"to_index":          req.TargetIndex,
					"discarded_mission": abandoned,
				}); err != nil {
					return err
				}
				if err := recordAdminAction(ctx, s.repos, team.ID, actor, models.AdminActionJumpMission, req, team.StateVersion, nil); err != nil {
					return err
				}
				state = newTeamState(team, s.catalog)
				return nil
			})
		})
	}()
	telemetry.EndSpan(span, err)
	if err != nil {
		recordFailedAdminAction(ctx, s.repos, req.TeamID, actor, models.AdminActionJumpMission, req, err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":       req.TeamID,
		"operation":     "jump_mission",
		"target_index":  req.TargetIndex,
		"state_version": state.StateVersion,
	}).Info("mission jumped")
	return state, nil
}

// ResetTeam deletes the team's satellite rows and rewrites it to initial values in one transaction
func (s *ProgressionService) ResetTeam(ctx context.Context, req *ResetTeamRequest, actor string) (*TeamState, error) {
	ctx, span := telemetry.StartSpan(ctx, "progression.ResetTeam", attribute.String("team_id", req.TeamID.String()))

	var state *TeamState
	err := retryOnConflict(ctx, s.settings, req.ExpectedVersion, func() error {
		team, err := getMutableTeam(ctx, s.repos, req.TeamID)
		if err != nil {
			return err
		}
		if err := checkVersion(team, req.ExpectedVersion); err != nil {
			return err
		}

		observed := team.StateVersion
		previous := map[string]interface{}{
			"previous_mission_index": team.MissionIndex,
			"previous_score":         team.Score,
			"previous_badges":        team.EarnedBadges(),
		}
		return s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := lockTeam(ctx, s.repos, team.ID, observed); err != nil {
				return err
			}
			if err := s.repos.Votes.DeleteByTeam(ctx, team.ID); err != nil {
				return fmt.Errorf("failed to delete votes: %w", err)
			}
			if err := s.repos.RoundResults.DeleteByTeam(ctx, team.ID); err != nil {
				return fmt.Errorf("failed to delete round results: %w", err)
			}
			if err := s.repos.Outcomes.DeleteByTeam(ctx, team.ID); err != nil {
				return fmt.Errorf("failed to delete mission outcomes: %w", err)
			}
			if err := s.repos.Submissions.DeleteByTeam(ctx, team.ID); err != nil {
				return fmt.Errorf("failed to delete submissions: %w", err)
			}
			team.ResetProgress(s.now())
			if err := s.repos.Teams.UpdateState(ctx, team, observed); err != nil {
				return err
			}
			if err := appendEvent(ctx, s.repos, team, models.TeamEventTeamReset, previous); err != nil {
				return err
			}
			if err := recordAdminAction(ctx, s.repos, team.ID, actor, models.AdminActionResetTeam, req, team.StateVersion, nil); err != nil {
				return err
			}
			state = newTeamState(team, s.catalog)
			return nil
		})
	})
	telemetry.EndSpan(span, err)
	if err != nil {
		recordFailedAdminAction(ctx, s.repos, req.TeamID, actor, models.AdminActionResetTeam, req, err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":       req.TeamID,
		"operation":     "reset_team",
		"state_version": state.StateVersion,
	}).Info("team reset")
	return state, nil
}
