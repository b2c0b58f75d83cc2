package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mission-control-backend/internal/config"
	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/logger"
	"mission-control-backend/internal/progression"
	"mission-control-backend/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Repositories bundles the stores the game services work against
type Repositories struct {
	Tx           repository.TxManagerInterface
	Sessions     repository.SessionRepositoryInterface
	Teams        repository.TeamRepositoryInterface
	Participants repository.ParticipantRepositoryInterface
	Votes        repository.VoteRepositoryInterface
	RoundResults repository.RoundResultRepositoryInterface
	Outcomes     repository.MissionOutcomeRepositoryInterface
	AdminActions repository.AdminActionRepositoryInterface
	Events       repository.TeamEventRepositoryInterface
	Submissions  repository.CompletionSubmissionRepositoryInterface
	Attempts     repository.ConceptAttemptRepositoryInterface
}

// NewRepositories builds every gorm-backed repository over db
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Tx:           repository.NewTxManager(db),
		Sessions:     repository.NewSessionRepository(db),
		Teams:        repository.NewTeamRepository(db),
		Participants: repository.NewParticipantRepository(db),
		Votes:        repository.NewVoteRepository(db),
		RoundResults: repository.NewRoundResultRepository(db),
		Outcomes:     repository.NewMissionOutcomeRepository(db),
		AdminActions: repository.NewAdminActionRepository(db),
		Events:       repository.NewTeamEventRepository(db),
		Submissions:  repository.NewCompletionSubmissionRepository(db),
		Attempts:     repository.NewConceptAttemptRepository(db),
	}
}

// Settings holds the tunables of the game services
type Settings struct {
	ClaimCodePrefix string
	MaxRetries      int
	RetryInterval   time.Duration
	StuckThreshold  time.Duration
	ActiveWindow    time.Duration
	RivalWindow     time.Duration
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		ClaimCodePrefix: progression.DefaultClaimCodePrefix,
		MaxRetries:      3,
		RetryInterval:   20 * time.Millisecond,
		StuckThreshold:  5 * time.Minute,
		ActiveWindow:    2 * time.Minute,
		RivalWindow:     90 * time.Second,
	}
}

// SettingsFromConfig maps application configuration onto service settings
func SettingsFromConfig(cfg *config.Config) Settings {
	s := DefaultSettings()
	if cfg.ClaimCodePrefix != "" {
		s.ClaimCodePrefix = cfg.ClaimCodePrefix
	}
	s.MaxRetries = cfg.ResolveMaxRetries
	if cfg.StuckThreshold > 0 {
		s.StuckThreshold = cfg.StuckThreshold
	}
	if cfg.ActiveWindow > 0 {
		s.ActiveWindow = cfg.ActiveWindow
	}
	if cfg.RivalWindow > 0 {
		s.RivalWindow = cfg.RivalWindow
	}
	return s
}

// Clock returns the current time
type Clock func() time.Time

// retryOnConflict runs op and, when the caller did not pin a state version, retries it
// with exponential backoff on version conflicts and transient serialization failures.
func retryOnConflict(ctx context.Context, settings Settings, expected *int64, op func() error) error {
	if expected != nil || settings.MaxRetries <= 0 {
		return op()
	}
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = settings.RetryInterval
	if eb.InitialInterval <= 0 {
		eb.InitialInterval = 20 * time.Millisecond
	}
	eb.MaxInterval = 10 * eb.InitialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(settings.MaxRetries)), ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if apperrors.IsStateVersionConflict(err) || repository.IsRetryable(err) {
			logger.WithContext(ctx).WithField("attempt", attempt).Debugf("retrying after conflict: %v", err)
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

// lockTeam locks the team row for the enclosing transaction and fails when another
// writer moved its version past observed since it was read
func lockTeam(ctx context.Context, repos Repositories, teamID uuid.UUID, observed int64) error {
	current, err := repos.Teams.LockState(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to lock team: %w", err)
	}
	if current != observed {
		return apperrors.ErrStateVersionConflict
	}
	return nil
}

// checkVersion fails when the caller pinned a version that is no longer current
func checkVersion(team *models.Team, expected *int64) error {
	if expected != nil && *expected != team.StateVersion {
		return apperrors.ErrStateVersionConflict
	}
	return nil
}

func getTeam(ctx context.Context, repos Repositories, teamID uuid.UUID) (*models.Team, error) {
	team, err := repos.Teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	return team, nil
}

// getMutableTeam loads a team and rejects it when its session is archived
func getMutableTeam(ctx context.Context, repos Repositories, teamID uuid.UUID) (*models.Team, error) {
	team, err := getTeam(ctx, repos, teamID)
	if err != nil {
		return nil, err
	}
	session, err := repos.Sessions.GetByID(ctx, team.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.IsArchived() {
		return nil, apperrors.ErrSessionArchived
	}
	return team, nil
}

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func appendEvent(ctx context.Context, repos Repositories, team *models.Team, eventType models.TeamEventType, payload interface{}) error {
	event := &models.TeamEvent{
		SessionID:    team.SessionID,
		TeamID:       team.ID,
		Type:         eventType,
		StateVersion: team.StateVersion,
		Payload:      toJSON(payload),
	}
	if err := repos.Events.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to append %s event: %w", eventType, err)
	}
	return nil
}

// recordAdminAction appends an audit entry. Failures to write the entry are logged, not returned.
func recordAdminAction(ctx context.Context, repos Repositories, teamID uuid.UUID, actor string, action models.AdminActionType, input interface{}, version int64, opErr error) error {
	outcome := models.AdminActionOutcome{Success: opErr == nil, StateVersion: version}
	if opErr != nil {
		outcome.Error = opErr.Error()
		outcome.ErrorKind = string(apperrors.KindOf(opErr))
	}
	entry := &models.AdminAction{
		TeamID:  teamID,
		Actor:   actor,
		Action:  action,
		Input:   toJSON(input),
		Outcome: datatypes.NewJSONType(outcome),
		Success: opErr == nil,
	}
	if err := repos.AdminActions.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record admin action: %w", err)
	}
	return nil
}

// recordFailedAdminAction writes the failure entry outside any rolled back transaction
func recordFailedAdminAction(ctx context.Context, repos Repositories, teamID uuid.UUID, actor string, action models.AdminActionType, input interface{}, opErr error) {
	var version int64
	if team, err := repos.Teams.GetByID(ctx, teamID); err == nil {
		version = team.StateVersion
	}
	if err := recordAdminAction(ctx, repos, teamID, actor, action, input, version, opErr); err != nil {
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"team_id": teamID,
			"action":  action,
		}).Error("audit write failed")
	}
}
