package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/mocks"
	"mission-control-backend/internal/service"
	"mission-control-backend/internal/traits"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// testCatalog has a single-round mission, a two-round rival mission and a closing mission
func testCatalog() *catalog.Catalog {
	missions := []catalog.Mission{
		{
			ID:        "cap-crunch",
			Title:     "Cap Crunch",
			ConceptID: "opportunity-cost",
			Rounds: []catalog.Round{{
				ID: "r1",
				Options: []catalog.Option{
					{Label: "Hold", Outcome: catalog.Outcome{Narrative: "hold", ScoreDelta: 1}},
					{Label: "Go big", Outcome: catalog.Outcome{Narrative: "go big", ScoreDelta: 12, Traits: traits.Vector{StarPower: 2, RiskHeat: 2}}},
					{Label: "Trade", Outcome: catalog.Outcome{Narrative: "trade", ScoreDelta: 3}},
					{Label: "Cut", Outcome: catalog.Outcome{Narrative: "cut", ScoreDelta: -4}},
				},
			}},
		},
		{
			ID:        "rival-bid",
			Title:     "Rival Bid",
			ConceptID: "expected-value",
			Rounds: []catalog.Round{
				{
					ID: "r1",
					Options: []catalog.Option{
						{Label: "Bid", Outcome: catalog.Outcome{Narrative: "bid", ScoreDelta: 5, Traits: traits.Vector{DataTrust: 1}}},
						{Label: "Pass", Outcome: catalog.Outcome{Narrative: "pass", ScoreDelta: -2}},
					},
				},
				{
					ID:    "r2",
					Rival: true,
					Options: []catalog.Option{
						{Label: "Match", Outcome: catalog.Outcome{Narrative: "match", ScoreDelta: 10, Traits: traits.Vector{Culture: 1}}},
						{Label: "Fold", Outcome: catalog.Outcome{Narrative: "fold", ScoreDelta: 0}},
					},
				},
			},
		},
		{
			ID:        "final-call",
			Title:     "Final Call",
			ConceptID: "bargaining-power",
			Rounds: []catalog.Round{{
				ID: "r1",
				Options: []catalog.Option{
					{Label: "Sign", Outcome: catalog.Outcome{Narrative: "sign", ScoreDelta: 4}},
					{Label: "Walk", Outcome: catalog.Outcome{Narrative: "walk", ScoreDelta: -1}},
				},
			}},
		},
	}
	concepts := []catalog.Concept{
		{
			ID:   "opportunity-cost",
			Term: "Opportunity cost",
			Questions: []catalog.Question{
				{Prompt: "q1", Options: []string{"a", "b"}, Correct: 1},
				{Prompt: "q2", Options: []string{"a", "b", "c"}, Correct: 2},
			},
		},
	}
	c, err := catalog.New(missions, concepts)
	if err != nil {
		panic(err)
	}
	return c
}

// world is an in-memory store behind the gomock repositories. Transactions are serialized
// and roll back their writes when fn fails.
type world struct {
	ctrl *gomock.Controller
	txMu sync.Mutex
	mu   sync.Mutex

	sessions     map[uuid.UUID]models.Session
	teams        map[uuid.UUID]models.Team
	participants map[uuid.UUID]models.Participant
	votes        map[string]models.Vote
	roundResults map[string]models.RoundResult
	outcomes     map[string]models.MissionOutcome
	actions      []models.AdminAction
	events       []models.TeamEvent
	submissions  map[uuid.UUID]models.CompletionSubmission
	attempts     map[string]models.ConceptAttempt

	clock time.Time
	repos service.Repositories

	// onLock runs when a transaction takes the team row lock
	onLock func(teamID uuid.UUID)
}

type snapshot struct {
	teams        map[uuid.UUID]models.Team
	votes        map[string]models.Vote
	roundResults map[string]models.RoundResult
	outcomes     map[string]models.MissionOutcome
	actions      []models.AdminAction
	events       []models.TeamEvent
	submissions  map[uuid.UUID]models.CompletionSubmission
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneTeam(t models.Team) models.Team {
	t.Badges = append(datatypes.JSONSlice[string]{}, t.Badges...)
	return t
}

func voteKey(teamID uuid.UUID, missionID, roundID string, participantID uuid.UUID) string {
	return teamID.String() + "/" + missionID + "/" + roundID + "/" + participantID.String()
}

func outcomeKey(teamID uuid.UUID, missionID string) string {
	return teamID.String() + "/" + missionID
}

func resultKey(teamID uuid.UUID, missionID, roundID string) string {
	return teamID.String() + "/" + missionID + "/" + roundID
}

func newWorld(ctrl *gomock.Controller) *world {
	w := &world{
		ctrl:         ctrl,
		sessions:     map[uuid.UUID]models.Session{},
		teams:        map[uuid.UUID]models.Team{},
		participants: map[uuid.UUID]models.Participant{},
		votes:        map[string]models.Vote{},
		roundResults: map[string]models.RoundResult{},
		outcomes:     map[string]models.MissionOutcome{},
		submissions:  map[uuid.UUID]models.CompletionSubmission{},
		attempts:     map[string]models.ConceptAttempt{},
		clock:        time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	w.repos = service.Repositories{
		Tx:           w.txManager(),
		Sessions:     w.sessionRepo(),
		Teams:        w.teamRepo(),
		Participants: w.participantRepo(),
		Votes:        w.voteRepo(),
		RoundResults: w.roundResultRepo(),
		Outcomes:     w.outcomeRepo(),
		AdminActions: w.adminActionRepo(),
		Events:       w.eventRepo(),
		Submissions:  w.submissionRepo(),
		Attempts:     w.attemptRepo(),
	}
	return w
}

func (w *world) now() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.clock
}

func (w *world) advance(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clock = w.clock.Add(d)
}

func (w *world) settings() service.Settings {
	s := service.DefaultSettings()
	s.RetryInterval = time.Millisecond
	return s
}

func (w *world) progression() *service.ProgressionService {
	return service.NewProgressionService(w.repos, testCatalog(), w.settings(), validator.New()).WithClock(w.now)
}

func (w *world) voting() *service.VoteService {
	return service.NewVoteService(w.repos, testCatalog(), w.settings(), validator.New()).WithClock(w.now)
}

func (w *world) seedSession() uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := models.Session{Name: "Period 3", FacilitatorID: "facilitator-1", Status: models.SessionStatusActive}
	s.ID = uuid.New()
	w.sessions[s.ID] = s
	return s.ID
}

func (w *world) seedTeam(sessionID uuid.UUID, name string) uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	t := models.Team{
		SessionID:      sessionID,
		Name:           name,
		Badges:         datatypes.JSONSlice[string]{},
		RoundPhase:     models.RoundPhaseIdle,
		LastProgressAt: w.clock,
	}
	t.ID = uuid.New()
	w.teams[t.ID] = t
	return t.ID
}

func (w *world) seedParticipant(teamID uuid.UUID, name string) uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	seen := w.clock
	p := models.Participant{SessionID: w.teams[teamID].SessionID, TeamID: teamID, DisplayName: name, LastSeenAt: &seen}
	p.ID = uuid.New()
	w.participants[p.ID] = p
	return p.ID
}

func (w *world) team(id uuid.UUID) models.Team {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneTeam(w.teams[id])
}

func (w *world) eventsOf(teamID uuid.UUID, eventType models.TeamEventType) []models.TeamEvent {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []models.TeamEvent
	for _, e := range w.events {
		if e.TeamID == teamID && e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func (w *world) adminLog(teamID uuid.UUID) []models.AdminAction {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []models.AdminAction
	for _, a := range w.actions {
		if a.TeamID == teamID {
			out = append(out, a)
		}
	}
	return out
}

func (w *world) outcomeCount(teamID uuid.UUID) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, o := range w.outcomes {
		if o.TeamID == teamID {
			n++
		}
	}
	return n
}

func (w *world) voteCount(teamID uuid.UUID) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, v := range w.votes {
		if v.TeamID == teamID {
			n++
		}
	}
	return n
}

// putVote stores a ballot directly, as another request committing it would
func (w *world) putVote(v models.Vote) {
	w.mu.Lock()
	defer w.mu.Unlock()
	v.ID = uuid.New()
	w.votes[voteKey(v.TeamID, v.MissionID, v.RoundID, v.ParticipantID)] = v
}

// bumpVersion advances a team's stored version, as another writer committing would
func (w *world) bumpVersion(teamID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	t := w.teams[teamID]
	t.StateVersion++
	w.teams[teamID] = t
}

func (w *world) take() snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return snapshot{
		teams:        cloneMap(w.teams),
		votes:        cloneMap(w.votes),
		roundResults: cloneMap(w.roundResults),
		outcomes:     cloneMap(w.outcomes),
		actions:      append([]models.AdminAction(nil), w.actions...),
		events:       append([]models.TeamEvent(nil), w.events...),
		submissions:  cloneMap(w.submissions),
	}
}

func (w *world) restore(s snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.teams = s.teams
	w.votes = s.votes
	w.roundResults = s.roundResults
	w.outcomes = s.outcomes
	w.actions = s.actions
	w.events = s.events
	w.submissions = s.submissions
}

type inTxKey struct{}

func (w *world) txManager() *mocks.MockTxManagerInterface {
	m := mocks.NewMockTxManagerInterface(w.ctrl)
	m.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			if ctx.Value(inTxKey{}) != nil {
				return fn(ctx)
			}
			w.txMu.Lock()
			defer w.txMu.Unlock()
			snap := w.take()
			if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
				w.restore(snap)
				return err
			}
			return nil
		}).AnyTimes()
	return m
}

func (w *world) sessionRepo() *mocks.MockSessionRepositoryInterface {
	m := mocks.NewMockSessionRepositoryInterface(w.ctrl)
	m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Session) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		s.CreatedAt = w.clock
		w.sessions[s.ID] = *s
		return nil
	}).AnyTimes()
	m.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Session, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		s, ok := w.sessions[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return &s, nil
	}).AnyTimes()
	m.EXPECT().GetByFacilitator(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, facilitatorID string, limit, offset int) ([]models.Session, int64, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var out []models.Session
			for _, s := range w.sessions {
				if s.FacilitatorID == facilitatorID {
					out = append(out, s)
				}
			}
			return out, int64(len(out)), nil
		}).AnyTimes()
	m.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID, at time.Time) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		s := w.sessions[id]
		if s.Status == models.SessionStatusActive {
			s.Status = models.SessionStatusArchived
			s.ArchivedAt = &at
			w.sessions[id] = s
		}
		return nil
	}).AnyTimes()
	return m
}

func (w *world) teamRepo() *mocks.MockTeamRepositoryInterface {
	m := mocks.NewMockTeamRepositoryInterface(w.ctrl)
	m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *models.Team) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		w.teams[t.ID] = cloneTeam(*t)
		return nil
	}).AnyTimes()
	m.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Team, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		t, ok := w.teams[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		t = cloneTeam(t)
		return &t, nil
	}).AnyTimes()
	list := func(sessionID uuid.UUID) []models.Team {
		var out []models.Team
		for _, t := range w.teams {
			if t.SessionID == sessionID {
				out = append(out, cloneTeam(t))
			}
		}
		return out
	}
	m.EXPECT().GetBySessionID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sessionID uuid.UUID) ([]models.Team, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		out := list(sessionID)
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, nil
	}).AnyTimes()
	m.EXPECT().GetLeaderboard(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sessionID uuid.UUID) ([]models.Team, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		out := list(sessionID)
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			switch {
			case a.CompletedAt != nil && b.CompletedAt == nil:
				return true
			case a.CompletedAt == nil && b.CompletedAt != nil:
				return false
			case a.CompletedAt != nil && !a.CompletedAt.Equal(*b.CompletedAt):
				return a.CompletedAt.Before(*b.CompletedAt)
			}
			return a.Name < b.Name
		})
		return out, nil
	}).AnyTimes()
	m.EXPECT().UpdateState(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *models.Team, expected int64) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		stored, ok := w.teams[t.ID]
		if !ok || stored.StateVersion != expected {
			return apperrors.ErrStateVersionConflict
		}
		next := cloneTeam(*t)
		next.StateVersion = expected + 1
		w.teams[t.ID] = next
		t.StateVersion = expected + 1
		return nil
	}).AnyTimes()
	m.EXPECT().LockState(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (int64, error) {
		if w.onLock != nil {
			w.onLock(id)
		}
		w.mu.Lock()
		defer w.mu.Unlock()
		t, ok := w.teams[id]
		if !ok {
			return 0, gorm.ErrRecordNotFound
		}
		return t.StateVersion, nil
	}).AnyTimes()
	m.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return m
}

func (w *world) participantRepo() *mocks.MockParticipantRepositoryInterface {
	m := mocks.NewMockParticipantRepositoryInterface(w.ctrl)
	m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Participant) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		w.participants[p.ID] = *p
		return nil
	}).AnyTimes()
	m.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Participant, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		p, ok := w.participants[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return &p, nil
	}).AnyTimes()
	m.EXPECT().GetByTeamID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, teamID uuid.UUID) ([]models.Participant, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		var out []models.Participant
		for _, p := range w.participants {
			if p.TeamID == teamID {
				out = append(out, p)
			}
		}
		return out, nil
	}).AnyTimes()
	m.EXPECT().Touch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID, at time.Time) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		if p, ok := w.participants[id]; ok {
			p.LastSeenAt = &at
			w.participants[id] = p
		}
		return nil
	}).AnyTimes()
	m.EXPECT().CountActiveBySession(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sessionID uuid.UUID, since time.Time) (map[uuid.UUID]int, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			out := map[uuid.UUID]int{}
			for _, p := range w.participants {
				if p.SessionID == sessionID && p.LastSeenAt != nil && !p.LastSeenAt.Before(since) {
					out[p.TeamID]++
				}
			}
			return out, nil
		}).AnyTimes()
	return m
}

func (w *world) voteRepo() *mocks.MockVoteRepositoryInterface {
	m := mocks.NewMockVoteRepositoryInterface(w.ctrl)
	m.EXPECT().UpsertIfRoundOpen(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *models.Vote) (bool, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		t := w.teams[v.TeamID]
		if !t.HasOpenRound(v.MissionID, v.RoundID) {
			return false, nil
		}
		key := voteKey(v.TeamID, v.MissionID, v.RoundID, v.ParticipantID)
		if prev, ok := w.votes[key]; ok {
			v.ID = prev.ID
		} else if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		w.votes[key] = *v
		return true, nil
	}).AnyTimes()
	m.EXPECT().GetByParticipant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, missionID, roundID string, participantID uuid.UUID) (*models.Vote, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			v, ok := w.votes[voteKey(teamID, missionID, roundID, participantID)]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &v, nil
		}).AnyTimes()
	byRound := func(teamID uuid.UUID, missionID, roundID string) []models.Vote {
		var out []models.Vote
		for _, v := range w.votes {
			if v.TeamID == teamID && v.MissionID == missionID && v.RoundID == roundID {
				out = append(out, v)
			}
		}
		return out
	}
	m.EXPECT().GetByRound(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, missionID, roundID string) ([]models.Vote, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			return byRound(teamID, missionID, roundID), nil
		}).AnyTimes()
	m.EXPECT().CountByOption(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, missionID, roundID string) (map[int]int, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			out := map[int]int{}
			for _, v := range byRound(teamID, missionID, roundID) {
				out[v.OptionIndex]++
			}
			return out, nil
		}).AnyTimes()
	m.EXPECT().DeleteByRound(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, missionID, roundID string) (int64, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var n int64
			for k, v := range w.votes {
				if v.TeamID == teamID && v.MissionID == missionID && v.RoundID == roundID {
					delete(w.votes, k)
					n++
				}
			}
			return n, nil
		}).AnyTimes()
	m.EXPECT().DeleteUnresolvedByMission(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, missionID string) error {
			w.mu.Lock()
			defer w.mu.Unlock()
			if _, resolved := w.outcomes[outcomeKey(teamID, missionID)]; resolved {
				return nil
			}
			for k, v := range w.votes {
				if v.TeamID == teamID && v.MissionID == missionID {
					delete(w.votes, k)
				}
			}
			return nil
		}).AnyTimes()
	m.EXPECT().DeleteByTeam(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, teamID uuid.UUID) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		for k, v := range w.votes {
			if v.TeamID == teamID {
				delete(w.votes, k)
			}
		}
		return nil
	}).AnyTimes()
	return m
}

func (w *world) roundResultRepo() *mocks.MockRoundResultRepositoryInterface {
	m := mocks.NewMockRoundResultRepositoryInterface(w.ctrl)
	m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.RoundResult) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		key := resultKey(r.TeamID, r.MissionID, r.RoundID)
		if _, dup := w.roundResults[key]; dup {
			return gorm.ErrDuplicatedKey
		}
		r.ID = uuid.New()
		r.CreatedAt = w.clock
		w.roundResults[key] = *r
		return nil
	}).AnyTimes()
	m.EXPECT().GetByMission(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, missionID string) ([]models.RoundResult, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var out []models.RoundResult
			for _, r := range w.roundResults {
				if r.TeamID == teamID && r.MissionID == missionID {
					out = append(out, r)
				}
			}
			return out, nil
		}).AnyTimes()
	m.EXPECT().DeleteUnresolvedByMission(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, missionID string) error {
			w.mu.Lock()
			defer w.mu.Unlock()
			if _, resolved := w.outcomes[outcomeKey(teamID, missionID)]; resolved {
				return nil
			}
			for k, r := range w.roundResults {
				if r.TeamID == teamID && r.MissionID == missionID {
					delete(w.roundResults, k)
				}
			}
			return nil
		}).AnyTimes()
	m.EXPECT().DeleteByTeam(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, teamID uuid.UUID) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		for k, r := range w.roundResults {
			if r.TeamID == teamID {
				delete(w.roundResults, k)
			}
		}
		return nil
	}).AnyTimes()
	return m
}

func (w *world) outcomeRepo() *mocks.MockMissionOutcomeRepositoryInterface {
	m := mocks.NewMockMissionOutcomeRepositoryInterface(w.ctrl)
	m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *models.MissionOutcome) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		key := outcomeKey(o.TeamID, o.MissionID)
		if _, dup := w.outcomes[key]; dup {
			return gorm.ErrDuplicatedKey
		}
		o.ID = uuid.New()
		o.CreatedAt = w.clock
		w.outcomes[key] = *o
		return nil
	}).AnyTimes()
	m.EXPECT().GetByTeamAndMission(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, missionID string) (*models.MissionOutcome, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			o, ok := w.outcomes[outcomeKey(teamID, missionID)]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &o, nil
		}).AnyTimes()
	m.EXPECT().GetByTeamID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, teamID uuid.UUID) ([]models.MissionOutcome, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		var out []models.MissionOutcome
		for _, o := range w.outcomes {
			if o.TeamID == teamID {
				out = append(out, o)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].MissionIndex < out[j].MissionIndex })
		return out, nil
	}).AnyTimes()
	m.EXPECT().DeleteByTeam(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, teamID uuid.UUID) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		for k, o := range w.outcomes {
			if o.TeamID == teamID {
				delete(w.outcomes, k)
			}
		}
		return nil
	}).AnyTimes()
	return m
}

func (w *world) adminActionRepo() *mocks.MockAdminActionRepositoryInterface {
	m := mocks.NewMockAdminActionRepositoryInterface(w.ctrl)
	m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *models.AdminAction) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		a.ID = uuid.New()
		a.CreatedAt = w.clock
		w.actions = append(w.actions, *a)
		return nil
	}).AnyTimes()
	m.EXPECT().GetByTeamID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, limit int) ([]models.AdminAction, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var out []models.AdminAction
			for i := len(w.actions) - 1; i >= 0 && len(out) < limit; i-- {
				if w.actions[i].TeamID == teamID {
					out = append(out, w.actions[i])
				}
			}
			return out, nil
		}).AnyTimes()
	return m
}

func (w *world) eventRepo() *mocks.MockTeamEventRepositoryInterface {
	m := mocks.NewMockTeamEventRepositoryInterface(w.ctrl)
	m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *models.TeamEvent) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		e.ID = uuid.New()
		e.CreatedAt = w.clock
		w.events = append(w.events, *e)
		return nil
	}).AnyTimes()
	m.EXPECT().GetByTeamID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID, limit int) ([]models.TeamEvent, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var out []models.TeamEvent
			for i := len(w.events) - 1; i >= 0 && len(out) < limit; i-- {
				if w.events[i].TeamID == teamID {
					out = append(out, w.events[i])
				}
			}
			return out, nil
		}).AnyTimes()
	m.EXPECT().GetRecentBySession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sessionID uuid.UUID, eventType models.TeamEventType, since time.Time, exclude uuid.UUID) ([]models.TeamEvent, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var out []models.TeamEvent
			for i := len(w.events) - 1; i >= 0; i-- {
				e := w.events[i]
				if e.SessionID == sessionID && e.Type == eventType && e.TeamID != exclude && !e.CreatedAt.Before(since) {
					out = append(out, e)
				}
			}
			return out, nil
		}).AnyTimes()
	return m
}

func (w *world) submissionRepo() *mocks.MockCompletionSubmissionRepositoryInterface {
	m := mocks.NewMockCompletionSubmissionRepositoryInterface(w.ctrl)
	m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.CompletionSubmission) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		if _, dup := w.submissions[s.ParticipantID]; dup {
			return gorm.ErrDuplicatedKey
		}
		s.ID = uuid.New()
		s.CreatedAt = w.clock
		w.submissions[s.ParticipantID] = *s
		return nil
	}).AnyTimes()
	m.EXPECT().GetByParticipantID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, participantID uuid.UUID) (*models.CompletionSubmission, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			s, ok := w.submissions[participantID]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &s, nil
		}).AnyTimes()
	m.EXPECT().GetByTeamID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, teamID uuid.UUID) ([]models.CompletionSubmission, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var out []models.CompletionSubmission
			for _, s := range w.submissions {
				if s.TeamID == teamID {
					out = append(out, s)
				}
			}
			return out, nil
		}).AnyTimes()
	m.EXPECT().DeleteByTeam(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, teamID uuid.UUID) error {
		w.mu.Lock()
		defer w.mu.Unlock()
		for k, s := range w.submissions {
			if s.TeamID == teamID {
				delete(w.submissions, k)
			}
		}
		return nil
	}).AnyTimes()
	return m
}

func (w *world) attemptRepo() *mocks.MockConceptAttemptRepositoryInterface {
	m := mocks.NewMockConceptAttemptRepositoryInterface(w.ctrl)
	m.EXPECT().RecordAttempt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, participantID uuid.UUID, conceptID string, correct int, passed bool, at time.Time) (*models.ConceptAttempt, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			key := participantID.String() + "/" + conceptID
			a, ok := w.attempts[key]
			if !ok {
				a = models.ConceptAttempt{ParticipantID: participantID, ConceptID: conceptID}
				a.ID = uuid.New()
			}
			a.Attempts++
			a.LastCorrect = correct
			if passed && a.PassedAt == nil {
				a.PassedAt = &at
			}
			w.attempts[key] = a
			return &a, nil
		}).AnyTimes()
	m.EXPECT().GetByParticipantID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, participantID uuid.UUID) ([]models.ConceptAttempt, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var out []models.ConceptAttempt
			for _, a := range w.attempts {
				if a.ParticipantID == participantID {
					out = append(out, a)
				}
			}
			return out, nil
		}).AnyTimes()
	return m
}
