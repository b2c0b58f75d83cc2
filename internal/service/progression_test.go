package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/progression"
	"mission-control-backend/internal/service"
	"mission-control-backend/internal/traits"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProgressionServiceTestSuite drives the state machine against an in-memory store
type ProgressionServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	world     *world
	svc       *service.ProgressionService
	votes     *service.VoteService
	sessionID uuid.UUID
	teamID    uuid.UUID
	players   []uuid.UUID
}

func (suite *ProgressionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.world = newWorld(suite.ctrl)
	suite.svc = suite.world.progression()
	suite.votes = suite.world.voting()
	suite.sessionID = suite.world.seedSession()
	suite.teamID = suite.world.seedTeam(suite.sessionID, "Hawks")
	suite.players = []uuid.UUID{
		suite.world.seedParticipant(suite.teamID, "Ana"),
		suite.world.seedParticipant(suite.teamID, "Ben"),
		suite.world.seedParticipant(suite.teamID, "Cy"),
	}
}

func (suite *ProgressionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func ptr[T any](v T) *T {
	return &v
}

func (suite *ProgressionServiceTestSuite) castVotes(missionID, roundID string, options ...int) {
	for i, opt := range options {
		_, err := suite.votes.CastVote(suite.ctx, &service.CastVoteRequest{
			TeamID:        suite.teamID,
			ParticipantID: suite.players[i],
			MissionID:     missionID,
			RoundID:       roundID,
			OptionIndex:   opt,
		})
		suite.Require().NoError(err)
	}
}

func (suite *ProgressionServiceTestSuite) resolve(missionID, roundID string) *service.ResolveResult {
	result, err := suite.svc.ResolveRound(suite.ctx, &service.ResolveRoundRequest{
		TeamID:    suite.teamID,
		MissionID: missionID,
		RoundID:   roundID,
	}, "system")
	suite.Require().NoError(err)
	return result
}

// playThrough resolves every mission with the first option
func (suite *ProgressionServiceTestSuite) playThrough() {
	suite.castVotes("cap-crunch", "r1", 1)
	suite.resolve("cap-crunch", "r1")
	suite.castVotes("rival-bid", "r1", 0)
	suite.resolve("rival-bid", "r1")
	suite.castVotes("rival-bid", "r2", 0)
	suite.resolve("rival-bid", "r2")
	suite.castVotes("final-call", "r1", 0)
	suite.resolve("final-call", "r1")
}

func (suite *ProgressionServiceTestSuite) TestResolveThreeVotersFourOptions() {
	suite.castVotes("cap-crunch", "r1", 1, 1, 2)

	tally, err := suite.votes.Tally(suite.ctx, suite.teamID, "cap-crunch", "r1")
	suite.Require().NoError(err)
	suite.Equal([]int{0, 2, 1, 0}, tally.Counts)
	suite.Equal(3, tally.Voters)

	result := suite.resolve("cap-crunch", "r1")
	suite.Equal(1, result.Resolution.WinningOption)
	suite.Equal(12, result.Resolution.ScoreDelta)
	suite.True(result.MissionCompleted)
	suite.False(result.AlreadyResolved)

	team := suite.world.team(suite.teamID)
	suite.Equal(1, team.MissionIndex)
	suite.Equal(12, team.Score)
	suite.Equal(traits.Vector{StarPower: 2, RiskHeat: 2}, team.Traits)
	suite.Equal([]string{"opportunity-cost"}, []string(team.Badges))
	suite.Equal(int64(2), team.StateVersion)
	suite.Equal(models.RoundPhaseIdle, team.RoundPhase)
	suite.Equal("win-now", result.Team.Title.ID)

	events := suite.world.eventsOf(suite.teamID, models.TeamEventMissionCompleted)
	suite.Require().Len(events, 1)
	suite.Equal(int64(2), events[0].StateVersion)
}

func (suite *ProgressionServiceTestSuite) TestResolveTalliesVotesCommittedBeforeLock() {
	suite.castVotes("cap-crunch", "r1", 2)

	var once sync.Once
	suite.world.onLock = func(teamID uuid.UUID) {
		once.Do(func() {
			for _, pid := range suite.players[1:] {
				suite.world.putVote(models.Vote{TeamID: teamID, MissionID: "cap-crunch", RoundID: "r1", ParticipantID: pid, OptionIndex: 1})
			}
		})
	}

	result := suite.resolve("cap-crunch", "r1")
	suite.Equal(1, result.Resolution.WinningOption)
	suite.Equal([]int{0, 2, 1, 0}, result.Resolution.Tally.Counts)
	suite.Equal(3, result.Resolution.Tally.Voters)
}

func (suite *ProgressionServiceTestSuite) TestResolveConflictsWhenVersionMovesBeforeLock() {
	suite.castVotes("cap-crunch", "r1", 1)
	observed := suite.world.team(suite.teamID).StateVersion

	var once sync.Once
	suite.world.onLock = func(teamID uuid.UUID) {
		once.Do(func() { suite.world.bumpVersion(teamID) })
	}

	_, err := suite.svc.ResolveRound(suite.ctx, &service.ResolveRoundRequest{
		TeamID:          suite.teamID,
		MissionID:       "cap-crunch",
		RoundID:         "r1",
		ExpectedVersion: ptr(observed),
	}, "system")
	suite.ErrorIs(err, apperrors.ErrStateVersionConflict)
	suite.Equal(0, suite.world.outcomeCount(suite.teamID))
	suite.Equal(0, suite.world.team(suite.teamID).MissionIndex)
	suite.Empty(suite.world.eventsOf(suite.teamID, models.TeamEventMissionCompleted))
}

func (suite *ProgressionServiceTestSuite) TestResolveRetriesWhenVersionMovesBeforeLock() {
	suite.castVotes("cap-crunch", "r1", 1)

	locks := 0
	suite.world.onLock = func(teamID uuid.UUID) {
		locks++
		if locks == 1 {
			suite.world.bumpVersion(teamID)
		}
	}

	result := suite.resolve("cap-crunch", "r1")
	suite.Equal(2, locks)
	suite.Equal(1, result.Resolution.WinningOption)
	suite.Equal(1, suite.world.outcomeCount(suite.teamID))
}

func (suite *ProgressionServiceTestSuite) TestResolveTwiceDoesNotReapply() {
	suite.castVotes("cap-crunch", "r1", 1, 1, 2)
	first := suite.resolve("cap-crunch", "r1")

	second := suite.resolve("cap-crunch", "r1")
	suite.True(second.AlreadyResolved)
	suite.Equal(first.Resolution.WinningOption, second.Resolution.WinningOption)
	suite.Equal(first.Resolution.ScoreDelta, second.Resolution.ScoreDelta)
	suite.Equal(first.Resolution.Tally.Counts, second.Resolution.Tally.Counts)

	team := suite.world.team(suite.teamID)
	suite.Equal(12, team.Score)
	suite.Len(team.Badges, 1)
	suite.Equal(int64(2), team.StateVersion)
	suite.Equal(1, suite.world.outcomeCount(suite.teamID))
}

func (suite *ProgressionServiceTestSuite) TestResolveWithoutVotes() {
	_, err := suite.svc.OpenRound(suite.ctx, &service.OpenRoundRequest{TeamID: suite.teamID, MissionID: "cap-crunch", RoundID: "r1"})
	suite.Require().NoError(err)

	_, err = suite.svc.ResolveRound(suite.ctx, &service.ResolveRoundRequest{TeamID: suite.teamID, MissionID: "cap-crunch", RoundID: "r1"}, "system")
	suite.ErrorIs(err, apperrors.ErrNoVotes)

	team := suite.world.team(suite.teamID)
	suite.Equal(int64(1), team.StateVersion)
	suite.Equal(0, team.MissionIndex)
	suite.True(team.HasOpenRound("cap-crunch", "r1"))
	suite.Zero(suite.world.outcomeCount(suite.teamID))
}

func (suite *ProgressionServiceTestSuite) TestStaleExpectedVersionLeavesTeamUnchanged() {
	suite.castVotes("cap-crunch", "r1", 1)
	before := suite.world.team(suite.teamID)

	_, err := suite.svc.ResolveRound(suite.ctx, &service.ResolveRoundRequest{
		TeamID:          suite.teamID,
		MissionID:       "cap-crunch",
		RoundID:         "r1",
		ExpectedVersion: ptr(int64(0)),
	}, "system")
	suite.True(apperrors.IsStateVersionConflict(err))
	suite.Equal(before, suite.world.team(suite.teamID))

	_, err = suite.svc.ResetTeam(suite.ctx, &service.ResetTeamRequest{TeamID: suite.teamID, ExpectedVersion: ptr(int64(7))}, "facilitator-1")
	suite.True(apperrors.IsStateVersionConflict(err))
	suite.Equal(before, suite.world.team(suite.teamID))

	log := suite.world.adminLog(suite.teamID)
	suite.Require().Len(log, 1)
	suite.False(log[0].Success)
	suite.Equal(string(apperrors.KindStateVersionConflict), log[0].Outcome.Data().ErrorKind)
}

func (suite *ProgressionServiceTestSuite) TestMatchingExpectedVersionIsAccepted() {
	suite.castVotes("cap-crunch", "r1", 1)
	result, err := suite.svc.ResolveRound(suite.ctx, &service.ResolveRoundRequest{
		TeamID:          suite.teamID,
		MissionID:       "cap-crunch",
		RoundID:         "r1",
		ExpectedVersion: ptr(int64(1)),
	}, "system")
	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Team.StateVersion)
}

func (suite *ProgressionServiceTestSuite) TestClearVotesWithoutOpenRound() {
	_, err := suite.svc.ClearRoundVotes(suite.ctx, &service.ClearRoundVotesRequest{TeamID: suite.teamID}, "facilitator-1")
	suite.True(apperrors.IsInvalidState(err))
	suite.ErrorIs(err, apperrors.ErrNoOpenRound)

	suite.Equal(int64(0), suite.world.team(suite.teamID).StateVersion)
	log := suite.world.adminLog(suite.teamID)
	suite.Require().Len(log, 1)
	suite.Equal(models.AdminActionClearRoundVotes, log[0].Action)
	suite.Equal("facilitator-1", log[0].Actor)
	suite.False(log[0].Success)
	outcome := log[0].Outcome.Data()
	suite.Equal(string(apperrors.KindInvalidState), outcome.ErrorKind)
	suite.Equal(int64(0), outcome.StateVersion)
}

func (suite *ProgressionServiceTestSuite) TestClearVotesOnOpenRound() {
	suite.castVotes("cap-crunch", "r1", 1, 2)
	suite.world.advance(30e9)

	result, err := suite.svc.ClearRoundVotes(suite.ctx, &service.ClearRoundVotesRequest{TeamID: suite.teamID}, "facilitator-1")
	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Removed)
	suite.Equal(int64(2), result.Team.StateVersion)
	suite.Zero(suite.world.voteCount(suite.teamID))

	team := suite.world.team(suite.teamID)
	suite.True(team.HasOpenRound("cap-crunch", "r1"))
	suite.Equal(suite.world.now(), team.LastProgressAt)
	suite.Len(suite.world.eventsOf(suite.teamID, models.TeamEventVotesCleared), 1)

	log := suite.world.adminLog(suite.teamID)
	suite.Require().Len(log, 1)
	suite.True(log[0].Success)
	suite.Equal(int64(2), log[0].Outcome.Data().StateVersion)

	// The round stays open for a fresh vote.
	suite.castVotes("cap-crunch", "r1", 3)
	tally, err := suite.votes.Tally(suite.ctx, suite.teamID, "cap-crunch", "r1")
	suite.Require().NoError(err)
	suite.Equal([]int{0, 0, 0, 1}, tally.Counts)
}

func (suite *ProgressionServiceTestSuite) TestResetTeam() {
	suite.playThrough()
	before := suite.world.team(suite.teamID)
	suite.Require().True(before.IsComplete())

	state, err := suite.svc.ResetTeam(suite.ctx, &service.ResetTeamRequest{TeamID: suite.teamID}, "facilitator-1")
	suite.Require().NoError(err)
	suite.Equal(before.StateVersion+1, state.StateVersion)

	team := suite.world.team(suite.teamID)
	suite.Equal(0, team.MissionIndex)
	suite.Equal(0, team.Score)
	suite.Empty(team.Badges)
	suite.True(team.Traits.IsZero())
	suite.Nil(team.ClaimCode)
	suite.Nil(team.CompletedAt)
	suite.Equal(models.RoundPhaseIdle, team.RoundPhase)
	suite.Zero(suite.world.outcomeCount(suite.teamID))
	suite.Zero(suite.world.voteCount(suite.teamID))
	suite.Len(suite.world.eventsOf(suite.teamID, models.TeamEventTeamReset), 1)

	log := suite.world.adminLog(suite.teamID)
	suite.Require().Len(log, 1)
	suite.Equal(models.AdminActionResetTeam, log[0].Action)
	suite.True(log[0].Success)

	// A reset team plays from the start again.
	suite.castVotes("cap-crunch", "r1", 0)
	suite.resolve("cap-crunch", "r1")
	suite.Equal(1, suite.world.team(suite.teamID).Score)
}

func (suite *ProgressionServiceTestSuite) TestMultiRoundMissionAppliesSummedDeltasOnce() {
	suite.castVotes("cap-crunch", "r1", 0)
	suite.resolve("cap-crunch", "r1")

	suite.castVotes("rival-bid", "r1", 0)

	_, err := suite.votes.CastVote(suite.ctx, &service.CastVoteRequest{
		TeamID: suite.teamID, ParticipantID: suite.players[1], MissionID: "rival-bid", RoundID: "r2", OptionIndex: 0,
	})
	suite.ErrorIs(err, apperrors.ErrRoundNotCurrent)

	first := suite.resolve("rival-bid", "r1")
	suite.False(first.MissionCompleted)
	team := suite.world.team(suite.teamID)
	suite.Equal(models.RoundPhaseResolved, team.RoundPhase)
	suite.Equal(1, team.Score)
	suite.Equal(1, team.MissionIndex)

	again := suite.resolve("rival-bid", "r1")
	suite.True(again.AlreadyResolved)
	suite.False(again.MissionCompleted)

	suite.castVotes("rival-bid", "r2", 0)
	final := suite.resolve("rival-bid", "r2")
	suite.True(final.MissionCompleted)
	suite.Equal(15, final.Resolution.ScoreDelta)
	suite.Equal(traits.Vector{DataTrust: 1, Culture: 1}, final.Resolution.TraitDelta)

	team = suite.world.team(suite.teamID)
	suite.Equal(16, team.Score)
	suite.Equal(2, team.MissionIndex)
	suite.Equal([]string{"opportunity-cost", "expected-value"}, []string(team.Badges))
	suite.Len(suite.world.eventsOf(suite.teamID, models.TeamEventRoundResolved), 1)
}

func (suite *ProgressionServiceTestSuite) TestCompletionMintsClaimCodeOnce() {
	suite.playThrough()

	team := suite.world.team(suite.teamID)
	suite.Require().True(team.IsComplete())
	suite.Equal(3, team.MissionIndex)
	suite.Len(team.Badges, team.MissionIndex)
	want := progression.TeamClaimCode(progression.DefaultClaimCodePrefix, suite.teamID.String(), team.Badges)
	suite.Equal(want, *team.ClaimCode)
	suite.Len(suite.world.eventsOf(suite.teamID, models.TeamEventTeamCompleted), 1)

	again := suite.resolve("final-call", "r1")
	suite.True(again.AlreadyResolved)
	suite.Equal(want, *again.Team.ClaimCode)

	_, err := suite.votes.CastVote(suite.ctx, &service.CastVoteRequest{
		TeamID: suite.teamID, ParticipantID: suite.players[0], MissionID: "final-call", RoundID: "r1", OptionIndex: 0,
	})
	suite.ErrorIs(err, apperrors.ErrTeamComplete)
}

func (suite *ProgressionServiceTestSuite) TestClaimCodeStableAcrossRewind() {
	suite.playThrough()
	want := *suite.world.team(suite.teamID).ClaimCode

	_, err := suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 0}, "facilitator-1")
	suite.Require().NoError(err)
	suite.Nil(suite.world.team(suite.teamID).ClaimCode)

	state, err := suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 3}, "facilitator-1")
	suite.Require().NoError(err)
	suite.Equal([]string{"", "", ""}, state.Badges)
	suite.Require().NotNil(state.ClaimCode)
	suite.Equal(want, *state.ClaimCode)

	_, err = suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 0}, "facilitator-1")
	suite.Require().NoError(err)
	suite.resolve("cap-crunch", "r1")
	suite.resolve("rival-bid", "r2")
	final := suite.resolve("final-call", "r1")
	suite.True(final.AlreadyResolved)
	suite.Require().NotNil(final.Team.ClaimCode)
	suite.Equal(want, *final.Team.ClaimCode)
}

func (suite *ProgressionServiceTestSuite) TestJumpMissionKeepsBadgesAligned() {
	state, err := suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 2}, "facilitator-1")
	suite.Require().NoError(err)
	suite.Equal(2, state.MissionIndex)
	suite.Equal([]string{"", ""}, state.Badges)
	suite.Equal(0, state.Score)
	suite.False(state.Complete)

	state, err = suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 3}, "facilitator-1")
	suite.Require().NoError(err)
	suite.True(state.Complete)
	suite.Require().NotNil(state.ClaimCode)
	suite.Len(state.Badges, 3)

	state, err = suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 1}, "facilitator-1")
	suite.Require().NoError(err)
	suite.False(state.Complete)
	suite.Nil(state.ClaimCode)
	suite.Equal([]string{""}, state.Badges)
	suite.Equal(int64(3), state.StateVersion)

	_, err = suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 4}, "facilitator-1")
	suite.ErrorIs(err, apperrors.ErrMissionIndexInvalid)
	suite.Equal(int64(3), suite.world.team(suite.teamID).StateVersion)

	log := suite.world.adminLog(suite.teamID)
	suite.Require().Len(log, 4)
	suite.True(log[0].Success)
	suite.False(log[3].Success)
	suite.Len(suite.world.eventsOf(suite.teamID, models.TeamEventMissionJumped), 3)
}

func (suite *ProgressionServiceTestSuite) TestJumpDiscardsOpenRound() {
	suite.castVotes("cap-crunch", "r1", 1, 1)

	state, err := suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 1}, "facilitator-1")
	suite.Require().NoError(err)
	suite.Equal(models.RoundPhaseIdle, state.Round.Phase)
	suite.Nil(state.OpenRound)
	suite.Zero(suite.world.voteCount(suite.teamID))
	suite.Zero(suite.world.outcomeCount(suite.teamID))
}

func (suite *ProgressionServiceTestSuite) TestReplayAfterRewind() {
	suite.castVotes("cap-crunch", "r1", 1)
	suite.resolve("cap-crunch", "r1")

	_, err := suite.svc.JumpMission(suite.ctx, &service.JumpMissionRequest{TeamID: suite.teamID, TargetIndex: 0}, "facilitator-1")
	suite.Require().NoError(err)
	rewound := suite.world.team(suite.teamID)
	suite.Equal(0, rewound.MissionIndex)
	suite.Empty(rewound.Badges)
	suite.Equal(12, rewound.Score)

	_, err = suite.votes.CastVote(suite.ctx, &service.CastVoteRequest{
		TeamID: suite.teamID, ParticipantID: suite.players[0], MissionID: "cap-crunch", RoundID: "r1", OptionIndex: 2,
	})
	suite.ErrorIs(err, apperrors.ErrMissionAlreadyResolved)

	result := suite.resolve("cap-crunch", "r1")
	suite.True(result.AlreadyResolved)
	suite.True(result.MissionCompleted)
	suite.Equal(1, result.Resolution.WinningOption)

	team := suite.world.team(suite.teamID)
	suite.Equal(1, team.MissionIndex)
	suite.Equal(12, team.Score)
	suite.Equal([]string{"opportunity-cost"}, []string(team.Badges))
	suite.Equal(rewound.StateVersion+1, team.StateVersion)
	suite.Equal(1, suite.world.outcomeCount(suite.teamID))

	events := suite.world.eventsOf(suite.teamID, models.TeamEventMissionCompleted)
	suite.Require().Len(events, 2)
	var payload map[string]interface{}
	suite.Require().NoError(json.Unmarshal(events[1].Payload, &payload))
	suite.Equal(true, payload["replay"])
}

func (suite *ProgressionServiceTestSuite) TestForceResolveWithOptionOnEmptyTally() {
	_, err := suite.svc.OpenRound(suite.ctx, &service.OpenRoundRequest{TeamID: suite.teamID, MissionID: "cap-crunch", RoundID: "r1"})
	suite.Require().NoError(err)

	result, err := suite.svc.ForceResolve(suite.ctx, &service.ForceResolveRequest{TeamID: suite.teamID, OptionIndex: ptr(3)}, "facilitator-1")
	suite.Require().NoError(err)
	suite.True(result.Resolution.Forced)
	suite.Equal(3, result.Resolution.WinningOption)
	suite.Equal(-4, suite.world.team(suite.teamID).Score)

	log := suite.world.adminLog(suite.teamID)
	suite.Require().Len(log, 1)
	suite.Equal(models.AdminActionForceResolve, log[0].Action)
	suite.True(log[0].Success)
	suite.Equal(result.Team.StateVersion, log[0].Outcome.Data().StateVersion)
}

func (suite *ProgressionServiceTestSuite) TestForceResolveFromTally() {
	suite.castVotes("cap-crunch", "r1", 2, 2, 0)

	result, err := suite.svc.ForceResolve(suite.ctx, &service.ForceResolveRequest{TeamID: suite.teamID}, "facilitator-1")
	suite.Require().NoError(err)
	suite.True(result.Resolution.Forced)
	suite.Equal(2, result.Resolution.WinningOption)
	suite.Equal(3, suite.world.team(suite.teamID).Score)
}

func (suite *ProgressionServiceTestSuite) TestForceResolveErrorsAreAudited() {
	_, err := suite.svc.ForceResolve(suite.ctx, &service.ForceResolveRequest{TeamID: suite.teamID}, "facilitator-1")
	suite.ErrorIs(err, apperrors.ErrNoOpenRound)

	suite.castVotes("cap-crunch", "r1", 0)
	_, err = suite.svc.ForceResolve(suite.ctx, &service.ForceResolveRequest{TeamID: suite.teamID, OptionIndex: ptr(9)}, "facilitator-1")
	suite.True(apperrors.IsInvalidOption(err))
	suite.Equal(0, suite.world.team(suite.teamID).MissionIndex)

	log := suite.world.adminLog(suite.teamID)
	suite.Require().Len(log, 2)
	suite.False(log[0].Success)
	suite.False(log[1].Success)
	suite.Equal(string(apperrors.KindInvalidOption), log[1].Outcome.Data().ErrorKind)
}

func (suite *ProgressionServiceTestSuite) TestArchivedSessionRejectsMutations() {
	suite.castVotes("cap-crunch", "r1", 1)
	suite.world.mu.Lock()
	s := suite.world.sessions[suite.sessionID]
	s.Status = models.SessionStatusArchived
	suite.world.sessions[suite.sessionID] = s
	suite.world.mu.Unlock()

	_, err := suite.votes.CastVote(suite.ctx, &service.CastVoteRequest{
		TeamID: suite.teamID, ParticipantID: suite.players[1], MissionID: "cap-crunch", RoundID: "r1", OptionIndex: 1,
	})
	suite.ErrorIs(err, apperrors.ErrSessionArchived)

	_, err = suite.svc.ResolveRound(suite.ctx, &service.ResolveRoundRequest{TeamID: suite.teamID, MissionID: "cap-crunch", RoundID: "r1"}, "system")
	suite.ErrorIs(err, apperrors.ErrSessionArchived)

	_, err = suite.svc.ResetTeam(suite.ctx, &service.ResetTeamRequest{TeamID: suite.teamID}, "facilitator-1")
	suite.True(apperrors.IsInvalidState(err))

	// Reads still work.
	state, err := suite.svc.GetTeamState(suite.ctx, suite.teamID)
	suite.Require().NoError(err)
	suite.Require().NotNil(state.OpenTally)
	suite.Equal(1, state.OpenTally.Voters)
}

func (suite *ProgressionServiceTestSuite) TestGetTeamStateUnknownTeam() {
	_, err := suite.svc.GetTeamState(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *ProgressionServiceTestSuite) TestOpenRoundTransitions() {
	state, err := suite.svc.OpenRound(suite.ctx, &service.OpenRoundRequest{TeamID: suite.teamID, MissionID: "cap-crunch", RoundID: "r1"})
	suite.Require().NoError(err)
	suite.Require().NotNil(state.OpenRound)
	suite.Equal("r1", state.OpenRound.ID)
	suite.Equal([]string{"Hold", "Go big", "Trade", "Cut"}, state.OpenRound.Options)

	_, err = suite.svc.OpenRound(suite.ctx, &service.OpenRoundRequest{TeamID: suite.teamID, MissionID: "cap-crunch", RoundID: "r1"})
	suite.ErrorIs(err, apperrors.ErrRoundAlreadyOpen)

	_, err = suite.svc.OpenRound(suite.ctx, &service.OpenRoundRequest{TeamID: suite.teamID, MissionID: "rival-bid", RoundID: "r1"})
	suite.ErrorIs(err, apperrors.ErrRoundNotCurrent)

	_, err = suite.svc.OpenRound(suite.ctx, &service.OpenRoundRequest{TeamID: suite.teamID, MissionID: "nope", RoundID: "r1"})
	suite.ErrorIs(err, apperrors.ErrMissionNotFound)
}

func (suite *ProgressionServiceTestSuite) TestConcurrentResolveAppliesOnce() {
	suite.castVotes("cap-crunch", "r1", 1, 1, 2)

	const racers = 8
	results := make([]*service.ResolveResult, racers)
	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = suite.svc.ResolveRound(suite.ctx, &service.ResolveRoundRequest{
				TeamID: suite.teamID, MissionID: "cap-crunch", RoundID: "r1",
			}, "system")
		}(i)
	}
	wg.Wait()

	fresh := 0
	for i := 0; i < racers; i++ {
		suite.Require().NoError(errs[i])
		suite.Equal(1, results[i].Resolution.WinningOption)
		if !results[i].AlreadyResolved {
			fresh++
		}
	}
	suite.Equal(1, fresh)

	team := suite.world.team(suite.teamID)
	suite.Equal(12, team.Score)
	suite.Equal(1, team.MissionIndex)
	suite.Len(team.Badges, 1)
	suite.Equal(1, suite.world.outcomeCount(suite.teamID))
	suite.Len(suite.world.eventsOf(suite.teamID, models.TeamEventMissionCompleted), 1)
}

func (suite *ProgressionServiceTestSuite) TestConcurrentFacilitatorAndResolve() {
	suite.castVotes("cap-crunch", "r1", 1)

	var wg sync.WaitGroup
	var resolveErr, clearErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, resolveErr = suite.svc.ResolveRound(suite.ctx, &service.ResolveRoundRequest{
			TeamID: suite.teamID, MissionID: "cap-crunch", RoundID: "r1", ExpectedVersion: ptr(int64(1)),
		}, "system")
	}()
	go func() {
		defer wg.Done()
		_, clearErr = suite.svc.ClearRoundVotes(suite.ctx, &service.ClearRoundVotesRequest{
			TeamID: suite.teamID, ExpectedVersion: ptr(int64(1)),
		}, "facilitator-1")
	}()
	wg.Wait()

	// Both pinned version 1; exactly one commits.
	suite.True((resolveErr == nil) != (clearErr == nil), "resolve=%v clear=%v", resolveErr, clearErr)
	suite.Equal(int64(2), suite.world.team(suite.teamID).StateVersion)
}

func TestProgressionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressionServiceTestSuite))
}
