package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mission-control-backend/internal/api/handlers"
	"mission-control-backend/internal/auth"
	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/mocks"
	"mission-control-backend/internal/progression"
	"mission-control-backend/internal/service"
	"mission-control-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// withIdentity stands in for the auth middleware in handler tests
func withIdentity(id *auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != nil {
			auth.SetIdentity(c, id)
		}
		c.Next()
	}
}

func participantIdentity(teamID, sessionID uuid.UUID) *auth.Identity {
	return &auth.Identity{
		Subject:   uuid.New().String(),
		Role:      auth.RoleParticipant,
		TeamID:    &teamID,
		SessionID: &sessionID,
	}
}

func facilitatorIdentity() *auth.Identity {
	return &auth.Identity{Subject: "facilitator-1", Role: auth.RoleFacilitator}
}

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProgression *mocks.MockProgressionServiceInterface
	mockVotes       *mocks.MockVoteServiceInterface
	mockProjections *mocks.MockProjectionServiceInterface
	handler         *handlers.TeamHandler
	httpSuite       *testutils.HTTPTestSuite
	caller          *auth.Identity
	teamID          uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProgression = mocks.NewMockProgressionServiceInterface(suite.ctrl)
	suite.mockVotes = mocks.NewMockVoteServiceInterface(suite.ctrl)
	suite.mockProjections = mocks.NewMockProjectionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockProgression, suite.mockVotes, suite.mockProjections)

	suite.teamID = uuid.New()
	suite.caller = participantIdentity(suite.teamID, uuid.New())

	suite.httpSuite = testutils.SetupHTTPTest()
	teams := suite.httpSuite.Router.Group("/api/v1/teams/:teamId", func(c *gin.Context) {
		withIdentity(suite.caller)(c)
	})
	{
		teams.GET("", suite.handler.GetTeam)
		teams.POST("/votes", suite.handler.CastVote)
		teams.GET("/votes/mine", suite.handler.MyVote)
		teams.GET("/tally", suite.handler.Tally)
		teams.POST("/rounds/open", suite.handler.OpenRound)
		teams.POST("/rounds/resolve", suite.handler.ResolveRound)
		teams.GET("/rivals", suite.handler.RivalFeed)
		teams.GET("/outcomes", suite.handler.Outcomes)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) url(path string) string {
	return fmt.Sprintf("/api/v1/teams/%s%s", suite.teamID, path)
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		state := &service.TeamState{ID: suite.teamID, Name: "Hawks", TotalMissions: 3, StateVersion: 4}
		suite.mockProgression.EXPECT().GetTeamState(gomock.Any(), suite.teamID).Return(state, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(""), nil)

		var response service.TeamState
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Hawks", response.Name)
		assert.Equal(t, int64(4), response.StateVersion)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/not-a-uuid", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockProgression.EXPECT().GetTeamState(gomock.Any(), suite.teamID).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(""), nil)

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusNotFound, &response)
		assert.Equal(t, apperrors.KindNotFound, response.Kind)
	})

	suite.T().Run("InternalErrorIsMasked", func(t *testing.T) {
		suite.mockProgression.EXPECT().GetTeamState(gomock.Any(), suite.teamID).Return(nil, fmt.Errorf("connection reset by peer"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(""), nil)

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusInternalServerError, &response)
		assert.Equal(t, "internal server error", response.Error)
		assert.Equal(t, apperrors.KindInternal, response.Kind)
	})
}

func (suite *TeamHandlerTestSuite) TestCastVote() {
	suite.T().Run("Success", func(t *testing.T) {
		pid, _ := suite.caller.ParticipantID()
		suite.mockVotes.EXPECT().
			CastVote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *service.CastVoteRequest) (*service.VoteResponse, error) {
				assert.Equal(t, suite.teamID, req.TeamID)
				assert.Equal(t, pid, req.ParticipantID)
				assert.Equal(t, "m1", req.MissionID)
				assert.Equal(t, "r1", req.RoundID)
				assert.Equal(t, 2, req.OptionIndex)
				return &service.VoteResponse{
					MissionID:    "m1",
					RoundID:      "r1",
					OptionIndex:  2,
					Tally:        progression.Tally{Counts: []int{0, 0, 1}, Voters: 1},
					StateVersion: 1,
				}, nil
			})

		body := map[string]interface{}{"mission_id": "m1", "round_id": "r1", "option_index": 2}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/votes"), body)

		var response service.VoteResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, []int{0, 0, 1}, response.Tally.Counts)
	})

	suite.T().Run("InvalidOption", func(t *testing.T) {
		suite.mockVotes.EXPECT().CastVote(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewInvalidOptionError(7, 3))

		body := map[string]interface{}{"mission_id": "m1", "round_id": "r1", "option_index": 7}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/votes"), body)

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusBadRequest, &response)
		assert.Equal(t, apperrors.KindInvalidOption, response.Kind)
	})

	suite.T().Run("RoundNotCurrent", func(t *testing.T) {
		suite.mockVotes.EXPECT().CastVote(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRoundNotCurrent)

		body := map[string]interface{}{"mission_id": "m1", "round_id": "r3", "option_index": 0}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/votes"), body)

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &response)
		assert.Equal(t, apperrors.KindInvalidState, response.Kind)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, suite.url("/votes"), bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestCastVoteRequiresParticipant() {
	suite.caller = facilitatorIdentity()

	body := map[string]interface{}{"mission_id": "m1", "round_id": "r1", "option_index": 0}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/votes"), body)

	var response handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusForbidden, &response)
	assert.Equal(suite.T(), apperrors.KindForbidden, response.Kind)
}

func (suite *TeamHandlerTestSuite) TestMissingIdentity() {
	suite.caller = nil

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/rounds/resolve"), map[string]interface{}{"mission_id": "m1", "round_id": "r1"})

	var response handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusUnauthorized, &response)
	assert.Equal(suite.T(), apperrors.KindUnauthorized, response.Kind)
}

func (suite *TeamHandlerTestSuite) TestTally() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockVotes.EXPECT().
			Tally(gomock.Any(), suite.teamID, "m1", "r2").
			Return(&progression.Tally{Counts: []int{1, 2, 0}, Voters: 3}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/tally?mission_id=m1&round_id=r2"), nil)

		var response progression.Tally
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 3, response.Voters)
	})

	suite.T().Run("MissingQuery", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/tally?mission_id=m1"), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "mission_id and round_id are required")
	})
}

func (suite *TeamHandlerTestSuite) TestMyVote() {
	pid, _ := suite.caller.ParticipantID()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockVotes.EXPECT().
			MyVote(gomock.Any(), suite.teamID, pid, "m1", "r1").
			Return(&models.Vote{TeamID: suite.teamID, ParticipantID: pid, MissionID: "m1", RoundID: "r1", OptionIndex: 1}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/votes/mine?mission_id=m1&round_id=r1"), nil)

		var response models.Vote
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 1, response.OptionIndex)
	})

	suite.T().Run("NoVote", func(t *testing.T) {
		suite.mockVotes.EXPECT().
			MyVote(gomock.Any(), suite.teamID, pid, "m1", "r2").
			Return(nil, apperrors.NewNotFoundError("vote"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/votes/mine?mission_id=m1&round_id=r2"), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "vote not found")
	})
}

func (suite *TeamHandlerTestSuite) TestOpenRound() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := int64(3)
		suite.mockProgression.EXPECT().
			OpenRound(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *service.OpenRoundRequest) (*service.TeamState, error) {
				assert.Equal(t, suite.teamID, req.TeamID)
				assert.Equal(t, &expected, req.ExpectedVersion)
				return &service.TeamState{ID: suite.teamID, Round: models.RoundState{Phase: models.RoundPhaseOpen, MissionID: "m1", RoundID: "r1"}, StateVersion: 4}, nil
			})

		body := map[string]interface{}{"mission_id": "m1", "round_id": "r1", "expected_version": 3}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/rounds/open"), body)

		var response service.TeamState
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(4), response.StateVersion)
	})

	suite.T().Run("VersionConflict", func(t *testing.T) {
		suite.mockProgression.EXPECT().OpenRound(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrStateVersionConflict)

		body := map[string]interface{}{"mission_id": "m1", "round_id": "r1", "expected_version": 1}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/rounds/open"), body)

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &response)
		assert.Equal(t, apperrors.KindStateVersionConflict, response.Kind)
	})
}

func (suite *TeamHandlerTestSuite) TestResolveRound() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockProgression.EXPECT().
			ResolveRound(gomock.Any(), gomock.Any(), suite.caller.Subject).
			Return(&service.ResolveResult{
				Resolution:       &progression.Resolution{WinningOption: 1},
				MissionCompleted: false,
				Team:             &service.TeamState{ID: suite.teamID, StateVersion: 2},
			}, nil)

		body := map[string]interface{}{"mission_id": "m1", "round_id": "r1"}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/rounds/resolve"), body)

		var response service.ResolveResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 1, response.Resolution.WinningOption)
		assert.False(t, response.AlreadyResolved)
	})

	suite.T().Run("NoVotes", func(t *testing.T) {
		suite.mockProgression.EXPECT().
			ResolveRound(gomock.Any(), gomock.Any(), suite.caller.Subject).
			Return(nil, apperrors.ErrNoVotes)

		body := map[string]interface{}{"mission_id": "m1", "round_id": "r1"}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/rounds/resolve"), body)

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &response)
		assert.Equal(t, apperrors.KindNoVotes, response.Kind)
	})
}

func (suite *TeamHandlerTestSuite) TestRoundTransitionsRequireParticipant() {
	suite.caller = facilitatorIdentity()
	body := map[string]interface{}{"mission_id": "m1", "round_id": "r1"}

	for _, path := range []string{"/rounds/open", "/rounds/resolve"} {
		suite.T().Run(path, func(t *testing.T) {
			recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(path), body)

			var response handlers.ErrorResponse
			testutils.AssertJSONResponse(t, recorder, http.StatusForbidden, &response)
			assert.Equal(t, apperrors.KindForbidden, response.Kind)
		})
	}
}

func (suite *TeamHandlerTestSuite) TestReadModels() {
	suite.T().Run("RivalFeed", func(t *testing.T) {
		suite.mockProjections.EXPECT().
			RivalFeed(gomock.Any(), suite.teamID).
			Return([]service.RivalNotice{{TeamName: "Owls", MissionID: "m1", Message: "Owls cleared the first mission"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/rivals"), nil)

		var response []service.RivalNotice
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, "Owls", response[0].TeamName)
	})

	suite.T().Run("Outcomes", func(t *testing.T) {
		suite.mockProjections.EXPECT().
			MissionOutcomes(gomock.Any(), suite.teamID).
			Return([]models.MissionOutcome{{TeamID: suite.teamID, MissionID: "m1", ResolutionFields: models.ResolutionFields{ScoreDelta: 20}}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/outcomes"), nil)

		var response []models.MissionOutcome
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, 20, response[0].ScoreDelta)
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
