package handlers

import (
	"net/http"

	"mission-control-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team play: state, votes and round transitions
type TeamHandler struct {
	progressionService service.ProgressionServiceInterface
	voteService        service.VoteServiceInterface
	projectionService  service.ProjectionServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(progressionService service.ProgressionServiceInterface, voteService service.VoteServiceInterface, projectionService service.ProjectionServiceInterface) *TeamHandler {
	return &TeamHandler{
		progressionService: progressionService,
		voteService:        voteService,
		projectionService:  projectionService,
	}
}

// GetTeam handles GET /teams/:teamId
// @Summary Get team state
// @Description Current progression state of a team, including the open round's tally
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamState "Team state"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	state, err := h.progressionService.GetTeamState(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CastVote handles POST /teams/:teamId/votes
// @Summary Cast a vote
// @Description Record or overwrite the caller's vote for a round. Voting on the next round opens it.
// @Tags votes
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param vote body service.CastVoteRequest true "Vote"
// @Success 200 {object} service.VoteResponse "Vote recorded"
// @Failure 400 {object} ErrorResponse "Invalid option or request"
// @Failure 404 {object} ErrorResponse "Team, mission or round not found"
// @Failure 409 {object} ErrorResponse "Round not open or session archived"
// @Security BearerAuth
// @Router /teams/{teamId}/votes [post]
func (h *TeamHandler) CastVote(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	pid, ok := participantID(c)
	if !ok {
		return
	}
	var req service.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.TeamID = teamID
	req.ParticipantID = pid

	resp, err := h.voteService.CastVote(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Tally handles GET /teams/:teamId/tally
// @Summary Round tally
// @Description Anonymous vote counts per option for a round
// @Tags votes
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param mission_id query string true "Mission ID"
// @Param round_id query string true "Round ID"
// @Success 200 {object} progression.Tally "Tally"
// @Failure 404 {object} ErrorResponse "Team, mission or round not found"
// @Security BearerAuth
// @Router /teams/{teamId}/tally [get]
func (h *TeamHandler) Tally(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	missionID, roundID := c.Query("mission_id"), c.Query("round_id")
	if missionID == "" || roundID == "" {
		badRequest(c, "mission_id and round_id are required")
		return
	}
	tally, err := h.voteService.Tally(c.Request.Context(), teamID, missionID, roundID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tally)
}

// MyVote handles GET /teams/:teamId/votes/mine
// @Summary Own vote
// @Description The caller's current ballot for a round
// @Tags votes
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param mission_id query string true "Mission ID"
// @Param round_id query string true "Round ID"
// @Success 200 {object} models.Vote "Vote"
// @Failure 404 {object} ErrorResponse "No vote cast"
// @Security BearerAuth
// @Router /teams/{teamId}/votes/mine [get]
func (h *TeamHandler) MyVote(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	pid, ok := participantID(c)
	if !ok {
		return
	}
	vote, err := h.voteService.MyVote(c.Request.Context(), teamID, pid, c.Query("mission_id"), c.Query("round_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vote)
}

// OpenRound handles POST /teams/:teamId/rounds/open
// @Summary Open a round
// @Description Open the next round of the team's current mission
// @Tags rounds
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param round body service.OpenRoundRequest true "Round"
// @Success 200 {object} service.TeamState "Round opened"
// @Failure 403 {object} ErrorResponse "Caller is not a participant"
// @Failure 409 {object} ErrorResponse "Round not current, already open, or version conflict"
// @Security BearerAuth
// @Router /teams/{teamId}/rounds/open [post]
func (h *TeamHandler) OpenRound(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	if _, ok := participantID(c); !ok {
		return
	}
	var req service.OpenRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.TeamID = teamID

	state, err := h.progressionService.OpenRound(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ResolveRound handles POST /teams/:teamId/rounds/resolve
// @Summary Resolve a round
// @Description Resolve a round from its tally. Re-resolving returns the stored outcome flagged already_resolved.
// @Tags rounds
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param round body service.ResolveRoundRequest true "Round"
// @Success 200 {object} service.ResolveResult "Round resolved"
// @Failure 403 {object} ErrorResponse "Caller is not a participant; facilitators use force-resolve"
// @Failure 409 {object} ErrorResponse "No votes, round not open, or version conflict"
// @Security BearerAuth
// @Router /teams/{teamId}/rounds/resolve [post]
func (h *TeamHandler) ResolveRound(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	pid, ok := participantID(c)
	if !ok {
		return
	}
	var req service.ResolveRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.TeamID = teamID

	result, err := h.progressionService.ResolveRound(c.Request.Context(), &req, pid.String())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RivalFeed handles GET /teams/:teamId/rivals
// @Summary Rival feed
// @Description Missions other teams of the session completed recently
// @Tags projections
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.RivalNotice "Rival notices"
// @Security BearerAuth
// @Router /teams/{teamId}/rivals [get]
func (h *TeamHandler) RivalFeed(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	notices, err := h.projectionService.RivalFeed(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

// Outcomes handles GET /teams/:teamId/outcomes
// @Summary Mission outcomes
// @Description Recorded mission outcomes of a team
// @Tags projections
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} models.MissionOutcome "Outcomes"
// @Security BearerAuth
// @Router /teams/{teamId}/outcomes [get]
func (h *TeamHandler) Outcomes(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	outcomes, err := h.projectionService.MissionOutcomes(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcomes)
}
