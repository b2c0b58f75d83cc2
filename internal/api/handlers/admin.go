package handlers

import (
	"net/http"

	"mission-control-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles facilitator interventions and audit reads
type AdminHandler struct {
	progressionService service.ProgressionServiceInterface
	voteService        service.VoteServiceInterface
	projectionService  service.ProjectionServiceInterface
	submissionService  service.SubmissionServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(progressionService service.ProgressionServiceInterface, voteService service.VoteServiceInterface, projectionService service.ProjectionServiceInterface, submissionService service.SubmissionServiceInterface) *AdminHandler {
	return &AdminHandler{
		progressionService: progressionService,
		voteService:        voteService,
		projectionService:  projectionService,
		submissionService:  submissionService,
	}
}

// ForceResolve handles POST /teams/:teamId/admin/force-resolve
// @Summary Force-resolve the open round
// @Description Resolve the open round now, from the tally or with a forced option
// @Tags admin
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.ForceResolveRequest false "Forced option and expected version"
// @Success 200 {object} service.ResolveResult "Round resolved"
// @Failure 409 {object} ErrorResponse "No open round, no votes, or version conflict"
// @Security BearerAuth
// @Router /teams/{teamId}/admin/force-resolve [post]
func (h *AdminHandler) ForceResolve(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}
	var req service.ForceResolveRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	req.TeamID = teamID

	result, err := h.progressionService.ForceResolve(c.Request.Context(), &req, caller.Subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ClearVotes handles POST /teams/:teamId/admin/clear-votes
// @Summary Clear round votes
// @Description Delete every vote of the open round
// @Tags admin
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.ClearRoundVotesRequest false "Expected version"
// @Success 200 {object} service.ClearVotesResult "Votes cleared"
// @Failure 409 {object} ErrorResponse "No open round or version conflict"
// @Security BearerAuth
// @Router /teams/{teamId}/admin/clear-votes [post]
func (h *AdminHandler) ClearVotes(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}
	var req service.ClearRoundVotesRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	req.TeamID = teamID

	result, err := h.progressionService.ClearRoundVotes(c.Request.Context(), &req, caller.Subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// JumpMission handles POST /teams/:teamId/admin/jump
// @Summary Jump to a mission
// @Description Move the team's mission pointer directly, discarding the open round
// @Tags admin
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.JumpMissionRequest true "Target index and expected version"
// @Success 200 {object} service.TeamState "Team moved"
// @Failure 409 {object} ErrorResponse "Index out of range or version conflict"
// @Security BearerAuth
// @Router /teams/{teamId}/admin/jump [post]
func (h *AdminHandler) JumpMission(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}
	var req service.JumpMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.TeamID = teamID

	state, err := h.progressionService.JumpMission(c.Request.Context(), &req, caller.Subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ResetTeam handles POST /teams/:teamId/admin/reset
// @Summary Reset a team
// @Description Return a team to its initial state and delete its votes, outcomes and submissions
// @Tags admin
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.ResetTeamRequest false "Expected version"
// @Success 200 {object} service.TeamState "Team reset"
// @Failure 409 {object} ErrorResponse "Version conflict or session archived"
// @Security BearerAuth
// @Router /teams/{teamId}/admin/reset [post]
func (h *AdminHandler) ResetTeam(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}
	var req service.ResetTeamRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	req.TeamID = teamID

	state, err := h.progressionService.ResetTeam(c.Request.Context(), &req, caller.Subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ListVotes handles GET /teams/:teamId/admin/votes
// @Summary Per-voter ballots
// @Description Every participant's ballot for a round, facilitator only
// @Tags admin
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param mission_id query string true "Mission ID"
// @Param round_id query string true "Round ID"
// @Success 200 {object} service.RoundVotes "Ballots"
// @Security BearerAuth
// @Router /teams/{teamId}/admin/votes [get]
func (h *AdminHandler) ListVotes(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	missionID, roundID := c.Query("mission_id"), c.Query("round_id")
	if missionID == "" || roundID == "" {
		badRequest(c, "mission_id and round_id are required")
		return
	}
	votes, err := h.voteService.ListVotes(c.Request.Context(), teamID, missionID, roundID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, votes)
}

// Events handles GET /teams/:teamId/admin/events
// @Summary Team timeline
// @Description The team's event timeline, newest first
// @Tags admin
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} models.TeamEvent "Events"
// @Security BearerAuth
// @Router /teams/{teamId}/admin/events [get]
func (h *AdminHandler) Events(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	events, err := h.projectionService.TeamEvents(c.Request.Context(), teamID, queryInt(c, "limit", 50))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Actions handles GET /teams/:teamId/admin/actions
// @Summary Admin action log
// @Description Facilitator interventions on the team, successes and failures, newest first
// @Tags admin
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} models.AdminAction "Actions"
// @Security BearerAuth
// @Router /teams/{teamId}/admin/actions [get]
func (h *AdminHandler) Actions(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	actions, err := h.projectionService.AdminActions(c.Request.Context(), teamID, queryInt(c, "limit", 50))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}

// Submissions handles GET /teams/:teamId/admin/submissions
// @Summary Completion submissions
// @Description Every completion submission of a team
// @Tags admin
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} models.CompletionSubmission "Submissions"
// @Security BearerAuth
// @Router /teams/{teamId}/admin/submissions [get]
func (h *AdminHandler) Submissions(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	submissions, err := h.submissionService.ListTeamSubmissions(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}
