package handlers

import (
	"net/http"

	"mission-control-backend/internal/auth"
	"mission-control-backend/internal/database/models"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenIssuer mints participant bearer tokens on join
type TokenIssuer interface {
	IssueParticipantToken(participantID, teamID, sessionID uuid.UUID) (*auth.TokenResponse, error)
}

// SessionHandler handles HTTP requests for sessions, teams and seating
type SessionHandler struct {
	sessionService    service.SessionServiceInterface
	projectionService service.ProjectionServiceInterface
	tokens            TokenIssuer
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService service.SessionServiceInterface, projectionService service.ProjectionServiceInterface, tokens TokenIssuer) *SessionHandler {
	return &SessionHandler{
		sessionService:    sessionService,
		projectionService: projectionService,
		tokens:            tokens,
	}
}

// JoinResponse is returned to a participant joining a team
type JoinResponse struct {
	Participant *models.Participant `json:"participant"`
	Token       *auth.TokenResponse `json:"token"`
}

// CreateSession handles POST /sessions
// @Summary Create a session
// @Description Create a new classroom session owned by the calling facilitator
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body service.CreateSessionRequest true "Session data"
// @Success 201 {object} service.SessionResponse "Successfully created session"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Facilitator role required"
// @Security BearerAuth
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.FacilitatorID = caller.Subject

	session, err := h.sessionService.CreateSession(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListSessions handles GET /sessions
// @Summary List sessions
// @Description List the calling facilitator's sessions, newest first
// @Tags sessions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.SessionListResponse "Successfully retrieved sessions"
// @Security BearerAuth
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	sessions, err := h.sessionService.ListSessions(c.Request.Context(), caller.Subject, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession handles GET /sessions/:id
// @Summary Get session
// @Description Get a session with the state of every team
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse "Successfully retrieved session"
// @Failure 400 {object} ErrorResponse "Invalid session ID"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	session, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ArchiveSession handles POST /sessions/:id/archive
// @Summary Archive session
// @Description Archive a session; every team mutation in it is rejected afterwards
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse "Session archived"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "Session already archived"
// @Security BearerAuth
// @Router /sessions/{id}/archive [post]
func (h *SessionHandler) ArchiveSession(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	session, err := h.sessionService.ArchiveSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CreateTeam handles POST /sessions/:id/teams
// @Summary Create a team
// @Description Add a team at its first mission to an active session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamState "Successfully created team"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "Session archived"
// @Security BearerAuth
// @Router /sessions/{id}/teams [post]
func (h *SessionHandler) CreateTeam(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.SessionID = id

	team, err := h.sessionService.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /sessions/:id/teams
// @Summary List teams
// @Description List the state of every team in a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {array} service.TeamState "Successfully retrieved teams"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{id}/teams [get]
func (h *SessionHandler) ListTeams(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	teams, err := h.sessionService.ListTeams(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// Leaderboard handles GET /sessions/:id/leaderboard
// @Summary Session leaderboard
// @Description Rank the session's teams by score, earlier completion first on ties
// @Tags projections
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {array} service.LeaderboardEntry "Leaderboard"
// @Security BearerAuth
// @Router /sessions/{id}/leaderboard [get]
func (h *SessionHandler) Leaderboard(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}
	if caller.Role == auth.RoleParticipant && (caller.SessionID == nil || *caller.SessionID != id) {
		respondError(c, apperrors.ErrSessionAccessDenied)
		return
	}
	board, err := h.projectionService.Leaderboard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// Feed handles GET /sessions/:id/feed
// @Summary Facilitator feed
// @Description Every team of the session with activity recency and stuck flag
// @Tags projections
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {array} service.FeedEntry "Feed"
// @Security BearerAuth
// @Router /sessions/{id}/feed [get]
func (h *SessionHandler) Feed(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	feed, err := h.projectionService.FacilitatorFeed(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// JoinTeam handles POST /join/teams/:teamId
// @Summary Join a team
// @Description Seat a new participant in a team and issue the participant's bearer token
// @Tags sessions
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param participant body service.RegisterParticipantRequest true "Participant data"
// @Success 201 {object} JoinResponse "Participant seated"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Session archived"
// @Router /join/teams/{teamId} [post]
func (h *SessionHandler) JoinTeam(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	var req service.RegisterParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.TeamID = teamID

	participant, err := h.sessionService.RegisterParticipant(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := h.tokens.IssueParticipantToken(participant.ID, participant.TeamID, participant.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, JoinResponse{Participant: participant, Token: token})
}

// ListParticipants handles GET /teams/:teamId/participants
// @Summary List participants
// @Description List the participants seated in a team
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} models.Participant "Participants"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{teamId}/participants [get]
func (h *SessionHandler) ListParticipants(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	participants, err := h.sessionService.ListParticipants(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}
