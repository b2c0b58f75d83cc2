package handlers

import (
	"net/http"

	"mission-control-backend/internal/logger"
	"mission-control-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ParticipantHandler handles the calling participant's own resources
type ParticipantHandler struct {
	sessionService    service.SessionServiceInterface
	submissionService service.SubmissionServiceInterface
	conceptService    service.ConceptServiceInterface
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(sessionService service.SessionServiceInterface, submissionService service.SubmissionServiceInterface, conceptService service.ConceptServiceInterface) *ParticipantHandler {
	return &ParticipantHandler{
		sessionService:    sessionService,
		submissionService: submissionService,
		conceptService:    conceptService,
	}
}

// Me handles GET /me
// @Summary Own participant record
// @Description The calling participant's seat
// @Tags participants
// @Produce json
// @Success 200 {object} models.Participant "Participant"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Security BearerAuth
// @Router /me [get]
func (h *ParticipantHandler) Me(c *gin.Context) {
	pid, ok := participantID(c)
	if !ok {
		return
	}
	participant, err := h.sessionService.GetParticipant(c.Request.Context(), pid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// SubmitCompletion handles POST /me/completion
// @Summary Submit completion
// @Description Mint the caller's participant claim code once the team is complete. A repeat returns the stored submission.
// @Tags participants
// @Accept json
// @Produce json
// @Param submission body service.SubmitCompletionRequest false "Reflection"
// @Success 201 {object} service.SubmissionResponse "Submission created"
// @Success 200 {object} service.SubmissionResponse "Submission already existed"
// @Failure 409 {object} ErrorResponse "Team not complete"
// @Security BearerAuth
// @Router /me/completion [post]
func (h *ParticipantHandler) SubmitCompletion(c *gin.Context) {
	pid, ok := participantID(c)
	if !ok {
		return
	}
	var req service.SubmitCompletionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	req.ParticipantID = pid

	resp, err := h.submissionService.SubmitCompletion(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusCreated
	if resp.AlreadySubmitted {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// GetCompletion handles GET /me/completion
// @Summary Own submission
// @Description The caller's completion submission
// @Tags participants
// @Produce json
// @Success 200 {object} models.CompletionSubmission "Submission"
// @Failure 404 {object} ErrorResponse "Not submitted"
// @Security BearerAuth
// @Router /me/completion [get]
func (h *ParticipantHandler) GetCompletion(c *gin.Context) {
	pid, ok := participantID(c)
	if !ok {
		return
	}
	submission, err := h.submissionService.GetSubmission(c.Request.Context(), pid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}

// GetConcept handles GET /concepts/:conceptId
// @Summary Get concept
// @Description Glossary entry with its two check questions
// @Tags concepts
// @Produce json
// @Param conceptId path string true "Concept ID"
// @Success 200 {object} catalog.Concept "Concept"
// @Failure 404 {object} ErrorResponse "Concept not found"
// @Security BearerAuth
// @Router /concepts/{conceptId} [get]
func (h *ParticipantHandler) GetConcept(c *gin.Context) {
	concept, err := h.conceptService.GetConcept(c.Request.Context(), c.Param("conceptId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, concept)
}

// ConceptCheck handles POST /concepts/:conceptId/check
// @Summary Submit a concept check
// @Description Grade two answers and count the attempt
// @Tags concepts
// @Accept json
// @Produce json
// @Param conceptId path string true "Concept ID"
// @Param answers body service.ConceptCheckRequest true "Answers"
// @Success 200 {object} service.ConceptCheckResult "Graded"
// @Failure 400 {object} ErrorResponse "Wrong answer count"
// @Failure 404 {object} ErrorResponse "Concept not found"
// @Security BearerAuth
// @Router /concepts/{conceptId}/check [post]
func (h *ParticipantHandler) ConceptCheck(c *gin.Context) {
	pid, ok := participantID(c)
	if !ok {
		return
	}
	var req service.ConceptCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.ParticipantID = pid
	req.ConceptID = c.Param("conceptId")

	result, err := h.conceptService.SubmitConceptCheck(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConceptAttempts handles GET /me/concept-attempts
// @Summary Own concept attempts
// @Description Attempt counters of the caller per concept
// @Tags concepts
// @Produce json
// @Success 200 {array} models.ConceptAttempt "Attempts"
// @Security BearerAuth
// @Router /me/concept-attempts [get]
func (h *ParticipantHandler) ConceptAttempts(c *gin.Context) {
	pid, ok := participantID(c)
	if !ok {
		return
	}
	attempts, err := h.conceptService.ListAttempts(c.Request.Context(), pid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// Touch returns middleware refreshing the calling participant's activity timestamp.
// A failed refresh is logged and never fails the request.
func (h *ParticipantHandler) Touch() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := identity(c)
		if !ok {
			c.Abort()
			return
		}
		if pid, ok := caller.ParticipantID(); ok {
			if err := h.sessionService.TouchParticipant(c.Request.Context(), pid); err != nil {
				logger.WithContext(c.Request.Context()).WithError(err).Warn("failed to refresh participant activity")
			}
		}
		c.Next()
	}
}
