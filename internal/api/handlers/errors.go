package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mission-control-backend/internal/auth"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string         `json:"error" example:"team not found"`
	Kind  apperrors.Kind `json:"kind" example:"not_found"`
}

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindNotFound:             http.StatusNotFound,
	apperrors.KindInvalidOption:        http.StatusBadRequest,
	apperrors.KindValidation:           http.StatusBadRequest,
	apperrors.KindNoVotes:              http.StatusConflict,
	apperrors.KindInvalidState:         http.StatusConflict,
	apperrors.KindStateVersionConflict: http.StatusConflict,
	apperrors.KindUnauthorized:         http.StatusUnauthorized,
	apperrors.KindForbidden:            http.StatusForbidden,
}

// kindOf classifies err, treating request struct validation failures as validation errors
func kindOf(err error) apperrors.Kind {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.KindValidation
	}
	return apperrors.KindOf(err)
}

// respondError writes the structured failure payload for err
func respondError(c *gin.Context, err error) {
	kind := kindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
		logger.WithContext(c.Request.Context()).WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(status, ErrorResponse{Error: "internal server error", Kind: apperrors.KindInternal})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Kind: kind})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Kind: apperrors.KindValidation})
}

// uuidParam parses a path parameter, writing a 400 when it is malformed
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindOptionalJSON binds the body when one was sent. Admin operations accept an empty body.
func bindOptionalJSON(c *gin.Context, target interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(target); err != nil {
		badRequest(c, err.Error())
		return false
	}
	return true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

// identity returns the caller resolved by the auth middleware
func identity(c *gin.Context) (*auth.Identity, bool) {
	id, ok := auth.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrMissingIdentity)
		return nil, false
	}
	return id, true
}

// participantID returns the caller's participant id, rejecting facilitator callers
func participantID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := identity(c)
	if !ok {
		return uuid.Nil, false
	}
	pid, ok := id.ParticipantID()
	if !ok {
		respondError(c, apperrors.ErrParticipantOnly)
		return uuid.Nil, false
	}
	return pid, true
}
