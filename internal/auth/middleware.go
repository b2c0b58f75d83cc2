package auth

import (
	"net/http"
	"strings"

	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "auth_identity"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message, "kind": apperrors.KindUnauthorized})
}

func forbidden(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error(), "kind": apperrors.KindForbidden})
}

// RequireAuth resolves the bearer token and stores the identity in the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		identity, err := m.service.Resolve(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected bearer token")
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(identityKey, identity)
		c.Request = c.Request.WithContext(
			logger.ContextWithActor(c.Request.Context(), identity.Subject, string(identity.Role)),
		)
		c.Next()
	}
}

// RequireFacilitator rejects callers that are not facilitators
func (m *AuthMiddleware) RequireFacilitator() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			unauthorized(c, apperrors.ErrMissingIdentity.Error())
			return
		}
		if identity.Role != RoleFacilitator {
			forbidden(c, apperrors.ErrFacilitatorOnly)
			return
		}
		c.Next()
	}
}

// RequireParticipant rejects callers that are not participants
func (m *AuthMiddleware) RequireParticipant() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			unauthorized(c, apperrors.ErrMissingIdentity.Error())
			return
		}
		if identity.Role != RoleParticipant {
			forbidden(c, apperrors.ErrParticipantOnly)
			return
		}
		c.Next()
	}
}

// RequireTeamAccess rejects participants acting on a team other than their own.
// Facilitators pass for every team.
func (m *AuthMiddleware) RequireTeamAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			unauthorized(c, apperrors.ErrMissingIdentity.Error())
			return
		}
		teamID, err := uuid.Parse(c.Param(param))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid team id", "kind": apperrors.KindValidation})
			return
		}
		if !identity.CanAccessTeam(teamID) {
			forbidden(c, apperrors.ErrTeamAccessDenied)
			return
		}
		c.Next()
	}
}

// GetIdentity is a helper function to extract the resolved identity from context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok
}

// SetIdentity stores identity on the request. Used by tooling and handler tests.
func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityKey, identity)
}
