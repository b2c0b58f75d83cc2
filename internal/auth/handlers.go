package auth

import (
	"net/http"
	"strings"

	apperrors "mission-control-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate bearer token
// @Description Resolve the bearer token of the request and return the identity it carries
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required", "kind": apperrors.KindUnauthorized})
		return
	}

	identity, err := h.service.Resolve(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, AuthValidateResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Identity: identity})
}

// Me handles GET /api/auth/me
// @Summary Current identity
// @Description Return the identity resolved for the authenticated caller
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Identity
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingIdentity.Error(), "kind": apperrors.KindUnauthorized})
		return
	}
	c.JSON(http.StatusOK, identity)
}
