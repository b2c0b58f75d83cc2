package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role distinguishes the two kinds of callers
type Role string

const (
	RoleParticipant Role = "participant"
	RoleFacilitator Role = "facilitator"
)

// Identity is the resolved caller of a request
type Identity struct {
	Subject   string     `json:"sub"`
	Role      Role       `json:"role"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
}

// ParticipantID returns the participant id of a participant identity
func (i *Identity) ParticipantID() (uuid.UUID, bool) {
	if i.Role != RoleParticipant {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(i.Subject)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CanAccessTeam reports whether the identity may act on or read the team
func (i *Identity) CanAccessTeam(teamID uuid.UUID) bool {
	if i.Role == RoleFacilitator {
		return true
	}
	return i.TeamID != nil && *i.TeamID == teamID
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Role                 Role   `json:"role" example:"participant"`
	TeamID               string `json:"team_id,omitempty" example:"0b6f1f7e-3b39-4b8f-9a55-3c2f5f0c9a11"`
	SessionID            string `json:"session_id,omitempty" example:"7d3b0a40-5f0e-4a53-8f5b-0f4c6f1b2d9e"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid    bool      `json:"valid" example:"true"`
	Identity *Identity `json:"identity"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthService issues and resolves bearer tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// IssueParticipantToken signs a token bound to one participant seat
func (s *AuthService) IssueParticipantToken(participantID, teamID, sessionID uuid.UUID) (*TokenResponse, error) {
	return s.issue(&AuthClaims{
		Role:      RoleParticipant,
		TeamID:    teamID.String(),
		SessionID: sessionID.String(),
	}, participantID.String())
}

// IssueFacilitatorToken signs a facilitator token
func (s *AuthService) IssueFacilitatorToken(facilitatorID string) (*TokenResponse, error) {
	if facilitatorID == "" {
		return nil, fmt.Errorf("facilitator id is required")
	}
	return s.issue(&AuthClaims{Role: RoleFacilitator}, facilitatorID)
}

func (s *AuthService) issue(claims *AuthClaims, subject string) (*TokenResponse, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.config.Issuer,
		Subject:   subject,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
	}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// Resolve turns a bearer token into the caller identity
func (s *AuthService) Resolve(tokenString string) (*Identity, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	identity := &Identity{Subject: claims.Subject, Role: claims.Role}
	switch claims.Role {
	case RoleFacilitator:
	case RoleParticipant:
		if _, err := uuid.Parse(claims.Subject); err != nil {
			return nil, fmt.Errorf("participant subject is not a uuid: %w", err)
		}
		teamID, err := uuid.Parse(claims.TeamID)
		if err != nil {
			return nil, fmt.Errorf("participant token has no team: %w", err)
		}
		identity.TeamID = &teamID
		if claims.SessionID != "" {
			sessionID, err := uuid.Parse(claims.SessionID)
			if err != nil {
				return nil, fmt.Errorf("invalid session claim: %w", err)
			}
			identity.SessionID = &sessionID
		}
	default:
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	return identity, nil
}
