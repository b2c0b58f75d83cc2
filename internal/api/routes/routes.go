package routes

import (
	"fmt"

	"mission-control-backend/internal/api/handlers"
	"mission-control-backend/internal/api/middleware"
	"mission-control-backend/internal/auth"
	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/config"
	"mission-control-backend/internal/database"
	"mission-control-backend/internal/service"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoints
var Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, missions *catalog.Catalog) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Tracing())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories and services
	repos := service.NewRepositories(db)
	settings := service.SettingsFromConfig(cfg)

	sessionService := service.NewSessionService(repos, missions, validator)
	voteService := service.NewVoteService(repos, missions, settings, validator)
	progressionService := service.NewProgressionService(repos, missions, settings, validator)
	submissionService := service.NewSubmissionService(repos, missions, validator)
	conceptService := service.NewConceptService(repos, missions, validator)
	projectionService := service.NewProjectionService(repos, missions, settings)

	// Initialize auth configuration and services
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(func() error { return database.Ping(db) }, missions.TotalMissions(), Version)
	sessionHandler := handlers.NewSessionHandler(sessionService, projectionService, authService)
	teamHandler := handlers.NewTeamHandler(progressionService, voteService, projectionService)
	adminHandler := handlers.NewAdminHandler(progressionService, voteService, projectionService, submissionService)
	participantHandler := handlers.NewParticipantHandler(sessionService, submissionService, conceptService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.EnablePprof {
		pprof.Register(router)
	}

	// Auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/validate", authHandler.ValidateToken)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Joining a team is the only unauthenticated write; it issues the participant token
	router.POST("/api/join/teams/:teamId", sessionHandler.JoinTeam)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	v1.Use(participantHandler.Touch())
	{
		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.GET("/:id/leaderboard", sessionHandler.Leaderboard)

			facilitator := sessions.Group("", authMiddleware.RequireFacilitator())
			facilitator.POST("", sessionHandler.CreateSession)
			facilitator.GET("", sessionHandler.ListSessions)
			facilitator.GET("/:id", sessionHandler.GetSession)
			facilitator.POST("/:id/archive", sessionHandler.ArchiveSession)
			facilitator.POST("/:id/teams", sessionHandler.CreateTeam)
			facilitator.GET("/:id/teams", sessionHandler.ListTeams)
			facilitator.GET("/:id/feed", sessionHandler.Feed)
		}

		// Team routes
		teams := v1.Group("/teams/:teamId", authMiddleware.RequireTeamAccess("teamId"))
		{
			teams.GET("", teamHandler.GetTeam)
			teams.GET("/participants", sessionHandler.ListParticipants)
			teams.GET("/tally", teamHandler.Tally)
			teams.POST("/votes", authMiddleware.RequireParticipant(), teamHandler.CastVote)
			teams.GET("/votes/mine", authMiddleware.RequireParticipant(), teamHandler.MyVote)
			teams.POST("/rounds/open", authMiddleware.RequireParticipant(), teamHandler.OpenRound)
			teams.POST("/rounds/resolve", authMiddleware.RequireParticipant(), teamHandler.ResolveRound)
			teams.GET("/rivals", teamHandler.RivalFeed)
			teams.GET("/outcomes", teamHandler.Outcomes)

			// Facilitator interventions
			admin := teams.Group("/admin", authMiddleware.RequireFacilitator())
			{
				admin.POST("/force-resolve", adminHandler.ForceResolve)
				admin.POST("/clear-votes", adminHandler.ClearVotes)
				admin.POST("/jump", adminHandler.JumpMission)
				admin.POST("/reset", adminHandler.ResetTeam)
				admin.GET("/votes", adminHandler.ListVotes)
				admin.GET("/events", adminHandler.Events)
				admin.GET("/actions", adminHandler.Actions)
				admin.GET("/submissions", adminHandler.Submissions)
			}
		}

		// Participant routes
		me := v1.Group("/me", authMiddleware.RequireParticipant())
		{
			me.GET("", participantHandler.Me)
			me.POST("/completion", participantHandler.SubmitCompletion)
			me.GET("/completion", participantHandler.GetCompletion)
			me.GET("/concept-attempts", participantHandler.ConceptAttempts)
		}

		// Concept routes
		concepts := v1.Group("/concepts")
		{
			concepts.GET("/:conceptId", participantHandler.GetConcept)
			concepts.POST("/:conceptId/check", authMiddleware.RequireParticipant(), participantHandler.ConceptCheck)
		}
	}

	return router, nil
}
