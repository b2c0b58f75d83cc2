package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"mission-control-backend/internal/auth"
	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/config"
	"mission-control-backend/internal/database"
	"mission-control-backend/internal/database/models"
	"mission-control-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file
type TeamData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type SessionData struct {
	Name          string     `yaml:"name"`
	FacilitatorID string     `yaml:"facilitator_id"`
	Teams         []TeamData `yaml:"teams"`
}

// File structures
type SessionsFile struct {
	Sessions []SessionData `yaml:"sessions"`
}

func main() {
	dataDir := flag.String("data", "scripts/data", "directory containing sessions.yaml")
	tokenFor := flag.String("token", "", "print a facilitator bearer token for this facilitator id and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *tokenFor != "" {
		if err := printFacilitatorToken(cfg, *tokenFor); err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		return
	}

	log.Println("🚀 Loading initial sessions from YAML files...")

	missions, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load mission catalog: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sessionService := service.NewSessionService(service.NewRepositories(db), missions, validator.New())
	if err := loadDataFromYAMLFiles(context.Background(), db, sessionService, *dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func printFacilitatorToken(cfg *config.Config, facilitatorID string) error {
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return err
	}
	token, err := authService.IssueFacilitatorToken(facilitatorID)
	if err != nil {
		return err
	}
	fmt.Println(token.AccessToken)
	return nil
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, sessions service.SessionServiceInterface, dataDir string) error {
	data, err := loadSessions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	sessionCreated, teamCreated, teamTotal := 0, 0, 0
	for _, sessionData := range data {
		session, created, err := createSession(ctx, db, sessions, sessionData)
		if err != nil {
			return fmt.Errorf("failed to create session %s: %w", sessionData.Name, err)
		}
		if created {
			sessionCreated++
		}

		for _, teamData := range sessionData.Teams {
			teamTotal++
			created, err := createTeam(ctx, db, sessions, session, teamData)
			if err != nil {
				return fmt.Errorf("failed to create team %s in session %s: %w", teamData.Name, sessionData.Name, err)
			}
			if created {
				teamCreated++
			}
		}
	}
	log.Printf("📋 Sessions: %d created, %d total", sessionCreated, len(data))
	log.Printf("📋 Teams: %d created, %d total", teamCreated, teamTotal)
	return nil
}

func loadSessions(dataDir string) ([]SessionData, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "sessions.yaml"))
	if err != nil {
		return nil, err
	}
	var file SessionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return file.Sessions, nil
}

func createSession(ctx context.Context, db *gorm.DB, sessions service.SessionServiceInterface, data SessionData) (*models.Session, bool, error) {
	var session models.Session
	err := db.WithContext(ctx).Where("name = ? AND facilitator_id = ?", data.Name, data.FacilitatorID).First(&session).Error
	if err == nil {
		return &session, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query session: %w", err)
	}

	resp, err := sessions.CreateSession(ctx, &service.CreateSessionRequest{Name: data.Name, FacilitatorID: data.FacilitatorID})
	if err != nil {
		return nil, false, err
	}
	session = models.Session{Name: resp.Name, FacilitatorID: resp.FacilitatorID, Status: resp.Status}
	session.ID = resp.ID
	return &session, true, nil
}

func createTeam(ctx context.Context, db *gorm.DB, sessions service.SessionServiceInterface, session *models.Session, data TeamData) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Team{}).Where("session_id = ? AND name = ?", session.ID, data.Name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query team: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if _, err := sessions.CreateTeam(ctx, &service.CreateTeamRequest{SessionID: session.ID, Name: data.Name, Color: data.Color}); err != nil {
		return false, err
	}
	return true, nil
}
