package service

import (
	"context"
	"fmt"
	"time"

	"mission-control-backend/internal/catalog"
	"mission-control-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ConceptService grades comprehension checks
type ConceptService struct {
	repos     Repositories
	concepts  catalog.ConceptCatalog
	validator *validator.Validate
	now       Clock
}

// NewConceptService creates a new concept service
func NewConceptService(repos Repositories, concepts catalog.ConceptCatalog, validator *validator.Validate) *ConceptService {
	return &ConceptService{repos: repos, concepts: concepts, validator: validator, now: time.Now}
}

// ConceptCheckRequest carries one answer per question
type ConceptCheckRequest struct {
	ParticipantID uuid.UUID `json:"-" validate:"required"`
	ConceptID     string    `json:"-" validate:"required,max=64"`
	Answers       []int     `json:"answers" validate:"required,len=2,dive,min=0"`
}

// ConceptCheckResult reports the grading and the running counter
type ConceptCheckResult struct {
	ConceptID string                 `json:"concept_id"`
	Results   []bool                 `json:"results"`
	Correct   int                    `json:"correct"`
	Passed    bool                   `json:"passed"`
	Attempt   *models.ConceptAttempt `json:"attempt"`
}

// GetConcept returns a glossary entry with its questions. Correct answers are not serialized.
func (s *ConceptService) GetConcept(ctx context.Context, id string) (*catalog.Concept, error) {
	return s.concepts.ConceptByID(id)
}

// SubmitConceptCheck grades the answers and increments the attempt counter
func (s *ConceptService) SubmitConceptCheck(ctx context.Context, req *ConceptCheckRequest) (*ConceptCheckResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	concept, err := s.concepts.ConceptByID(req.ConceptID)
	if err != nil {
		return nil, err
	}
	results, err := concept.Grade(req.Answers)
	if err != nil {
		return nil, err
	}
	correct := 0
	for _, ok := range results {
		if ok {
			correct++
		}
	}
	passed := correct == len(results)

	attempt, err := s.repos.Attempts.RecordAttempt(ctx, req.ParticipantID, concept.ID, correct, passed, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}
	return &ConceptCheckResult{
		ConceptID: concept.ID,
		Results:   results,
		Correct:   correct,
		Passed:    passed,
		Attempt:   attempt,
	}, nil
}

// ListAttempts returns the participant's attempt counters
func (s *ConceptService) ListAttempts(ctx context.Context, participantID uuid.UUID) ([]models.ConceptAttempt, error) {
	attempts, err := s.repos.Attempts.GetByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, nil
}
