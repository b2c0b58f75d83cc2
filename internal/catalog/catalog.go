// Package catalog provides the static mission and concept content the progression engine reads.
// Missions form a fixed linear sequence; each mission has one or more rounds with fixed options.
package catalog

import (
	"fmt"

	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/traits"
)

// Outcome is the fixed result attached to one option.
type Outcome struct {
	Narrative  string        `yaml:"narrative" json:"narrative"`
	ScoreDelta int           `yaml:"score_delta" json:"score_delta"`
	Traits     traits.Vector `yaml:"traits" json:"traits"`
}

// Option is one choice inside a round.
type Option struct {
	Label   string  `yaml:"label" json:"label"`
	Outcome Outcome `yaml:"outcome" json:"outcome"`
}

// Round is one voting event within a mission.
type Round struct {
	ID      string   `yaml:"id" json:"id"`
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Rival   bool     `yaml:"rival,omitempty" json:"rival,omitempty"`
	Options []Option `yaml:"options" json:"options"`
}

// OptionCount returns the number of options in the round.
func (r *Round) OptionCount() int {
	return len(r.Options)
}

// Mission is one scenario. Its final round is the terminal round.
type Mission struct {
	ID        string  `yaml:"id" json:"id"`
	Title     string  `yaml:"title" json:"title"`
	Briefing  string  `yaml:"briefing" json:"briefing"`
	ConceptID string  `yaml:"concept_id" json:"concept_id"`
	Rounds    []Round `yaml:"rounds" json:"rounds"`
}

// RoundIndex returns the position of roundID within the mission.
func (m *Mission) RoundIndex(roundID string) (int, error) {
	for i := range m.Rounds {
		if m.Rounds[i].ID == roundID {
			return i, nil
		}
	}
	return -1, apperrors.ErrRoundNotFound
}

// Round looks up a round by id.
func (m *Mission) Round(roundID string) (*Round, error) {
	i, err := m.RoundIndex(roundID)
	if err != nil {
		return nil, err
	}
	return &m.Rounds[i], nil
}

// IsTerminalRound reports whether roundID is the mission's last round.
func (m *Mission) IsTerminalRound(roundID string) bool {
	return len(m.Rounds) > 0 && m.Rounds[len(m.Rounds)-1].ID == roundID
}

// Question is one multiple-choice comprehension question.
type Question struct {
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []string `yaml:"options" json:"options"`
	Correct int      `yaml:"correct" json:"-"`
}

// Concept is a glossary entry with its two-question comprehension check.
type Concept struct {
	ID         string     `yaml:"id" json:"id"`
	Term       string     `yaml:"term" json:"term"`
	Definition string     `yaml:"definition" json:"definition"`
	Questions  []Question `yaml:"questions" json:"questions"`
}

// Grade compares answers with the correct option of each question by equality.
func (c *Concept) Grade(answers []int) ([]bool, error) {
	if len(answers) != len(c.Questions) {
		return nil, apperrors.NewValidationError("answers", fmt.Sprintf("expected %d answers, got %d", len(c.Questions), len(answers)))
	}
	results := make([]bool, len(answers))
	for i, a := range answers {
		results[i] = a == c.Questions[i].Correct
	}
	return results, nil
}

// MissionCatalog is the read interface the progression engine depends on.
type MissionCatalog interface {
	MissionByID(id string) (*Mission, error)
	MissionAt(index int) (*Mission, error)
	IndexOf(id string) (int, error)
	TotalMissions() int
}

// ConceptCatalog is the read interface for comprehension checks.
type ConceptCatalog interface {
	ConceptByID(id string) (*Concept, error)
}

// Catalog is an immutable, validated set of missions and concepts.
type Catalog struct {
	missions     []Mission
	missionIndex map[string]int
	concepts     map[string]*Concept
}

// New validates the content and builds a Catalog.
func New(missions []Mission, concepts []Concept) (*Catalog, error) {
	c := &Catalog{
		missions:     missions,
		missionIndex: make(map[string]int, len(missions)),
		concepts:     make(map[string]*Concept, len(concepts)),
	}
	for i := range concepts {
		if err := validateConcept(&concepts[i]); err != nil {
			return nil, err
		}
		if _, dup := c.concepts[concepts[i].ID]; dup {
			return nil, fmt.Errorf("duplicate concept id %q", concepts[i].ID)
		}
		c.concepts[concepts[i].ID] = &concepts[i]
	}
	for i := range missions {
		if err := validateMission(&missions[i]); err != nil {
			return nil, err
		}
		if _, dup := c.missionIndex[missions[i].ID]; dup {
			return nil, fmt.Errorf("duplicate mission id %q", missions[i].ID)
		}
		c.missionIndex[missions[i].ID] = i
	}
	return c, nil
}

// MissionByID returns the mission with the given id.
func (c *Catalog) MissionByID(id string) (*Mission, error) {
	i, ok := c.missionIndex[id]
	if !ok {
		return nil, apperrors.ErrMissionNotFound
	}
	return &c.missions[i], nil
}

// MissionAt returns the mission at a 0-based sequence index.
func (c *Catalog) MissionAt(index int) (*Mission, error) {
	if index < 0 || index >= len(c.missions) {
		return nil, apperrors.ErrMissionNotFound
	}
	return &c.missions[index], nil
}

// IndexOf returns the sequence index of a mission id.
func (c *Catalog) IndexOf(id string) (int, error) {
	i, ok := c.missionIndex[id]
	if !ok {
		return -1, apperrors.ErrMissionNotFound
	}
	return i, nil
}

// TotalMissions returns the length of the mission sequence.
func (c *Catalog) TotalMissions() int {
	return len(c.missions)
}

// Missions returns the ordered mission sequence.
func (c *Catalog) Missions() []Mission {
	return c.missions
}

// ConceptByID returns the concept with the given id.
func (c *Catalog) ConceptByID(id string) (*Concept, error) {
	concept, ok := c.concepts[id]
	if !ok {
		return nil, apperrors.ErrConceptNotFound
	}
	return concept, nil
}

func validateMission(m *Mission) error {
	if m.ID == "" {
		return fmt.Errorf("mission id is required")
	}
	if m.ConceptID == "" {
		return fmt.Errorf("mission %q: concept_id is required", m.ID)
	}
	if len(m.Rounds) == 0 {
		return fmt.Errorf("mission %q: at least one round is required", m.ID)
	}
	seen := make(map[string]bool, len(m.Rounds))
	for _, r := range m.Rounds {
		if r.ID == "" {
			return fmt.Errorf("mission %q: round id is required", m.ID)
		}
		if seen[r.ID] {
			return fmt.Errorf("mission %q: duplicate round id %q", m.ID, r.ID)
		}
		seen[r.ID] = true
		if len(r.Options) < 2 {
			return fmt.Errorf("mission %q round %q: at least two options are required", m.ID, r.ID)
		}
	}
	return nil
}

func validateConcept(c *Concept) error {
	if c.ID == "" {
		return fmt.Errorf("concept id is required")
	}
	if len(c.Questions) != 2 {
		return fmt.Errorf("concept %q: check must have exactly 2 questions, got %d", c.ID, len(c.Questions))
	}
	for i, q := range c.Questions {
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("concept %q question %d: correct index %d out of range", c.ID, i, q.Correct)
		}
	}
	return nil
}
