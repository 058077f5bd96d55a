// Package catalog provides the exercise content catalog: ordered routines
// by type and difficulty, and lookup by id. Content is opaque to the
// session engine.
package catalog

import (
	"fmt"

	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// Difficulty level names known to the catalog
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Catalog is the read contract the session engine consumes.
type Catalog interface {
	// Routine returns the ordered exercise list for a type and difficulty.
	// An unknown combination yields an empty list, not an error.
	Routine(exerciseType, difficulty string) ([]models.ExerciseRecord, error)
	// ByID returns a single exercise, or nil if the id is unknown.
	ByID(id string) (*models.ExerciseRecord, error)
}

// Static is the built-in, in-memory catalog backed by the default
// exercise library.
type Static struct {
	byID     map[string]models.ExerciseRecord
	routines map[string]map[string][]string
}

// NewStatic builds a catalog from the built-in library.
func NewStatic() *Static {
	s := &Static{
		byID:     make(map[string]models.ExerciseRecord, len(defaultLibrary)),
		routines: defaultRoutines,
	}
	for _, ex := range defaultLibrary {
		s.byID[ex.ID] = ex
	}
	return s
}

// Routine returns the pre-defined routine for a type and difficulty.
func (s *Static) Routine(exerciseType, difficulty string) ([]models.ExerciseRecord, error) {
	ids := s.routines[exerciseType][difficulty]
	exercises := make([]models.ExerciseRecord, 0, len(ids))
	for _, id := range ids {
		if ex, ok := s.byID[id]; ok {
			exercises = append(exercises, ex)
		}
	}
	return exercises, nil
}

// ByID returns the exercise with the given id, or nil if not found.
func (s *Static) ByID(id string) (*models.ExerciseRecord, error) {
	if ex, ok := s.byID[id]; ok {
		return &ex, nil
	}
	return nil, nil
}

// All returns every exercise in the library, in routine order. Used to
// seed the database-backed catalog.
func (s *Static) All() []models.ExerciseRecord {
	return append([]models.ExerciseRecord(nil), defaultLibrary...)
}

// FormattedInstructions renders an exercise the way it is spoken to the
// user: name, instructions, repetition count and precautions.
func FormattedInstructions(ex *models.ExerciseRecord) string {
	text := fmt.Sprintf("%s. %s", ex.Name, ex.Instructions)
	if ex.Repetitions > 1 {
		text += fmt.Sprintf(" Do this %d times.", ex.Repetitions)
	}
	if ex.Precautions != "" {
		text += fmt.Sprintf(" Remember: %s", ex.Precautions)
	}
	return text
}
