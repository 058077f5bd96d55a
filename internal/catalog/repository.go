package catalog

import (
	"database/sql"
	"fmt"

	"github.com/616xold/rehab-budd-islem/internal/database"
	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// Repository is the database-backed catalog. It serves the same read
// contract as the static catalog but from the exercises table, so content
// imported from a spreadsheet takes effect without a rebuild.
type Repository struct{}

// NewRepository creates a new catalog repository instance
func NewRepository() *Repository {
	return &Repository{}
}

// Routine returns the ordered exercise list for a type and difficulty.
func (r *Repository) Routine(exerciseType, difficulty string) ([]models.ExerciseRecord, error) {
	var exercises []models.ExerciseRecord
	err := database.DB.Select(&exercises, `
		SELECT id, name, type, difficulty, instructions, repetitions, duration, rest, precautions
		FROM exercises
		WHERE type = $1 AND difficulty = $2
		ORDER BY position ASC, id ASC
	`, exerciseType, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to get routine: %v", err)
	}
	return exercises, nil
}

// ByID returns a single exercise, or nil if the id is unknown.
func (r *Repository) ByID(id string) (*models.ExerciseRecord, error) {
	var ex models.ExerciseRecord
	err := database.DB.Get(&ex, `
		SELECT id, name, type, difficulty, instructions, repetitions, duration, rest, precautions
		FROM exercises WHERE id = $1
	`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %v", err)
	}
	return &ex, nil
}

// Upsert creates or replaces one exercise record at the given routine
// position.
func (r *Repository) Upsert(ex models.ExerciseRecord, position int) error {
	_, err := database.DB.Exec(`
		INSERT INTO exercises (id, name, type, difficulty, instructions, repetitions, duration, rest, precautions, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			difficulty = EXCLUDED.difficulty,
			instructions = EXCLUDED.instructions,
			repetitions = EXCLUDED.repetitions,
			duration = EXCLUDED.duration,
			rest = EXCLUDED.rest,
			precautions = EXCLUDED.precautions,
			position = EXCLUDED.position
	`, ex.ID, ex.Name, ex.Type, ex.Difficulty, ex.Instructions, ex.Repetitions, ex.Duration, ex.Rest, ex.Precautions, position)
	if err != nil {
		return fmt.Errorf("failed to upsert exercise: %v", err)
	}
	return nil
}

// Count returns the number of exercises in the table.
func (r *Repository) Count() (int, error) {
	var count int
	if err := database.DB.Get(&count, "SELECT COUNT(*) FROM exercises"); err != nil {
		return 0, fmt.Errorf("failed to count exercises: %v", err)
	}
	return count, nil
}

// SeedFromStatic loads the built-in library into an empty exercises
// table. Existing content is left untouched.
func (r *Repository) SeedFromStatic(static *Static) error {
	count, err := r.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i, ex := range static.All() {
		if err := r.Upsert(ex, i); err != nil {
			return err
		}
	}
	return nil
}
