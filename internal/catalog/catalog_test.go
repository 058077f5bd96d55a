package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/616xold/rehab-budd-islem/internal/catalog"
	"github.com/616xold/rehab-budd-islem/pkg/models"
)

func TestStatic_LibraryShape(t *testing.T) {
	static := catalog.NewStatic()

	assert.Len(t, static.All(), 45)

	types := []string{models.TypePhysical, models.TypeSpeech, models.TypeCognitive}
	levels := []string{catalog.DifficultyBeginner, catalog.DifficultyIntermediate, catalog.DifficultyAdvanced}
	for _, exerciseType := range types {
		for _, level := range levels {
			routine, err := static.Routine(exerciseType, level)
			require.NoError(t, err)
			require.Lenf(t, routine, 5, "%s/%s", exerciseType, level)
			for _, ex := range routine {
				assert.Equal(t, exerciseType, ex.Type)
				assert.Equal(t, level, ex.Difficulty)
				assert.NotEmpty(t, ex.Name)
				assert.NotEmpty(t, ex.Instructions)
			}
		}
	}
}

func TestStatic_RoutineUnknownCombination(t *testing.T) {
	static := catalog.NewStatic()

	routine, err := static.Routine("aquatic", catalog.DifficultyBeginner)
	require.NoError(t, err)
	assert.Empty(t, routine)
}

func TestStatic_ByID(t *testing.T) {
	static := catalog.NewStatic()

	ex, err := static.ByID("phys_b_1")
	require.NoError(t, err)
	require.NotNil(t, ex)
	assert.Equal(t, models.TypePhysical, ex.Type)

	missing, err := static.ByID("phys_z_9")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFormattedInstructions(t *testing.T) {
	ex := &models.ExerciseRecord{
		Name:         "Shoulder Rolls",
		Instructions: "Roll your shoulders slowly backward.",
		Repetitions:  10,
		Precautions:  "Stop if you feel sharp pain.",
	}

	text := catalog.FormattedInstructions(ex)
	assert.True(t, strings.HasPrefix(text, "Shoulder Rolls. Roll your shoulders slowly backward."))
	assert.Contains(t, text, "Do this 10 times.")
	assert.Contains(t, text, "Remember: Stop if you feel sharp pain.")
}

func TestFormattedInstructions_Minimal(t *testing.T) {
	ex := &models.ExerciseRecord{
		Name:         "Deep Breathing",
		Instructions: "Breathe in slowly through your nose.",
		Repetitions:  1,
	}

	text := catalog.FormattedInstructions(ex)
	assert.Equal(t, "Deep Breathing. Breathe in slowly through your nose.", text)
}
