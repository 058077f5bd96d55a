package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/616xold/rehab-budd-islem/pkg/models"
)

func TestNormalizeExerciseType(t *testing.T) {
	assert.Equal(t, models.TypePhysical, models.NormalizeExerciseType("physical"))
	assert.Equal(t, models.TypeSpeech, models.NormalizeExerciseType("speech"))
	assert.Equal(t, models.TypeCognitive, models.NormalizeExerciseType("cognitive"))
	assert.Equal(t, models.TypePhysical, models.NormalizeExerciseType("underwater basket weaving"))
	assert.Equal(t, models.TypePhysical, models.NormalizeExerciseType(""))
}

func TestSnapshot_IsADeepCopy(t *testing.T) {
	now := time.Now()
	state := models.SessionState{
		SessionID:   "session-1",
		ExerciseIDs: []string{"a", "b", "c"},
		SkipFlags:   []bool{false, true, false},
		Feedback:    []string{"", "comfortable", ""},
	}

	snap := state.Snapshot(now)
	state.ExerciseIDs[0] = "mutated"
	state.SkipFlags[0] = true
	state.Feedback[0] = "too-hard"

	assert.Equal(t, "a", snap.ExerciseIDs[0])
	assert.False(t, snap.SkipFlags[0])
	assert.Equal(t, "", snap.Feedback[0])
	assert.Equal(t, now, snap.LastUpdated)
}

func TestAddSessionForType(t *testing.T) {
	p := models.NewUserProgress("user-1")

	p.AddSessionForType(models.TypeSpeech)
	p.AddSessionForType(models.TypeCognitive)
	p.AddSessionForType(models.TypePhysical)
	p.AddSessionForType("unknown")

	assert.Equal(t, 4, p.SessionsCompleted)
	assert.Equal(t, 1, p.SpeechSessions)
	assert.Equal(t, 1, p.CognitiveSessions)
	assert.Equal(t, 2, p.PhysicalSessions)
}
