package difficulty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/616xold/rehab-budd-islem/internal/difficulty"
	"github.com/616xold/rehab-budd-islem/pkg/models"
)

type memStore struct {
	records map[string]*models.UserProgress
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]*models.UserProgress)}
}

func (s *memStore) Get(userID string) (*models.UserProgress, error) {
	return s.records[userID], nil
}

func (s *memStore) Put(p *models.UserProgress) error {
	s.records[p.UserID] = p
	return nil
}

func TestParseLevel(t *testing.T) {
	level, ok := difficulty.ParseLevel("intermediate")
	assert.True(t, ok)
	assert.Equal(t, difficulty.Intermediate, level)

	level, ok = difficulty.ParseLevel("nonsense")
	assert.False(t, ok)
	assert.Equal(t, difficulty.Beginner, level)
}

func TestGet_DefaultsToBeginner(t *testing.T) {
	engine := difficulty.New(newMemStore())

	level, err := engine.Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, difficulty.Beginner, level)
}

func TestStep_UpAndClampAtAdvanced(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)

	level, err := engine.Step("user-1", false, true)
	require.NoError(t, err)
	assert.Equal(t, difficulty.Intermediate, level)

	level, err = engine.Step("user-1", false, true)
	require.NoError(t, err)
	assert.Equal(t, difficulty.Advanced, level)

	// Already at the ceiling; another step must not change anything.
	level, err = engine.Step("user-1", false, true)
	require.NoError(t, err)
	assert.Equal(t, difficulty.Advanced, level)

	record := store.records["user-1"]
	require.NotNil(t, record)
	assert.Equal(t, "advanced", record.DifficultyLevel)
	assert.Len(t, record.DifficultyChanges, 2)
	assert.True(t, record.DifficultyChanges[0].UserRequested)
}

func TestStep_ClampAtBeginner(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)

	level, err := engine.Step("user-1", true, true)
	require.NoError(t, err)
	assert.Equal(t, difficulty.Beginner, level)
	assert.Nil(t, store.records["user-1"], "no-op step should not create a record")
}

func TestImmediateFeedback_TooHardStepsDown(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)
	require.NoError(t, engine.Set("user-1", difficulty.Intermediate))

	result, err := engine.ImmediateFeedback("user-1", models.FeedbackTooHard, "phys_i_2")
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, result.Easier)
	assert.True(t, result.Immediate)
	assert.Equal(t, difficulty.Intermediate, result.OldLevel)
	assert.Equal(t, difficulty.Beginner, result.NewLevel)

	record := store.records["user-1"]
	require.Len(t, record.ExerciseFeedback, 1)
	assert.Equal(t, "phys_i_2", record.ExerciseFeedback[0].ExerciseID)
}

func TestImmediateFeedback_ComfortableKeepsLevel(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)
	require.NoError(t, engine.Set("user-1", difficulty.Intermediate))

	result, err := engine.ImmediateFeedback("user-1", models.FeedbackComfortable, "phys_i_1")
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, difficulty.Intermediate, result.NewLevel)
	assert.Len(t, store.records["user-1"].ExerciseFeedback, 1)
}

func TestImmediateFeedback_TooHardAtBeginnerStillLogged(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)

	result, err := engine.ImmediateFeedback("user-1", models.FeedbackTooHard, "phys_b_1")
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, difficulty.Beginner, result.NewLevel)
	assert.Len(t, store.records["user-1"].ExerciseFeedback, 1)
}

func TestEvaluateSession_ComfortableMajorityStepsUp(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)

	summary := models.SessionSummary{
		ExerciseType: models.TypePhysical,
		Feedback:     []string{"comfortable", "", "comfortable", "", "comfortable"},
	}
	result, err := engine.EvaluateSession("user-1", summary)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.False(t, result.Easier)
	assert.True(t, result.Congratulate)
	assert.Equal(t, difficulty.Intermediate, result.NewLevel)
	assert.True(t, store.records["user-1"].PendingCongratulation)
}

func TestEvaluateSession_TooHardStepsDownWithoutCongratulation(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)
	require.NoError(t, engine.Set("user-1", difficulty.Intermediate))

	summary := models.SessionSummary{
		Feedback: []string{"comfortable", "too-hard", "comfortable"},
	}
	result, err := engine.EvaluateSession("user-1", summary)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, result.Easier)
	assert.False(t, result.Congratulate)
	assert.Equal(t, difficulty.Beginner, result.NewLevel)
	assert.False(t, store.records["user-1"].PendingCongratulation)
}

func TestEvaluateSession_ConsecutiveSkipsStepDown(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)
	require.NoError(t, engine.Set("user-1", difficulty.Advanced))

	summary := models.SessionSummary{
		SkipFlags: []bool{true, true, false, false, false},
	}
	result, err := engine.EvaluateSession("user-1", summary)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, result.Easier)
	assert.Equal(t, difficulty.Intermediate, result.NewLevel)
}

func TestEvaluateSession_ScatteredSkipsKeepLevel(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)
	require.NoError(t, engine.Set("user-1", difficulty.Intermediate))

	summary := models.SessionSummary{
		SkipFlags: []bool{true, false, true, false, true},
	}
	result, err := engine.EvaluateSession("user-1", summary)
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, difficulty.Intermediate, result.NewLevel)
}

func TestEvaluateSession_SingleFeedbackEntryKeepsLevel(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)

	summary := models.SessionSummary{
		Feedback: []string{"comfortable", "", "", "", ""},
	}
	result, err := engine.EvaluateSession("user-1", summary)
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, difficulty.Beginner, result.NewLevel)
}

func TestEvaluateSession_MixedFeedbackBelowThresholdKeepsLevel(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)

	// 2 of 3 comfortable is about 67%, below the 70% threshold.
	summary := models.SessionSummary{
		Feedback: []string{"comfortable", "challenging", "comfortable"},
	}
	result, err := engine.EvaluateSession("user-1", summary)
	require.NoError(t, err)

	assert.False(t, result.Changed)
}

func TestEvaluateSession_AtAdvancedStaysClamped(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)
	require.NoError(t, engine.Set("user-1", difficulty.Advanced))

	summary := models.SessionSummary{
		Feedback: []string{"comfortable", "comfortable", "comfortable"},
	}
	result, err := engine.EvaluateSession("user-1", summary)
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, difficulty.Advanced, result.NewLevel)
	assert.False(t, store.records["user-1"].PendingCongratulation)
}

func TestImmediateFeedback_HistoryCapped(t *testing.T) {
	store := newMemStore()
	engine := difficulty.New(store)

	for i := 0; i < models.MaxFeedbackEvents+5; i++ {
		_, err := engine.ImmediateFeedback("user-1", models.FeedbackComfortable, "phys_b_1")
		require.NoError(t, err)
	}
	assert.Len(t, store.records["user-1"].ExerciseFeedback, models.MaxFeedbackEvents)
}
