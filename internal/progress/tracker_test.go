package progress_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/616xold/rehab-budd-islem/internal/progress"
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

func (s *memStore) Delete(userID string) error {
	delete(s.records, userID)
	return nil
}

func TestLogCompletion_FirstSession(t *testing.T) {
	store := newMemStore()
	tracker := progress.NewTracker(store)

	streak, err := tracker.LogCompletion("user-1", models.TypePhysical)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	record := store.records["user-1"]
	require.NotNil(t, record)
	assert.Equal(t, 1, record.SessionsCompleted)
	assert.Equal(t, 1, record.PhysicalSessions)
	assert.Equal(t, 1, record.MaxStreak)
	assert.Len(t, record.CompletionDates, 1)
	assert.Equal(t, time.Now().UTC().Format(models.DateLayout), record.CompletionDates[0])
}

func TestLogCompletion_SameDayTwice(t *testing.T) {
	store := newMemStore()
	tracker := progress.NewTracker(store)

	_, err := tracker.LogCompletion("user-1", models.TypeSpeech)
	require.NoError(t, err)
	streak, err := tracker.LogCompletion("user-1", models.TypeCognitive)
	require.NoError(t, err)

	// Counters grow per session, the streak only per day.
	assert.Equal(t, 1, streak)
	record := store.records["user-1"]
	assert.Equal(t, 2, record.SessionsCompleted)
	assert.Equal(t, 1, record.SpeechSessions)
	assert.Equal(t, 1, record.CognitiveSessions)
	assert.Len(t, record.CompletionDates, 1)
}

func TestLogCompletion_ContinuesStreakFromYesterday(t *testing.T) {
	store := newMemStore()
	tracker := progress.NewTracker(store)

	record := models.NewUserProgress("user-1")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(models.DateLayout)
	record.CompletionDates = []string{yesterday}
	record.CurrentStreak = 1
	record.MaxStreak = 4
	require.NoError(t, store.Put(record))

	streak, err := tracker.LogCompletion("user-1", models.TypePhysical)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
	assert.Equal(t, 4, store.records["user-1"].MaxStreak, "max streak only grows")
}

func TestLogPartial_HistoryCapped(t *testing.T) {
	store := newMemStore()
	tracker := progress.NewTracker(store)

	for i := 0; i < models.MaxPartialSessions+2; i++ {
		err := tracker.LogPartial("user-1", fmt.Sprintf("session-%d", i), models.TypePhysical, 2, 5)
		require.NoError(t, err)
	}

	record := store.records["user-1"]
	require.Len(t, record.PartialSessions, models.MaxPartialSessions)
	assert.Equal(t, fmt.Sprintf("session-%d", models.MaxPartialSessions+1),
		record.PartialSessions[len(record.PartialSessions)-1].SessionID)
	assert.Equal(t, 40.0, record.PartialSessions[0].Percentage)
}

func TestSummary_NoRecord(t *testing.T) {
	tracker := progress.NewTracker(newMemStore())

	summary, err := tracker.Summary("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.SessionsCompleted)
	assert.Equal(t, 0, summary.CurrentStreak)
	assert.Equal(t, "beginner", summary.DifficultyLevel)
}

func TestConsumeCongratulation(t *testing.T) {
	store := newMemStore()
	tracker := progress.NewTracker(store)

	record := models.NewUserProgress("user-1")
	record.PendingCongratulation = true
	require.NoError(t, store.Put(record))

	claimed, err := tracker.ConsumeCongratulation("user-1")
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = tracker.ConsumeCongratulation("user-1")
	require.NoError(t, err)
	assert.False(t, claimed, "a congratulation is spoken only once")
}

func TestDeleteData(t *testing.T) {
	store := newMemStore()
	tracker := progress.NewTracker(store)

	_, err := tracker.LogCompletion("user-1", models.TypePhysical)
	require.NoError(t, err)
	require.NotNil(t, store.records["user-1"])

	require.NoError(t, tracker.DeleteData("user-1"))
	assert.Nil(t, store.records["user-1"])
}

func TestSetAndCancelReminder(t *testing.T) {
	store := newMemStore()
	tracker := progress.NewTracker(store)

	require.NoError(t, tracker.SetReminder("user-1", 18))
	record := store.records["user-1"]
	assert.True(t, record.ReminderSet)
	assert.Equal(t, 18, record.ReminderHour)

	require.NoError(t, tracker.CancelReminder("user-1"))
	assert.False(t, store.records["user-1"].ReminderSet)
}
