package progress

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// Store is the slice of the progress store the tracker needs.
type Store interface {
	Get(userID string) (*models.UserProgress, error)
	Put(progress *models.UserProgress) error
	Delete(userID string) error
}

// Summary is the aggregate view shown when a user asks for their progress.
type Summary struct {
	SessionsCompleted int
	PhysicalSessions  int
	SpeechSessions    int
	CognitiveSessions int
	SessionsThisWeek  int
	CurrentStreak     int
	MaxStreak         int
	DifficultyLevel   string
}

// Tracker records completed and abandoned sessions on the durable user
// record and recomputes streaks from the completion-day history.
type Tracker struct {
	store Store
}

// NewTracker creates a tracker backed by the given store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// LogCompletion records a finished session for the user. The completion
// day is deduplicated, so a second session on the same day bumps the
// counters but not the streak. Returns the streak after the update.
func (t *Tracker) LogCompletion(userID, exerciseType string) (int, error) {
	record, err := t.loadOrCreate(userID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	today := now.Format(models.DateLayout)
	if !containsDate(record.CompletionDates, today) {
		record.CompletionDates = append(record.CompletionDates, today)
	}

	record.AddSessionForType(models.NormalizeExerciseType(exerciseType))
	record.CurrentStreak = CurrentStreak(record.CompletionDates, now)
	if record.CurrentStreak > record.MaxStreak {
		record.MaxStreak = record.CurrentStreak
	}
	record.LastUpdated = now

	if err := t.store.Put(record); err != nil {
		return 0, fmt.Errorf("failed to save completion for user %s: %v", userID, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"type":    exerciseType,
		"streak":  record.CurrentStreak,
	}).Info("Session completion recorded")

	return record.CurrentStreak, nil
}

// LogPartial records a session the user ended early. The partial-session
// history keeps only the most recent entries.
func (t *Tracker) LogPartial(userID, sessionID, exerciseType string, completed, total int) error {
	record, err := t.loadOrCreate(userID)
	if err != nil {
		return err
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(completed) / float64(total) * 100
	}

	record.PartialSessions = append(record.PartialSessions, models.PartialSession{
		SessionID:    sessionID,
		ExerciseType: models.NormalizeExerciseType(exerciseType),
		Completed:    completed,
		Total:        total,
		Percentage:   percentage,
		Timestamp:    time.Now().UTC(),
	})
	if len(record.PartialSessions) > models.MaxPartialSessions {
		record.PartialSessions = record.PartialSessions[len(record.PartialSessions)-models.MaxPartialSessions:]
	}
	record.LastUpdated = time.Now().UTC()

	if err := t.store.Put(record); err != nil {
		return fmt.Errorf("failed to save partial session for user %s: %v", userID, err)
	}
	return nil
}

// Summary returns the aggregate progress view for the user. A user with
// no record yet gets a zeroed summary at beginner difficulty.
func (t *Tracker) Summary(userID string) (*Summary, error) {
	record, err := t.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress for user %s: %v", userID, err)
	}
	if record == nil {
		record = models.NewUserProgress(userID)
	}

	now := time.Now().UTC()
	return &Summary{
		SessionsCompleted: record.SessionsCompleted,
		PhysicalSessions:  record.PhysicalSessions,
		SpeechSessions:    record.SpeechSessions,
		CognitiveSessions: record.CognitiveSessions,
		SessionsThisWeek:  WeeklyCount(record.CompletionDates, now),
		CurrentStreak:     CurrentStreak(record.CompletionDates, now),
		MaxStreak:         record.MaxStreak,
		DifficultyLevel:   record.DifficultyLevel,
	}, nil
}

// ConsumeCongratulation reports whether a congratulation is pending for
// the user and clears the flag so it is spoken only once.
func (t *Tracker) ConsumeCongratulation(userID string) (bool, error) {
	record, err := t.store.Get(userID)
	if err != nil {
		return false, fmt.Errorf("failed to load progress for user %s: %v", userID, err)
	}
	if record == nil || !record.PendingCongratulation {
		return false, nil
	}

	record.PendingCongratulation = false
	record.LastUpdated = time.Now().UTC()
	if err := t.store.Put(record); err != nil {
		return false, fmt.Errorf("failed to clear congratulation for user %s: %v", userID, err)
	}
	return true, nil
}

// SetReminder stores the user's daily reminder hour.
func (t *Tracker) SetReminder(userID string, hour int) error {
	record, err := t.loadOrCreate(userID)
	if err != nil {
		return err
	}
	record.ReminderHour = hour
	record.ReminderSet = true
	record.LastUpdated = time.Now().UTC()
	if err := t.store.Put(record); err != nil {
		return fmt.Errorf("failed to save reminder for user %s: %v", userID, err)
	}
	return nil
}

// DeleteData removes the user's entire progress record.
func (t *Tracker) DeleteData(userID string) error {
	if err := t.store.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete data for user %s: %v", userID, err)
	}
	logrus.WithField("user_id", userID).Info("User data deleted")
	return nil
}

// CancelReminder disables the user's daily reminder.
func (t *Tracker) CancelReminder(userID string) error {
	record, err := t.loadOrCreate(userID)
	if err != nil {
		return err
	}
	record.ReminderSet = false
	record.LastUpdated = time.Now().UTC()
	if err := t.store.Put(record); err != nil {
		return fmt.Errorf("failed to cancel reminder for user %s: %v", userID, err)
	}
	return nil
}

func (t *Tracker) loadOrCreate(userID string) (*models.UserProgress, error) {
	record, err := t.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress for user %s: %v", userID, err)
	}
	if record == nil {
		record = models.NewUserProgress(userID)
	}
	return record, nil
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
