package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// UserProgressRepository handles database operations for user progress
// records. It implements the progress store contract: Get returns nil
// when no record exists, Put writes the record whole, Delete removes it.
type UserProgressRepository struct{}

// NewUserProgressRepository creates a new repository instance
func NewUserProgressRepository() *UserProgressRepository {
	return &UserProgressRepository{}
}

// progressRow mirrors the user_progress table; list columns hold JSON.
type progressRow struct {
	UserID                string    `db:"user_id"`
	SessionsCompleted     int       `db:"sessions_completed"`
	PhysicalSessions      int       `db:"physical_sessions"`
	SpeechSessions        int       `db:"speech_sessions"`
	CognitiveSessions     int       `db:"cognitive_sessions"`
	CompletionDates       string    `db:"completion_dates"`
	CurrentStreak         int       `db:"current_streak"`
	MaxStreak             int       `db:"max_streak"`
	DifficultyLevel       string    `db:"difficulty_level"`
	DifficultyChanges     string    `db:"difficulty_changes"`
	ExerciseFeedback      string    `db:"exercise_feedback"`
	PartialSessions       string    `db:"partial_sessions"`
	PendingCongratulation bool      `db:"pending_congratulation"`
	SessionSnapshot       *string   `db:"session_snapshot"`
	ReminderHour          int       `db:"reminder_hour"`
	ReminderSet           bool      `db:"reminder_set"`
	LastUpdated           time.Time `db:"last_updated"`
}

// Get returns the progress record for a user, or nil if none exists.
func (r *UserProgressRepository) Get(userID string) (*models.UserProgress, error) {
	var row progressRow
	err := DB.Get(&row, "SELECT * FROM user_progress WHERE user_id = $1", userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %v", err)
	}
	return row.toModel()
}

// Put writes the full progress record for a user, creating it if needed.
func (r *UserProgressRepository) Put(progress *models.UserProgress) error {
	row, err := rowFromModel(progress)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_progress (
			user_id, sessions_completed, physical_sessions, speech_sessions,
			cognitive_sessions, completion_dates, current_streak, max_streak,
			difficulty_level, difficulty_changes, exercise_feedback,
			partial_sessions, pending_congratulation, session_snapshot,
			reminder_hour, reminder_set, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (user_id) DO UPDATE SET
			sessions_completed = EXCLUDED.sessions_completed,
			physical_sessions = EXCLUDED.physical_sessions,
			speech_sessions = EXCLUDED.speech_sessions,
			cognitive_sessions = EXCLUDED.cognitive_sessions,
			completion_dates = EXCLUDED.completion_dates,
			current_streak = EXCLUDED.current_streak,
			max_streak = EXCLUDED.max_streak,
			difficulty_level = EXCLUDED.difficulty_level,
			difficulty_changes = EXCLUDED.difficulty_changes,
			exercise_feedback = EXCLUDED.exercise_feedback,
			partial_sessions = EXCLUDED.partial_sessions,
			pending_congratulation = EXCLUDED.pending_congratulation,
			session_snapshot = EXCLUDED.session_snapshot,
			reminder_hour = EXCLUDED.reminder_hour,
			reminder_set = EXCLUDED.reminder_set,
			last_updated = EXCLUDED.last_updated
	`
	_, err = DB.Exec(query,
		row.UserID,
		row.SessionsCompleted,
		row.PhysicalSessions,
		row.SpeechSessions,
		row.CognitiveSessions,
		row.CompletionDates,
		row.CurrentStreak,
		row.MaxStreak,
		row.DifficultyLevel,
		row.DifficultyChanges,
		row.ExerciseFeedback,
		row.PartialSessions,
		row.PendingCongratulation,
		row.SessionSnapshot,
		row.ReminderHour,
		row.ReminderSet,
		row.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to put user progress: %v", err)
	}
	return nil
}

// Delete removes a user's progress record. Used only for explicit
// user-data deletion.
func (r *UserProgressRepository) Delete(userID string) error {
	_, err := DB.Exec("DELETE FROM user_progress WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to delete user progress: %v", err)
	}
	return nil
}

// GetUsersForReminder returns the ids of users who enabled reminders for
// the given hour of day.
func (r *UserProgressRepository) GetUsersForReminder(hour int) ([]string, error) {
	var userIDs []string
	err := DB.Select(&userIDs,
		"SELECT user_id FROM user_progress WHERE reminder_set = $1 AND reminder_hour = $2",
		true, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for reminder: %v", err)
	}
	return userIDs, nil
}

func (row *progressRow) toModel() (*models.UserProgress, error) {
	p := &models.UserProgress{
		UserID:                row.UserID,
		SessionsCompleted:     row.SessionsCompleted,
		PhysicalSessions:      row.PhysicalSessions,
		SpeechSessions:        row.SpeechSessions,
		CognitiveSessions:     row.CognitiveSessions,
		CurrentStreak:         row.CurrentStreak,
		MaxStreak:             row.MaxStreak,
		DifficultyLevel:       row.DifficultyLevel,
		PendingCongratulation: row.PendingCongratulation,
		ReminderHour:          row.ReminderHour,
		ReminderSet:           row.ReminderSet,
		LastUpdated:           row.LastUpdated,
	}

	if err := json.Unmarshal([]byte(row.CompletionDates), &p.CompletionDates); err != nil {
		return nil, fmt.Errorf("failed to decode completion dates: %v", err)
	}
	if err := json.Unmarshal([]byte(row.DifficultyChanges), &p.DifficultyChanges); err != nil {
		return nil, fmt.Errorf("failed to decode difficulty changes: %v", err)
	}
	if err := json.Unmarshal([]byte(row.ExerciseFeedback), &p.ExerciseFeedback); err != nil {
		return nil, fmt.Errorf("failed to decode exercise feedback: %v", err)
	}
	if err := json.Unmarshal([]byte(row.PartialSessions), &p.PartialSessions); err != nil {
		return nil, fmt.Errorf("failed to decode partial sessions: %v", err)
	}
	if row.SessionSnapshot != nil && *row.SessionSnapshot != "" {
		var snap models.SessionSnapshot
		if err := json.Unmarshal([]byte(*row.SessionSnapshot), &snap); err != nil {
			return nil, fmt.Errorf("failed to decode session snapshot: %v", err)
		}
		p.Snapshot = &snap
	}

	return p, nil
}

func rowFromModel(p *models.UserProgress) (*progressRow, error) {
	dates, err := json.Marshal(emptyIfNilStrings(p.CompletionDates))
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion dates: %v", err)
	}
	changes, err := json.Marshal(p.DifficultyChanges)
	if err != nil {
		return nil, fmt.Errorf("failed to encode difficulty changes: %v", err)
	}
	feedback, err := json.Marshal(p.ExerciseFeedback)
	if err != nil {
		return nil, fmt.Errorf("failed to encode exercise feedback: %v", err)
	}
	partials, err := json.Marshal(p.PartialSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode partial sessions: %v", err)
	}

	row := &progressRow{
		UserID:                p.UserID,
		SessionsCompleted:     p.SessionsCompleted,
		PhysicalSessions:      p.PhysicalSessions,
		SpeechSessions:        p.SpeechSessions,
		CognitiveSessions:     p.CognitiveSessions,
		CompletionDates:       string(dates),
		CurrentStreak:         p.CurrentStreak,
		MaxStreak:             p.MaxStreak,
		DifficultyLevel:       p.DifficultyLevel,
		DifficultyChanges:     jsonOrEmptyArray(changes),
		ExerciseFeedback:      jsonOrEmptyArray(feedback),
		PartialSessions:       jsonOrEmptyArray(partials),
		PendingCongratulation: p.PendingCongratulation,
		ReminderHour:          p.ReminderHour,
		ReminderSet:           p.ReminderSet,
		LastUpdated:           time.Now(),
	}

	if p.Snapshot != nil {
		snap, err := json.Marshal(p.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to encode session snapshot: %v", err)
		}
		s := string(snap)
		row.SessionSnapshot = &s
	}

	return row, nil
}

func emptyIfNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func jsonOrEmptyArray(b []byte) string {
	if string(b) == "null" {
		return "[]"
	}
	return string(b)
}
