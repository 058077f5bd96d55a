package models

import "time"

// History caps, matching the durable record layout
const (
	MaxPartialSessions   = 10
	MaxDifficultyChanges = 10
	MaxFeedbackEvents    = 50
)

// DateLayout is the calendar-day format used for completion dates.
const DateLayout = "2006-01-02"

// DifficultyChange is one entry in the capped difficulty-change history.
type DifficultyChange struct {
	Timestamp     time.Time `json:"timestamp"`
	OldLevel      string    `json:"old_difficulty"`
	NewLevel      string    `json:"new_difficulty"`
	UserRequested bool      `json:"user_requested"`
}

// FeedbackEvent is one logged per-exercise feedback entry.
type FeedbackEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	ExerciseID string    `json:"exercise_id"`
	Level      string    `json:"feedback_level"`
}

// PartialSession records a session that was ended before all exercises
// were done.
type PartialSession struct {
	SessionID    string    `json:"session_id"`
	ExerciseType string    `json:"exercise_type"`
	Completed    int       `json:"completed"`
	Total        int       `json:"total"`
	Percentage   float64   `json:"percentage"`
	Timestamp    time.Time `json:"timestamp"`
}

// UserProgress is the durable per-user record kept in the progress store.
// One record per user; it is read, modified and written back whole.
type UserProgress struct {
	UserID            string `json:"user_id"`
	SessionsCompleted int    `json:"sessions_completed"`
	PhysicalSessions  int    `json:"physical_sessions"`
	SpeechSessions    int    `json:"speech_sessions"`
	CognitiveSessions int    `json:"cognitive_sessions"`

	// CompletionDates holds one YYYY-MM-DD entry per day with at least one
	// completed session.
	CompletionDates []string `json:"completion_dates"`
	CurrentStreak   int      `json:"current_streak"`
	MaxStreak       int      `json:"max_streak"`

	DifficultyLevel       string             `json:"difficulty_level"`
	DifficultyChanges     []DifficultyChange `json:"difficulty_changes"`
	ExerciseFeedback      []FeedbackEvent    `json:"exercise_feedback"`
	PartialSessions       []PartialSession   `json:"partial_sessions"`
	PendingCongratulation bool               `json:"pending_congratulation"`

	// Resume snapshot of an incomplete session, nil when none is saved.
	Snapshot *SessionSnapshot `json:"session_progress,omitempty"`

	ReminderHour int  `json:"reminder_hour"`
	ReminderSet  bool `json:"reminder_set"`

	LastUpdated time.Time `json:"last_updated"`
}

// NewUserProgress returns a fresh record for a first-time user.
func NewUserProgress(userID string) *UserProgress {
	return &UserProgress{
		UserID:          userID,
		DifficultyLevel: "beginner",
		ReminderHour:    9,
	}
}

// AddSessionForType bumps the cumulative and per-type session counters.
func (p *UserProgress) AddSessionForType(exerciseType string) {
	p.SessionsCompleted++
	switch exerciseType {
	case TypeSpeech:
		p.SpeechSessions++
	case TypeCognitive:
		p.CognitiveSessions++
	default:
		p.PhysicalSessions++
	}
}
