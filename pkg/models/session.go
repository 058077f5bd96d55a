package models

import "time"

// Feedback levels a user can give about the current exercise
const (
	FeedbackComfortable = "comfortable"
	FeedbackChallenging = "challenging"
	FeedbackTooHard     = "too-hard"
)

// SessionState is the full mutable state of one rehabilitation session.
// It is a flat value type on purpose: a resume snapshot is a plain copy
// and serialization never has to deal with cycles.
type SessionState struct {
	SessionID    string   `json:"session_id"`
	UserID       string   `json:"user_id"`
	ExerciseType string   `json:"exercise_type"`
	Difficulty   string   `json:"difficulty"`
	ExerciseIDs  []string `json:"exercise_ids"`
	CurrentIndex int      `json:"current_index"`

	// Skips keeps the ids of skipped exercises in order; SkipFlags is the
	// position-aligned view used by the consecutive-skip rule.
	Skips           []string  `json:"skips"`
	SkipFlags       []bool    `json:"skip_flags"`
	Repeats         []int     `json:"repeats"`
	CompletionTimes []float64 `json:"completion_times"` // seconds per exercise position
	Feedback        []string  `json:"feedback"`         // "" where no feedback was given

	Completed             bool `json:"completed"`
	ShouldAskFeedback     bool `json:"should_ask_feedback"`
	PendingCongratulation bool `json:"pending_congratulation"`

	StartedAt    time.Time `json:"started_at"`
	LastActionAt time.Time `json:"last_action_at"`
}

// SessionSummary is the per-session aggregate handed to the difficulty
// engine when a session completes.
type SessionSummary struct {
	ExerciseType    string    `json:"exercise_type"`
	Feedback        []string  `json:"feedback"`
	Skips           []string  `json:"skips"`
	SkipFlags       []bool    `json:"skip_flags"`
	Repeats         []int     `json:"repeats"`
	CompletionTimes []float64 `json:"completion_times"`
}

// SessionSnapshot is the persisted copy of an incomplete session used by
// the resume manager. LastUpdated drives the 7-day expiry check.
type SessionSnapshot struct {
	SessionID       string    `json:"session_id"`
	ExerciseType    string    `json:"exercise_type"`
	Difficulty      string    `json:"difficulty"`
	ExerciseIDs     []string  `json:"exercise_ids"`
	CurrentIndex    int       `json:"current_index"`
	Skips           []string  `json:"skips"`
	SkipFlags       []bool    `json:"skip_flags"`
	Repeats         []int     `json:"repeats"`
	CompletionTimes []float64 `json:"completion_times"`
	Feedback        []string  `json:"feedback"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Summary builds the aggregate view of the session for evaluation.
func (s *SessionState) Summary() SessionSummary {
	return SessionSummary{
		ExerciseType:    s.ExerciseType,
		Feedback:        append([]string(nil), s.Feedback...),
		Skips:           append([]string(nil), s.Skips...),
		SkipFlags:       append([]bool(nil), s.SkipFlags...),
		Repeats:         append([]int(nil), s.Repeats...),
		CompletionTimes: append([]float64(nil), s.CompletionTimes...),
	}
}

// Snapshot builds the persistable copy of an in-flight session.
func (s *SessionState) Snapshot(now time.Time) SessionSnapshot {
	return SessionSnapshot{
		SessionID:       s.SessionID,
		ExerciseType:    s.ExerciseType,
		Difficulty:      s.Difficulty,
		ExerciseIDs:     append([]string(nil), s.ExerciseIDs...),
		CurrentIndex:    s.CurrentIndex,
		Skips:           append([]string(nil), s.Skips...),
		SkipFlags:       append([]bool(nil), s.SkipFlags...),
		Repeats:         append([]int(nil), s.Repeats...),
		CompletionTimes: append([]float64(nil), s.CompletionTimes...),
		Feedback:        append([]string(nil), s.Feedback...),
		LastUpdated:     now,
	}
}
