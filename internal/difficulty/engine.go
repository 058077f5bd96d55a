// Package difficulty implements the adaptive difficulty engine: a
// three-level ordinal per user, stepped one level at a time based on
// explicit feedback and per-session aggregates.
package difficulty

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// Level is an ordered difficulty level.
type Level int

const (
	Beginner Level = iota
	Intermediate
	Advanced
)

var levelNames = [...]string{"beginner", "intermediate", "advanced"}

// String returns the stored name of the level.
func (l Level) String() string {
	if l < Beginner || l > Advanced {
		return levelNames[Beginner]
	}
	return levelNames[l]
}

// ParseLevel maps a stored or spoken name to a level. Unknown values
// normalize to beginner; ok reports whether the name was recognized.
func ParseLevel(name string) (Level, bool) {
	for i, n := range levelNames {
		if n == name {
			return Level(i), true
		}
	}
	return Beginner, false
}

// step moves one position toward easier or harder, clamped at the
// bounds. All level arithmetic goes through here.
func step(l Level, easier bool) Level {
	if easier {
		if l > Beginner {
			return l - 1
		}
		return Beginner
	}
	if l < Advanced {
		return l + 1
	}
	return Advanced
}

// Store is the slice of the progress store the engine needs. Get returns
// nil when no record exists for the user.
type Store interface {
	Get(userID string) (*models.UserProgress, error)
	Put(progress *models.UserProgress) error
}

// Result describes the outcome of a feedback or evaluation call.
type Result struct {
	Changed      bool
	Easier       bool
	OldLevel     Level
	NewLevel     Level
	Congratulate bool
	Immediate    bool
	Reason       string
}

// Engine holds the adaptation rules and thresholds.
type Engine struct {
	store Store

	// ComfortableThreshold is the fraction of comfortable feedback above
	// which the level is bumped at session end.
	ComfortableThreshold float64
	// MinFeedbackEntries is the minimum feedback count for the bump rule
	// to apply.
	MinFeedbackEntries int
	// ConsecutiveSkipLimit is the skip-run length that triggers a step
	// down.
	ConsecutiveSkipLimit int
}

// New creates an engine with the default thresholds.
func New(store Store) *Engine {
	return &Engine{
		store:                store,
		ComfortableThreshold: 0.70,
		MinFeedbackEntries:   2,
		ConsecutiveSkipLimit: 2,
	}
}

// Get returns the user's current difficulty level, defaulting to
// beginner when the record is absent or holds an unknown value.
func (e *Engine) Get(userID string) (Level, error) {
	progress, err := e.store.Get(userID)
	if err != nil {
		return Beginner, fmt.Errorf("failed to get difficulty: %v", err)
	}
	if progress == nil {
		return Beginner, nil
	}
	level, _ := ParseLevel(progress.DifficultyLevel)
	return level, nil
}

// Set persists the given level for the user.
func (e *Engine) Set(userID string, level Level) error {
	if level < Beginner || level > Advanced {
		return fmt.Errorf("invalid difficulty level: %d", level)
	}
	progress, err := e.loadOrCreate(userID)
	if err != nil {
		return err
	}
	progress.DifficultyLevel = level.String()
	if err := e.store.Put(progress); err != nil {
		return fmt.Errorf("failed to set difficulty: %v", err)
	}
	return nil
}

// Step moves the user's level one position toward easier or harder,
// clamped at the bounds. The change is persisted and logged only when
// the level actually moved; the resulting level is returned either way.
func (e *Engine) Step(userID string, easier bool, userRequested bool) (Level, error) {
	progress, err := e.loadOrCreate(userID)
	if err != nil {
		return Beginner, err
	}

	current, _ := ParseLevel(progress.DifficultyLevel)
	next := step(current, easier)
	if next == current {
		return current, nil
	}

	progress.DifficultyLevel = next.String()
	appendDifficultyChange(progress, current, next, userRequested)
	if err := e.store.Put(progress); err != nil {
		return current, fmt.Errorf("failed to step difficulty: %v", err)
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"old":     current.String(),
		"new":     next.String(),
	}).Info("difficulty level changed")
	return next, nil
}

// ImmediateFeedback logs one per-exercise feedback event and, on
// too-hard feedback, steps the level down within the same session.
func (e *Engine) ImmediateFeedback(userID, feedbackLevel, exerciseID string) (Result, error) {
	progress, err := e.loadOrCreate(userID)
	if err != nil {
		return Result{}, err
	}

	appendFeedbackEvent(progress, exerciseID, feedbackLevel)

	current, _ := ParseLevel(progress.DifficultyLevel)
	result := Result{OldLevel: current, NewLevel: current}

	if feedbackLevel == models.FeedbackTooHard {
		next := step(current, true)
		if next != current {
			progress.DifficultyLevel = next.String()
			appendDifficultyChange(progress, current, next, false)
			result = Result{
				Changed:   true,
				Easier:    true,
				OldLevel:  current,
				NewLevel:  next,
				Immediate: true,
				Reason:    "too-hard feedback",
			}
		}
	}

	if err := e.store.Put(progress); err != nil {
		return Result{}, fmt.Errorf("failed to record feedback: %v", err)
	}
	return result, nil
}

// EvaluateSession applies the end-of-session adaptation rules to one
// session summary. Exactly one rule fires per evaluation:
//
//  1. any too-hard feedback, or a run of two or more consecutive skips,
//     steps the level down;
//  2. otherwise, with at least two feedback entries and more than 70%
//     of them comfortable, the level steps up and the user is owed a
//     congratulation on the next session start;
//  3. otherwise the level is kept.
func (e *Engine) EvaluateSession(userID string, summary models.SessionSummary) (Result, error) {
	progress, err := e.loadOrCreate(userID)
	if err != nil {
		return Result{}, err
	}

	current, _ := ParseLevel(progress.DifficultyLevel)
	result := Result{OldLevel: current, NewLevel: current, Reason: "current difficulty level is appropriate"}

	tooHard := 0
	comfortable := 0
	recorded := 0
	for _, f := range summary.Feedback {
		switch f {
		case models.FeedbackTooHard:
			tooHard++
			recorded++
		case models.FeedbackComfortable:
			comfortable++
			recorded++
		case models.FeedbackChallenging:
			recorded++
		}
	}

	switch {
	case tooHard > 0 || maxConsecutiveSkips(summary.SkipFlags) >= e.ConsecutiveSkipLimit:
		next := step(current, true)
		if next != current {
			progress.DifficultyLevel = next.String()
			appendDifficultyChange(progress, current, next, false)
			result = Result{
				Changed:  true,
				Easier:   true,
				OldLevel: current,
				NewLevel: next,
				Reason:   "too-hard feedback or consecutive skips",
			}
		}
	case recorded >= e.MinFeedbackEntries && float64(comfortable)/float64(recorded) > e.ComfortableThreshold:
		next := step(current, false)
		if next != current {
			progress.DifficultyLevel = next.String()
			progress.PendingCongratulation = true
			appendDifficultyChange(progress, current, next, false)
			result = Result{
				Changed:      true,
				OldLevel:     current,
				NewLevel:     next,
				Congratulate: true,
				Reason:       fmt.Sprintf("high comfortable ratio (%d of %d)", comfortable, recorded),
			}
		}
	}

	if err := e.store.Put(progress); err != nil {
		return Result{}, fmt.Errorf("failed to evaluate session: %v", err)
	}

	if result.Changed {
		log.WithFields(log.Fields{
			"user_id": userID,
			"old":     result.OldLevel.String(),
			"new":     result.NewLevel.String(),
			"reason":  result.Reason,
		}).Info("session evaluation adjusted difficulty")
	}
	return result, nil
}

func (e *Engine) loadOrCreate(userID string) (*models.UserProgress, error) {
	progress, err := e.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %v", err)
	}
	if progress == nil {
		progress = models.NewUserProgress(userID)
	}
	// Normalize a corrupt stored value before working with it.
	level, _ := ParseLevel(progress.DifficultyLevel)
	progress.DifficultyLevel = level.String()
	return progress, nil
}

// maxConsecutiveSkips returns the longest run of true flags in the
// position-aligned skip array.
func maxConsecutiveSkips(flags []bool) int {
	run, longest := 0, 0
	for _, skipped := range flags {
		if skipped {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

func appendDifficultyChange(p *models.UserProgress, old, next Level, userRequested bool) {
	p.DifficultyChanges = append(p.DifficultyChanges, models.DifficultyChange{
		Timestamp:     time.Now(),
		OldLevel:      old.String(),
		NewLevel:      next.String(),
		UserRequested: userRequested,
	})
	if len(p.DifficultyChanges) > models.MaxDifficultyChanges {
		p.DifficultyChanges = p.DifficultyChanges[len(p.DifficultyChanges)-models.MaxDifficultyChanges:]
	}
}

func appendFeedbackEvent(p *models.UserProgress, exerciseID, level string) {
	p.ExerciseFeedback = append(p.ExerciseFeedback, models.FeedbackEvent{
		Timestamp:  time.Now(),
		ExerciseID: exerciseID,
		Level:      level,
	})
	if len(p.ExerciseFeedback) > models.MaxFeedbackEvents {
		p.ExerciseFeedback = p.ExerciseFeedback[len(p.ExerciseFeedback)-models.MaxFeedbackEvents:]
	}
}
