// Package session owns the live progression through one rehabilitation
// session: current position, skip/repeat/feedback bookkeeping, completion
// detection, and the resume snapshot lifecycle.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/616xold/rehab-budd-islem/internal/catalog"
	"github.com/616xold/rehab-budd-islem/internal/difficulty"
	"github.com/616xold/rehab-budd-islem/pkg/models"
)

var (
	// ErrEmptyRoutine means the catalog yielded no exercises for the
	// requested type and difficulty.
	ErrEmptyRoutine = errors.New("no exercises available for this routine")
	// ErrNoMoreExercises signals the session is at its final exercise and
	// the caller should complete it.
	ErrNoMoreExercises = errors.New("no more exercises in session")
)

// Session is one in-flight rehabilitation session. State is a flat value
// the caller persists; the remaining fields are runtime wiring.
type Session struct {
	State models.SessionState

	exercises  []models.ExerciseRecord
	catalog    catalog.Catalog
	engine     *difficulty.Engine
	askEvery   int
	timeAnchor time.Time
}

// Start begins a new session for the user. The exercise type is
// normalized against the known types, the user's current difficulty is
// read from the adaptation engine, and the routine is fetched from the
// catalog. An empty routine is reported as ErrEmptyRoutine, not a crash.
func Start(cat catalog.Catalog, engine *difficulty.Engine, userID, exerciseType string, askEvery int) (*Session, error) {
	exerciseType = models.NormalizeExerciseType(exerciseType)

	level, err := engine.Get(userID)
	if err != nil {
		return nil, err
	}

	exercises, err := cat.Routine(exerciseType, level.String())
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrEmptyRoutine
	}

	ids := make([]string, len(exercises))
	for i, ex := range exercises {
		ids[i] = ex.ID
	}

	now := time.Now()
	s := &Session{
		State: models.SessionState{
			SessionID:       uuid.NewString(),
			UserID:          userID,
			ExerciseType:    exerciseType,
			Difficulty:      level.String(),
			ExerciseIDs:     ids,
			SkipFlags:       make([]bool, len(ids)),
			Repeats:         make([]int, len(ids)),
			CompletionTimes: make([]float64, len(ids)),
			Feedback:        make([]string, len(ids)),
			StartedAt:       now,
			LastActionAt:    now,
		},
		exercises:  exercises,
		catalog:    cat,
		engine:     engine,
		askEvery:   askEvery,
		timeAnchor: now,
	}
	s.State.ShouldAskFeedback = s.askAtIndex(0)

	log.WithFields(log.Fields{
		"user_id":    userID,
		"type":       exerciseType,
		"difficulty": level.String(),
		"exercises":  len(ids),
	}).Info("session started")
	return s, nil
}

// Resume rebuilds a session from a saved snapshot, keeping the saved
// difficulty and tracking arrays instead of re-reading them.
func Resume(cat catalog.Catalog, engine *difficulty.Engine, userID string, snap *models.SessionSnapshot, askEvery int) (*Session, error) {
	exercises := make([]models.ExerciseRecord, 0, len(snap.ExerciseIDs))
	for _, id := range snap.ExerciseIDs {
		ex, err := cat.ByID(id)
		if err != nil {
			return nil, err
		}
		if ex != nil {
			exercises = append(exercises, *ex)
		}
	}
	if len(exercises) == 0 {
		return nil, ErrEmptyRoutine
	}

	now := time.Now()
	s := &Session{
		State: models.SessionState{
			SessionID:       snap.SessionID,
			UserID:          userID,
			ExerciseType:    snap.ExerciseType,
			Difficulty:      snap.Difficulty,
			ExerciseIDs:     append([]string(nil), snap.ExerciseIDs...),
			CurrentIndex:    snap.CurrentIndex,
			Skips:           append([]string(nil), snap.Skips...),
			SkipFlags:       resizeBools(snap.SkipFlags, len(exercises)),
			Repeats:         resizeInts(snap.Repeats, len(exercises)),
			CompletionTimes: resizeFloats(snap.CompletionTimes, len(exercises)),
			Feedback:        resizeStrings(snap.Feedback, len(exercises)),
			StartedAt:       snap.LastUpdated,
			LastActionAt:    now,
		},
		exercises:  exercises,
		catalog:    cat,
		engine:     engine,
		askEvery:   askEvery,
		timeAnchor: now,
	}
	if s.State.CurrentIndex >= len(exercises) {
		s.State.CurrentIndex = len(exercises) - 1
	}
	s.State.ShouldAskFeedback = s.askAtIndex(s.State.CurrentIndex)
	return s, nil
}

// Current returns the exercise at the current position, or nil when the
// list is empty or the index is out of range. It never panics.
func (s *Session) Current() *models.ExerciseRecord {
	if s.State.CurrentIndex < 0 || s.State.CurrentIndex >= len(s.exercises) {
		return nil
	}
	ex := s.exercises[s.State.CurrentIndex]
	return &ex
}

// Total returns the number of exercises in the session.
func (s *Session) Total() int {
	return len(s.exercises)
}

// Advance records the elapsed time for the exercise just finished and
// moves to the next position. At the final position it returns
// ErrNoMoreExercises and leaves the index in range; the caller is
// expected to call Complete.
func (s *Session) Advance() error {
	s.recordElapsed()
	if s.State.CurrentIndex >= len(s.exercises)-1 {
		return ErrNoMoreExercises
	}
	s.moveForward()
	return nil
}

// Skip marks the current exercise as skipped and then advances. At the
// final position the skip is still recorded but the index stays in
// range and ErrNoMoreExercises is returned.
func (s *Session) Skip() error {
	if ex := s.Current(); ex != nil {
		s.State.Skips = append(s.State.Skips, ex.ID)
		s.State.SkipFlags[s.State.CurrentIndex] = true
	}
	s.recordElapsed()
	if s.State.CurrentIndex >= len(s.exercises)-1 {
		return ErrNoMoreExercises
	}
	s.moveForward()
	return nil
}

// Repeat bumps the repeat counter for the current position and restarts
// its elapsed-time measurement. The position does not change.
func (s *Session) Repeat() {
	if s.State.CurrentIndex >= 0 && s.State.CurrentIndex < len(s.State.Repeats) {
		s.State.Repeats[s.State.CurrentIndex]++
	}
	s.timeAnchor = time.Now()
	s.State.LastActionAt = s.timeAnchor
}

// RecordFeedback stores the feedback level at the current position and
// forwards it to the difficulty engine's immediate rule. The
// should-ask-feedback flag is consumed by this call.
func (s *Session) RecordFeedback(level string) (difficulty.Result, error) {
	exerciseID := ""
	if ex := s.Current(); ex != nil {
		exerciseID = ex.ID
	}
	if s.State.CurrentIndex >= 0 && s.State.CurrentIndex < len(s.State.Feedback) {
		s.State.Feedback[s.State.CurrentIndex] = level
	}
	s.State.ShouldAskFeedback = false

	return s.engine.ImmediateFeedback(s.State.UserID, level, exerciseID)
}

// Complete marks the session finished exactly once, hands the summary to
// the difficulty engine's end-of-session evaluation, and stores whether
// a congratulation is warranted.
func (s *Session) Complete() (difficulty.Result, error) {
	if s.State.Completed {
		return difficulty.Result{}, nil
	}
	s.State.Completed = true
	s.State.LastActionAt = time.Now()

	result, err := s.engine.EvaluateSession(s.State.UserID, s.State.Summary())
	if err != nil {
		return difficulty.Result{}, err
	}
	s.State.PendingCongratulation = result.Congratulate
	return result, nil
}

// ReloadAfterDifficultyChange re-reads the user's difficulty, fetches a
// fresh routine for the same exercise type, and remaps the current index
// proportionally so the user keeps their relative place in the session.
func (s *Session) ReloadAfterDifficultyChange() error {
	level, err := s.engine.Get(s.State.UserID)
	if err != nil {
		return err
	}

	exercises, err := s.catalog.Routine(s.State.ExerciseType, level.String())
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		return ErrEmptyRoutine
	}

	oldLen := len(s.exercises)
	oldIndex := s.State.CurrentIndex
	newIndex := 0
	if oldLen > 0 {
		newIndex = oldIndex * len(exercises) / oldLen
	}
	if newIndex > len(exercises)-1 {
		newIndex = len(exercises) - 1
	}
	if newIndex < 0 {
		newIndex = 0
	}

	ids := make([]string, len(exercises))
	for i, ex := range exercises {
		ids[i] = ex.ID
	}

	s.exercises = exercises
	s.State.Difficulty = level.String()
	s.State.ExerciseIDs = ids
	s.State.CurrentIndex = newIndex
	s.State.SkipFlags = resizeBools(s.State.SkipFlags, len(ids))
	s.State.Repeats = resizeInts(s.State.Repeats, len(ids))
	s.State.CompletionTimes = resizeFloats(s.State.CompletionTimes, len(ids))
	s.State.Feedback = resizeStrings(s.State.Feedback, len(ids))
	s.State.ShouldAskFeedback = s.askAtIndex(newIndex)
	s.timeAnchor = time.Now()
	s.State.LastActionAt = s.timeAnchor

	log.WithFields(log.Fields{
		"user_id":    s.State.UserID,
		"difficulty": level.String(),
		"old_index":  oldIndex,
		"new_index":  newIndex,
	}).Info("session reloaded after difficulty change")
	return nil
}

func (s *Session) recordElapsed() {
	if s.State.CurrentIndex >= 0 && s.State.CurrentIndex < len(s.State.CompletionTimes) {
		s.State.CompletionTimes[s.State.CurrentIndex] = time.Since(s.timeAnchor).Seconds()
	}
}

func (s *Session) moveForward() {
	s.State.CurrentIndex++
	s.State.ShouldAskFeedback = s.askAtIndex(s.State.CurrentIndex)
	s.timeAnchor = time.Now()
	s.State.LastActionAt = s.timeAnchor
}

// askAtIndex implements the feedback cadence: after every askEvery-th
// exercise, counting from one.
func (s *Session) askAtIndex(index int) bool {
	if s.askEvery <= 0 {
		return false
	}
	return (index+1)%s.askEvery == 0
}

func resizeBools(in []bool, n int) []bool {
	out := make([]bool, n)
	copy(out, in)
	return out
}

func resizeInts(in []int, n int) []int {
	out := make([]int, n)
	copy(out, in)
	return out
}

func resizeFloats(in []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, in)
	return out
}

func resizeStrings(in []string, n int) []string {
	out := make([]string, n)
	copy(out, in)
	return out
}
