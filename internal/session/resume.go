package session

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// ErrNoResumableSession means no valid snapshot exists for the user,
// either because none was saved or because it aged past the resume
// window.
var ErrNoResumableSession = errors.New("no resumable session")

// Store is the slice of the progress store the resume manager needs.
// Get returns nil when no record exists.
type Store interface {
	Get(userID string) (*models.UserProgress, error)
	Put(progress *models.UserProgress) error
}

// ResumeManager persists and restores snapshots of incomplete sessions.
type ResumeManager struct {
	store  Store
	window time.Duration
}

// NewResumeManager creates a manager with the given validity window.
func NewResumeManager(store Store, windowDays int) *ResumeManager {
	return &ResumeManager{
		store:  store,
		window: time.Duration(windowDays) * 24 * time.Hour,
	}
}

// Save stores a snapshot of an incomplete session on the user's record.
func (m *ResumeManager) Save(state *models.SessionState) error {
	progress, err := m.store.Get(state.UserID)
	if err != nil {
		return fmt.Errorf("failed to load record for snapshot: %v", err)
	}
	if progress == nil {
		progress = models.NewUserProgress(state.UserID)
	}

	snap := state.Snapshot(time.Now())
	progress.Snapshot = &snap
	if err := m.store.Put(progress); err != nil {
		return fmt.Errorf("failed to save session snapshot: %v", err)
	}
	return nil
}

// Load returns the user's saved snapshot if one exists and is still
// inside the resume window. An expired snapshot is cleared from storage
// and reported as absent.
func (m *ResumeManager) Load(userID string) (*models.SessionSnapshot, error) {
	progress, err := m.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %v", err)
	}
	if progress == nil || progress.Snapshot == nil {
		return nil, ErrNoResumableSession
	}

	if time.Since(progress.Snapshot.LastUpdated) >= m.window {
		log.WithField("user_id", userID).Info("discarding expired session snapshot")
		progress.Snapshot = nil
		if err := m.store.Put(progress); err != nil {
			return nil, fmt.Errorf("failed to clear expired snapshot: %v", err)
		}
		return nil, ErrNoResumableSession
	}

	return progress.Snapshot, nil
}

// Clear removes any saved snapshot for the user. Clearing when nothing
// is saved is not an error.
func (m *ResumeManager) Clear(userID string) error {
	progress, err := m.store.Get(userID)
	if err != nil {
		return fmt.Errorf("failed to load record for clear: %v", err)
	}
	if progress == nil || progress.Snapshot == nil {
		return nil
	}
	progress.Snapshot = nil
	if err := m.store.Put(progress); err != nil {
		return fmt.Errorf("failed to clear session snapshot: %v", err)
	}
	return nil
}
