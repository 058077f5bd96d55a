// Package scheduler sends the daily exercise reminders. An hourly job
// looks up users whose reminder hour matches the current hour and hands
// them to the notifier.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"

	"github.com/616xold/rehab-budd-islem/internal/database"
)

// Default quiet-hours window; reminders are only sent inside it.
const (
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 21
)

// Notifier delivers a reminder message to one user.
type Notifier interface {
	SendReminder(userID, message string) error
}

// Scheduler manages the recurring reminder job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier

	// StartHour and EndHour bound the hours at which reminders may fire.
	StartHour int
	EndHour   int
	// Message is the reminder text sent to every matching user.
	Message string
}

// New creates a scheduler that delivers through the given notifier.
func New(notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		StartHour: DefaultReminderStartHour,
		EndHour:   DefaultReminderEndHour,
		Message:   "Time for your rehabilitation exercises! A few minutes a day keeps your recovery on track.",
	}
}

// Start begins the hourly reminder check without blocking.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders finds every user whose reminder hour is now and
// sends them the reminder, unless the current hour is outside the
// allowed window.
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	if currentHour < s.StartHour || currentHour > s.EndHour {
		log.Debugf("Current hour %d is outside reminder hours (%d-%d), skipping reminders",
			currentHour, s.StartHour, s.EndHour)
		return
	}

	repo := database.NewUserProgressRepository()
	userIDs, err := repo.GetUsersForReminder(currentHour)
	if err != nil {
		log.WithError(err).Error("failed to get users for reminder")
		return
	}

	for _, userID := range userIDs {
		if err := s.notifier.SendReminder(userID, s.Message); err != nil {
			log.WithError(err).WithField("user_id", userID).Error("failed to send reminder")
			continue
		}
		log.WithField("user_id", userID).Info("Reminder sent")
	}
}

// RunManualCheck sends the reminder to one user immediately, regardless
// of their configured hour.
func (s *Scheduler) RunManualCheck(userID string) error {
	return s.notifier.SendReminder(userID, s.Message)
}
