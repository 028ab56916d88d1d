// Package reminders schedules the user's reminders with cron.
//
// The backend only marks reminders as due and logs them; delivering a
// notification to the user's device is up to the clients polling
// LastTriggered.
package reminders

import (
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"gorm.io/gorm"
)

// Default is the scheduler used by the API when reminders change. It is
// nil until the server sets it on startup.
var Default *Scheduler

// Scheduler runs a cron entry per active reminder.
type Scheduler struct {
	db      *gorm.DB
	cron    *cron.Cron
	entries []cron.EntryID
}

func New(db *gorm.DB) *Scheduler {
	return &Scheduler{
		db:   db,
		cron: cron.New(),
	}
}

// Start loads all active reminders, schedules them and starts the cron
// runner. It returns the number of scheduled reminders.
func (s *Scheduler) Start() (int, error) {
	count, err := s.schedule()
	if err != nil {
		return 0, err
	}

	s.cron.Start()
	return count, nil
}

// Refresh drops all scheduled entries and re-schedules from the current
// database state. Called after reminders are created, updated or deleted.
func (s *Scheduler) Refresh() (int, error) {
	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = nil

	return s.schedule()
}

// Stop stops the cron runner. Already running triggers finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) schedule() (int, error) {
	reminders, err := models.ActiveReminders(s.db)
	if err != nil {
		return 0, err
	}

	for _, reminder := range reminders {
		id := reminder.ID

		entry, err := s.cron.AddFunc(reminder.Schedule, func() {
			s.trigger(id)
		})
		if err != nil {
			// The schedule was validated at save time, a failure here
			// means the data predates the validation
			log.Error().Err(err).Stringer("reminder", id).Str("schedule", reminder.Schedule).Msg("invalid reminder schedule, skipping")
			continue
		}

		s.entries = append(s.entries, entry)
	}

	return len(s.entries), nil
}

// trigger marks a reminder as due. Reminders deactivated or deleted
// since scheduling are skipped.
func (s *Scheduler) trigger(id uuid.UUID) {
	var reminder models.Reminder
	err := s.db.First(&reminder, id).Error
	if err != nil {
		log.Warn().Err(err).Stringer("reminder", id).Msg("due reminder no longer exists")
		return
	}

	if !reminder.Active {
		return
	}

	now := time.Now().In(time.UTC)
	err = s.db.Model(&reminder).Update("LastTriggered", &now).Error
	if err != nil {
		log.Error().Err(err).Stringer("reminder", id).Msg("could not mark reminder as triggered")
		return
	}

	log.Info().Stringer("reminder", id).Str("name", reminder.Name).Msg("reminder due")
}
