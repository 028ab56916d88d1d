package models

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Reminder is a scheduled nudge, e.g. "enter your expenses every evening".
//
// The schedule is a standard 5-field cron expression. Delivering the
// reminder to the user is up to the clients, the backend only tracks
// when a reminder was last due.
type Reminder struct {
	DefaultModel
	Name          string
	Note          string
	Schedule      string // cron expression, e.g. "0 20 * * *"
	Active        bool
	LastTriggered *time.Time
}

func (r *Reminder) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Note = strings.TrimSpace(r.Note)
	r.Schedule = strings.TrimSpace(r.Schedule)

	return nil
}

// AfterSave sees the merged values on updates, so the schedule of a
// partial update is validated here and not in BeforeSave.
func (r *Reminder) AfterSave(_ *gorm.DB) error {
	if _, err := cron.ParseStandard(r.Schedule); err != nil {
		return ErrReminderScheduleInvalid
	}

	return nil
}

// ActiveReminders returns all reminders that are currently active.
func ActiveReminders(db *gorm.DB) ([]Reminder, error) {
	var reminders []Reminder

	err := db.Where(&Reminder{Active: true}).Find(&reminders).Error
	if err != nil {
		return nil, err
	}

	return reminders, nil
}
