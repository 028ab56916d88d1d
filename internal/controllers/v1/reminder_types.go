package v1

import (
	"time"

	"github.com/scastellanosl/coinary-backend/internal/models"
)

type ReminderEditable struct {
	Name     string `json:"name" example:"Log your expenses" default:""`          // Name of the reminder
	Note     string `json:"note" example:"Takes two minutes" default:""`          // A note
	Schedule string `json:"schedule" example:"0 20 * * *"`                        // Standard 5-field cron expression
	Active   bool   `json:"active" example:"true" default:"false"`                // Is the reminder active?
}

func (editable ReminderEditable) model() models.Reminder {
	return models.Reminder{
		Name:     editable.Name,
		Note:     editable.Note,
		Schedule: editable.Schedule,
		Active:   editable.Active,
	}
}

// Reminder is the API representation of a Reminder.
type Reminder struct {
	models.DefaultModel
	ReminderEditable
	LastTriggered *time.Time `json:"lastTriggered" example:"2026-08-31T20:00:00Z"` // When the reminder was last due
}

func newReminder(model models.Reminder) Reminder {
	return Reminder{
		DefaultModel: model.DefaultModel,
		ReminderEditable: ReminderEditable{
			Name:     model.Name,
			Note:     model.Note,
			Schedule: model.Schedule,
			Active:   model.Active,
		},
		LastTriggered: model.LastTriggered,
	}
}

type ReminderResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this reminder
	Data  *Reminder `json:"data"`                                                          // The Reminder data, if creation was successful
}

type ReminderListResponse struct {
	Data       []Reminder  `json:"data"`                                                          // List of reminders
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ReminderCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ReminderResponse `json:"data"`                                                          // List of created Reminders
}

func (t *ReminderCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ReminderResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReminderQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Active bool   `form:"active"`                     // Is the reminder active?
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Reminder returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Reminders to return. Defaults to 50.
}

func (f ReminderQueryFilter) model() models.Reminder {
	return models.Reminder{
		Active: f.Active,
	}
}
