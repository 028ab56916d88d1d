package v1_test

import (
	"net/http"

	v1 "github.com/scastellanosl/coinary-backend/internal/controllers/v1"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestReminder(reminder models.Reminder) models.Reminder {
	if reminder.Name == "" {
		reminder.Name = "Test reminder"
	}

	if reminder.Schedule == "" {
		reminder.Schedule = "0 20 * * *"
	}

	err := models.DB.Create(&reminder).Error
	if err != nil {
		suite.Assert().FailNow("Reminder could not be saved", "Error: %s, Reminder: %#v", err, reminder)
	}

	return reminder
}

func (suite *TestSuiteStandard) TestRemindersOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/reminders", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestRemindersCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/reminders", []v1.ReminderEditable{
		{Name: "Log your expenses", Schedule: "0 20 * * *", Active: true},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.ReminderCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Log your expenses", response.Data[0].Data.Name)
	assert.Nil(suite.T(), response.Data[0].Data.LastTriggered)
}

func (suite *TestSuiteStandard) TestRemindersCreateScheduleInvalid() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/reminders", []v1.ReminderEditable{
		{Name: "Broken", Schedule: "every evening"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestRemindersGetFilter() {
	suite.createTestReminder(models.Reminder{Name: "Evening entry", Active: true})
	suite.createTestReminder(models.Reminder{Name: "Weekly review", Schedule: "0 9 * * 1"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reminders", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ReminderListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	if assert.Len(suite.T(), response.Data, 2) {
		// Ascending by name
		assert.Equal(suite.T(), "Evening entry", response.Data[0].Name)
	}

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/reminders?active=true", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/reminders?search=review", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestReminderGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reminders/4e743e94-6a4b-44d6-aba5-d77c87103ff7", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestReminderUpdate() {
	reminder := suite.createTestReminder(models.Reminder{Name: "Evening entry"})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/reminders/"+reminder.ID.String(), map[string]any{
		"active": true,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var reloaded models.Reminder
	suite.Require().Nil(models.DB.First(&reloaded, reminder.ID).Error)
	assert.True(suite.T(), reloaded.Active)
	assert.Equal(suite.T(), "0 20 * * *", reloaded.Schedule, "fields not in the body must stay untouched")
}

func (suite *TestSuiteStandard) TestReminderUpdateScheduleInvalid() {
	reminder := suite.createTestReminder(models.Reminder{})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/reminders/"+reminder.ID.String(), map[string]any{
		"schedule": "whenever",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestReminderDelete() {
	reminder := suite.createTestReminder(models.Reminder{})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/reminders/"+reminder.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/reminders/"+reminder.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
