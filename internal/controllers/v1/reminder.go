package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/scastellanosl/coinary-backend/internal/httputil"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/internal/reminders"
	"golang.org/x/exp/slices"
)

// RegisterReminderRoutes registers the routes for reminders with
// the RouterGroup that is passed.
func RegisterReminderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReminderList)
		r.GET("", GetReminders)
		r.POST("", CreateReminders)
	}

	// Reminder with ID
	{
		r.OPTIONS("/:id", OptionsReminderDetail)
		r.GET("/:id", GetReminder)
		r.PATCH("/:id", UpdateReminder)
		r.DELETE("/:id", DeleteReminder)
	}
}

// refreshScheduler re-schedules all reminders after a change. Failures
// are logged, the API request that caused the change still succeeds.
func refreshScheduler() {
	if reminders.Default == nil {
		return
	}

	if _, err := reminders.Default.Refresh(); err != nil {
		log.Error().Err(err).Msg("could not refresh reminder scheduler")
	}
}

// OptionsReminderList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reminders
//	@Success		204
//	@Router			/v1/reminders [options]
func OptionsReminderList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsReminderDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reminders
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/reminders/{id} [options]
func OptionsReminderDetail(c *gin.Context) {
	resourceOptionsDetail[models.Reminder](c)
}

// CreateReminders creates new reminders
//
//	@Summary		Create reminders
//	@Description	Creates new reminders
//	@Tags			Reminders
//	@Produce		json
//	@Success		201	{object}	ReminderCreateResponse
//	@Failure		400	{object}	ReminderCreateResponse
//	@Failure		500	{object}	ReminderCreateResponse
//	@Param			reminders	body		[]ReminderEditable	true	"Reminders"
//	@Router			/v1/reminders [post]
func CreateReminders(c *gin.Context) {
	var editables []ReminderEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReminderCreateResponse{}

	for _, editable := range editables {
		reminder := editable.model()

		err = models.DB.Create(&reminder).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newReminder(reminder)
		r.Data = append(r.Data, ReminderResponse{Data: &data})
	}

	refreshScheduler()
	c.JSON(status, r)
}

// GetReminders returns reminders filtered by the query parameters
//
//	@Summary		Get reminders
//	@Description	Returns a list of reminders
//	@Tags			Reminders
//	@Produce		json
//	@Success		200	{object}	ReminderListResponse
//	@Failure		400	{object}	ReminderListResponse
//	@Failure		500	{object}	ReminderListResponse
//	@Router			/v1/reminders [get]
//	@Param			name	query	string	false	"Filter by name"
//	@Param			note	query	string	false	"Filter by note"
//	@Param			search	query	string	false	"Search for this text in name and note"
//	@Param			active	query	bool	false	"Is the reminder active?"
//	@Param			offset	query	uint	false	"The offset of the first Reminder returned. Defaults to 0."
//	@Param			limit	query	int		false	"Maximum number of Reminders to return. Defaults to 50."
func GetReminders(c *gin.Context) {
	var filter ReminderQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, ReminderListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default offset is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 reminders and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var reminderList []models.Reminder
	err := q.Find(&reminderList).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Reminder, 0, len(reminderList))
	for _, reminder := range reminderList {
		data = append(data, newReminder(reminder))
	}

	c.JSON(http.StatusOK, ReminderListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// GetReminder returns a specific reminder
//
//	@Summary		Get reminder
//	@Description	Returns a specific reminder
//	@Tags			Reminders
//	@Produce		json
//	@Success		200	{object}	ReminderResponse
//	@Failure		400	{object}	ReminderResponse
//	@Failure		404	{object}	ReminderResponse
//	@Failure		500	{object}	ReminderResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/reminders/{id} [get]
func GetReminder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var reminder models.Reminder
	err := models.DB.First(&reminder, &models.Reminder{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	data := newReminder(reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &data})
}

// UpdateReminder updates a reminder
//
//	@Summary		Update reminder
//	@Description	Updates an existing reminder. Only values to be updated need to be specified.
//	@Tags			Reminders
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	ReminderResponse
//	@Failure		400	{object}	ReminderResponse
//	@Failure		404	{object}	ReminderResponse
//	@Failure		500	{object}	ReminderResponse
//	@Param			id			path		string				true	"ID formatted as string"
//	@Param			reminder	body		ReminderEditable	true	"Reminder"
//	@Router			/v1/reminders/{id} [patch]
func UpdateReminder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var reminder models.Reminder
	err := models.DB.First(&reminder, &models.Reminder{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ReminderEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var data ReminderEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&reminder).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	refreshScheduler()

	apiResource := newReminder(reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &apiResource})
}

// DeleteReminder deletes a reminder
//
//	@Summary		Delete reminder
//	@Description	Deletes a reminder
//	@Tags			Reminders
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/reminders/{id} [delete]
func DeleteReminder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var reminder models.Reminder
	err := models.DB.First(&reminder, &models.Reminder{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&reminder).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	refreshScheduler()
	c.Status(http.StatusNoContent)
}
